package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/artifact"
	"github.com/fehkeys/fehkeys/internal/binding"
	"github.com/fehkeys/fehkeys/internal/build"
	"github.com/fehkeys/fehkeys/internal/lint"
)

const reportWidth = 60

//nolint:gochecknoglobals // shared render styles.
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func writeJSON(w io.Writer, v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, string(out))
}

func actionName(symbols actions.Table, id actions.ID) string {
	if n := symbols.Name(id); n != "" {
		return n
	}
	return fmt.Sprintf("#%d", id)
}

// printReport outputs the result of a compile run.
func printReport(w io.Writer, r *build.Report, jsonOutput bool) {
	if jsonOutput {
		writeJSON(w, r)
		return
	}

	fmt.Fprintln(w, headingStyle.Render("FEHKEYS COMPILE REPORT"))
	fmt.Fprintln(w, strings.Repeat("=", reportWidth))
	if r.OverridePath != "" {
		fmt.Fprintf(w, "Override: %s\n", r.OverridePath)
	} else {
		fmt.Fprintln(w, "Override: none (defaults only)")
	}
	fmt.Fprintf(w, "Artifact: %s\n", r.ArtifactPath)
	for _, ns := range binding.Namespaces {
		fmt.Fprintf(w, "   %-6s: %d bindings\n", ns, r.Counts[ns])
	}
	fmt.Fprintf(w, "   sample: %d entries\n", r.SampleLen)

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", warnStyle.Render(fmt.Sprintf("%d WARNING(S)", len(r.Warnings))))
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "   • %s\n", warning)
		}
	}
	fmt.Fprintf(w, "\n%s\n", okStyle.Render("Artifact written and verified."))
}

type findingJSON struct {
	Path     string   `json:"path"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// printFindings outputs lint results and returns the number of files with problems.
func printFindings(w io.Writer, findings []lint.Finding, jsonOutput bool) int {
	bad := 0
	out := make([]findingJSON, 0, len(findings))
	for _, f := range findings {
		if !f.OK() {
			bad++
		}
		fj := findingJSON{Path: f.Path}
		for _, warning := range f.Warnings {
			fj.Warnings = append(fj.Warnings, warning.String())
		}
		if f.Err != nil {
			fj.Error = f.Err.Error()
		}
		out = append(out, fj)
	}

	if jsonOutput {
		writeJSON(w, out)
		return bad
	}
	if len(out) == 0 {
		fmt.Fprintln(w, "No binding files found.")
		return 0
	}
	for _, f := range out {
		switch {
		case f.Error != "":
			fmt.Fprintf(w, "%s %s: %s\n", errStyle.Render("✗"), f.Path, f.Error)
		case len(f.Warnings) > 0:
			fmt.Fprintf(w, "%s %s\n", warnStyle.Render("!"), f.Path)
			for _, warning := range f.Warnings {
				fmt.Fprintf(w, "   • %s\n", warning)
			}
		default:
			fmt.Fprintf(w, "%s %s\n", okStyle.Render("✓"), f.Path)
		}
	}
	return bad
}

type recordJSON struct {
	Key      string `json:"key"`
	Code     uint64 `json:"code"`
	Action   string `json:"action"`
	Position *int   `json:"position,omitempty"`
}

type artifactJSON struct {
	Path   string                  `json:"path"`
	Header artifact.Header         `json:"header"`
	Tables map[string][]recordJSON `json:"tables"`
	Sample []recordJSON            `json:"sample"`
}

// printArtifact outputs every record of a decoded artifact.
func printArtifact(w io.Writer, path string, a *artifact.Artifact, symbols actions.Table, jsonOutput bool) {
	if jsonOutput {
		aj := artifactJSON{Path: path, Header: a.Header(), Tables: map[string][]recordJSON{}, Sample: []recordJSON{}}
		for _, ns := range binding.Namespaces {
			recs := []recordJSON{}
			for _, b := range a.Tables[ns] {
				recs = append(recs, recordJSON{Key: b.Key.String(), Code: uint64(b.Key), Action: actionName(symbols, b.Action)})
			}
			aj.Tables[ns.String()] = recs
		}
		for _, s := range a.Sample {
			pos := s.Position
			aj.Sample = append(aj.Sample, recordJSON{Key: s.Key.String(), Code: uint64(s.Key), Action: actionName(symbols, s.Action), Position: &pos})
		}
		writeJSON(w, aj)
		return
	}

	h := a.Header()
	fmt.Fprintln(w, headingStyle.Render(path))
	fmt.Fprintf(w, "menu=%d move=%d feh=%d sample=%d\n", h[0], h[1], h[2], h[3])
	for _, ns := range binding.Namespaces {
		fmt.Fprintf(w, "\n[%s]\n", ns)
		for _, b := range a.Tables[ns] {
			fmt.Fprintf(w, "   %-20s %#08x  %s\n", b.Key, uint64(b.Key), actionName(symbols, b.Action))
		}
	}
	fmt.Fprintln(w, "\n[sample]")
	for _, s := range a.Sample {
		fmt.Fprintf(w, "   %4d  %-20s %s\n", s.Position, s.Key, actionName(symbols, s.Action))
	}
}
