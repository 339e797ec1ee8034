package help

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // shared render styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	actionStyle = lipgloss.NewStyle().Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderText writes topics as an aligned key reference.
func RenderText(w io.Writer, topics []Topic) error {
	actionWidth, keyWidth := 0, 0
	keys := make([]string, len(topics))
	for i, t := range topics {
		keys[i] = strings.Join(t.Keys, ", ")
		actionWidth = max(actionWidth, lipgloss.Width(t.Action))
		keyWidth = max(keyWidth, lipgloss.Width(keys[i]))
	}

	if _, err := fmt.Fprintln(w, titleStyle.Render("KEY BINDINGS")); err != nil {
		return err
	}
	for i, t := range topics {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			actionStyle.Width(actionWidth+2).Render(t.Action),
			keyStyle.Width(keyWidth+2).Render(keys[i]),
			descStyle.Render(t.Description),
		)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// RenderJSON writes topics as indented JSON.
func RenderJSON(w io.Writer, topics []Topic) error {
	out, err := json.MarshalIndent(topics, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
