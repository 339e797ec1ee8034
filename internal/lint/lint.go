// Package lint checks override files without producing an artifact.
package lint

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/binding"
	"github.com/fehkeys/fehkeys/internal/compiler"
)

const (
	keysExt          = ".keys"
	streamBufferSize = 64
)

//nolint:gochecknoglobals // immutable lookup table.
var skipDirs = []string{".git", ".cache", "node_modules"}

// Finding is the outcome of checking one file.
type Finding struct {
	Path     string
	Warnings []compiler.Warning
	// Err is set when the file could not be read or names an unknown action.
	Err error
}

// OK reports whether the file compiled cleanly.
func (f Finding) OK() bool { return f.Err == nil && len(f.Warnings) == 0 }

// Linter checks override files against a symbol table.
type Linter struct {
	symbols actions.Table
	name    string
}

// New returns a linter matching files called name (or ending in .keys) when
// walking directories.
func New(symbols actions.Table, name string) *Linter {
	return &Linter{symbols: symbols, name: name}
}

// Run checks every file given in roots, walking directories. Missing roots are
// reported as findings.
func (l *Linter) Run(ctx context.Context, roots []string) []Finding {
	var findings []Finding
	for path := range l.files(ctx, roots) {
		findings = append(findings, l.Check(path))
	}
	return findings
}

// Check compiles the file at path on its own. Conflicts with the defaults are not
// reported since overriding them is the purpose of the file.
func (l *Linter) Check(path string) Finding {
	decls, warns, err := binding.ReadFile(path)
	if err != nil {
		return Finding{Path: path, Err: err}
	}

	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	res, err := compiler.New(l.symbols, compiler.WithLogger(quiet)).Compile(compiler.Source{
		Name:         path,
		Declarations: decls,
		Warnings:     compiler.MalformedLineWarnings(path, warns),
	})
	if err != nil {
		return Finding{Path: path, Err: err}
	}
	return Finding{Path: path, Warnings: res.Warnings}
}

func (l *Linter) matches(name string) bool {
	return name == l.name || strings.EqualFold(filepath.Ext(name), keysExt)
}

func isSkippedDir(name string) bool {
	for _, s := range skipDirs {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

// files streams the files to check. The channel is closed when every root has
// been visited or ctx is canceled.
func (l *Linter) files(ctx context.Context, roots []string) <-chan string {
	out := make(chan string, streamBufferSize)
	go func() {
		defer close(out)
		for _, root := range roots {
			st, err := os.Stat(root)
			if err != nil || !st.IsDir() {
				// Let Check report unreadable or missing files.
				select {
				case out <- root:
				case <-ctx.Done():
					return
				}
				continue
			}
			l.walk(ctx, root, out)
		}
	}()
	return out
}

func (l *Linter) walk(ctx context.Context, root string, out chan<- string) {
	conf := fastwalk.DefaultConfig
	conf.Sort = fastwalk.SortFilesFirst
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.IsDir() {
			if path != root && isSkippedDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && l.matches(d.Name()) {
			select {
			case out <- path:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err != nil {
		logrus.Debugf("walking %s: %v", root, err)
	}
}
