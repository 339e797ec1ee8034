package lint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/compiler"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLinter_Check(t *testing.T) {
	dir := t.TempDir()
	l := New(actions.NewTable("quit", "close"), "keys")

	clean := filepath.Join(dir, "clean")
	write(t, clean, "quit : q\nclose : x\n")
	f := l.Check(clean)
	assert.True(t, f.OK())

	dirty := filepath.Join(dir, "dirty")
	write(t, dirty, "quit : q\nclose : q\nquit : Nope\nbad\n")
	f = l.Check(dirty)
	require.NoError(t, f.Err)
	kinds := []compiler.WarningKind{}
	for _, w := range f.Warnings {
		kinds = append(kinds, w.Kind)
	}
	assert.Equal(t, []compiler.WarningKind{compiler.MalformedLine, compiler.DuplicateKey, compiler.UnknownKeysym}, kinds)

	bogus := filepath.Join(dir, "bogus")
	write(t, bogus, "bogus_action : b\n")
	f = l.Check(bogus)
	var ue actions.UnresolvedError
	require.True(t, errors.As(f.Err, &ue))
	assert.False(t, f.OK())
}

func TestLinter_RunWalksDirectories(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "keys"), "quit : q\n")
	write(t, filepath.Join(root, "sub", "laptop.keys"), "close : x\n")
	write(t, filepath.Join(root, "sub", "notes.txt"), "not bindings\n")
	write(t, filepath.Join(root, ".git", "keys"), "garbage\n")

	missing := filepath.Join(root, "missing")
	l := New(actions.NewTable("quit", "close"), "keys")
	findings := l.Run(context.Background(), []string{root, missing})

	paths := make([]string, 0, len(findings))
	for _, f := range findings {
		paths = append(paths, f.Path)
		if f.Path == missing {
			assert.True(t, os.IsNotExist(f.Err))
		} else {
			assert.True(t, f.OK(), f.Path)
		}
	}
	sort.Strings(paths)
	want := []string{
		filepath.Join(root, "keys"),
		missing,
		filepath.Join(root, "sub", "laptop.keys"),
	}
	sort.Strings(want)
	assert.Equal(t, want, paths)
}
