package build

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/artifact"
	"github.com/fehkeys/fehkeys/internal/binding"
	"github.com/fehkeys/fehkeys/internal/compiler"
)

func testOptions(t *testing.T, dir string) Options {
	t.Helper()
	opts := DefaultOptions()
	opts.Config.ConfigDir = dir
	opts.Symbols = actions.NewTable("close", "quit", "menu_close", "move_left", "next_img")
	opts.Defaults = []binding.Declaration{
		{Action: "close", Key: "x"},
		{Action: "quit", Key: "q"},
		{Action: "quit", Key: "Escape"},
		{Action: "menu_close", Key: "Escape"},
		{Action: "move_left", Key: "h"},
	}
	return opts
}

func writeOverride(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "keys")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_DefaultsOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not", "yet", "there")
	report, err := Run(testOptions(t, dir))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "keys.bin"), report.ArtifactPath)
	assert.Empty(t, report.OverridePath)
	assert.Equal(t, [binding.NamespaceCount]int{1, 1, 3}, report.Counts)
	assert.Equal(t, 10, report.SampleLen)
	assert.NotEmpty(t, report.RunID)
	assert.Empty(t, report.Warnings)

	got, err := artifact.ReadFile(report.ArtifactPath)
	require.NoError(t, err)
	require.NoError(t, artifact.Verify(report.Artifact, got))
	for _, ns := range binding.Namespaces {
		assert.True(t, compiler.IsSorted(got.Tables[ns]), ns.String())
	}
}

func TestRun_OverrideTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "# mine\nclose : q\nnot a binding\n")

	report, err := Run(testOptions(t, dir))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "keys"), report.OverridePath)
	assert.Equal(t, filepath.Join(dir, "keys.bin"), report.ArtifactPath)
	// One malformed line, one default "q" dropped as a duplicate.
	require.Len(t, report.Warnings, 2)
	assert.Contains(t, report.Warnings[0], "keys:3")
	assert.Contains(t, report.Warnings[1], "already bound to close")

	q, err := binding.ParseKey("q")
	require.NoError(t, err)
	feh := report.Artifact.Tables[binding.Feh]
	id, ok := compiler.Lookup(feh, report.Artifact.Sample, q.Code)
	require.True(t, ok)
	assert.Equal(t, actions.ID(0), id) // close
}

func TestRun_ExplicitOverrideAndOutput(t *testing.T) {
	dir := t.TempDir()
	override := writeOverride(t, t.TempDir(), "quit : C-w\n")
	out := filepath.Join(t.TempDir(), "out.bin")

	opts := testOptions(t, dir)
	opts.OverridePath = override
	opts.OutputPath = out

	report, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, out, report.ArtifactPath)
	assert.Equal(t, 4, report.Counts[binding.Feh])
	_, err = os.Stat(filepath.Join(dir, "keys.bin"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_UnresolvedActionWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeOverride(t, dir, "bogus_action : b\n")

	_, err := Run(testOptions(t, dir))
	require.Error(t, err)

	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageCompile, se.Stage)
	var ue actions.UnresolvedError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "bogus_action", ue.Name)

	_, statErr := os.Stat(filepath.Join(dir, "keys.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_MissingExplicitOverride(t *testing.T) {
	opts := testOptions(t, t.TempDir())
	opts.OverridePath = filepath.Join(t.TempDir(), "nope")

	_, err := Run(opts)
	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageOverride, se.Stage)
	assert.Equal(t, opts.OverridePath, se.Path)
}

func TestRun_UnwritableOutput(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	opts := testOptions(t, t.TempDir())
	opts.OutputPath = filepath.Join(blocker, "keys.bin")

	_, err := Run(opts)
	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, StageOpen, se.Stage)
	assert.Contains(t, err.Error(), "open artifact")
}

func TestRun_ReusesPriorArtifactDirectory(t *testing.T) {
	primary := t.TempDir()
	legacy := t.TempDir()
	prior := filepath.Join(legacy, "keys.bin")
	require.NoError(t, os.WriteFile(prior, []byte("stale"), 0o600))

	opts := testOptions(t, primary)
	opts.Config.SearchDirs = []string{legacy}

	report, err := Run(opts)
	require.NoError(t, err)
	assert.Equal(t, prior, report.ArtifactPath)
}

func TestCompile_NoWrite(t *testing.T) {
	dir := t.TempDir()
	c, err := Compile(testOptions(t, dir))
	require.NoError(t, err)
	assert.Len(t, c.Help(), 5)
	assert.Len(t, c.Sample, 10)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStageError(t *testing.T) {
	err := &StageError{Stage: StageVerify, Path: "/tmp/keys.bin", Err: artifact.ErrMismatch}
	assert.Equal(t, "verify artifact (/tmp/keys.bin): artifact read-back mismatch", err.Error())
	assert.ErrorIs(t, err, artifact.ErrMismatch)
}
