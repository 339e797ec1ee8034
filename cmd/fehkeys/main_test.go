package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoglobals // test binary path is set in TestMain
var testBinaryPath string

// TestMain builds the CLI binary once for the entire package and reuses it.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "fehkeys-test-")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1) //nolint:gocritic // Mkdir failed, nothing to cleanup
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(dir, "fehkeys-test")
	cmd := exec.Command("go", "build", "-o", bin, ".")
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build test binary: %v\nOutput: %s\n", err, string(out))
		os.Exit(1) //nolint:gocritic // Binary failed, nothing to cleanup
	}
	testBinaryPath = bin

	code := m.Run()
	os.Exit(code)
}

// newCmd runs the test binary with HOME and XDG_CONFIG_HOME pointed at home so
// the user's real configuration is never touched.
func newCmd(t *testing.T, home string, args ...string) *exec.Cmd {
	t.Helper()
	if testBinaryPath == "" {
		t.Fatalf("test binary not built")
	}
	cmd := exec.Command(testBinaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "XDG_CONFIG_HOME="+filepath.Join(home, ".config"))
	return cmd
}

func configDir(home string) string {
	return filepath.Join(home, ".config", "feh")
}

func writeKeys(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(configDir(home), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir(home), "keys"), []byte(content), 0o600))
}

func TestCLI_HelpOutput(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "root help",
			args:     []string{"--help"},
			contains: []string{"fehkeys", "compile", "lint", "show", "query", "doc", "--json", "--config"},
		},
		{
			name:     "compile help",
			args:     []string{"compile", "--help"},
			contains: []string{"--keys", "--output", "--sample-count", "--verbose"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := newCmd(t, t.TempDir(), tt.args...).CombinedOutput()
			require.NoError(t, err)
			for _, expected := range tt.contains {
				assert.Contains(t, string(output), expected)
			}
		})
	}
}

func TestCLI_CompileDefaults(t *testing.T) {
	home := t.TempDir()

	output, err := newCmd(t, home, "compile", "--json").Output()
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal(output, &report))
	assert.Equal(t, filepath.Join(configDir(home), "keys.bin"), report["artifact_path"])
	assert.InDelta(t, 10, report["sample_len"], 0)

	_, err = os.Stat(filepath.Join(configDir(home), "keys.bin"))
	require.NoError(t, err)
}

func TestCLI_CompileOverrideThenQuery(t *testing.T) {
	home := t.TempDir()
	writeKeys(t, home, "close : q\n")

	output, err := newCmd(t, home, "compile").CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "already bound to close")
	assert.Contains(t, string(output), "Artifact written and verified.")

	output, err = newCmd(t, home, "query", "q").Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "feh\tq\tclose")

	output, err = newCmd(t, home, "query", "C-F12").Output()
	require.NoError(t, err)
	assert.Contains(t, string(output), "C-F12 is not bound")
}

func TestCLI_CompileUnresolvedActionFails(t *testing.T) {
	home := t.TempDir()
	writeKeys(t, home, "bogus_action : b\n")

	output, err := newCmd(t, home, "compile").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "bogus_action")
	assert.Contains(t, string(output), "compile")

	_, statErr := os.Stat(filepath.Join(configDir(home), "keys.bin"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLI_CompileInvalidSampleCount(t *testing.T) {
	for _, n := range []string{"1", "65"} {
		t.Run(n, func(t *testing.T) {
			home := t.TempDir()
			output, err := newCmd(t, home, "compile", "--sample-count", n).CombinedOutput()
			require.Error(t, err)
			assert.Contains(t, string(output), "Invalid --sample-count "+n)

			_, statErr := os.Stat(filepath.Join(configDir(home), "keys.bin"))
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestCLI_ShowJSON(t *testing.T) {
	home := t.TempDir()
	_, err := newCmd(t, home, "compile").Output()
	require.NoError(t, err)

	output, err := newCmd(t, home, "show", "--json").Output()
	require.NoError(t, err)

	var shown struct {
		Header [4]uint64                   `json:"header"`
		Tables map[string][]map[string]any `json:"tables"`
		Sample []map[string]any            `json:"sample"`
	}
	require.NoError(t, json.Unmarshal(output, &shown))
	assert.Len(t, shown.Sample, 10)
	assert.Len(t, shown.Tables["feh"], int(shown.Header[2]))
	assert.Len(t, shown.Tables["menu"], int(shown.Header[0]))
}

func TestCLI_ShowMissingArtifact(t *testing.T) {
	output, err := newCmd(t, t.TempDir(), "show").CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "fehkeys compile")
}

func TestCLI_Lint(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.keys")
	bad := filepath.Join(dir, "bad.keys")
	require.NoError(t, os.WriteFile(good, []byte("quit : q\n"), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("quit : q\nclose : q\n"), 0o600))

	output, err := newCmd(t, t.TempDir(), "lint", good).CombinedOutput()
	require.NoError(t, err, string(output))

	output, err = newCmd(t, t.TempDir(), "lint", dir).CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(output), "already bound to quit")
	assert.Contains(t, string(output), "1 of 2 file(s) have problems")
}

func TestCLI_DocJSON(t *testing.T) {
	home := t.TempDir()
	writeKeys(t, home, "quit : C-q\n")

	output, err := newCmd(t, home, "doc", "--json").Output()
	require.NoError(t, err)

	var topics []struct {
		Action      string   `json:"action"`
		Keys        []string `json:"keys"`
		Description string   `json:"description"`
	}
	require.NoError(t, json.Unmarshal(output, &topics))
	require.NotEmpty(t, topics)
	for i := 1; i < len(topics); i++ {
		assert.Less(t, topics[i-1].Action, topics[i].Action)
	}
	for _, tp := range topics {
		if tp.Action == "quit" {
			assert.Equal(t, []string{"C-q", "Escape", "q"}, tp.Keys)
			assert.Equal(t, "Quit the viewer", tp.Description)
		}
	}
}
