// Package storage locates the override file and decides where the binding
// artifact is written, creating the configuration directory on demand.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

const (
	DefaultOverrideName = "keys"
	DefaultArtifactName = "keys.bin"
	appDirName          = "feh"
)

// ErrNoConfigDir is returned when no configuration directory can be determined.
var ErrNoConfigDir = errors.New("cannot determine configuration directory")

// Locator finds binding files in an ordered list of configuration directories.
// The first directory is the default, used when nothing exists yet.
type Locator struct {
	Dirs         []string `validate:"required,min=1,dive,required"`
	OverrideName string   `validate:"required,basename"`
	ArtifactName string   `validate:"required,basename"`
}

// NewLocator returns a locator over dirs, with tilde and environment variables
// expanded. An empty dirs uses DefaultConfigDir.
func NewLocator(dirs ...string) (*Locator, error) {
	if len(dirs) == 0 {
		d, err := DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		dirs = []string{d}
	}

	expanded := make([]string, 0, len(dirs))
	for _, d := range dirs {
		e, err := ExpandPath(d)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, e)
	}
	return &Locator{
		Dirs:         expanded,
		OverrideName: DefaultOverrideName,
		ArtifactName: DefaultArtifactName,
	}, nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/feh, falling back to ~/.config/feh.
func DefaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", fmt.Errorf("%w: %v", ErrNoConfigDir, err)
	}
	return filepath.Join(home, ".config", appDirName), nil
}

// FindOverride returns the first existing override file in the search dirs.
func (l *Locator) FindOverride() (string, bool) {
	return l.find(l.OverrideName)
}

// FindArtifact returns the first existing artifact in the search dirs.
func (l *Locator) FindArtifact() (string, bool) {
	return l.find(l.ArtifactName)
}

func (l *Locator) find(name string) (string, bool) {
	for _, dir := range l.Dirs {
		p := filepath.Join(dir, name)
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// ArtifactPath picks the output path: next to overridePath when one is in use,
// otherwise where a previous artifact already lives, otherwise the default
// directory.
func (l *Locator) ArtifactPath(overridePath string) string {
	if overridePath != "" {
		return filepath.Join(filepath.Dir(overridePath), l.ArtifactName)
	}
	if p, ok := l.FindArtifact(); ok {
		return p
	}
	return filepath.Join(l.Dirs[0], l.ArtifactName)
}

// Create opens path for writing, truncating any previous content. When the
// parent directory is missing it is created and the open is retried once.
func Create(path string) (*os.File, error) {
	f, err := openForWrite(path)
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	dir := filepath.Dir(path)
	logrus.Debug("Creating configuration directory: ", dir)
	if mkErr := os.MkdirAll(dir, 0o700); mkErr != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, mkErr)
	}
	return openForWrite(path)
}

func openForWrite(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
}

// ExpandPath expands a leading tilde and environment variables, then cleans the
// result.
func ExpandPath(path string) (string, error) {
	var err error
	if runtime.GOOS != "windows" {
		path, err = expandTilde(path)
		if err != nil {
			return "", err
		}
	}
	path = os.ExpandEnv(path)
	return filepath.Clean(path), nil
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
