// Package config loads the optional fehkeys.yaml tool configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/fehkeys/fehkeys/internal/compiler"
	"github.com/fehkeys/fehkeys/internal/storage"
	"github.com/fehkeys/fehkeys/internal/validate"
)

const maxConfigSize = 64 * 1024

// Config controls where bindings are read from and how the artifact is built.
type Config struct {
	// ConfigDir is the default directory; empty means storage.DefaultConfigDir.
	ConfigDir string `yaml:"config_dir"`
	// SearchDirs are consulted after ConfigDir for override files and prior artifacts.
	SearchDirs   []string `yaml:"search_dirs" validate:"dive,required"`
	OverrideName string   `yaml:"override_name" validate:"required,basename"`
	ArtifactName string   `yaml:"artifact_name" validate:"required,basename"`
	SampleCount  int      `yaml:"sample_count" validate:"min=2,max=64"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OverrideName: storage.DefaultOverrideName,
		ArtifactName: storage.DefaultArtifactName,
		SampleCount:  compiler.DefaultSampleCount,
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	logrus.Debug("Loading configuration from: ", path)
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxConfigSize+1))
	if err != nil {
		return Config{}, err
	}
	if len(data) > maxConfigSize {
		return Config{}, fmt.Errorf("config file too large: max %d bytes", maxConfigSize)
	}
	return Parse(data)
}

// Parse decodes YAML configuration over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Locator builds the storage locator described by the configuration.
func (c Config) Locator() (*storage.Locator, error) {
	primary := c.ConfigDir
	if primary == "" {
		d, err := storage.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		primary = d
	}
	l, err := storage.NewLocator(append([]string{primary}, c.SearchDirs...)...)
	if err != nil {
		return nil, err
	}
	l.OverrideName = c.OverrideName
	l.ArtifactName = c.ArtifactName
	if err := validate.Struct(l); err != nil {
		return nil, fmt.Errorf("invalid locator: %w", err)
	}
	return l, nil
}
