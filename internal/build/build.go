// Package build drives one compilation run: read the override file, merge it with
// the defaults, sort and sample the tables, write the artifact and read it back.
package build

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/artifact"
	"github.com/fehkeys/fehkeys/internal/binding"
	"github.com/fehkeys/fehkeys/internal/compiler"
	"github.com/fehkeys/fehkeys/internal/config"
	"github.com/fehkeys/fehkeys/internal/storage"
)

// Stage names a step of the pipeline in fatal errors.
type Stage string

const (
	StageLocate   Stage = "locate"
	StageOverride Stage = "read override"
	StageCompile  Stage = "compile"
	StageOpen     Stage = "open artifact"
	StageWrite    Stage = "write artifact"
	StageVerify   Stage = "verify artifact"
)

// StageError is a fatal pipeline failure.
type StageError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s): %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Options configure a run.
type Options struct {
	Config config.Config
	// OverridePath is an explicit override file; it must exist. When empty the
	// configured directories are searched.
	OverridePath string
	// OutputPath is an explicit artifact path; when empty it is derived from the
	// override location, a previous artifact, or the default directory.
	OutputPath string
	Symbols    actions.Table
	Defaults   []binding.Declaration
}

// DefaultOptions returns options using the shipped symbol table and defaults.
func DefaultOptions() Options {
	return Options{
		Config:   config.Default(),
		Symbols:  actions.Default,
		Defaults: binding.Defaults,
	}
}

// Compilation is the in-memory outcome of merging, sorting and sampling.
type Compilation struct {
	RunID        string
	OverridePath string
	Result       *compiler.Result
	Sample       compiler.SampleIndex
	locator      *storage.Locator
	log          logrus.FieldLogger
}

// Help returns the accepted bindings in acceptance order.
func (c *Compilation) Help() []compiler.HelpEntry { return c.Result.Help }

// Report summarizes a successful run.
type Report struct {
	RunID        string                      `json:"run_id"`
	OverridePath string                      `json:"override_path,omitempty"`
	ArtifactPath string                      `json:"artifact_path"`
	Counts       [binding.NamespaceCount]int `json:"counts"`
	SampleLen    int                         `json:"sample_len"`
	Warnings     []string                    `json:"warnings,omitempty"`
	Help         []compiler.HelpEntry        `json:"-"`
	Artifact     *artifact.Artifact          `json:"-"`
}

// Compile runs every in-memory stage and returns the sorted tables.
func Compile(opts Options) (*Compilation, error) {
	runID := uuid.NewString()
	log := logrus.WithField("run_id", runID)

	loc, err := opts.Config.Locator()
	if err != nil {
		return nil, &StageError{Stage: StageLocate, Err: err}
	}

	overridePath := opts.OverridePath
	if overridePath == "" {
		if p, ok := loc.FindOverride(); ok {
			overridePath = p
		}
	}

	var sources []compiler.Source
	if overridePath != "" {
		log.Debug("Reading override bindings from: ", overridePath)
		decls, warns, err := binding.ReadFile(overridePath)
		if err != nil {
			return nil, &StageError{Stage: StageOverride, Path: overridePath, Err: err}
		}
		sources = append(sources, compiler.Source{
			Name:         overridePath,
			Declarations: decls,
			Warnings:     compiler.MalformedLineWarnings(overridePath, warns),
		})
	}
	sources = append(sources, compiler.Source{Name: "defaults", Declarations: opts.Defaults})

	res, err := compiler.New(opts.Symbols, compiler.WithLogger(log)).Compile(sources...)
	if err != nil {
		return nil, &StageError{Stage: StageCompile, Err: err}
	}
	sample := compiler.SortAndSample(res, opts.Config.SampleCount)

	return &Compilation{
		RunID:        runID,
		OverridePath: overridePath,
		Result:       res,
		Sample:       sample,
		locator:      loc,
		log:          log,
	}, nil
}

// Run compiles, writes the artifact and verifies it by reading it back. Any
// returned error is fatal; an artifact left behind by a failed write or
// verification must not be used.
func Run(opts Options) (*Report, error) {
	c, err := Compile(opts)
	if err != nil {
		return nil, err
	}

	path := opts.OutputPath
	if path == "" {
		path = c.locator.ArtifactPath(c.OverridePath)
	}
	a := artifact.FromResult(c.Result, c.Sample)
	if err := c.write(path, a); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:        c.RunID,
		OverridePath: c.OverridePath,
		ArtifactPath: path,
		Counts:       c.Result.Counts,
		SampleLen:    len(c.Sample),
		Help:         c.Result.Help,
		Artifact:     a,
	}
	for _, w := range c.Result.Warnings {
		report.Warnings = append(report.Warnings, w.String())
	}
	c.log.WithField("path", path).Info("binding artifact written and verified")
	return report, nil
}

func (c *Compilation) write(path string, a *artifact.Artifact) error {
	f, err := storage.Create(path)
	if err != nil {
		return &StageError{Stage: StageOpen, Path: path, Err: err}
	}

	if err := artifact.Encode(f, a); err != nil {
		_ = f.Close()
		c.untrusted(path)
		return &StageError{Stage: StageWrite, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		c.untrusted(path)
		return &StageError{Stage: StageWrite, Path: path, Err: err}
	}

	got, err := artifact.ReadFile(path)
	if err == nil {
		err = artifact.Verify(a, got)
	}
	if err != nil {
		c.untrusted(path)
		if !errors.Is(err, artifact.ErrMismatch) {
			err = fmt.Errorf("%w: %w", artifact.ErrMismatch, err)
		}
		return &StageError{Stage: StageVerify, Path: path, Err: err}
	}
	return nil
}

func (c *Compilation) untrusted(path string) {
	if _, err := os.Stat(path); err == nil {
		c.log.Warnf("artifact %s may be partially written and must not be used", path)
	}
}
