package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Config struct {
//       SampleCount  int    `yaml:"sample_count" validate:"min=2,max=64"`
//       ArtifactName string `yaml:"artifact_name" validate:"required,basename"`
//   }
//
// Besides the built-in tags, "basename" accepts a bare file name with no path separators.

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		_ = validatorInst.RegisterValidation("basename", isBasename)
	})
	return validatorInst
}

func isBasename(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true // emptiness is the job of "required"
	}
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
