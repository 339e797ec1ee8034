package compiler

import (
	"errors"
	"fmt"

	"github.com/fehkeys/fehkeys/internal/binding"
)

// WarningKind classifies a non-fatal compilation problem.
type WarningKind int

const (
	MalformedLine WarningKind = iota
	UnknownModifier
	EmptyKey
	UnknownKeysym
	DuplicateKey
)

func (k WarningKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed-line"
	case UnknownModifier:
		return "unknown-modifier"
	case EmptyKey:
		return "empty-key"
	case UnknownKeysym:
		return "unknown-keysym"
	case DuplicateKey:
		return "duplicate-key"
	default:
		return fmt.Sprintf("warning(%d)", int(k))
	}
}

// Warning describes a binding that was dropped or partially ignored.
type Warning struct {
	Kind   WarningKind
	Source string
	Line   int
	Action string
	Key    string
	// Owner is the action already holding the key, for DuplicateKey.
	Owner string
	// Detail carries the underlying error text.
	Detail string
}

func (w Warning) String() string {
	loc := w.Source
	if w.Line > 0 {
		loc = fmt.Sprintf("%s:%d", w.Source, w.Line)
	}
	switch w.Kind {
	case DuplicateKey:
		return fmt.Sprintf("%s: key %q for %s is already bound to %s", loc, w.Key, w.Action, w.Owner)
	case UnknownModifier:
		return fmt.Sprintf("%s: ignoring unknown modifier %s in key %q for %s", loc, w.Detail, w.Key, w.Action)
	case MalformedLine:
		return fmt.Sprintf("%s: %s", loc, w.Detail)
	default:
		return fmt.Sprintf("%s: dropping %s : %q: %s", loc, w.Action, w.Key, w.Detail)
	}
}

// MalformedLineWarnings converts reader warnings for source into compiler warnings.
func MalformedLineWarnings(source string, errs []error) []Warning {
	out := make([]Warning, 0, len(errs))
	for _, err := range errs {
		w := Warning{Kind: MalformedLine, Source: source, Detail: err.Error()}
		var le binding.LineError
		if errors.As(err, &le) {
			w.Line = le.Line
			w.Detail = fmt.Sprintf("skipping malformed line %q", le.Text)
		}
		out = append(out, w)
	}
	return out
}
