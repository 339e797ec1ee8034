// Package compiler merges binding sources into per-namespace tables, sorts them
// and builds the sample index the runtime uses to narrow its searches.
package compiler

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/binding"
)

// Source is an ordered list of declarations from one origin.
type Source struct {
	// Name identifies the source in diagnostics, typically a file path.
	Name         string
	Declarations []binding.Declaration
	// Warnings are problems found while reading the source, e.g. malformed lines.
	Warnings []Warning
}

// DefaultSource wraps the compiled-in binding table.
func DefaultSource() Source {
	return Source{Name: "defaults", Declarations: binding.Defaults}
}

// HelpEntry records an accepted binding for documentation.
type HelpEntry struct {
	Action string `json:"action"`
	Key    string `json:"key"`
}

// Result holds the merged namespace tables.
type Result struct {
	Tables   [binding.NamespaceCount][]binding.Binding
	Counts   [binding.NamespaceCount]int
	Help     []HelpEntry
	Warnings []Warning
}

// Table returns the table of namespace ns.
func (r *Result) Table(ns binding.Namespace) []binding.Binding {
	return r.Tables[ns]
}

// Compiler merges declarations into namespace tables. A Compiler is not safe for
// concurrent use; create one per run.
type Compiler struct {
	parser  *binding.Parser
	symbols actions.Table
	log     logrus.FieldLogger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger routes warnings to log instead of the standard logrus logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Compiler) { c.log = log }
}

// New returns a compiler resolving actions against symbols.
func New(symbols actions.Table, opts ...Option) *Compiler {
	c := &Compiler{
		parser:  binding.NewParser(symbols),
		symbols: symbols,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile merges sources in order: every declaration of a source is processed
// before the next source, and within a source in listed order. The first binding
// to claim a key code in a namespace keeps it; later ones are dropped with a
// DuplicateKey warning. Pass the override source before the defaults.
//
// An unresolved action name aborts compilation with an actions.UnresolvedError.
func (c *Compiler) Compile(sources ...Source) (*Result, error) {
	res := &Result{}
	c.allocate(res, sources)

	for _, src := range sources {
		for _, w := range src.Warnings {
			res.warn(c.log, w)
		}
		for _, d := range src.Declarations {
			if err := c.add(res, src.Name, d); err != nil {
				return nil, err
			}
		}
	}

	for _, ns := range binding.Namespaces {
		res.Counts[ns] = len(res.Tables[ns])
	}
	c.log.WithFields(logrus.Fields{
		"menu":     res.Counts[binding.Menu],
		"move":     res.Counts[binding.Move],
		"feh":      res.Counts[binding.Feh],
		"warnings": len(res.Warnings),
	}).Debug("merged binding sources")
	return res, nil
}

// allocate sizes each table for the worst case: every declaration targeting the
// namespace, doubled when more than one source is merged.
func (c *Compiler) allocate(res *Result, sources []Source) {
	var counts [binding.NamespaceCount]int
	for _, src := range sources {
		for _, d := range src.Declarations {
			counts[binding.NamespaceOf(d.Target())]++
		}
	}
	factor := 1
	if len(sources) > 1 {
		factor = 2
	}
	for _, ns := range binding.Namespaces {
		res.Tables[ns] = make([]binding.Binding, 0, counts[ns]*factor)
	}
}

func (c *Compiler) add(res *Result, source string, d binding.Declaration) error {
	target := d.Target()
	p, err := c.parser.ParseDeclaration(d)

	var ue actions.UnresolvedError
	if errors.As(err, &ue) {
		if d.Line > 0 {
			return fmt.Errorf("%s:%d: %w", source, d.Line, err)
		}
		return fmt.Errorf("%s: %w", source, err)
	}

	for _, m := range p.UnknownModifiers {
		res.warn(c.log, Warning{
			Kind: UnknownModifier, Source: source, Line: d.Line,
			Action: target, Key: d.Key, Detail: string(m),
		})
	}

	if err != nil {
		kind := UnknownKeysym
		if errors.Is(err, binding.ErrEmptyKey) {
			kind = EmptyKey
		}
		res.warn(c.log, Warning{
			Kind: kind, Source: source, Line: d.Line,
			Action: target, Key: d.Key, Detail: err.Error(),
		})
		return nil
	}

	table := res.Tables[p.Namespace]
	for _, b := range table {
		if b.Key == p.Binding.Key {
			res.warn(c.log, Warning{
				Kind: DuplicateKey, Source: source, Line: d.Line,
				Action: target, Key: d.Key, Owner: c.symbols.Name(b.Action),
			})
			return nil
		}
	}

	res.Tables[p.Namespace] = append(table, p.Binding)
	res.Help = append(res.Help, HelpEntry{Action: target, Key: d.Key})
	return nil
}

func (r *Result) warn(log logrus.FieldLogger, w Warning) {
	r.Warnings = append(r.Warnings, w)
	log.WithFields(logrus.Fields{
		"kind":   w.Kind.String(),
		"source": w.Source,
		"line":   w.Line,
	}).Warn(w.String())
}
