// Package actions resolves action names to the integer identities stored in a
// compiled binding artifact. The identity is an index into a symbol table that is
// generated alongside the runtime's function-pointer table; the runtime owns the
// mapping from identity to callable.
package actions

import (
	"fmt"
)

// ID is the opaque identity of a bindable action.
type ID uint32

// Symbol is one entry of the generated symbol table.
type Symbol struct {
	Name string
	Len  int
}

// Table is an ordered, read-only sequence of symbols. The position of a symbol is
// its ID.
type Table []Symbol

// UnresolvedError reports an action name with no entry in the symbol table. It
// indicates a mismatch between the binding sources and the generated table.
type UnresolvedError struct {
	Name string
}

func (e UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved action %q: not present in the action symbol table", e.Name)
}

// NewTable builds a table from names, recording each name's length.
func NewTable(names ...string) Table {
	t := make(Table, 0, len(names))
	for _, n := range names {
		t = append(t, Symbol{Name: n, Len: len(n)})
	}
	return t
}

// Resolve returns the identity of name. Lengths are compared before bytes so most
// candidates are rejected without touching the string data.
func (t Table) Resolve(name string) (ID, error) {
	n := len(name)
	for i, sym := range t {
		if sym.Len != n {
			continue
		}
		if sym.Name == name {
			return ID(i), nil
		}
	}
	return 0, UnresolvedError{Name: name}
}

// Name returns the action name for id, or "" when id is out of range.
func (t Table) Name(id ID) string {
	if int(id) >= len(t) {
		return ""
	}
	return t[id].Name
}

// Len returns the number of symbols in the table.
func (t Table) Len() int { return len(t) }
