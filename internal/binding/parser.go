package binding

import (
	"fmt"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/keysym"
)

// KeySpec is a parsed key chord.
type KeySpec struct {
	Code KeyCode
	// UnknownModifiers holds modifier letters that were skipped.
	UnknownModifiers []byte
}

// ParseKey parses a key chord such as "q", "C-Delete" or "A-S-Left".
// Each leading "<letter>-" prefix names a modifier: A (Alt), C (Control) or
// S (Shift). Other letters are recorded in UnknownModifiers and ignored.
func ParseKey(spec string) (KeySpec, error) {
	if spec == "" {
		return KeySpec{}, ErrEmptyKey
	}

	var (
		mods    Modifier
		unknown []byte
		s       = spec
	)
	for len(s) > 2 && s[1] == '-' && isLetter(s[0]) {
		switch s[0] {
		case 'A':
			mods |= Alt
		case 'C':
			mods |= Control
		case 'S':
			mods |= Shift
		default:
			unknown = append(unknown, s[0])
		}
		s = s[2:]
	}

	ks, ok := keysym.Lookup(s)
	if !ok {
		return KeySpec{UnknownModifiers: unknown}, fmt.Errorf("%w: %q", ErrUnknownKeysym, s)
	}
	return KeySpec{Code: NewKeyCode(ks, mods), UnknownModifiers: unknown}, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Parsed is a fully resolved binding together with the namespace it belongs to.
type Parsed struct {
	Namespace Namespace
	Binding   Binding
	// UnknownModifiers holds modifier letters that were skipped while parsing the key.
	UnknownModifiers []byte
}

// Parser resolves declarations against an action symbol table.
type Parser struct {
	symbols actions.Table
}

// NewParser returns a parser resolving action names against symbols.
func NewParser(symbols actions.Table) *Parser {
	return &Parser{symbols: symbols}
}

// Parse resolves action and parses keySpec.
//
// An unresolvable action yields an actions.UnresolvedError, which callers must
// treat as fatal. Key errors (ErrEmptyKey, ErrUnknownKeysym) only drop the binding.
func (p *Parser) Parse(action, keySpec string) (Parsed, error) {
	id, err := p.symbols.Resolve(action)
	if err != nil {
		return Parsed{}, err
	}
	ks, err := ParseKey(keySpec)
	if err != nil {
		return Parsed{UnknownModifiers: ks.UnknownModifiers}, err
	}
	return Parsed{
		Namespace:        NamespaceOf(action),
		Binding:          Binding{Key: ks.Code, Action: id},
		UnknownModifiers: ks.UnknownModifiers,
	}, nil
}

// ParseDeclaration parses d, binding its key to d.Target().
func (p *Parser) ParseDeclaration(d Declaration) (Parsed, error) {
	return p.Parse(d.Target(), d.Key)
}
