// Package binding parses textual key-binding declarations into the
// (namespace, key code, action) triples the compiler tables are built from.
package binding

import (
	"fmt"
	"strings"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/keysym"
)

// Namespace is one of the three disjoint binding groups.
type Namespace int

const (
	Menu Namespace = iota
	Move
	Feh
)

// NamespaceCount is the number of namespaces, in artifact order.
const NamespaceCount = 3

// Namespaces lists every namespace in artifact order.
//
//nolint:gochecknoglobals // immutable lookup table.
var Namespaces = [NamespaceCount]Namespace{Menu, Move, Feh}

const (
	menuPrefix = "menu_"
	movePrefix = "move_"
)

// NamespaceOf selects the namespace from the action name's prefix.
func NamespaceOf(action string) Namespace {
	switch {
	case strings.HasPrefix(action, menuPrefix):
		return Menu
	case strings.HasPrefix(action, movePrefix):
		return Move
	default:
		return Feh
	}
}

func (n Namespace) String() string {
	switch n {
	case Menu:
		return "menu"
	case Move:
		return "move"
	case Feh:
		return "feh"
	default:
		return fmt.Sprintf("namespace(%d)", int(n))
	}
}

// Modifier is a bitmask of modifier keys, using the X11 mask values.
type Modifier uint8

const (
	Shift   Modifier = 1 << 0
	Control Modifier = 1 << 2
	Alt     Modifier = 1 << 3
)

// KeyCode combines a keysym and a modifier mask: keysym<<8 | mask.
type KeyCode uint64

const modifierBits = 8

// NewKeyCode builds the key code for ks pressed with mods.
func NewKeyCode(ks keysym.Keysym, mods Modifier) KeyCode {
	return KeyCode(uint64(ks)<<modifierBits) + KeyCode(mods)
}

// Keysym returns the key symbol part of the code.
func (k KeyCode) Keysym() keysym.Keysym { return keysym.Keysym(k >> modifierBits) }

// Modifiers returns the modifier mask part of the code.
func (k KeyCode) Modifiers() Modifier { return Modifier(k & (1<<modifierBits - 1)) }

// String renders the code in the same notation the parser accepts.
func (k KeyCode) String() string {
	var b strings.Builder
	mods := k.Modifiers()
	if mods&Alt != 0 {
		b.WriteString("A-")
	}
	if mods&Control != 0 {
		b.WriteString("C-")
	}
	if mods&Shift != 0 {
		b.WriteString("S-")
	}
	b.WriteString(keysym.Name(k.Keysym()))
	return b.String()
}

// Binding maps a key code to an action within one namespace table.
type Binding struct {
	Key    KeyCode
	Action actions.ID
}

// Declaration is one human-authored `action : key [: remap]` entry.
type Declaration struct {
	Action string
	Key    string
	// Remap, when set, names the action the key is bound to instead of Action.
	Remap string
	// Line is the 1-based source line, or 0 for compiled-in declarations.
	Line int
}

// Target returns the action name the declaration binds its key to.
func (d Declaration) Target() string {
	if d.Remap != "" {
		return d.Remap
	}
	return d.Action
}
