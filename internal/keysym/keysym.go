// Package keysym maps X11 key symbol names to their numeric values.
//
// Only the subset of the X11 keysym space a keyboard-driven image viewer binds is
// listed by name. Any printable ASCII character, Unicode keysyms written as
// U+XXXX or UXXXX, and raw hexadecimal values (0x...) are also accepted, mirroring
// what XStringToKeysym accepts.
package keysym

import (
	"strconv"
	"strings"
)

// Keysym is an X11 key symbol value.
type Keysym uint32

// NoSymbol is the zero keysym, never a valid binding target.
const NoSymbol Keysym = 0

const unicodeOffset = 0x01000000

// Lookup returns the keysym named by name.
func Lookup(name string) (Keysym, bool) {
	if name == "" {
		return NoSymbol, false
	}
	if ks, ok := byName[name]; ok {
		return ks, true
	}
	if len(name) == 1 && name[0] >= 0x20 && name[0] < 0x7f {
		// Latin-1 keysyms equal their code points.
		return Keysym(name[0]), true
	}
	if ks, ok := parseUnicode(name); ok {
		return ks, true
	}
	if strings.HasPrefix(name, "0x") || strings.HasPrefix(name, "0X") {
		v, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil || v == 0 {
			return NoSymbol, false
		}
		return Keysym(v), true
	}
	return NoSymbol, false
}

// Name returns the canonical name of ks, or a hexadecimal rendering when ks has no
// listed name.
func Name(ks Keysym) string {
	if n, ok := byValue[ks]; ok {
		return n
	}
	if ks >= unicodeOffset && ks <= unicodeOffset+0x10ffff {
		return "U+" + strings.ToUpper(strconv.FormatUint(uint64(ks-unicodeOffset), 16))
	}
	return "0x" + strconv.FormatUint(uint64(ks), 16)
}

func parseUnicode(name string) (Keysym, bool) {
	var hex string
	switch {
	case strings.HasPrefix(name, "U+"):
		hex = name[2:]
	case len(name) > 1 && name[0] == 'U':
		hex = name[1:]
	default:
		return NoSymbol, false
	}
	if hex == "" || len(hex) > 6 {
		return NoSymbol, false
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || cp > 0x10ffff {
		return NoSymbol, false
	}
	// Latin-1 code points keep their legacy keysym values.
	if (cp >= 0x20 && cp <= 0x7e) || (cp >= 0xa0 && cp <= 0xff) {
		return Keysym(cp), true
	}
	return Keysym(cp + unicodeOffset), true
}
