package binding

import "errors"

// Sentinel parse errors. All of them drop the offending binding without aborting
// the compilation.
var (
	ErrEmptyKey      = errors.New("empty key specification")
	ErrUnknownKeysym = errors.New("unknown key symbol")
	ErrMalformedLine = errors.New("malformed binding line")
	ErrFileTooLarge  = errors.New("binding file too large")
)
