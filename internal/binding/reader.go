package binding

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	maxBindingFileSize = 1 << 20 // 1MiB, far beyond any hand-written keys file
	separator          = ":"
)

// LineError reports a malformed line. It wraps ErrMalformedLine.
type LineError struct {
	Line int
	Text string
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, ErrMalformedLine, e.Text)
}

func (e LineError) Unwrap() error { return ErrMalformedLine }

// ParseLine parses one `action : key [: remap]` line. Blank lines and lines
// starting with '#' yield ok == false and a nil error.
func ParseLine(text string, line int) (d Declaration, ok bool, err error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Declaration{}, false, nil
	}

	fields := strings.Fields(trimmed)
	switch {
	case len(fields) == 3 && fields[1] == separator:
		d = Declaration{Action: fields[0], Key: fields[2], Line: line}
	case len(fields) == 5 && fields[1] == separator && fields[3] == separator:
		d = Declaration{Action: fields[0], Key: fields[2], Remap: fields[4], Line: line}
	default:
		return Declaration{}, false, LineError{Line: line, Text: trimmed}
	}
	return d, true, nil
}

// ReadDeclarations reads every well-formed declaration from r in order.
// Malformed lines are returned as warnings and skipped.
func ReadDeclarations(r io.Reader) (decls []Declaration, warnings []error, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		d, ok, lerr := ParseLine(sc.Text(), line)
		if lerr != nil {
			warnings = append(warnings, lerr)
			continue
		}
		if ok {
			decls = append(decls, d)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading bindings: %w", err)
	}
	return decls, warnings, nil
}

// ReadFile reads declarations from the override file at path.
func ReadFile(path string) ([]Declaration, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if info.Size() > maxBindingFileSize {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFileTooLarge, path, info.Size(), maxBindingFileSize)
	}

	return ReadDeclarations(io.LimitReader(f, maxBindingFileSize))
}
