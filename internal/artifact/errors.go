package artifact

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated    = errors.New("artifact truncated")
	ErrTrailingData = errors.New("unexpected data after sample index")
	ErrCorrupt      = errors.New("artifact corrupt")
	ErrMismatch     = errors.New("artifact read-back mismatch")
)

// SegmentError reports a failure reading or writing one segment of the file.
type SegmentError struct {
	Op      string
	Segment Segment
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }
