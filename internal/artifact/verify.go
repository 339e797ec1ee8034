package artifact

import (
	"fmt"

	"github.com/fehkeys/fehkeys/internal/binding"
)

// Verify reports whether got holds exactly the counts and records of want.
// The returned error wraps ErrMismatch and names the first differing segment.
func Verify(want, got *Artifact) error {
	wh, gh := want.Header(), got.Header()
	if wh != gh {
		return fmt.Errorf("%w: header counts %v, read back %v", ErrMismatch, wh, gh)
	}
	for _, ns := range binding.Namespaces {
		w, g := want.Tables[ns], got.Tables[ns]
		for i := range w {
			if w[i] != g[i] {
				return fmt.Errorf("%w: %s record %d is %+v, read back %+v", ErrMismatch, tableSegments[ns], i, w[i], g[i])
			}
		}
	}
	for i := range want.Sample {
		if want.Sample[i] != got.Sample[i] {
			return fmt.Errorf("%w: %s entry %d is %+v, read back %+v", ErrMismatch, SegmentSample, i, want.Sample[i], got.Sample[i])
		}
	}
	return nil
}
