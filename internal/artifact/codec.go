package artifact

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/fehkeys/fehkeys/internal/binding"
)

// maxRecords bounds every segment count read from disk so a corrupt header
// cannot trigger a huge allocation.
const maxRecords = 1 << 20

//nolint:gochecknoglobals // byte order of the file format.
var order = binary.LittleEndian

// Encode writes a to w. A failure is returned as a *SegmentError naming the
// segment that could not be written.
func Encode(w io.Writer, a *Artifact) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, order, a.Header()); err != nil {
		return &SegmentError{Op: "write", Segment: SegmentHeader, Err: err}
	}
	// Flush per segment so a short write is attributed to the right one.
	if err := bw.Flush(); err != nil {
		return &SegmentError{Op: "write", Segment: SegmentHeader, Err: err}
	}
	for _, ns := range binding.Namespaces {
		seg := tableSegments[ns]
		if err := binary.Write(bw, order, toBindingRecords(a.Tables[ns])); err != nil {
			return &SegmentError{Op: "write", Segment: seg, Err: err}
		}
		if err := bw.Flush(); err != nil {
			return &SegmentError{Op: "write", Segment: seg, Err: err}
		}
	}
	if err := binary.Write(bw, order, toSampleRecords(a.Sample)); err != nil {
		return &SegmentError{Op: "write", Segment: SegmentSample, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &SegmentError{Op: "write", Segment: SegmentSample, Err: err}
	}
	return nil
}

// Decode reads an artifact from r. The whole stream must be consumed exactly.
func Decode(r io.Reader) (*Artifact, error) {
	br := bufio.NewReader(r)

	var h Header
	if err := binary.Read(br, order, &h); err != nil {
		return nil, &SegmentError{Op: "read", Segment: SegmentHeader, Err: readErr(err)}
	}
	for i, n := range h {
		if n > maxRecords {
			return nil, &SegmentError{
				Op: "read", Segment: SegmentHeader,
				Err: fmt.Errorf("%w: %s count %d exceeds %d", ErrCorrupt, Segment(i+1), n, maxRecords),
			}
		}
	}

	a := &Artifact{}
	for i, ns := range binding.Namespaces {
		recs := make([]bindingRecord, h[i])
		if err := binary.Read(br, order, recs); err != nil {
			return nil, &SegmentError{Op: "read", Segment: tableSegments[ns], Err: readErr(err)}
		}
		a.Tables[ns] = fromBindingRecords(recs)
	}

	recs := make([]sampleRecord, h[3])
	if err := binary.Read(br, order, recs); err != nil {
		return nil, &SegmentError{Op: "read", Segment: SegmentSample, Err: readErr(err)}
	}
	if err := checkSample(recs, a.Tables[binding.Feh]); err != nil {
		return nil, &SegmentError{Op: "read", Segment: SegmentSample, Err: err}
	}
	a.Sample = fromSampleRecords(recs)

	if _, err := br.ReadByte(); err == nil {
		return nil, &SegmentError{Op: "read", Segment: SegmentSample, Err: ErrTrailingData}
	} else if !errors.Is(err, io.EOF) {
		return nil, &SegmentError{Op: "read", Segment: SegmentSample, Err: err}
	}
	return a, nil
}

// checkSample rejects sample records that do not point, in non-decreasing
// order, at the row of feh they copy.
func checkSample(recs []sampleRecord, feh []binding.Binding) error {
	var prev uint64
	for i, r := range recs {
		if r.Position >= uint64(len(feh)) {
			return fmt.Errorf("%w: sample %d position %d outside %d rows", ErrCorrupt, i, r.Position, len(feh))
		}
		if r.Position < prev {
			return fmt.Errorf("%w: sample %d position %d before %d", ErrCorrupt, i, r.Position, prev)
		}
		row := feh[r.Position]
		if uint64(row.Key) != r.Key || uint64(row.Action) != r.Action {
			return fmt.Errorf("%w: sample %d does not match row %d", ErrCorrupt, i, r.Position)
		}
		prev = r.Position
	}
	return nil
}

func readErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	return err
}

// ReadFile decodes the artifact stored at path.
func ReadFile(path string) (*Artifact, error) {
	logrus.Debug("Reading binding artifact from: ", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}
