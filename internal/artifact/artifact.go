// Package artifact reads and writes the binary binding table consumed by the
// viewer at startup.
//
// The layout is fixed and unversioned, all integers little-endian uint64:
//
//	header   menu count, move count, feh count, sample count
//	menu     count x {key, action}
//	move     count x {key, action}
//	feh      count x {key, action}
//	sample   count x {key, action, position}
package artifact

import (
	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/binding"
	"github.com/fehkeys/fehkeys/internal/compiler"
)

// Artifact is the serializable snapshot of a compilation run.
type Artifact struct {
	Tables [binding.NamespaceCount][]binding.Binding
	Sample compiler.SampleIndex
}

// FromResult builds an artifact from a sorted compilation result and its index.
func FromResult(res *compiler.Result, sample compiler.SampleIndex) *Artifact {
	return &Artifact{Tables: res.Tables, Sample: sample}
}

// Header returns the four segment counts in file order.
func (a *Artifact) Header() Header {
	return Header{
		uint64(len(a.Tables[binding.Menu])),
		uint64(len(a.Tables[binding.Move])),
		uint64(len(a.Tables[binding.Feh])),
		uint64(len(a.Sample)),
	}
}

// Header holds the record counts of the menu, move, feh and sample segments.
type Header [4]uint64

// Segment identifies one part of the file.
type Segment int

const (
	SegmentHeader Segment = iota
	SegmentMenu
	SegmentMove
	SegmentFeh
	SegmentSample
)

func (s Segment) String() string {
	switch s {
	case SegmentHeader:
		return "header"
	case SegmentMenu:
		return "menu table"
	case SegmentMove:
		return "move table"
	case SegmentFeh:
		return "feh table"
	case SegmentSample:
		return "sample index"
	default:
		return "unknown segment"
	}
}

// tableSegments maps namespaces to their segment, in file order.
//
//nolint:gochecknoglobals // immutable lookup table.
var tableSegments = [binding.NamespaceCount]Segment{
	binding.Menu: SegmentMenu,
	binding.Move: SegmentMove,
	binding.Feh:  SegmentFeh,
}

type bindingRecord struct {
	Key    uint64
	Action uint64
}

type sampleRecord struct {
	Key      uint64
	Action   uint64
	Position uint64
}

func toBindingRecords(t []binding.Binding) []bindingRecord {
	out := make([]bindingRecord, len(t))
	for i, b := range t {
		out[i] = bindingRecord{Key: uint64(b.Key), Action: uint64(b.Action)}
	}
	return out
}

func fromBindingRecords(recs []bindingRecord) []binding.Binding {
	out := make([]binding.Binding, len(recs))
	for i, r := range recs {
		out[i] = binding.Binding{Key: binding.KeyCode(r.Key), Action: actions.ID(r.Action)}
	}
	return out
}

func toSampleRecords(idx compiler.SampleIndex) []sampleRecord {
	out := make([]sampleRecord, len(idx))
	for i, s := range idx {
		out[i] = sampleRecord{Key: uint64(s.Key), Action: uint64(s.Action), Position: uint64(s.Position)}
	}
	return out
}

func fromSampleRecords(recs []sampleRecord) compiler.SampleIndex {
	out := make(compiler.SampleIndex, len(recs))
	for i, r := range recs {
		out[i] = compiler.Sample{
			Key:      binding.KeyCode(r.Key),
			Action:   actions.ID(r.Action),
			Position: int(r.Position),
		}
	}
	return out
}
