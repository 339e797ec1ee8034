package compiler

import (
	"cmp"
	"slices"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/binding"
)

// DefaultSampleCount is the number of entries in a sample index.
const DefaultSampleCount = 10

// Sample is one sample index entry: a copy of the binding at Position in the
// sorted Feh table.
type Sample struct {
	Key      binding.KeyCode
	Action   actions.ID
	Position int
}

// SampleIndex is a sparse index over the sorted Feh table. It is stale once the
// table changes.
type SampleIndex []Sample

// SortAndSample sorts every table of res by key code and returns an n-entry
// sample index over the Feh table.
//
// Entries are taken every count/(n-1)+1 positions starting at 0, stopping at n-1
// entries or the end of the table; remaining intermediate entries repeat the last
// element, and entry n-1 always references the last element. An empty Feh table
// yields an empty index.
func SortAndSample(res *Result, n int) SampleIndex {
	for _, ns := range binding.Namespaces {
		SortTable(res.Tables[ns])
	}
	return BuildSample(res.Tables[binding.Feh], n)
}

// SortTable sorts t in place by ascending key code.
func SortTable(t []binding.Binding) {
	slices.SortFunc(t, func(a, b binding.Binding) int {
		return cmp.Compare(a.Key, b.Key)
	})
}

// BuildSample builds an n-entry sample index over the sorted table t.
func BuildSample(t []binding.Binding, n int) SampleIndex {
	count := len(t)
	if count == 0 || n < 2 {
		return SampleIndex{}
	}

	stride := count/(n-1) + 1
	idx := make(SampleIndex, n)
	pos := 0
	for i := 0; i < n-1; i++ {
		idx[i] = sampleAt(t, min(pos, count-1))
		pos += stride
	}
	idx[n-1] = sampleAt(t, count-1)
	return idx
}

func sampleAt(t []binding.Binding, pos int) Sample {
	return Sample{Key: t[pos].Key, Action: t[pos].Action, Position: pos}
}

// Lookup finds the action bound to code in the sorted table t. When sample is
// non-empty it is probed first to narrow the binary search to one stride of t.
func Lookup(t []binding.Binding, sample SampleIndex, code binding.KeyCode) (actions.ID, bool) {
	lo, hi := 0, len(t)
	if len(sample) > 0 {
		i, found := slices.BinarySearchFunc(sample, code, func(s Sample, k binding.KeyCode) int {
			return cmp.Compare(s.Key, k)
		})
		if found {
			return sample[i].Action, true
		}
		if i == len(sample) {
			return 0, false
		}
		if i > 0 {
			lo = sample[i-1].Position + 1
		}
		hi = sample[i].Position
		if lo > hi || hi > len(t) {
			return 0, false
		}
	}

	j, found := slices.BinarySearchFunc(t[lo:hi], code, func(b binding.Binding, k binding.KeyCode) int {
		return cmp.Compare(b.Key, k)
	})
	if !found {
		return 0, false
	}
	return t[lo+j].Action, true
}

// IsSorted reports whether t is strictly ascending by key code, which also
// implies it holds no duplicate keys.
func IsSorted(t []binding.Binding) bool {
	for i := 1; i < len(t); i++ {
		if t[i-1].Key >= t[i].Key {
			return false
		}
	}
	return true
}
