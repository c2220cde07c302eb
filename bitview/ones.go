package bitview

import (
	"iter"
	"math/bits"

	ibits "github.com/arloliu/bitpack/internal/bits"
)

// Ones iterates over the indices of enabled bits of a word range, in strictly
// ascending order.
//
// Ones is a value type: copying it snapshots the iteration state, and All
// iterates over such a copy. To restart from scratch, ask the view for a new
// Ones.
type Ones struct {
	// words after the current one; the last one is cropped by endMask.
	words []uint32
	// current holds the unyielded enabled bits of the current word.
	current uint32
	// window holds the in-range positions of the current word that are past
	// the last yielded bit.
	window  uint32
	endMask uint32
	block   int
}

func newOnes(all []uint32, start, end int) Ones {
	start = max(start, 0)
	end = min(end, len(all)*wordBits)
	if start >= end {
		return Ones{}
	}

	first := start / wordBits
	last := (end - 1) / wordBits
	startMask := ^ibits.NMask(uint(start % wordBits))
	endMask := ibits.NMask(uint((end-1)%wordBits + 1))

	it := Ones{block: first, endMask: endMask}
	if first == last {
		it.window = startMask & endMask
	} else {
		it.window = startMask
		it.words = all[first+1 : last+1]
	}
	it.current = all[first] & it.window

	return it
}

// Next returns the next enabled bit index, or false when the range is
// exhausted.
func (it *Ones) Next() (uint32, bool) {
	for it.current == 0 {
		if len(it.words) == 0 {
			return 0, false
		}
		it.block++
		it.window = ^uint32(0)
		if len(it.words) == 1 {
			it.window = it.endMask
		}
		it.current = it.words[0] & it.window
		it.words = it.words[1:]
	}

	r := uint(bits.TrailingZeros32(it.current))
	it.current &= it.current - 1
	it.window &^= ibits.NMask(r + 1)

	return uint32(it.block*wordBits) + uint32(r), true
}

// Len returns the exact number of indices left to yield.
func (it Ones) Len() int {
	n := bits.OnesCount32(it.current)
	if len(it.words) == 0 {
		return n
	}
	for _, w := range it.words[:len(it.words)-1] {
		n += bits.OnesCount32(w)
	}

	return n + bits.OnesCount32(it.words[len(it.words)-1]&it.endMask)
}

// AllOne reports whether every bit left in the iterator's range is enabled,
// that is whether the remaining indices are consecutive and reach the end of
// the range. An empty range is all ones.
//
// The check is bit exact for ranges starting or ending anywhere within a word,
// and for partially consumed iterators, where only the positions after the
// last yielded index count.
func (it Ones) AllOne() bool {
	if it.current != it.window {
		return false
	}
	if len(it.words) == 0 {
		return true
	}
	for _, w := range it.words[:len(it.words)-1] {
		if w != ^uint32(0) {
			return false
		}
	}
	last := it.words[len(it.words)-1]

	return last&it.endMask == it.endMask
}

// All returns an iterator over the remaining indices. It works on a copy, so
// the receiver is not advanced.
func (it Ones) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for {
			i, ok := it.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

// Collect returns the remaining indices as a slice without advancing the
// receiver.
func (it Ones) Collect() []uint32 {
	out := make([]uint32, 0, it.Len())
	for i := range it.All() {
		out = append(out, i)
	}

	return out
}
