package bitview

import (
	"iter"

	ibits "github.com/arloliu/bitpack/internal/bits"
)

// Mutable is a View that can enable and disable bits in place.
//
// Mutable never changes the size of its storage.
type Mutable[S MutableStorage] struct {
	View[S]
}

// NewMutable creates a mutable view over store.
func NewMutable[S MutableStorage](store S) Mutable[S] {
	return Mutable[S]{View: View[S]{store: store}}
}

// SetBit enables bit at. It returns false when at is outside the storage, in
// which case nothing changes.
func (m Mutable[S]) SetBit(at int) bool {
	words := m.store.MutableWords()
	if at < 0 || at/wordBits >= len(words) {
		return false
	}
	words[at/wordBits] |= 1 << (at % wordBits)

	return true
}

// ClearBit disables bit at. It returns false when at is outside the storage.
func (m Mutable[S]) ClearBit(at int) bool {
	words := m.store.MutableWords()
	if at < 0 || at/wordBits >= len(words) {
		return false
	}
	words[at/wordBits] &^= 1 << (at % wordBits)

	return true
}

// ClearRange disables every bit within [start, end), clamped to the storage.
func (m Mutable[S]) ClearRange(start, end int) {
	m.applyRange(start, end, func(w *uint32, mask uint32) { *w &^= mask })
}

// SetRange enables every bit within [start, end), clamped to the storage.
func (m Mutable[S]) SetRange(start, end int) {
	m.applyRange(start, end, func(w *uint32, mask uint32) { *w |= mask })
}

func (m Mutable[S]) applyRange(start, end int, apply func(w *uint32, mask uint32)) {
	words := m.store.MutableWords()
	start = max(start, 0)
	end = min(end, len(words)*wordBits)
	if start >= end {
		return
	}

	first := start / wordBits
	last := (end - 1) / wordBits
	startMask := ^ibits.NMask(uint(start % wordBits))
	endMask := ibits.NMask(uint((end-1)%wordBits + 1))

	if first == last {
		apply(&words[first], startMask&endMask)
		return
	}
	apply(&words[first], startMask)
	for i := first + 1; i < last; i++ {
		apply(&words[i], ^uint32(0))
	}
	apply(&words[last], endMask)
}

// SetAll enables every bit yielded by seq that lies within the storage and
// returns how many bits were out of range.
func (m Mutable[S]) SetAll(seq iter.Seq[int]) int {
	missed := 0
	for at := range seq {
		if !m.SetBit(at) {
			missed++
		}
	}

	return missed
}

// Fill enables every bit of the storage.
func (m Mutable[S]) Fill() {
	words := m.store.MutableWords()
	for i := range words {
		words[i] = ^uint32(0)
	}
}

// Reset disables every bit of the storage.
func (m Mutable[S]) Reset() {
	clear(m.store.MutableWords())
}

// Growable is a Mutable view whose storage extends on demand.
type Growable[S GrowableStorage] struct {
	Mutable[S]
}

// NewGrowable creates a growable view over store.
func NewGrowable[S GrowableStorage](store S) Growable[S] {
	return Growable[S]{Mutable: Mutable[S]{View: View[S]{store: store}}}
}

// SetBitExtending enables bit at, first growing the storage if bit at lies
// past its end. It panics if at is negative.
func (g Growable[S]) SetBitExtending(at int) {
	if at < 0 {
		panic("bitview: negative bit index")
	}
	block := at / wordBits
	if n := len(g.store.Words()); block >= n {
		g.store.ExtendWords(block + 1 - n)
	}
	g.store.MutableWords()[block] |= 1 << (at % wordBits)
}

// Extend enables every bit yielded by seq, growing the storage as needed.
func (g Growable[S]) Extend(seq iter.Seq[int]) {
	for at := range seq {
		g.SetBitExtending(at)
	}
}

// Bitset is a growable bit set backed by a Buffer.
type Bitset = Growable[*Buffer]

// New creates a Bitset holding a copy of words.
func New(words ...uint32) Bitset {
	return NewGrowable(NewBuffer(words...))
}

// WithWords creates a Bitset with n zeroed words of capacity.
func WithWords(n int) Bitset {
	return NewGrowable(NewBufferSize(n, 0))
}

// FromBits creates a Bitset with the given bits enabled.
func FromBits(bits ...int) Bitset {
	b := New()
	for _, at := range bits {
		b.SetBitExtending(at)
	}

	return b
}

// FromSeq creates a Bitset with every bit yielded by seq enabled.
func FromSeq(seq iter.Seq[int]) Bitset {
	b := New()
	b.Extend(seq)

	return b
}

// Clone returns a Bitset holding a copy of v's words.
func Clone[S Storage](v View[S]) Bitset {
	return NewGrowable(NewBuffer(v.Words()...))
}
