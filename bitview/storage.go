package bitview

import (
	"github.com/arloliu/bitpack/internal/bits"
)

// minGrowWords is the smallest size a Buffer grows to.
const minGrowWords = 8

// Storage gives read access to a sequence of words.
type Storage interface {
	// Words returns the backing words. Callers must not modify them.
	Words() []uint32
}

// MutableStorage gives in-place write access to a sequence of words.
type MutableStorage interface {
	Storage
	// MutableWords returns the backing words for in-place modification.
	MutableWords() []uint32
}

// GrowableStorage is a MutableStorage that can extend itself.
type GrowableStorage interface {
	MutableStorage
	// ExtendWords adds at least extra zeroed words at the end of the storage.
	ExtendWords(extra int)
}

// ReadOnly is a borrowed word slice that views can only read.
type ReadOnly []uint32

var _ Storage = ReadOnly(nil)

func (r ReadOnly) Words() []uint32 { return r }

// Slice is a fixed-size word slice that views can modify in place.
type Slice []uint32

var _ MutableStorage = Slice(nil)

func (s Slice) Words() []uint32        { return s }
func (s Slice) MutableWords() []uint32 { return s }

// Buffer is a growable word buffer.
//
// Growth mirrors geometric slice growth so that repeated extending writes are
// amortized constant time: the new length is the next power of two of the
// required length, and never less than 8 words.
type Buffer struct {
	words []uint32
}

var _ GrowableStorage = (*Buffer)(nil)

// NewBuffer creates a Buffer holding a copy of words.
func NewBuffer(words ...uint32) *Buffer {
	b := &Buffer{words: make([]uint32, len(words))}
	copy(b.words, words)

	return b
}

// NewBufferSize creates a Buffer of n words, each set to fill.
func NewBufferSize(n int, fill uint32) *Buffer {
	b := &Buffer{words: make([]uint32, n)}
	if fill != 0 {
		for i := range b.words {
			b.words[i] = fill
		}
	}

	return b
}

// Words returns the backing words. A nil Buffer has no words.
func (b *Buffer) Words() []uint32 {
	if b == nil {
		return nil
	}

	return b.words
}

func (b *Buffer) MutableWords() []uint32 {
	if b == nil {
		return nil
	}

	return b.words
}

// ExtendWords grows the buffer to max(nextPow2(len+extra), 8) words.
func (b *Buffer) ExtendWords(extra int) {
	if extra <= 0 {
		return
	}
	oldLen := len(b.words)
	newLen := max(bits.NextPow2(oldLen+extra), minGrowWords)

	grown := make([]uint32, newLen)
	copy(grown, b.words)
	b.words = grown
}

// Len returns the number of words in the buffer.
func (b *Buffer) Len() int {
	return len(b.Words())
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return NewBuffer(b.Words()...)
}
