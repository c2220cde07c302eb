package bitview

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring copies the enabled bits into a new roaring bitmap.
func (v View[S]) ToRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := range v.Ones().All() {
		rb.Add(i)
	}
	rb.RunOptimize()

	return rb
}

// FromRoaring creates a Bitset holding the bits of rb.
func FromRoaring(rb *roaring.Bitmap) Bitset {
	b := New()
	if rb == nil || rb.IsEmpty() {
		return b
	}

	words := int(rb.Maximum())/wordBits + 1
	b.store.ExtendWords(words)
	dst := b.store.MutableWords()

	it := rb.Iterator()
	for it.HasNext() {
		at := it.Next()
		dst[at/wordBits] |= 1 << (at % wordBits)
	}

	return b
}
