package bitview

import (
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/bitpack/errs"
	ibits "github.com/arloliu/bitpack/internal/bits"
	"github.com/arloliu/bitpack/internal/hash"
)

const wordBits = ibits.WordBits

// View reads bits from any word storage.
type View[S Storage] struct {
	store S
}

// NewView creates a read-only view over store.
func NewView[S Storage](store S) View[S] {
	return View[S]{store: store}
}

// Storage returns the storage backing the view.
func (v View[S]) Storage() S {
	return v.store
}

// Words returns the backing words. Callers must not modify them.
func (v View[S]) Words() []uint32 {
	return v.store.Words()
}

// BitLen returns how many bits the view addresses, always a multiple of 32.
func (v View[S]) BitLen() int {
	return len(v.store.Words()) * wordBits
}

// Bit reports whether bit at is enabled. Out of range bits are disabled.
func (v View[S]) Bit(at int) bool {
	if at < 0 {
		return false
	}
	words := v.store.Words()
	block := at / wordBits
	if block >= len(words) {
		return false
	}
	mask := uint32(1) << (at % wordBits)

	return words[block]&mask == mask
}

// word returns words[i], or 0 when i is out of range.
func word(words []uint32, i int) uint32 {
	if i < 0 || i >= len(words) {
		return 0
	}

	return words[i]
}

// Uint32At returns the 32 bits starting at bit at.
//
// When at+32 runs past the end of the view, the value is truncated: the bits
// that exist are in the low part of the value, missing bits read as zero, and
// errs.ErrTruncated is returned so callers can tell full from partial reads.
//
//	v := bitview.NewView(bitview.ReadOnly{0xf0f0_00ff, 0xfff0_000f, 0xfff0_0f0f})
//	v.Uint32At(4)  // 0xff0f_000f, nil
//	v.Uint32At(80) // 0x0000_fff0, errs.ErrTruncated
func (v View[S]) Uint32At(at int) (uint32, error) {
	if at < 0 {
		return 0, errs.ErrTruncated
	}
	words := v.store.Words()
	block := at / wordBits
	offset := uint(at % wordBits)

	if offset == 0 {
		if block >= len(words) {
			return 0, errs.ErrTruncated
		}

		return words[block], nil
	}

	inset := wordBits - offset
	lo := word(words, block) >> offset
	hi := word(words, block+1) << inset
	mask := ibits.NMask(inset)
	value := (lo & mask) | (hi &^ mask)

	if at+wordBits > v.BitLen() {
		return value, errs.ErrTruncated
	}

	return value, nil
}

// NAt returns the n bits starting at bit at, n <= 32.
//
// Unlike Uint32At, a read that does not fit in the view returns false and no
// partial value.
func (v View[S]) NAt(n uint, at int) (uint32, bool) {
	if n > wordBits || at < 0 || at+int(n) > v.BitLen() {
		return 0, false
	}
	if n == 0 {
		return 0, true
	}

	words := v.store.Words()
	block := at / wordBits
	offset := uint(at % wordBits)
	nMask := ibits.NMask(n)

	if offset+n <= wordBits {
		return (words[block] >> offset) & nMask, true
	}

	// The read straddles words[block] and words[block+1]; the bounds check
	// above guarantees both exist.
	inset := wordBits - offset
	lo := words[block] >> offset
	hi := words[block+1] << inset
	mask := ibits.NMask(inset)

	return ((lo & mask) | (hi &^ mask)) & nMask, true
}

// Ones iterates over the indices of every enabled bit in ascending order.
func (v View[S]) Ones() Ones {
	return newOnes(v.store.Words(), 0, v.BitLen())
}

// OnesInRange iterates over the enabled bits within [start, end).
//
// The range is clamped to the view, so out of range bounds never panic.
func (v View[S]) OnesInRange(start, end int) Ones {
	return newOnes(v.store.Words(), start, end)
}

// OnesFrom iterates over the enabled bits from start to the end of the view.
func (v View[S]) OnesFrom(start int) Ones {
	return newOnes(v.store.Words(), start, v.BitLen())
}

// OnesTo iterates over the enabled bits before end.
func (v View[S]) OnesTo(end int) Ones {
	return newOnes(v.store.Words(), 0, end)
}

// Count returns the number of enabled bits.
func (v View[S]) Count() int {
	n := 0
	for _, w := range v.store.Words() {
		n += bits.OnesCount32(w)
	}

	return n
}

// Equal reports whether both storages hold identical words.
func (v View[S]) Equal(other Storage) bool {
	return slices.Equal(v.store.Words(), other.Words())
}

// Hash returns an xxHash64 of the backing words, independent of the host
// byte order.
func (v View[S]) Hash() uint64 {
	return hash.Words(v.store.Words())
}

// String formats the words as hexadecimal, lowest word first:
// "[f0f000ff_fff0000f]".
func (v View[S]) String() string {
	words := v.store.Words()

	var sb strings.Builder
	sb.Grow(2 + len(words)*9)
	sb.WriteByte('[')
	for i, w := range words {
		if i != 0 {
			sb.WriteByte('_')
		}
		s := strconv.FormatUint(uint64(w), 16)
		for range 8 - len(s) {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	sb.WriteByte(']')

	return sb.String()
}
