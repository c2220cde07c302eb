// Package bits holds the word arithmetic shared by the bit packed collections.
package bits

import "math/bits"

// Integer is the set of integer types accepted as packed keys and values.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// WordBits is the width of a storage word.
const WordBits = 32

// DivCeil returns lhs / rhs rounded up.
func DivCeil(lhs, rhs int) int {
	return (lhs + rhs - 1) / rhs
}

// NMask returns a mask with the n least significant bits set.
//
// Shifting a uint32 by 32 or more would clear every bit, so widths of a full
// word or more yield all ones.
func NMask(n uint) uint32 {
	if n >= WordBits {
		return ^uint32(0)
	}

	return (uint32(1) << n) - 1
}

// MSB returns the position of the most significant set bit plus one, that is
// the number of bits needed to represent v. MSB(0) is 0.
func MSB(v uint32) uint {
	return uint(WordBits - bits.LeadingZeros32(v))
}

// MSB64 is MSB for uint64 values.
func MSB64(v uint64) uint {
	return uint(64 - bits.LeadingZeros64(v))
}

// NextPow2 returns the smallest power of two greater or equal to n.
// NextPow2(0) is 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
