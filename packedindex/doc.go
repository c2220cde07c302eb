// Package packedindex implements a packed associative array of small
// integers: a compact map[K]V where keys are dense integers and every value
// occupies the same, minimal, number of bits.
//
// # Design
//
// A []uint32 of six values spends 32 bits on each. An Index spends only as
// many bits as its largest value needs:
//
//	// values 12, 2, 5, 8, 10, 9 at keys 0..5, width 4
//	1100 0010 0101 1000 1010 1001 1111 1111
//	                              ^^^^ ^^^^ unused slots are all ones
//
// The all-ones pattern of a slot is reserved to mean "no value", so a map of
// optional values takes no more space than a map of plain values. The
// consequence is that the largest pattern of a width is never a valid value:
// WithCapacity(n, 127) guarantees values 0 to 126 at width 7, and rejects 127
// unless asked to widen with SetExpandingValues.
//
// Storage is rounded up to whole 32-bit words, so some keys past the
// requested key capacity may incidentally be accepted. Capacity reports the
// actual bound; do not rely on anything beyond the requested one.
//
// # Equality
//
// Index.Equal compares the packed bits, treating a shorter index as padded
// with empty slots. When V has its own notion of equality, wrap the index in
// a ValueEqIndex to compare decoded values instead.
package packedindex
