// Package bitview provides bit-level access to a sequence of 32-bit words.
//
// A view never owns a concrete buffer type. It is generic over the storage it
// reads from, and each view type asks only for the capability it needs:
//
//   - View[S Storage] reads bits, fixed-width integers and set-bit sequences.
//   - Mutable[S MutableStorage] adds in-place enabling and disabling of bits.
//   - Growable[S GrowableStorage] adds writes that extend the storage.
//
// Three storages are provided: ReadOnly (a borrowed slice that cannot be
// written through a view), Slice (a fixed-size mutable slice) and *Buffer (a
// growable buffer). Bitset is the common Growable[*Buffer] instantiation.
//
// # Bit Layout
//
// Bit i lives in word i/32 at offset i%32, least significant bit first:
//
//	words:  [ 0xf0f0_00ff,            0xfff0_000f ]
//	bits:     0 ......... 31          32 ........ 63
//
// Reads wider than one bit may straddle two words. The low part comes from the
// high bits of the first word and the high part from the low bits of the next
// word.
//
// A view never distinguishes a bit past the end of its storage from a
// disabled bit: both read as false.
//
// # Usage
//
//	bits := bitview.New()
//	bits.SetBitExtending(73)
//	bits.Bit(73)          // true
//	bits.SetBit(64)       // true, storage already covers bit 64
//
//	for i := range bits.Ones().All() {
//	    fmt.Println(i)   // 64, 73
//	}
//
// Views are not safe for concurrent mutation; concurrent readers are fine as
// long as no writer is active.
package bitview
