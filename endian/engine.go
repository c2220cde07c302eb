// Package endian provides the byte orders used to serialize packed words.
//
// Packed collections hold uint32 words in host memory; snapshots lay them out
// in an explicit byte order so that a snapshot written on one machine reads
// back identically on any other. Little endian is the default:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = endian.AppendWords(engine, buf, bitset.Words())
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Byte order flags stored in snapshot headers.
const (
	FlagLittleEndian byte = 0x0
	FlagBigEndian    byte = 0x1
)

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Flag returns the header flag identifying engine.
func Flag(engine EndianEngine) byte {
	if engine == EndianEngine(binary.BigEndian) {
		return FlagBigEndian
	}

	return FlagLittleEndian
}

// FromFlag returns the engine identified by a header flag.
func FromFlag(flag byte) (EndianEngine, error) {
	switch flag {
	case FlagLittleEndian:
		return binary.LittleEndian, nil
	case FlagBigEndian:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order flag 0x%02x", flag)
	}
}

// AppendWords appends words to dst, four bytes each, in the engine's byte
// order.
func AppendWords(engine EndianEngine, dst []byte, words []uint32) []byte {
	dst = growBytes(dst, len(words)*4)
	for _, w := range words {
		dst = engine.AppendUint32(dst, w)
	}

	return dst
}

// DecodeWords decodes src, a multiple of four bytes long, into words.
func DecodeWords(engine EndianEngine, src []byte) ([]uint32, error) {
	words := make([]uint32, len(src)/4)
	if err := ReadWords(engine, words, src); err != nil {
		return nil, err
	}

	return words, nil
}

// ReadWords decodes src into dst, which must hold exactly len(src)/4 words.
func ReadWords(engine EndianEngine, dst []uint32, src []byte) error {
	if len(src)%4 != 0 {
		return fmt.Errorf("word payload of %d bytes is not a multiple of 4", len(src))
	}
	if len(dst) != len(src)/4 {
		return fmt.Errorf("word payload of %d bytes does not fill %d words", len(src), len(dst))
	}
	for i := range dst {
		dst[i] = engine.Uint32(src[i*4:])
	}

	return nil
}

func growBytes(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	grown := make([]byte, len(b), len(b)+n)
	copy(grown, b)

	return grown
}
