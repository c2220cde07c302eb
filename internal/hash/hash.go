// Package hash wraps xxHash64 for word slices and snapshot payloads.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Words computes the xxHash64 of words laid out as little-endian bytes, so the
// result does not depend on the host byte order.
func Words(words []uint32) uint64 {
	d := xxhash.New()

	var buf [64]byte
	for len(words) > 0 {
		n := min(len(words), len(buf)/4)
		for i := range n {
			binary.LittleEndian.PutUint32(buf[i*4:], words[i])
		}
		_, _ = d.Write(buf[:n*4])
		words = words[n:]
	}

	return d.Sum64()
}
