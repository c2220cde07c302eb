// Package bitpack provides compact in-memory integer collections built on
// packed uint32 words.
//
// Every collection stores its contents in flat word or value slices rather
// than per-element allocations, which suits large, mostly static lookup tables
// such as adjacency sets, small-valued maps and jagged arrays.
//
// # Core Collections
//
//   - bitview: bit views over word slices, read-only, mutable or growable
//   - packedindex: integer keys to optional integer values at a fixed width
//   - rowstore: jagged arrays (Iliffe vectors), frozen or growable
//   - bitmatrix: a fixed-width bit matrix with one row per key
//   - multimap: one-to-many maps built from (key, value) pairs
//   - fieldlayout: bit offsets for packing several fields into one word
//   - snapshot: checksummed, optionally compressed binary snapshots
//
// # Basic Usage
//
//	import "github.com/arloliu/bitpack"
//
//	set := bitpack.NewBitset(3, 17, 40)
//	for i := range set.Ones().All() {
//	    fmt.Println(i)
//	}
//
//	idx := bitpack.NewIndex[int, uint16](1024, 100)
//	idx.Set(7, 42)
//
//	blob, _ := bitpack.ArchiveIndex(idx)
//	restored, _ := snapshot.DecodeIndex[int, uint16](blob)
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the most common use
// cases. For fine-grained control use the sub-packages directly.
package bitpack

import (
	"github.com/arloliu/bitpack/bitmatrix"
	"github.com/arloliu/bitpack/bitview"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/packedindex"
	"github.com/arloliu/bitpack/rowstore"
	"github.com/arloliu/bitpack/snapshot"
)

var archiveOptions = []snapshot.Option{
	snapshot.WithLittleEndian(),
	snapshot.WithCompression(format.CompressionZstd),
}

// NewBitset creates a growable bitset with the given bits enabled.
//
// Example:
//
//	set := bitpack.NewBitset(1, 5, 100)
//	set.SetBitExtending(4096) // grows the backing words
func NewBitset(bits ...int) bitview.Bitset {
	return bitview.FromBits(bits...)
}

// NewIndex creates a packed index where keys 0 to keyCap-1 can hold values
// 0 to valueCap-1.
//
// Larger values can still be stored later with SetExpandingValues, which
// widens every slot.
func NewIndex[K packedindex.Key, V packedindex.Value](keyCap int, valueCap uint32, opts ...packedindex.Option) *packedindex.Index[K, V] {
	return packedindex.WithCapacity[K, V](keyCap, valueCap, opts...)
}

// NewRowBuilder creates a builder for a frozen row store.
//
// Example:
//
//	rows := bitpack.NewRowBuilder[uint32]().
//	    AddRow(1, 2, 3).
//	    AddRow().
//	    AddRow(7).
//	    Build()
func NewRowBuilder[V any](opts ...rowstore.BuilderOption) *rowstore.Builder[V] {
	return rowstore.NewBuilder[V](opts...)
}

// NewGrowableRows creates an empty row store that rows can be pushed to and
// popped from.
func NewGrowableRows[V any]() *rowstore.Growable[V] {
	return rowstore.NewGrowable[V]()
}

// NewMatrix creates a zeroed bit matrix of width columns and height rows.
func NewMatrix(width, height int) *bitmatrix.Matrix {
	return bitmatrix.New(width, height)
}

// ArchiveBitset encodes a bit view as a little-endian, Zstd-compressed
// snapshot. Extra options override the defaults.
func ArchiveBitset(v bitview.Storage, opts ...snapshot.Option) ([]byte, error) {
	return snapshot.EncodeBitset(v, withArchiveDefaults(opts)...)
}

// ArchiveIndex encodes a packed index as a little-endian, Zstd-compressed
// snapshot. Extra options override the defaults.
func ArchiveIndex[K packedindex.Key, V packedindex.Value](idx *packedindex.Index[K, V], opts ...snapshot.Option) ([]byte, error) {
	return snapshot.EncodeIndex(idx, withArchiveDefaults(opts)...)
}

// ArchiveRows encodes a row store as a little-endian, Zstd-compressed
// snapshot. Extra options override the defaults.
func ArchiveRows(store *rowstore.RowStore[uint32], opts ...snapshot.Option) ([]byte, error) {
	return snapshot.EncodeRows(store, withArchiveDefaults(opts)...)
}

func withArchiveDefaults(opts []snapshot.Option) []snapshot.Option {
	all := make([]snapshot.Option, 0, len(archiveOptions)+len(opts))
	all = append(all, archiveOptions...)

	return append(all, opts...)
}
