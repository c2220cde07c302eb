package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/snapshot"
)

func TestNewBitset(t *testing.T) {
	set := NewBitset(3, 17, 40)

	require.Equal(t, []uint32{3, 17, 40}, set.Ones().Collect())
	require.Equal(t, 3, set.Count())
}

func TestNewIndex(t *testing.T) {
	idx := NewIndex[int, uint16](16, 100)
	require.True(t, idx.Set(7, 42))
	require.False(t, idx.Set(8, 127), "all ones is the absent sentinel")

	v, ok := idx.Get(7)
	require.True(t, ok)
	require.Equal(t, uint16(42), v)
}

func TestNewRowBuilder(t *testing.T) {
	rows := NewRowBuilder[uint32]().AddRow(1, 2, 3).AddRow().AddRow(7).Build()

	require.Equal(t, [][]uint32{{1, 2, 3}, {}, {7}}, rows.ToRows())
}

func TestNewGrowableRows(t *testing.T) {
	rows := NewGrowableRows[string]()
	require.Zero(t, rows.Height())

	rows.PushRow("a", "b")
	require.Equal(t, []string{"a", "b"}, rows.Row(0))
}

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(10, 3)
	require.True(t, m.SetBit(9, 2))
	require.False(t, m.SetBit(10, 0), "column out of range")
	require.True(t, m.Bit(9, 2))
}

func TestArchive(t *testing.T) {
	t.Run("bitset", func(t *testing.T) {
		set := NewBitset(1, 1000, 50_000)
		blob, err := ArchiveBitset(set)
		require.NoError(t, err)

		h, err := snapshot.ParseHeader(blob)
		require.NoError(t, err)
		require.Equal(t, format.CompressionZstd, h.Compression)
		require.Equal(t, endian.FlagLittleEndian, h.ByteOrder)

		decoded, err := snapshot.DecodeBitset(blob)
		require.NoError(t, err)
		require.True(t, set.Equal(decoded))
	})

	t.Run("options override defaults", func(t *testing.T) {
		blob, err := ArchiveBitset(NewBitset(5), snapshot.WithCompression(format.CompressionLZ4), snapshot.WithBigEndian())
		require.NoError(t, err)

		h, err := snapshot.ParseHeader(blob)
		require.NoError(t, err)
		require.Equal(t, format.CompressionLZ4, h.Compression)
		require.Equal(t, endian.FlagBigEndian, h.ByteOrder)
	})

	t.Run("index", func(t *testing.T) {
		idx := NewIndex[int, uint16](1024, 100)
		idx.Set(7, 42)
		idx.Set(1000, 99)

		blob, err := ArchiveIndex(idx)
		require.NoError(t, err)
		decoded, err := snapshot.DecodeIndex[int, uint16](blob)
		require.NoError(t, err)
		require.True(t, idx.Equal(decoded))
	})

	t.Run("rows", func(t *testing.T) {
		rows := NewRowBuilder[uint32]().AddRow(4, 5).AddRow(6).Build()

		blob, err := ArchiveRows(rows)
		require.NoError(t, err)
		decoded, err := snapshot.DecodeRows(blob)
		require.NoError(t, err)
		require.Equal(t, rows.ToRows(), decoded.ToRows())
	})
}
