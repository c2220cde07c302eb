package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

func TestHeader_Parse(t *testing.T) {
	original := Header{
		Version:     Version,
		Kind:        format.KindRows,
		Compression: format.CompressionS2,
		ByteOrder:   endian.FlagBigEndian,
		Width:       0,
		Count:       3,
		DataLen:     10,
		PayloadLen:  52,
		StoredLen:   40,
		Checksum:    0x0123_4567_89ab_cdef,
	}

	t.Run("Valid header", func(t *testing.T) {
		data, err := original.Bytes()
		require.NoError(t, err)
		require.Len(t, data, HeaderSize)
		require.Equal(t, []byte{'B', 'P', Version, byte(format.KindRows)}, data[:4])
		require.Equal(t, []byte{0, 0, 0, 3}, data[8:12], "big endian count")

		var parsed Header
		require.NoError(t, parsed.Parse(data))
		require.Equal(t, original, parsed)
	})

	t.Run("Little endian", func(t *testing.T) {
		h := original
		h.ByteOrder = endian.FlagLittleEndian
		data, err := h.Bytes()
		require.NoError(t, err)
		require.Equal(t, []byte{3, 0, 0, 0}, data[8:12])

		parsed, err := ParseHeader(append(data, 0xaa, 0xbb))
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	})

	t.Run("Invalid size", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse([]byte{'B', 'P', 1}), errs.ErrInvalidHeaderSize)

		_, err := ParseHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	corrupt := func(at int, b byte) []byte {
		data, err := original.Bytes()
		require.NoError(t, err)
		data[at] = b

		return data
	}

	t.Run("Invalid magic number", func(t *testing.T) {
		_, err := ParseHeader(corrupt(1, 'Q'))
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("Unsupported version", func(t *testing.T) {
		_, err := ParseHeader(corrupt(2, Version+1))
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := ParseHeader(corrupt(3, 0x7f))
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("Unknown byte order", func(t *testing.T) {
		_, err := ParseHeader(corrupt(5, 0x3))
		require.ErrorIs(t, err, errs.ErrInvalidHeader)

		h := original
		h.ByteOrder = 0x3
		_, err = h.Bytes()
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})
}
