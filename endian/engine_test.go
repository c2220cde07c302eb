package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	bytes := make([]byte, 4)
	engine.PutUint32(bytes, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, bytes, "little endian puts LSB first")
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	bytes := make([]byte, 4)
	engine.PutUint32(bytes, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bytes, "big endian puts MSB first")
}

func TestFlag(t *testing.T) {
	require.Equal(t, FlagLittleEndian, Flag(GetLittleEndianEngine()))
	require.Equal(t, FlagBigEndian, Flag(GetBigEndianEngine()))

	for _, flag := range []byte{FlagLittleEndian, FlagBigEndian} {
		engine, err := FromFlag(flag)
		require.NoError(t, err)
		require.Equal(t, flag, Flag(engine))
	}

	_, err := FromFlag(0x7)
	require.Error(t, err)
}

func TestWords(t *testing.T) {
	words := []uint32{0xf0f0_00ff, 0, 0xffff_ffff, 0x0102_0304}

	t.Run("little endian", func(t *testing.T) {
		buf := AppendWords(GetLittleEndianEngine(), nil, words)
		require.Len(t, buf, 16)
		require.Equal(t, []byte{0xff, 0x00, 0xf0, 0xf0}, buf[:4])

		decoded, err := DecodeWords(GetLittleEndianEngine(), buf)
		require.NoError(t, err)
		require.Equal(t, words, decoded)
	})

	t.Run("big endian", func(t *testing.T) {
		buf := AppendWords(GetBigEndianEngine(), []byte{0xaa}, words)
		require.Len(t, buf, 17)
		require.Equal(t, []byte{0xaa, 0xf0, 0xf0, 0x00, 0xff}, buf[:5])

		decoded, err := DecodeWords(GetBigEndianEngine(), buf[1:])
		require.NoError(t, err)
		require.Equal(t, words, decoded)
	})

	t.Run("byte orders disagree", func(t *testing.T) {
		buf := AppendWords(GetLittleEndianEngine(), nil, words[:1])
		decoded, err := DecodeWords(GetBigEndianEngine(), buf)
		require.NoError(t, err)
		require.Equal(t, []uint32{0xff00_f0f0}, decoded)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := DecodeWords(GetLittleEndianEngine(), []byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("read into", func(t *testing.T) {
		buf := AppendWords(GetBigEndianEngine(), nil, words)
		dst := make([]uint32, len(words))
		require.NoError(t, ReadWords(GetBigEndianEngine(), dst, buf))
		require.Equal(t, words, dst)

		require.Error(t, ReadWords(GetBigEndianEngine(), dst[:2], buf), "destination too short")
	})

	t.Run("empty", func(t *testing.T) {
		decoded, err := DecodeWords(GetLittleEndianEngine(), nil)
		require.NoError(t, err)
		require.Empty(t, decoded)
	})
}
