package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bitpack/bitview"
	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// sparsePayload returns the little-endian image of a bitset with every
// stride-th bit set.
func sparsePayload(bitLen, stride int) []byte {
	set := bitview.WithWords((bitLen + 31) / 32)
	for i := 0; i < bitLen; i += stride {
		set.SetBit(i)
	}

	return endian.AppendWords(endian.GetLittleEndianEngine(), nil, set.Words())
}

// indexPayload returns the image of packed slots that are mostly the all-ones
// sentinel.
func indexPayload(words int) []byte {
	w := make([]uint32, words)
	for i := range w {
		w[i] = ^uint32(0)
		if i%17 == 0 {
			w[i] = uint32(i) * 2654435761
		}
	}

	return endian.AppendWords(endian.GetLittleEndianEngine(), nil, w)
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		ct   format.CompressionType
		want string
	}{
		{format.CompressionNone, "None"},
		{format.CompressionZstd, "Zstd"},
		{format.CompressionS2, "S2"},
		{format.CompressionLZ4, "LZ4"},
		{format.CompressionType(0xff), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.ct.String())
	}
}

func TestGetCodec(t *testing.T) {
	for _, ct := range format.Compressions {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)

		created, err := CreateCodec(ct, "bitset")
		require.NoError(t, err)
		require.IsType(t, codec, created)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)

	_, err = CreateCodec(format.CompressionType(9), "index")
	require.ErrorContains(t, err, "invalid index compression")
}

func TestCompressionStats_Calculations(t *testing.T) {
	stats := CompressionStats{Algorithm: format.CompressionS2, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, stats.CompressionRatio(), 1e-9)
	require.InDelta(t, 75.0, stats.SpaceSavings(), 1e-9)

	require.Zero(t, CompressionStats{}.CompressionRatio())

	payload := sparsePayload(1<<16, 97)
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		stats, err := Measure(ct, payload)
		require.NoError(t, err)
		require.Equal(t, ct, stats.Algorithm)
		require.Equal(t, int64(len(payload)), stats.OriginalSize)
		require.Less(t, stats.CompressionRatio(), 0.5, "%s should shrink a sparse bitset", ct)
	}

	stats, err := Measure(format.CompressionNone, payload)
	require.NoError(t, err)
	require.InDelta(t, 1.0, stats.CompressionRatio(), 1e-9)

	_, err = Measure(format.CompressionType(0), payload)
	require.Error(t, err)
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Empty(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "Decompressing nil should return nil")

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)
			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "single_word", data: []byte{0xff, 0x00, 0xf0, 0xf0}},
		{name: "sparse_bitset", data: sparsePayload(1<<14, 61)},
		{name: "dense_bitset", data: sparsePayload(1<<14, 1)},
		{name: "sentinel_slots", data: indexPayload(4096)},
		{name: "empty_bitset_1mb", data: make([]byte, 1024*1024)},
		{
			name: "pseudo_random",
			data: func() []byte {
				data := make([]byte, 4096)
				for i := range data {
					data[i] = byte((i*7 + i*i) % 256)
				}

				return data
			}(),
		},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					t.Logf("Original: %d bytes, Compressed: %d bytes", len(tc.data), len(compressed))

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.True(t, bytes.Equal(tc.data, decompressed), "decompressed payload must match original")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "text_as_compressed", data: []byte("this is not compressed data")},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err, "Should return error for invalid compressed data")
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	payload := indexPayload(512)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			done := make(chan error, numGoroutines)
			for range numGoroutines {
				go func() {
					c, err := codec.Compress(payload)
					if err != nil {
						done <- err
						return
					}
					d, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(payload, d) || len(c) == 0 {
						done <- fmt.Errorf("%s: concurrent round trip mismatch", codecName)
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines {
				require.NoError(t, <-done)
			}
		})
	}
}

func TestLZ4Compressor_LargeExpansionRatio(t *testing.T) {
	// 4MB of zeros compresses far beyond the initial 4x decode buffer.
	data := make([]byte, 4*1024*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, len(data), len(decompressed))
}
