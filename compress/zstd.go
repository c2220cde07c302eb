package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs and suits snapshots that are
// written once and read rarely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
