// Package compress provides the codecs applied to bitpack snapshot payloads.
//
// A snapshot payload is the byte image of a packed collection's words. The
// snapshot header records which codec compressed it, so decoding picks the
// matching Decompressor automatically.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the payload is stored as is.
//   - Zstd (format.CompressionZstd): best ratio, suited to cold snapshots.
//   - S2 (format.CompressionS2): balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// Sparse bitsets are dominated by zero words and packed indexes by sentinel
// slots, so even LZ4 usually shrinks them several times over.
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, _ := codec.Compress(payload)
//	original, _ := codec.Decompress(compressed)
//
// Zstd uses the pure Go klauspost/compress implementation by default. Build
// with cgo and the gozstd tag to use the libzstd bindings instead; both
// produce standard zstd frames and read each other's output.
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by pooled encoders and are
// safe for concurrent use.
package compress
