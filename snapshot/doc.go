// Package snapshot encodes packed collections into self-describing byte
// blobs and decodes them back.
//
// A snapshot is a fixed 32-byte header followed by a payload. The payload is
// the collection's uint32 words in the chosen byte order, optionally
// compressed. The header records the collection kind, the codec, the byte
// order and an xxHash64 checksum of the uncompressed payload, so a decoder
// needs nothing but the bytes:
//
//	blob, err := snapshot.EncodeBitset(set, snapshot.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	restored, err := snapshot.DecodeBitset(blob)
//
// Header layout (multi-byte fields in the snapshot's byte order):
//
//	0-1   magic "BP"
//	2     version
//	3     kind (format.Kind)
//	4     compression (format.CompressionType)
//	5     byte order flag (endian.FlagLittleEndian or endian.FlagBigEndian)
//	6     value width, packed indexes only
//	7     reserved
//	8-11  word count (bitsets, indexes) or row end count (row stores)
//	12-15 data length, row stores only
//	16-19 uncompressed payload length in bytes
//	20-23 stored payload length in bytes
//	24-31 xxHash64 of the uncompressed payload
//
// Snapshots live in memory only; where the bytes go is up to the caller.
package snapshot
