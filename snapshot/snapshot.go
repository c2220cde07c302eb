package snapshot

import (
	"fmt"
	"math"

	"github.com/arloliu/bitpack/bitview"
	"github.com/arloliu/bitpack/compress"
	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/internal/hash"
	"github.com/arloliu/bitpack/internal/pool"
	"github.com/arloliu/bitpack/packedindex"
	"github.com/arloliu/bitpack/rowstore"
)

// maxPayloadWords is the largest word count whose byte length fits the
// header's 32-bit length fields.
const maxPayloadWords = math.MaxUint32 / 4

// EncodeBitset encodes the words of a bit view. Any View, Mutable, Growable
// or Bitset can be passed.
func EncodeBitset(v bitview.Storage, opts ...Option) ([]byte, error) {
	words := v.Words()
	h := Header{Kind: format.KindBitset, Count: uint32(len(words))}

	return encode(&h, opts, words)
}

// DecodeBitset decodes a bitset snapshot into a new growable Bitset.
func DecodeBitset(data []byte, opts ...Option) (bitview.Bitset, error) {
	h, payload, err := decode(data, format.KindBitset, opts)
	if err != nil {
		return bitview.Bitset{}, err
	}
	if !wordsFit(h) {
		return bitview.Bitset{}, fmt.Errorf("%w: %d words in %d bytes", errs.ErrInvalidPayload, h.Count, h.PayloadLen)
	}

	engine, _ := h.Engine()
	words, err := endian.DecodeWords(engine, payload)
	if err != nil {
		return bitview.Bitset{}, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return bitview.New(words...), nil
}

// EncodeIndex encodes a packed index together with its value width.
func EncodeIndex[K packedindex.Key, V packedindex.Value](idx *packedindex.Index[K, V], opts ...Option) ([]byte, error) {
	words := idx.Words()
	h := Header{
		Kind:  format.KindIndex,
		Width: uint8(idx.Width()),
		Count: uint32(len(words)),
	}

	return encode(&h, opts, words)
}

// DecodeIndex decodes a packed index snapshot. The key and value types are
// not recorded, so they are chosen by the caller:
//
//	idx, err := snapshot.DecodeIndex[int, uint16](blob)
func DecodeIndex[K packedindex.Key, V packedindex.Value](data []byte, opts ...Option) (*packedindex.Index[K, V], error) {
	h, payload, err := decode(data, format.KindIndex, opts)
	if err != nil {
		return nil, err
	}
	if !wordsFit(h) {
		return nil, fmt.Errorf("%w: %d words in %d bytes", errs.ErrInvalidPayload, h.Count, h.PayloadLen)
	}

	// FromWords copies, so the decoded words only need to live until it returns.
	words, cleanup := pool.GetUint32Slice(int(h.Count))
	defer cleanup()

	engine, _ := h.Engine()
	if err := endian.ReadWords(engine, words, payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return packedindex.FromWords[K, V](uint(h.Width), words)
}

// EncodeRows encodes a row store of uint32 values.
func EncodeRows(store *rowstore.RowStore[uint32], opts ...Option) ([]byte, error) {
	ends, data := store.Ends(), store.Data()
	if len(ends) > maxPayloadWords-len(data) {
		return nil, fmt.Errorf("%w: %d row ends and %d values are too large", errs.ErrInvalidPayload, len(ends), len(data))
	}
	h := Header{
		Kind:    format.KindRows,
		Count:   uint32(len(ends)),
		DataLen: uint32(len(data)),
	}

	return encode(&h, opts, ends, data)
}

// DecodeRows decodes a row store snapshot. The row ends are validated as by
// rowstore.New.
func DecodeRows(data []byte, opts ...Option) (*rowstore.RowStore[uint32], error) {
	h, payload, err := decode(data, format.KindRows, opts)
	if err != nil {
		return nil, err
	}
	if uint64(h.PayloadLen) != (uint64(h.Count)+uint64(h.DataLen))*4 {
		return nil, fmt.Errorf("%w: %d ends and %d values in %d bytes",
			errs.ErrInvalidPayload, h.Count, h.DataLen, h.PayloadLen)
	}

	engine, _ := h.Engine()
	words, err := endian.DecodeWords(engine, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	store, err := rowstore.New(words[:h.Count:h.Count], words[h.Count:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}

	return store, nil
}

func wordsFit(h Header) bool {
	return uint64(h.PayloadLen) == uint64(h.Count)*4
}

// encode fills in the common header fields, lays out parts as one payload and
// compresses it.
func encode(h *Header, opts []Option, parts ...[]uint32) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	if total > maxPayloadWords {
		return nil, fmt.Errorf("%w: %d words is too large", errs.ErrInvalidPayload, total)
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.Grow(total * 4)
	for _, p := range parts {
		buf.B = endian.AppendWords(cfg.engine, buf.B, p)
	}
	payload := buf.Bytes()

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	stored, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress %s snapshot: %w", h.Kind, err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: compressed payload is too large", errs.ErrInvalidPayload)
	}

	h.Version = Version
	h.Compression = cfg.compression
	h.ByteOrder = endian.Flag(cfg.engine)
	h.PayloadLen = uint32(len(payload))
	h.StoredLen = uint32(len(stored))
	h.Checksum = hash.Sum64(payload)

	// stored may alias the pooled buffer, so it is copied before buf is reused.
	out := make([]byte, HeaderSize+len(stored))
	if err := h.put(out[:HeaderSize]); err != nil {
		return nil, err
	}
	copy(out[HeaderSize:], stored)

	cfg.logger.Debug("encoded snapshot",
		"kind", h.Kind,
		"compression", h.Compression,
		"payload_bytes", h.PayloadLen,
		"stored_bytes", h.StoredLen,
	)

	return out, nil
}

// decode checks the header and checksum of a snapshot of the given kind and
// returns its uncompressed payload.
func decode(data []byte, kind format.Kind, opts []Option) (Header, []byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Header{}, nil, err
	}

	h, err := ParseHeader(data)
	if err != nil {
		return Header{}, nil, err
	}
	if h.Kind != kind {
		return Header{}, nil, fmt.Errorf("%w: want %s, got %s", errs.ErrInvalidKind, kind, h.Kind)
	}

	stored := data[HeaderSize:]
	if uint64(len(stored)) != uint64(h.StoredLen) {
		return Header{}, nil, fmt.Errorf("%w: header declares %d payload bytes, found %d",
			errs.ErrInvalidPayload, h.StoredLen, len(stored))
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeader, err)
	}
	payload, err := codec.Decompress(stored)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if uint64(len(payload)) != uint64(h.PayloadLen) {
		return Header{}, nil, fmt.Errorf("%w: decompressed %d bytes, header declares %d",
			errs.ErrInvalidPayload, len(payload), h.PayloadLen)
	}
	if sum := hash.Sum64(payload); sum != h.Checksum {
		return Header{}, nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	cfg.logger.Debug("decoded snapshot",
		"kind", h.Kind,
		"compression", h.Compression,
		"payload_bytes", h.PayloadLen,
	)

	return h, payload, nil
}
