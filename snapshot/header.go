package snapshot

import (
	"fmt"

	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/format"
)

const (
	// HeaderSize is the fixed size of a snapshot header in bytes.
	HeaderSize = 32
	// Version is the snapshot format version written by this package.
	Version = 1

	magic0 = 'B'
	magic1 = 'P'
)

// Header is the decoded fixed-size header of a snapshot.
type Header struct {
	Version     uint8
	Kind        format.Kind
	Compression format.CompressionType
	ByteOrder   byte
	// Width is the value width of a packed index.
	Width uint8
	// Count is the number of words of a bitset or packed index, or the number
	// of row ends of a row store.
	Count uint32
	// DataLen is the number of values of a row store.
	DataLen uint32
	// PayloadLen is the uncompressed payload size in bytes.
	PayloadLen uint32
	// StoredLen is the size in bytes of the payload following the header.
	StoredLen uint32
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64
}

// Engine returns the byte order engine identified by the header.
func (h *Header) Engine() (endian.EndianEngine, error) {
	engine, err := endian.FromFlag(h.ByteOrder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeader, err)
	}

	return engine, nil
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if data[0] != magic0 || data[1] != magic1 {
		return errs.ErrInvalidMagic
	}

	h.Version = data[2]
	h.Kind = format.Kind(data[3])
	h.Compression = format.CompressionType(data[4])
	h.ByteOrder = data[5]
	h.Width = data[6]

	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if !h.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind 0x%02x", errs.ErrInvalidHeader, uint8(h.Kind))
	}
	engine, err := h.Engine()
	if err != nil {
		return err
	}

	h.Count = engine.Uint32(data[8:12])
	h.DataLen = engine.Uint32(data[12:16])
	h.PayloadLen = engine.Uint32(data[16:20])
	h.StoredLen = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() ([]byte, error) {
	b := make([]byte, HeaderSize)
	if err := h.put(b); err != nil {
		return nil, err
	}

	return b, nil
}

func (h *Header) put(b []byte) error {
	engine, err := h.Engine()
	if err != nil {
		return err
	}

	b[0], b[1] = magic0, magic1
	b[2] = h.Version
	b[3] = byte(h.Kind)
	b[4] = byte(h.Compression)
	b[5] = h.ByteOrder
	b[6] = h.Width
	b[7] = 0
	engine.PutUint32(b[8:12], h.Count)
	engine.PutUint32(b[12:16], h.DataLen)
	engine.PutUint32(b[16:20], h.PayloadLen)
	engine.PutUint32(b[20:24], h.StoredLen)
	engine.PutUint64(b[24:32], h.Checksum)

	return nil
}

// ParseHeader parses the header at the start of a snapshot without decoding
// its payload.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
