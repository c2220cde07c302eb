// Package format defines the identifiers stored in bitpack snapshot headers.
package format

type (
	// Kind identifies the collection encoded in a snapshot.
	Kind uint8
	// CompressionType identifies the codec applied to a snapshot payload.
	CompressionType uint8
)

const (
	KindBitset Kind = 0x1 // KindBitset represents a bit view.
	KindIndex  Kind = 0x2 // KindIndex represents a packed index.
	KindRows   Kind = 0x3 // KindRows represents a row store of uint32 values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Compressions lists every supported compression type.
var Compressions = []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

func (k Kind) String() string {
	switch k {
	case KindBitset:
		return "Bitset"
	case KindIndex:
		return "Index"
	case KindRows:
		return "Rows"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= KindBitset && k <= KindRows
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
