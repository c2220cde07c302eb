// Package errs defines the errors returned by bitpack packages.
//
// Sentinel errors are compared with errors.Is. Construction errors that carry
// positional details are typed structs which also match their sentinel:
//
//	store, err := rowstore.New(ends, data)
//	if errors.Is(err, errs.ErrInvalidEnds) {
//	    var bad *errs.BadEndError
//	    if errors.As(err, &bad) {
//	        log.Printf("offset %d goes backwards", bad.Index)
//	    }
//	}
package errs

import (
	"errors"
	"fmt"
)

// Bit view errors.
var (
	// ErrTruncated is returned alongside a partial value when a read runs past
	// the end of a bit view. The low bits of the value are still valid.
	ErrTruncated = errors.New("read truncated at end of bit view")
)

// Row store errors.
var (
	// ErrInvalidEnds is matched by every row-end validation error.
	ErrInvalidEnds = errors.New("invalid row ends")
	// ErrStoreBorrowed is the panic value raised when a growable row store is
	// used while one of its popped rows is still held.
	ErrStoreBorrowed = errors.New("row store is borrowed by a popped row")
	// ErrRowReleased is the panic value raised when a popped row is used after
	// it was released back to its store.
	ErrRowReleased = errors.New("popped row already released")
)

// Packed index errors.
var (
	// ErrInvalidWidth is returned when a value width is outside [0, 32].
	ErrInvalidWidth = errors.New("invalid value width")
	// ErrWidthOverflow is the panic value raised when widening would need more
	// than 32 bits per value.
	ErrWidthOverflow = errors.New("value width overflows 32 bits")
)

// Snapshot errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid snapshot header size")
	ErrInvalidMagic       = errors.New("invalid snapshot magic number")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrInvalidHeader      = errors.New("invalid snapshot header")
	ErrInvalidKind        = errors.New("unexpected snapshot kind")
	ErrInvalidPayload     = errors.New("invalid snapshot payload")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
)

// BadEndError reports an offset in ends that is lower than the one before it.
type BadEndError struct {
	Index int
}

func (e *BadEndError) Error() string {
	return fmt.Sprintf("ends must be non-decreasing: end at position %d is lower than end at position %d",
		e.Index, e.Index-1)
}

// Is reports whether target is ErrInvalidEnds.
func (e *BadEndError) Is(target error) bool {
	return target == ErrInvalidEnds
}

// TooLongEndError reports an offset in ends that is past the end of data.
type TooLongEndError struct {
	Index int
	Len   int
	End   int
}

func (e *TooLongEndError) Error() string {
	return fmt.Sprintf("end at position %d (%d) is larger than the length of data (%d)",
		e.Index, e.End, e.Len)
}

// Is reports whether target is ErrInvalidEnds.
func (e *TooLongEndError) Is(target error) bool {
	return target == ErrInvalidEnds
}
