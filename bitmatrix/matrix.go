// Package bitmatrix provides a two-dimensional bit matrix with rows of a fixed
// width, stored in a single bit view.
//
// Bit (col, row) lives at row*width + col, so each row is a contiguous range
// of bits and iterating a row is a ranged scan of the view.
package bitmatrix

import (
	"iter"

	"github.com/arloliu/bitpack/bitview"
	"github.com/arloliu/bitpack/internal/bits"
)

// Matrix is a height × width bit matrix.
type Matrix struct {
	bits   bitview.Bitset
	width  int
	height int
}

// New creates a matrix of height rows, each width bits wide, with every bit
// disabled.
func New(width, height int) *Matrix {
	width, height = max(width, 0), max(height, 0)

	return &Matrix{
		bits:   bitview.WithWords(bits.DivCeil(width*height, bits.WordBits)),
		width:  width,
		height: height,
	}
}

// FromPairs creates a matrix with bit (col, row) enabled for every pair
// (row, col). It has one row per row index up to the largest seen and is as
// wide as the largest column plus one. Pairs with negative indices are
// dropped.
func FromPairs(pairs iter.Seq2[int, int]) *Matrix {
	type cell struct{ row, col int }

	var (
		cells         []cell
		width, height int
	)
	for row, col := range pairs {
		if row < 0 || col < 0 {
			continue
		}
		cells = append(cells, cell{row: row, col: col})
		width = max(width, col+1)
		height = max(height, row+1)
	}

	m := New(width, height)
	for _, c := range cells {
		m.SetBit(c.col, c.row)
	}

	return m
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Matrix) Height() int {
	return m.height
}

func (m *Matrix) index(col, row int) (int, bool) {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return 0, false
	}

	return row*m.width + col, true
}

// Bit reports whether bit (col, row) is enabled. Out of range bits are
// disabled.
func (m *Matrix) Bit(col, row int) bool {
	at, ok := m.index(col, row)
	return ok && m.bits.Bit(at)
}

// SetBit enables bit (col, row). It returns false if the bit is out of range.
func (m *Matrix) SetBit(col, row int) bool {
	at, ok := m.index(col, row)
	return ok && m.bits.SetBit(at)
}

// ClearBit disables bit (col, row). It returns false if the bit is out of
// range.
func (m *Matrix) ClearBit(col, row int) bool {
	at, ok := m.index(col, row)
	return ok && m.bits.ClearBit(at)
}

// Row returns an iterator over the enabled columns of row, in ascending
// order. A row out of range yields nothing.
func (m *Matrix) Row(row int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if row < 0 || row >= m.height {
			return
		}
		start := row * m.width
		for at := range m.bits.OnesInRange(start, start+m.width).All() {
			if !yield(int(at) - start) {
				return
			}
		}
	}
}

// RowFull reports whether every bit of row is enabled.
func (m *Matrix) RowFull(row int) bool {
	if row < 0 || row >= m.height {
		return false
	}
	start := row * m.width

	return m.bits.OnesInRange(start, start+m.width).AllOne()
}

// RowLen returns the number of enabled bits in row.
func (m *Matrix) RowLen(row int) int {
	if row < 0 || row >= m.height {
		return 0
	}
	start := row * m.width

	return m.bits.OnesInRange(start, start+m.width).Len()
}

// Words returns the backing words. Callers must not modify them.
func (m *Matrix) Words() []uint32 {
	return m.bits.Words()
}
