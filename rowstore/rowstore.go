package rowstore

import (
	"fmt"
	"iter"
	"strings"

	"github.com/arloliu/bitpack/errs"
)

// RowStore is a read-only jagged array. It always has at least one row,
// possibly empty.
type RowStore[V any] struct {
	ends []uint32
	data []V
}

// New creates a row store from flat data and row ends.
//
// ends must be non-decreasing and no end may exceed len(data). Otherwise New
// returns a *errs.TooLongEndError or a *errs.BadEndError, both matching
// errs.ErrInvalidEnds. The store keeps both slices without copying them.
func New[V any](ends []uint32, data []V) (*RowStore[V], error) {
	if err := validateEnds(ends, len(data)); err != nil {
		return nil, err
	}

	return &RowStore[V]{ends: ends, data: data}, nil
}

func validateEnds(ends []uint32, dataLen int) error {
	var previous uint32
	for i, end := range ends {
		if int(end) > dataLen {
			return &errs.TooLongEndError{Index: i, Len: dataLen, End: int(end)}
		}
		if end < previous {
			return &errs.BadEndError{Index: i}
		}
		previous = end
	}

	return nil
}

// Len returns the total number of values across all rows.
func (s *RowStore[V]) Len() int {
	return len(s.data)
}

// IsEmpty reports whether no row holds any value.
func (s *RowStore[V]) IsEmpty() bool {
	return len(s.data) == 0
}

// Height returns the number of rows.
func (s *RowStore[V]) Height() int {
	return len(s.ends) + 1
}

// Ends returns the row ends. Callers must not modify them.
func (s *RowStore[V]) Ends() []uint32 {
	return s.ends
}

// Data returns all values, row after row. Callers must not modify them.
func (s *RowStore[V]) Data() []V {
	return s.data
}

// Get returns the value at directIndex in the flat data, ignoring rows.
func (s *RowStore[V]) Get(directIndex int) (V, bool) {
	if directIndex < 0 || directIndex >= len(s.data) {
		var zero V
		return zero, false
	}

	return s.data[directIndex], true
}

// rowEnd maps a row index to the offset where that row stops.
func (s *RowStore[V]) rowEnd(row int) (int, bool) {
	switch {
	case row < 0 || row > len(s.ends):
		return 0, false
	case row == len(s.ends):
		return len(s.data), true
	default:
		return int(s.ends[row]), true
	}
}

// GetRows returns the values of rows [start, end) as one slice, without
// copying. It returns false if the range is inverted or out of bounds.
func (s *RowStore[V]) GetRows(start, end int) ([]V, bool) {
	from, to := 0, 0
	if start > 0 {
		var ok bool
		if from, ok = s.rowEnd(start - 1); !ok {
			return nil, false
		}
	} else if start < 0 {
		return nil, false
	}
	if end > 0 {
		var ok bool
		if to, ok = s.rowEnd(end - 1); !ok {
			return nil, false
		}
	} else if end < 0 {
		return nil, false
	}
	if from > to {
		return nil, false
	}

	return s.data[from:to:to], true
}

// GetRowsFrom returns the values of every row from start on.
func (s *RowStore[V]) GetRowsFrom(start int) ([]V, bool) {
	return s.GetRows(start, s.Height())
}

// GetRowsTo returns the values of every row before end.
func (s *RowStore[V]) GetRowsTo(end int) ([]V, bool) {
	return s.GetRows(0, end)
}

// Rows is GetRows for ranges known to be valid. It panics otherwise.
func (s *RowStore[V]) Rows(start, end int) []V {
	rows, ok := s.GetRows(start, end)
	if !ok {
		panic(fmt.Sprintf("rowstore: rows [%d, %d) out of range for height %d", start, end, s.Height()))
	}

	return rows
}

// GetRow returns the values of row i.
func (s *RowStore[V]) GetRow(i int) ([]V, bool) {
	return s.GetRows(i, i+1)
}

// Row returns the values of row i. It panics if i is out of range.
func (s *RowStore[V]) Row(i int) []V {
	row, ok := s.GetRow(i)
	if !ok {
		panic(fmt.Sprintf("rowstore: row %d out of range for height %d", i, s.Height()))
	}

	return row
}

// All returns an iterator over the row indices and their values.
func (s *RowStore[V]) All() iter.Seq2[int, []V] {
	return func(yield func(int, []V) bool) {
		for i := range s.Height() {
			if !yield(i, s.Row(i)) {
				return
			}
		}
	}
}

// ToRows copies every row into its own slice, for callers that need to modify
// rows independently. Traversing the result is slower than the packed form.
func (s *RowStore[V]) ToRows() [][]V {
	return toRows(s.ends, s.data, s.Height())
}

func toRows[V any](ends []uint32, data []V, height int) [][]V {
	rows := make([][]V, 0, height)
	if height == 0 {
		return rows
	}
	var start uint32
	for _, end := range ends {
		rows = append(rows, cloneRow(data[start:end]))
		start = end
	}

	return append(rows, cloneRow(data[start:]))
}

func cloneRow[V any](src []V) []V {
	row := make([]V, len(src))
	copy(row, src)

	return row
}

// String formats the rows as "[[1 2 3] [] [4 5]]".
func (s *RowStore[V]) String() string {
	return formatRows(s.All())
}

func formatRows[V any](rows iter.Seq2[int, []V]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range rows {
		if i != 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, row)
	}
	sb.WriteByte(']')

	return sb.String()
}
