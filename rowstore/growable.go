package rowstore

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/bitpack/errs"
)

// Growable is a jagged array that accepts new rows at the end.
//
// A fresh Growable has no rows. Pushing a value or extending the last row
// while there are no rows creates the first row.
//
// PopRow hands out the last row without copying it. Until the returned
// PoppedRow is released, every method of the store panics with
// errs.ErrStoreBorrowed.
type Growable[V any] struct {
	ends []uint32
	data []V
	// fullyPopped tells a store without rows apart from a store whose only
	// row is empty: ends is empty in both cases.
	fullyPopped bool
	borrowed    bool
	generation  uint64
}

// NewGrowable creates a store with no rows.
func NewGrowable[V any]() *Growable[V] {
	return &Growable[V]{fullyPopped: true}
}

// NewGrowableFrom creates a store from flat data and row ends, validated as
// in New. The store takes ownership of both slices.
func NewGrowableFrom[V any](ends []uint32, data []V) (*Growable[V], error) {
	if err := validateEnds(ends, len(data)); err != nil {
		return nil, err
	}

	return &Growable[V]{ends: ends, data: data}, nil
}

func (s *Growable[V]) checkBorrow() {
	if s.borrowed {
		panic(errs.ErrStoreBorrowed)
	}
}

func (s *Growable[V]) openRow() {
	if !s.fullyPopped {
		s.ends = append(s.ends, uint32(len(s.data)))
	}
	s.fullyPopped = false
}

// PushRow appends a new row holding values.
func (s *Growable[V]) PushRow(values ...V) *Growable[V] {
	s.checkBorrow()
	s.openRow()
	s.data = append(s.data, values...)

	return s
}

// PushSlice appends a new row holding a copy of values.
func (s *Growable[V]) PushSlice(values []V) *Growable[V] {
	return s.PushRow(values...)
}

// PushRowSeq appends a new row holding the values produced by seq.
func (s *Growable[V]) PushRowSeq(seq iter.Seq[V]) *Growable[V] {
	s.checkBorrow()
	s.openRow()
	for v := range seq {
		s.data = append(s.data, v)
	}

	return s
}

// Push appends elem to the last row, creating it if the store has no rows.
func (s *Growable[V]) Push(elem V) {
	s.checkBorrow()
	s.fullyPopped = false
	s.data = append(s.data, elem)
}

// ExtendLastRow appends values to the last row, creating it if the store has
// no rows.
func (s *Growable[V]) ExtendLastRow(values ...V) {
	s.checkBorrow()
	s.fullyPopped = false
	s.data = append(s.data, values...)
}

// Clear drops every row. The store keeps its allocated memory.
func (s *Growable[V]) Clear() {
	s.checkBorrow()
	clear(s.data)
	s.data = s.data[:0]
	s.ends = s.ends[:0]
	s.fullyPopped = true
}

// PopRow removes the last row and hands its values to the caller without
// copying them. It returns false if the store has no rows.
//
// The store is borrowed until the returned row is released: any other call on
// the store panics with errs.ErrStoreBorrowed.
func (s *Growable[V]) PopRow() (*PoppedRow[V], bool) {
	s.checkBorrow()
	if s.fullyPopped {
		return nil, false
	}

	s.fullyPopped = len(s.ends) == 0
	var lastEnd int
	if n := len(s.ends); n > 0 {
		lastEnd = int(s.ends[n-1])
		s.ends = s.ends[:n-1]
	}
	oldLen := len(s.data)
	values := s.data[lastEnd:oldLen:oldLen]
	s.data = s.data[:lastEnd]
	s.borrowed = true

	return &PoppedRow[V]{
		store:      s,
		values:     values,
		generation: s.generation,
	}, true
}

// Len returns the total number of values across all rows.
func (s *Growable[V]) Len() int {
	s.checkBorrow()
	return len(s.data)
}

// IsEmpty reports whether no row holds any value.
func (s *Growable[V]) IsEmpty() bool {
	s.checkBorrow()
	return len(s.data) == 0
}

// Height returns the number of rows.
func (s *Growable[V]) Height() int {
	s.checkBorrow()
	if s.fullyPopped {
		return 0
	}

	return len(s.ends) + 1
}

// Get returns the value at directIndex in the flat data, ignoring rows.
func (s *Growable[V]) Get(directIndex int) (V, bool) {
	s.checkBorrow()
	if directIndex < 0 || directIndex >= len(s.data) {
		var zero V
		return zero, false
	}

	return s.data[directIndex], true
}

// GetRow returns the values of row i.
func (s *Growable[V]) GetRow(i int) ([]V, bool) {
	if i < 0 || i >= s.Height() {
		return nil, false
	}
	start := 0
	if i > 0 {
		start = int(s.ends[i-1])
	}
	end := len(s.data)
	if i < len(s.ends) {
		end = int(s.ends[i])
	}

	return s.data[start:end:end], true
}

// Row returns the values of row i. It panics if i is out of range.
func (s *Growable[V]) Row(i int) []V {
	row, ok := s.GetRow(i)
	if !ok {
		panic(fmt.Sprintf("rowstore: row %d out of range for height %d", i, s.Height()))
	}

	return row
}

// All returns an iterator over the row indices and their values.
func (s *Growable[V]) All() iter.Seq2[int, []V] {
	return func(yield func(int, []V) bool) {
		for i := range s.Height() {
			if !yield(i, s.Row(i)) {
				return
			}
		}
	}
}

// ToRows copies every row into its own slice.
func (s *Growable[V]) ToRows() [][]V {
	return toRows(s.ends, s.data, s.Height())
}

// Freeze returns a read-only store holding a copy of the rows of s. Later
// pushes, pops and clears of s do not affect it. A store without rows
// freezes into a store with a single empty row.
func (s *Growable[V]) Freeze() *RowStore[V] {
	s.checkBorrow()
	return &RowStore[V]{ends: slices.Clone(s.ends), data: slices.Clone(s.data)}
}

// String formats the rows as "[[1 2 3] [] [4 5]]".
func (s *Growable[V]) String() string {
	return formatRows(s.All())
}

// PoppedRow holds the values of a row popped from a Growable. It shares
// memory with its store, which stays borrowed until Release is called.
//
//	row, ok := store.PopRow()
//	if ok {
//	    process(row.Values())
//	    row.Release()
//	}
type PoppedRow[V any] struct {
	store      *Growable[V]
	values     []V
	generation uint64
}

func (p *PoppedRow[V]) checkLive() {
	if p.store == nil || p.store.generation != p.generation {
		panic(errs.ErrRowReleased)
	}
}

// Values returns the popped values. They may be modified in place, but must
// not be used after Release.
func (p *PoppedRow[V]) Values() []V {
	p.checkLive()
	return p.values
}

// Len returns the number of popped values.
func (p *PoppedRow[V]) Len() int {
	p.checkLive()
	return len(p.values)
}

// Release drops the popped values and gives the store back. Releasing twice
// panics with errs.ErrRowReleased.
func (p *PoppedRow[V]) Release() {
	p.checkLive()
	clear(p.values)
	p.store.borrowed = false
	p.store.generation++
	p.values = nil
}
