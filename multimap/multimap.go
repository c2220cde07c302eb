// Package multimap provides one-to-many maps from small integer keys, built
// on the bit matrix and the row store.
//
// IndexMultimap suits small dense value spaces: each key owns one bit per
// possible value, so values come back sorted and deduplicated. RowMultimap
// suits arbitrary values: each key owns a row of a row store, so values keep
// their insertion order and duplicates.
package multimap

import (
	"iter"

	"github.com/arloliu/bitpack/bitmatrix"
	"github.com/arloliu/bitpack/internal/bits"
	"github.com/arloliu/bitpack/rowstore"
)

// IndexMultimap maps integer keys to sets of integer values.
//
// Avoid it when values are large or when a few keys hold most values: every
// key costs as many bits as the largest value.
type IndexMultimap[K, V bits.Integer] struct {
	assocs *bitmatrix.Matrix
}

// NewIndexMultimap creates a multimap holding every pair. Pairs with a
// negative key or value are dropped.
func NewIndexMultimap[K, V bits.Integer](pairs iter.Seq2[K, V]) *IndexMultimap[K, V] {
	return &IndexMultimap[K, V]{
		assocs: bitmatrix.FromPairs(func(yield func(int, int) bool) {
			for k, v := range pairs {
				if k < 0 || v < 0 {
					continue
				}
				if !yield(int(k), int(v)) {
					return
				}
			}
		}),
	}
}

// Get returns an iterator over the values of key, in ascending order.
func (m *IndexMultimap[K, V]) Get(key K) iter.Seq[V] {
	return func(yield func(V) bool) {
		if key < 0 {
			return
		}
		for col := range m.assocs.Row(int(key)) {
			if !yield(V(col)) {
				return
			}
		}
	}
}

// Contains reports whether value is associated with key.
func (m *IndexMultimap[K, V]) Contains(key K, value V) bool {
	if key < 0 || value < 0 {
		return false
	}

	return m.assocs.Bit(int(value), int(key))
}

// Keys returns the number of key rows, that is the largest key plus one.
func (m *IndexMultimap[K, V]) Keys() int {
	return m.assocs.Height()
}

// Count returns the number of values associated with key.
func (m *IndexMultimap[K, V]) Count(key K) int {
	if key < 0 {
		return 0
	}

	return m.assocs.RowLen(int(key))
}

// RowMultimap maps integer keys to lists of values.
type RowMultimap[K bits.Integer, V any] struct {
	rows *rowstore.RowStore[V]
}

// NewRowMultimap creates a multimap holding every pair. Values of a key keep
// the order they were produced in. Pairs with a negative key are dropped.
func NewRowMultimap[K bits.Integer, V any](pairs iter.Seq2[K, V]) *RowMultimap[K, V] {
	return &RowMultimap[K, V]{
		rows: rowstore.FromPairs(func(yield func(int, V) bool) {
			for k, v := range pairs {
				if k < 0 {
					continue
				}
				if !yield(int(k), v) {
					return
				}
			}
		}),
	}
}

// Get returns the values of key. A key without values yields an empty slice.
// Callers must not modify the result.
func (m *RowMultimap[K, V]) Get(key K) []V {
	if key < 0 {
		return nil
	}
	row, _ := m.rows.GetRow(int(key))

	return row
}

// Keys returns the number of key rows, that is the largest key plus one.
func (m *RowMultimap[K, V]) Keys() int {
	return m.rows.Height()
}

// Len returns the total number of values.
func (m *RowMultimap[K, V]) Len() int {
	return m.rows.Len()
}

// All returns an iterator over every key and its values.
func (m *RowMultimap[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for i, row := range m.rows.All() {
			if !yield(K(i), row) {
				return
			}
		}
	}
}
