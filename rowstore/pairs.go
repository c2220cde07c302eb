package rowstore

import (
	"iter"

	"github.com/arloliu/bitpack/internal/pool"
)

// FromPairs creates a store with one row per key from 0 to the largest key
// seen. Every value is kept, in the order it was produced, in the row of its
// key. Pairs with a negative key are dropped.
func FromPairs[V any](pairs iter.Seq2[int, V]) *RowStore[V] {
	var (
		keys   []int
		values []V
		height int
	)
	for k, v := range pairs {
		if k < 0 {
			continue
		}
		keys = append(keys, k)
		values = append(values, v)
		height = max(height, k+1)
	}
	if height == 0 {
		return &RowStore[V]{}
	}

	// Counting sort by key keeps values of the same key in input order.
	cursors, cleanup := pool.GetIntSlice(height)
	defer cleanup()
	for _, k := range keys {
		cursors[k]++
	}

	ends := make([]uint32, height-1)
	offset := 0
	for k, count := range cursors {
		cursors[k] = offset
		offset += count
		if k < len(ends) {
			ends[k] = uint32(offset)
		}
	}

	data := make([]V, len(values))
	for i, k := range keys {
		data[cursors[k]] = values[i]
		cursors[k]++
	}

	return &RowStore[V]{ends: ends, data: data}
}
