package pool

import "sync"

// Scratch slice pools used while ingesting unordered (key, value) pairs.
var (
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
)

// GetIntSlice retrieves a zeroed int slice of length size from the pool.
//
// The caller must call the returned cleanup function to give the slice back:
//
//	counts, cleanup := pool.GetIntSlice(rows)
//	defer cleanup()
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}

// GetUint32Slice retrieves a zeroed uint32 slice of length size from the pool.
// See GetIntSlice for the cleanup contract.
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { uint32SlicePool.Put(ptr) }
}
