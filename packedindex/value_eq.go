package packedindex

// EqualValue is a value type with its own notion of equality, such as a
// wrapper type whose meaning extends beyond its packed bits.
type EqualValue[V any] interface {
	Value
	Equal(other V) bool
}

// ValueEqIndex is an Index compared by decoded values instead of packed bits.
//
//	type Level uint8
//	func (l Level) Equal(o Level) bool { return l/10 == o/10 }
//
//	a := packedindex.ValueEq(packedindex.WithCapacity[int, Level](32, 100))
//	b := packedindex.ValueEq(packedindex.WithCapacity[int, Level](32, 100))
//	a.Set(1, 21)
//	b.Set(1, 29)
//	a.Equal(b) // true
type ValueEqIndex[K Key, V EqualValue[V]] struct {
	*Index[K, V]
}

// ValueEq wraps idx so that Equal compares decoded values.
func ValueEq[K Key, V EqualValue[V]](idx *Index[K, V]) ValueEqIndex[K, V] {
	return ValueEqIndex[K, V]{Index: idx}
}

// Equal reports whether both indexes hold equal values at the same keys, up to
// the larger of both capacities. Widths may differ.
func (x ValueEqIndex[K, V]) Equal(other ValueEqIndex[K, V]) bool {
	n := max(x.Capacity(), other.Capacity())
	for slot := range n {
		a, aok := x.getIndexed(slot)
		b, bok := other.getIndexed(slot)
		if aok != bok || (aok && !a.Equal(b)) {
			return false
		}
	}

	return true
}

func (x ValueEqIndex[K, V]) getIndexed(slot int) (V, bool) {
	if slot >= x.Capacity() {
		var zero V
		return zero, false
	}

	return x.getSlot(slot)
}
