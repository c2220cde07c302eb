package packedindex

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"strings"

	"github.com/arloliu/bitpack/bitview"
	"github.com/arloliu/bitpack/errs"
	"github.com/arloliu/bitpack/internal/bits"
	"github.com/arloliu/bitpack/internal/logging"
)

// Integer is the set of integer types usable as keys and values.
type Integer = bits.Integer

// Key is the constraint for index keys. Negative keys are never stored.
type Key = Integer

// Value is the constraint for index values. Only values that fit in 32 bits
// can be stored.
type Value = Integer

// Index maps integer keys to optional integer values packed at a fixed width.
//
// The zero value is an empty index with no capacity; Set always fails on it.
// Index is not safe for concurrent mutation.
type Index[K Key, V Value] struct {
	slots  bitview.Mutable[bitview.Slice]
	width  uint
	logger *slog.Logger
}

// WithCapacity creates an index where keys 0 to keyCap-1 can hold values
// 0 to valueCap-1. Every slot starts empty.
//
// If keyCap or valueCap is zero, the index holds nothing: Set always fails and
// Get always reports absent.
func WithCapacity[K Key, V Value](keyCap int, valueCap uint32, opts ...Option) *Index[K, V] {
	cfg := newConfig(opts)
	width := bits.MSB(valueCap)
	words := bits.DivCeil(int(width)*max(keyCap, 0), bits.WordBits)

	return &Index[K, V]{
		slots:  newSlots(words),
		width:  width,
		logger: cfg.logger,
	}
}

// FromWords restores an index from its packed words, as returned by Words,
// and its value width.
func FromWords[K Key, V Value](width uint, words []uint32, opts ...Option) (*Index[K, V], error) {
	if width > bits.WordBits {
		return nil, fmt.Errorf("%w: %d bits", errs.ErrInvalidWidth, width)
	}
	cfg := newConfig(opts)
	slots := make(bitview.Slice, len(words))
	copy(slots, words)

	return &Index[K, V]{
		slots:  bitview.NewMutable(slots),
		width:  width,
		logger: cfg.logger,
	}, nil
}

// FromPairs creates an index holding pairs. The capacities are inferred from
// the largest key and value seen; when a key repeats, the last value wins.
// Pairs with a negative key or value, or a value that does not fit in 32 bits,
// are dropped.
func FromPairs[K Key, V Value](pairs iter.Seq2[K, V], opts ...Option) *Index[K, V] {
	type pair struct {
		key   K
		value V
	}

	var (
		collected []pair
		keyCap    int
		valueCap  uint64
	)
	for k, v := range pairs {
		if k < 0 || v < 0 || uint64(v) >= math.MaxUint32 {
			continue
		}
		collected = append(collected, pair{key: k, value: v})
		keyCap = max(keyCap, int(k)+1)
		valueCap = max(valueCap, uint64(v)+1)
	}

	idx := WithCapacity[K, V](keyCap, uint32(valueCap), opts...)
	for _, p := range collected {
		idx.Set(p.key, p.value)
	}

	return idx
}

func newSlots(words int) bitview.Mutable[bitview.Slice] {
	slots := bitview.NewMutable(make(bitview.Slice, words))
	slots.Fill()

	return slots
}

// Width returns the number of bits used by each value.
func (x *Index[K, V]) Width() uint {
	return x.width
}

// Capacity returns how many keys the index can hold. All keys are smaller than
// the capacity.
//
// Capacity may exceed the key capacity the index was created with, as storage
// is rounded up to whole words.
func (x *Index[K, V]) Capacity() int {
	if x.width == 0 {
		return 0
	}

	return x.slots.BitLen() / int(x.width)
}

// Words returns the packed slots. Callers must not modify them.
func (x *Index[K, V]) Words() []uint32 {
	return x.slots.Words()
}

func (x *Index[K, V]) mask() uint32 {
	return bits.NMask(x.width)
}

// slot returns the slot of key, or false if key is outside the capacity.
func (x *Index[K, V]) slot(key K) (int, bool) {
	if key < 0 || uint64(key) >= uint64(x.Capacity()) {
		return 0, false
	}

	return int(key), true
}

func (x *Index[K, V]) getSlot(slot int) (V, bool) {
	mask := x.mask()
	value, ok := x.slots.NAt(x.width, slot*int(x.width))
	if !ok || value&mask == mask {
		return 0, false
	}

	return V(value), true
}

// Get returns the value of key, or false if key has no value.
func (x *Index[K, V]) Get(key K) (V, bool) {
	slot, ok := x.slot(key)
	if !ok {
		return 0, false
	}

	return x.getSlot(slot)
}

// Set stores value at key.
//
// It returns false, leaving the index unchanged, when key is outside the
// capacity or value does not fit the width. The all-ones pattern of the width
// never fits, as it marks empty slots.
func (x *Index[K, V]) Set(key K, value V) bool {
	if x.width == 0 || value < 0 {
		return false
	}
	slot, ok := x.slot(key)
	if !ok {
		return false
	}
	mask := x.mask()
	if uint64(value) >= uint64(mask) {
		return false
	}

	x.writeSlot(slot, uint32(value))

	return true
}

func (x *Index[K, V]) writeSlot(slot int, value uint32) {
	offset := slot * int(x.width)
	x.slots.ClearRange(offset, offset+int(x.width))
	for b := range bitview.NewView(bitview.ReadOnly{value}).Ones().All() {
		x.slots.SetBit(offset + int(b))
	}
}

// Remove empties the slot of key. Keys outside the capacity are ignored.
func (x *Index[K, V]) Remove(key K) {
	slot, ok := x.slot(key)
	if !ok {
		return
	}
	offset := slot * int(x.width)
	x.slots.SetRange(offset, offset+int(x.width))
}

// SetExpandingValues stores value at key, first widening every slot if value
// does not fit the current width.
//
// Widening keeps the capacity and every stored pair. It returns false when key
// is outside the capacity, or when the index has no capacity at all. Widening
// past 32 bits panics with errs.ErrWidthOverflow.
func (x *Index[K, V]) SetExpandingValues(key K, value V) bool {
	if x.width == 0 || value < 0 {
		return false
	}
	if _, ok := x.slot(key); !ok {
		return false
	}
	if uint64(value) >= uint64(x.mask()) {
		// The new width must leave room for the sentinel above value.
		x.widen(bits.MSB64(uint64(value) + 1))
	}

	return x.Set(key, value)
}

// widen rebuilds the slots at the given width. Every bit of a stored value
// moves from pos to pos + (pos/w)*(newWidth-w); empty slots stay empty.
func (x *Index[K, V]) widen(newWidth uint) {
	if newWidth > bits.WordBits {
		panic(fmt.Errorf("%w: need %d bits", errs.ErrWidthOverflow, newWidth))
	}

	oldWidth := int(x.width)
	extra := int(newWidth) - oldWidth
	capacity := x.Capacity()
	mask := x.mask()

	widened := newSlots(bits.DivCeil(capacity*int(newWidth), bits.WordBits))
	for slot := range capacity {
		start := slot * oldWidth
		value, ok := x.slots.NAt(x.width, start)
		if !ok || value == mask {
			continue
		}

		newStart := slot * int(newWidth)
		widened.ClearRange(newStart, newStart+int(newWidth))
		for pos := range x.slots.OnesInRange(start, start+oldWidth).All() {
			p := int(pos)
			widened.SetBit(p + (p/oldWidth)*extra)
		}
	}

	logging.OrNoop(x.logger).Debug("widened values",
		"from", x.width, "to", newWidth, "capacity", capacity)

	x.slots = widened
	x.width = newWidth
}

// Len returns the number of keys holding a value.
func (x *Index[K, V]) Len() int {
	n := 0
	for range x.All() {
		n++
	}

	return n
}

// All returns an iterator over the stored pairs in ascending key order.
func (x *Index[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for slot := range x.Capacity() {
			if v, ok := x.getSlot(slot); ok {
				if !yield(K(slot), v) {
					return
				}
			}
		}
	}
}

// Backward returns an iterator over the stored pairs in descending key order.
func (x *Index[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for slot := x.Capacity() - 1; slot >= 0; slot-- {
			if v, ok := x.getSlot(slot); ok {
				if !yield(K(slot), v) {
					return
				}
			}
		}
	}
}

// Equal reports whether both indexes hold the same packed bits. The words
// missing from the shorter index count as empty slots, so indexes of different
// capacities holding the same pairs at the same width are equal.
func (x *Index[K, V]) Equal(other *Index[K, V]) bool {
	a, b := x.Words(), other.Words()
	if len(a) > len(b) {
		a, b = b, a
	}
	for i, w := range a {
		if w != b[i] {
			return false
		}
	}
	for _, w := range b[len(a):] {
		if w != math.MaxUint32 {
			return false
		}
	}

	return true
}

// String formats the stored pairs as "{10: 2, 11: 5}".
func (x *Index[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, v := range x.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
	}
	sb.WriteByte('}')

	return sb.String()
}
