// Package fieldlayout computes bit layouts for packed structs: the width each
// field needs and the offset where it starts inside a packed word.
//
// Fields are laid out in declaration order from the least significant bit,
// so the offset of a field is the sum of the widths of the fields before it.
//
//	var l fieldlayout.Layout
//	l.Add("kind", fieldlayout.Width(5))   // 3 bits at offset 0
//	l.Add("count", fieldlayout.Width(1000)) // 10 bits at offset 3
//	word, _ := l.Set(0, "count", 42)
package fieldlayout

import (
	"fmt"

	"github.com/arloliu/bitpack/internal/bits"
)

// MaxBits is the largest total layout width.
const MaxBits = 64

// Width returns the number of bits needed to store every value from 0 to
// maxValue.
func Width(maxValue uint64) uint {
	return bits.MSB64(maxValue)
}

// Field is one named field of a Layout.
type Field struct {
	Name   string
	Width  uint
	Offset uint
}

// Layout is an ordered list of fields packed into a uint64. The zero value is
// an empty layout.
type Layout struct {
	fields []Field
	byName map[string]int
	total  uint
}

// Add appends a field of the given width and returns its offset.
//
// It fails if name is already used or if the layout would exceed MaxBits.
func (l *Layout) Add(name string, width uint) (uint, error) {
	if _, dup := l.byName[name]; dup {
		return 0, fmt.Errorf("fieldlayout: duplicate field %q", name)
	}
	if l.total+width > MaxBits {
		return 0, fmt.Errorf("fieldlayout: field %q needs %d bits, only %d left", name, width, MaxBits-l.total)
	}
	if l.byName == nil {
		l.byName = make(map[string]int)
	}

	offset := l.total
	l.byName[name] = len(l.fields)
	l.fields = append(l.fields, Field{Name: name, Width: width, Offset: offset})
	l.total += width

	return offset, nil
}

// Field returns the field called name.
func (l *Layout) Field(name string) (Field, bool) {
	i, ok := l.byName[name]
	if !ok {
		return Field{}, false
	}

	return l.fields[i], true
}

// Offset returns the bit offset of the field called name.
func (l *Layout) Offset(name string) (uint, bool) {
	f, ok := l.Field(name)
	return f.Offset, ok
}

// Fields returns the fields in layout order. Callers must not modify it.
func (l *Layout) Fields() []Field {
	return l.fields
}

// TotalBits returns the sum of all field widths.
func (l *Layout) TotalBits() uint {
	return l.total
}

func mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}

// Get extracts the field called name from word.
func (l *Layout) Get(word uint64, name string) (uint64, bool) {
	f, ok := l.Field(name)
	if !ok {
		return 0, false
	}

	return (word >> f.Offset) & mask(f.Width), true
}

// Set returns word with the field called name replaced by value. It returns
// false, and word unchanged, if the field does not exist or value does not
// fit its width.
func (l *Layout) Set(word uint64, name string, value uint64) (uint64, bool) {
	f, ok := l.Field(name)
	if !ok || value&^mask(f.Width) != 0 {
		return word, false
	}
	m := mask(f.Width) << f.Offset

	return (word &^ m) | (value << f.Offset), true
}
