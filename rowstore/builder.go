package rowstore

import (
	"iter"

	"github.com/arloliu/bitpack/internal/options"
)

// BuilderConfig holds the optional settings of a Builder.
type BuilderConfig struct {
	rows    int
	dataLen int
}

// BuilderOption configures a Builder.
type BuilderOption = options.Option[*BuilderConfig]

// WithCapacity preallocates room for rows rows holding dataLen values in
// total.
func WithCapacity(rows, dataLen int) BuilderOption {
	return options.NoError(func(cfg *BuilderConfig) {
		cfg.rows = max(rows, 0)
		cfg.dataLen = max(dataLen, 0)
	})
}

// Builder accumulates rows and produces a RowStore. It never fails: the row
// ends it records are valid by construction.
//
//	b := rowstore.NewBuilder[int]()
//	b.AddRow(1, 2, 3).AddRow().AddRow(4)
//	store := b.Build() // [[1 2 3] [] [4]]
type Builder[V any] struct {
	ends    []uint32
	data    []V
	lastEnd uint32
	started bool
}

// NewBuilder creates an empty builder.
func NewBuilder[V any](opts ...BuilderOption) *Builder[V] {
	cfg := &BuilderConfig{}
	options.MustApply(cfg, opts...)

	return &Builder[V]{
		ends: make([]uint32, 0, cfg.rows),
		data: make([]V, 0, cfg.dataLen),
	}
}

// AddElem appends elem to the row being built, without closing it. The row is
// closed by the next AddRow, which appends its own values to it.
func (b *Builder[V]) AddElem(elem V) *Builder[V] {
	b.data = append(b.data, elem)
	return b
}

// AddRow appends values and closes the current row.
func (b *Builder[V]) AddRow(values ...V) *Builder[V] {
	b.data = append(b.data, values...)
	b.closeRow()

	return b
}

// AddRowSeq is AddRow for values produced by an iterator.
func (b *Builder[V]) AddRowSeq(values iter.Seq[V]) *Builder[V] {
	for v := range values {
		b.data = append(b.data, v)
	}
	b.closeRow()

	return b
}

// closeRow records the end of the previous row. The end of the last row is
// implied by the length of data, so it is never stored.
func (b *Builder[V]) closeRow() {
	if b.started {
		b.ends = append(b.ends, b.lastEnd)
	}
	b.lastEnd = uint32(len(b.data))
	b.started = true
}

// Build returns a store holding every added row and resets the builder.
//
// A builder with no rows builds a store with a single empty row.
func (b *Builder[V]) Build() *RowStore[V] {
	store := &RowStore[V]{ends: b.ends, data: b.data}
	*b = Builder[V]{}

	return store
}
