package fieldlayout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		max  uint64
		want uint
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{10, 4},
		{101, 7},
		{1 << 15, 16},
		{math.MaxUint32, 32},
		{math.MaxUint64, 64},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Width(tt.max), "max %d", tt.max)
	}
}

func TestLayout(t *testing.T) {
	var l Layout

	off, err := l.Add("flag", Width(1))
	require.NoError(t, err)
	require.Zero(t, off)

	off, err = l.Add("kind", Width(5))
	require.NoError(t, err)
	require.Equal(t, uint(1), off)

	off, err = l.Add("count", Width(1000))
	require.NoError(t, err)
	require.Equal(t, uint(4), off, "offset is the sum of preceding widths")
	require.Equal(t, uint(14), l.TotalBits())

	offset, ok := l.Offset("count")
	require.True(t, ok)
	require.Equal(t, uint(4), offset)
	_, ok = l.Offset("missing")
	require.False(t, ok)

	require.Equal(t, []Field{
		{Name: "flag", Width: 1, Offset: 0},
		{Name: "kind", Width: 3, Offset: 1},
		{Name: "count", Width: 10, Offset: 4},
	}, l.Fields())

	t.Run("get and set", func(t *testing.T) {
		var word uint64
		word, ok = l.Set(word, "flag", 1)
		require.True(t, ok)
		word, ok = l.Set(word, "kind", 5)
		require.True(t, ok)
		word, ok = l.Set(word, "count", 999)
		require.True(t, ok)
		require.Equal(t, uint64(1|5<<1|999<<4), word)

		v, ok := l.Get(word, "kind")
		require.True(t, ok)
		require.Equal(t, uint64(5), v)

		word, ok = l.Set(word, "kind", 2)
		require.True(t, ok)
		v, _ = l.Get(word, "kind")
		require.Equal(t, uint64(2), v)
		v, _ = l.Get(word, "count")
		require.Equal(t, uint64(999), v, "neighbours untouched")
	})

	t.Run("rejections", func(t *testing.T) {
		same, ok := l.Set(7, "kind", 8)
		require.False(t, ok, "value wider than field")
		require.Equal(t, uint64(7), same)

		_, ok = l.Set(0, "missing", 1)
		require.False(t, ok)
		_, ok = l.Get(0, "missing")
		require.False(t, ok)

		_, err := l.Add("kind", 2)
		require.Error(t, err)

		_, err = l.Add("huge", 51)
		require.Error(t, err)
		_, err = l.Add("rest", 50)
		require.NoError(t, err)
		require.Equal(t, uint(MaxBits), l.TotalBits())
	})
}

func TestLayout_FullWord(t *testing.T) {
	var l Layout
	_, err := l.Add("all", 64)
	require.NoError(t, err)

	word, ok := l.Set(0, "all", math.MaxUint64)
	require.True(t, ok)
	v, _ := l.Get(word, "all")
	require.Equal(t, uint64(math.MaxUint64), v)
}
