package bits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMSB(t *testing.T) {
	tests := []struct {
		v    uint32
		want uint
	}{
		{0b0000, 0},
		{0b0001, 1},
		{0b0010, 2},
		{0b0011, 2},
		{0b0100, 3},
		{0b0111, 3},
		{0b1000, 4},
		{0b1111, 4},
		{10, 4},
		{101, 7},
		{127, 7},
		{128, 8},
		{0b0100_0000_0000, 11},
		{0b0010_0000_0000_0000, 14},
		{0b1000_0000_0000_0000, 16},
		{0xf000_0000, 32},
		{0xffff_0000, 32},
		{0xffff_ffff, 32},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, MSB(tt.v), "MSB(%#b)", tt.v)
		require.Equal(t, tt.want, MSB64(uint64(tt.v)), "MSB64(%#b)", tt.v)
	}
	require.Equal(t, uint(64), MSB64(^uint64(0)))
}

func TestNMask(t *testing.T) {
	require.Equal(t, uint32(0), NMask(0))
	require.Equal(t, uint32(1), NMask(1))
	require.Equal(t, uint32(0x7f), NMask(7))
	require.Equal(t, uint32(0x7fff_ffff), NMask(31))
	require.Equal(t, ^uint32(0), NMask(32))
	require.Equal(t, ^uint32(0), NMask(33))
}

func TestDivCeil(t *testing.T) {
	require.Equal(t, 0, DivCeil(0, 32))
	require.Equal(t, 1, DivCeil(1, 32))
	require.Equal(t, 1, DivCeil(32, 32))
	require.Equal(t, 2, DivCeil(33, 32))
	require.Equal(t, 49, DivCeil(7*224, 32))
}

func TestNextPow2(t *testing.T) {
	require.Equal(t, 1, NextPow2(0))
	require.Equal(t, 1, NextPow2(1))
	require.Equal(t, 2, NextPow2(2))
	require.Equal(t, 4, NextPow2(3))
	require.Equal(t, 8, NextPow2(5))
	require.Equal(t, 8, NextPow2(8))
	require.Equal(t, 16, NextPow2(9))
}
