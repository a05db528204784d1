package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size     int64
		from, to Unit
		want     int64
	}{
		{1, Byte, Bit, 8},
		{1, Kilobyte, Byte, 1024},
		{3, Gigabyte, Megabyte, 3072},
		{2048, Byte, Kilobyte, 2},
		{1023, Byte, Kilobyte, 0},
		{-2048, Byte, Kilobyte, -2},
		{1, Petabyte, Byte, 1 << 50},
		{5, Megabyte, Megabyte, 5},
		{math.MaxInt64, Petabyte, Bit, math.MaxInt64},
		{math.MinInt64 / 2, Kilobyte, Bit, math.MinInt64},
		{math.MaxInt64, Bit, Petabyte, math.MaxInt64 / (8 << 50)},
	}
	for _, tt := range tests {
		got, err := Convert(tt.size, tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d %v -> %v", tt.size, tt.from, tt.to)
	}
}

func TestConvert_UnknownUnit(t *testing.T) {
	t.Parallel()

	_, err := Convert(1, Unit(42), Byte)
	require.Error(t, err)
	_, err = Convert(1, Byte, Unit(-1))
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := map[uint64]string{
		0:              "0 B",
		5:              "5 B",
		1023:           "1023 B",
		1024:           "1.0 KB",
		1536:           "1.5 KB",
		64 << 20:       "64.0 MB",
		3 << 30:        "3.0 GB",
		1 << 40:        "1.0 TB",
		2048 << 50:     "2048.0 PB",
		math.MaxUint64: "16384.0 PB",
	}
	for in, want := range tests {
		assert.Equal(t, want, Format(in), "%d", in)
	}
}

func TestFormat_UnitBoundaries(t *testing.T) {
	t.Parallel()

	for u := Kilobyte; u <= Petabyte; u++ {
		one, err := Convert(1, u, Byte)
		require.NoError(t, err)
		assert.Equal(t, "1.0 "+u.String(), Format(uint64(one)), "%v", u)
		assert.NotContains(t, Format(uint64(one)-1), u.String(), "%v", u)
	}
}

func TestUnitString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "KB", Kilobyte.String())
	assert.Equal(t, "b", Bit.String())
	assert.Equal(t, "Unit(9)", Unit(9).String())
}
