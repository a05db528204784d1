// Package units converts and formats storage sizes.
package units

import (
	"fmt"
	"math"
)

// Unit is a storage size unit. Multiples are binary (1 KB = 1024 bytes).
type Unit int

const (
	Bit Unit = iota
	Byte
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
)

// bitsPer holds the number of bits in one of each unit
var bitsPer = [...]int64{
	Bit:      1,
	Byte:     8,
	Kilobyte: 8 << 10,
	Megabyte: 8 << 20,
	Gigabyte: 8 << 30,
	Terabyte: 8 << 40,
	Petabyte: 8 << 50,
}

var symbols = [...]string{
	Bit:      "b",
	Byte:     "B",
	Kilobyte: "KB",
	Megabyte: "MB",
	Gigabyte: "GB",
	Terabyte: "TB",
	Petabyte: "PB",
}

func (u Unit) valid() bool {
	return u >= Bit && u <= Petabyte
}

func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return symbols[u]
}

// Convert expresses size in from units as a whole number of to units.
// Results that do not fit an int64 saturate at math.MaxInt64 or math.MinInt64;
// downward conversions truncate toward zero.
func Convert(size int64, from, to Unit) (int64, error) {
	if !from.valid() || !to.valid() {
		return 0, fmt.Errorf("unknown unit conversion %v to %v", from, to)
	}
	f, t := bitsPer[from], bitsPer[to]
	if f >= t {
		return scale(size, f/t), nil
	}
	return size / (t / f), nil
}

// scale multiplies s by m, saturating on overflow
func scale(s, m int64) int64 {
	switch {
	case s > math.MaxInt64/m:
		return math.MaxInt64
	case s < math.MinInt64/m:
		return math.MinInt64
	}
	return s * m
}

// Format renders a byte count with one decimal in the largest unit that
// keeps the value at or above one, e.g. "1.5 KB". Counts below one
// kilobyte are printed exactly.
func Format(bytes uint64) string {
	u := Byte
	for u < Petabyte && bytes >= bytesIn(u+1) {
		u++
	}
	if u == Byte {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(bytesIn(u)), u)
}

// bytesIn is the byte count of one u
func bytesIn(u Unit) uint64 {
	n, _ := Convert(1, u, Byte)
	return uint64(n) //nolint:gosec // one of any unit is at least one byte
}
