package planargraph

import (
	"math"

	"github.com/archgeo/polygonize/internal/geom"
)

// mortonKey maps a coordinate to a 64-bit Z-order code, used to give
// BulkLoad's endpoint sort spatial locality (nearby points land near each
// other in the sorted array, which keeps the later binary search and the
// node array itself cache-friendly).
//
// Each coordinate is first mapped to a 32-bit key that preserves float
// ordering (flip the sign bit for positive values, invert all bits for
// negative ones — the standard trick for turning IEEE-754 bit patterns
// into a monotonic unsigned order), then the two 32-bit keys are bit-
// interleaved.
func mortonKey(c geom.Coordinate) uint64 {
	return interleave(orderedBits(c.X), orderedBits(c.Y))
}

func orderedBits(f float64) uint32 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		bits = ^bits
	} else {
		bits |= 1 << 63
	}
	return uint32(bits >> 32)
}

func interleave(x, y uint32) uint64 {
	return spread(uint64(x)) | (spread(uint64(y)) << 1)
}

func spread(v uint64) uint64 {
	v &= 0xFFFFFFFF
	v = (v | (v << 16)) & 0x0000FFFF0000FFFF
	v = (v | (v << 8)) & 0x00FF00FF00FF00FF
	v = (v | (v << 4)) & 0x0F0F0F0F0F0F0F0F
	v = (v | (v << 2)) & 0x3333333333333333
	v = (v | (v << 1)) & 0x5555555555555555
	return v
}
