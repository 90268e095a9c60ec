// Package snap implements coordinate snap-rounding: quantizing a coordinate
// onto a regular grid and deriving a stable, hashable identity from it.
package snap

import (
	"math"

	"github.com/archgeo/polygonize/internal/geom"
)

// Round snaps c onto a grid of the given size: each component is rounded to
// the nearest multiple of grid. A non-positive grid size disables snapping
// and returns c unchanged.
func Round(c geom.Coordinate, grid float64) geom.Coordinate {
	if grid <= 0 {
		return c
	}
	return geom.Coordinate{
		X: math.Round(c.X/grid) * grid,
		Y: math.Round(c.Y/grid) * grid,
	}
}

// CoordKey is a hashable, bit-exact identity for a coordinate: two
// coordinates have equal keys iff they are bit-identical in both
// components, which after Round means they snapped to the same grid cell.
type CoordKey struct {
	xBits, yBits uint64
}

// Key derives the hashable identity of c.
func Key(c geom.Coordinate) CoordKey {
	return CoordKey{
		xBits: math.Float64bits(c.X),
		yBits: math.Float64bits(c.Y),
	}
}
