package engine

import "github.com/archgeo/polygonize/internal/geom"

// GeometryKind enumerates the input geometry shapes the orchestrator
// accepts, matching the external-interface list verbatim: point (ignored),
// line-segment, line-string, multi-line-string, polygon, multi-polygon,
// geometry-collection.
type GeometryKind int

const (
	KindPoint GeometryKind = iota
	KindLineSegment
	KindLineString
	KindMultiLineString
	KindPolygon
	KindMultiPolygon
	KindGeometryCollection
)

// Geometry is the orchestrator's input shape. Which fields are meaningful
// depends on Kind:
//
//   - KindPoint: ignored entirely.
//   - KindLineSegment: Coords holds exactly 2 points.
//   - KindLineString: Coords holds 2 or more points.
//   - KindPolygon: Rings holds the exterior ring at index 0 and interior
//     (hole) rings after it; each ring is closed (first point equals
//     last).
//   - KindMultiLineString, KindMultiPolygon, KindGeometryCollection:
//     Children holds the constituent geometries, recursed into during
//     flattening.
type Geometry struct {
	Kind     GeometryKind
	Coords   []geom.Coordinate
	Rings    [][]geom.Coordinate
	Children []Geometry
}
