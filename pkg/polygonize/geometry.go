package polygonize

import (
	"github.com/archgeo/polygonize/internal/engine"
	"github.com/archgeo/polygonize/internal/geom"
)

// Coordinate is a planar (x, y) point.
type Coordinate = geom.Coordinate

// GeometryKind enumerates the input shapes Polygonizer.AddGeometry
// accepts.
type GeometryKind = engine.GeometryKind

const (
	KindPoint              = engine.KindPoint
	KindLineSegment        = engine.KindLineSegment
	KindLineString         = engine.KindLineString
	KindMultiLineString    = engine.KindMultiLineString
	KindPolygon            = engine.KindPolygon
	KindMultiPolygon       = engine.KindMultiPolygon
	KindGeometryCollection = engine.KindGeometryCollection
)

// Geometry is one input shape. Which fields matter depends on Kind; see
// the engine.Geometry doc comment for the full breakdown.
type Geometry = engine.Geometry
