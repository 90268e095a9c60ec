package engine

import "github.com/archgeo/polygonize/internal/geom"

// flatten recurses into g and appends every constituent line segment to
// out: LineString becomes its consecutive-point segments, Polygon becomes
// its exterior and interior rings' segments, and the multi-geometry kinds
// recurse over their children. Points are ignored; they contribute no
// segments.
func flatten(g Geometry, out *[]geom.Segment) {
	switch g.Kind {
	case KindPoint:
		return
	case KindLineSegment:
		appendChain(g.Coords, out)
	case KindLineString:
		appendChain(g.Coords, out)
	case KindPolygon:
		for _, ring := range g.Rings {
			appendChain(ring, out)
		}
	case KindMultiLineString, KindMultiPolygon, KindGeometryCollection:
		for _, child := range g.Children {
			flatten(child, out)
		}
	}
}

// appendChain appends the segment between every consecutive pair of
// points in coords.
func appendChain(coords []geom.Coordinate, out *[]geom.Segment) {
	for i := 0; i+1 < len(coords); i++ {
		s := geom.Segment{A: coords[i], B: coords[i+1]}
		if !s.IsDegenerate() {
			*out = append(*out, s)
		}
	}
}
