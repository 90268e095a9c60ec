package geom

// Segment is an ordered pair of coordinates: an input line segment, or a
// piece of one produced by noding.
type Segment struct {
	A, B Coordinate
}

// IsDegenerate reports whether the segment's endpoints coincide within
// DegenerateEps, i.e. it carries no length worth keeping.
func (s Segment) IsDegenerate() bool {
	return s.A.Equal(s.B)
}

// Normalized returns s with endpoints in a canonical lexicographic order
// (by X, then Y). Noding emits each geometric segment once per traversal
// direction it was discovered from; normalizing before the global
// sort-and-dedup pass collapses those duplicates to one geometry.
func (s Segment) Normalized() Segment {
	if s.A.X > s.B.X || (s.A.X == s.B.X && s.A.Y > s.B.Y) {
		return Segment{A: s.B, B: s.A}
	}
	return s
}

// Bounds returns the axis-aligned bounding rectangle of the segment.
func (s Segment) Bounds() Rect {
	return Rect{
		MinX: min(s.A.X, s.B.X),
		MinY: min(s.A.Y, s.B.Y),
		MaxX: max(s.A.X, s.B.X),
		MaxY: max(s.A.Y, s.B.Y),
	}
}
