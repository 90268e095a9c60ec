package predicates

import "github.com/archgeo/polygonize/internal/geom"

// Kind tags the variant of an Intersection result.
type Kind int

const (
	// NoIntersection means the segments are disjoint.
	NoIntersection Kind = iota
	// PointIntersection means the segments meet at exactly one point.
	PointIntersection
	// CollinearIntersection means the segments lie on the same line and
	// overlap in a sub-segment.
	CollinearIntersection
)

// Intersection is the result of Intersect: a discriminated union over
// NoIntersection, PointIntersection (with Point and Proper), and
// CollinearIntersection (with Overlap).
type Intersection struct {
	Kind    Kind
	Point   geom.Coordinate
	Proper  bool // true if the intersection is interior to both segments
	Overlap geom.Segment
}

// Intersect classifies how s1 and s2 relate: disjoint, crossing/touching at
// a single point, or collinear-overlapping. Orientation tests (Orient) make
// the topological classification exact; the intersection point itself (for
// PointIntersection) is computed with ordinary floating-point arithmetic,
// consistent with this system's floating-point-with-snap-tolerance model.
func Intersect(s1, s2 geom.Segment) Intersection {
	o1 := Orient(s1.A, s1.B, s2.A)
	o2 := Orient(s1.A, s1.B, s2.B)
	o3 := Orient(s2.A, s2.B, s1.A)
	o4 := Orient(s2.A, s2.B, s1.B)

	if o1 == Collinear && o2 == Collinear && o3 == Collinear && o4 == Collinear {
		return intersectCollinear(s1, s2)
	}

	if o1 != o2 && o3 != o4 {
		p, ok := lineLinePoint(s1, s2)
		if !ok {
			return Intersection{Kind: NoIntersection}
		}
		proper := o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear
		return Intersection{Kind: PointIntersection, Point: p, Proper: proper}
	}

	// One segment's endpoint lies exactly on the other segment's line but
	// the general crossing test didn't fire (shared-endpoint touch cases).
	if o1 == Collinear && onSegment(s1.A, s1.B, s2.A) {
		return Intersection{Kind: PointIntersection, Point: s2.A, Proper: false}
	}
	if o2 == Collinear && onSegment(s1.A, s1.B, s2.B) {
		return Intersection{Kind: PointIntersection, Point: s2.B, Proper: false}
	}
	if o3 == Collinear && onSegment(s2.A, s2.B, s1.A) {
		return Intersection{Kind: PointIntersection, Point: s1.A, Proper: false}
	}
	if o4 == Collinear && onSegment(s2.A, s2.B, s1.B) {
		return Intersection{Kind: PointIntersection, Point: s1.B, Proper: false}
	}

	return Intersection{Kind: NoIntersection}
}

// onSegment assumes p is collinear with a-b and reports whether it falls
// within the segment's bounding rectangle (and therefore on the segment).
func onSegment(a, b, p geom.Coordinate) bool {
	return p.X >= min2(a.X, b.X) && p.X <= max2(a.X, b.X) &&
		p.Y >= min2(a.Y, b.Y) && p.Y <= max2(a.Y, b.Y)
}

// lineLinePoint computes the intersection point of the infinite lines
// through s1 and s2, given the caller has already established they cross.
func lineLinePoint(s1, s2 geom.Segment) (geom.Coordinate, bool) {
	x1, y1, x2, y2 := s1.A.X, s1.A.Y, s1.B.X, s1.B.Y
	x3, y3, x4, y4 := s2.A.X, s2.A.Y, s2.B.X, s2.B.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return geom.Coordinate{}, false
	}

	a := x1*y2 - y1*x2
	b := x3*y4 - y3*x4
	px := (a*(x3-x4) - (x1-x2)*b) / denom
	py := (a*(y3-y4) - (y1-y2)*b) / denom
	return geom.Coordinate{X: px, Y: py}, true
}

// intersectCollinear handles the case where both segments lie on the same
// line: project onto whichever axis has more spread, sort the four
// endpoints along it, and report the overlapping sub-segment if any.
func intersectCollinear(s1, s2 geom.Segment) Intersection {
	useX := absF(s1.B.X-s1.A.X) >= absF(s1.B.Y-s1.A.Y)

	coord := func(c geom.Coordinate) float64 {
		if useX {
			return c.X
		}
		return c.Y
	}

	lo1, hi1 := s1.A, s1.B
	if coord(lo1) > coord(hi1) {
		lo1, hi1 = hi1, lo1
	}
	lo2, hi2 := s2.A, s2.B
	if coord(lo2) > coord(hi2) {
		lo2, hi2 = hi2, lo2
	}

	start := lo1
	if coord(lo2) > coord(start) {
		start = lo2
	}
	end := hi1
	if coord(hi2) < coord(end) {
		end = hi2
	}

	if coord(start) > coord(end) {
		return Intersection{Kind: NoIntersection}
	}
	if coord(start) == coord(end) {
		return Intersection{Kind: PointIntersection, Point: start, Proper: false}
	}
	return Intersection{Kind: CollinearIntersection, Overlap: geom.Segment{A: start, B: end}}
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
