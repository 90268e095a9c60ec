package geom

// Rect is an axis-aligned planar bounding rectangle, adapted from the
// geographic Bounds type used to index charts; here it bounds segments and
// rings in plane coordinates instead of longitude/latitude.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether the point (x, y) lies within the rectangle,
// inclusive of the boundary.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Intersects reports whether r and other overlap (including touching at an
// edge or corner).
func (r Rect) Intersects(other Rect) bool {
	return !(other.MaxX < r.MinX ||
		other.MinX > r.MaxX ||
		other.MaxY < r.MinY ||
		other.MinY > r.MaxY)
}

// ContainsRect reports whether r fully contains other.
func (r Rect) ContainsRect(other Rect) bool {
	return other.MinX >= r.MinX && other.MaxX <= r.MaxX &&
		other.MinY >= r.MinY && other.MaxY <= r.MaxY
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}

// Equal reports bit-exact equality of the four bounds. Orphan-ring
// promotion's twin test uses ApproxEqual instead.
func (r Rect) Equal(other Rect) bool {
	return r.MinX == other.MinX && r.MinY == other.MinY &&
		r.MaxX == other.MaxX && r.MaxY == other.MaxY
}

// ApproxEqual reports whether r and other match within tol on every edge,
// used where exact-bit matching is too strict (e.g. comparing rectangles
// rebuilt from reordered ring coordinates).
func (r Rect) ApproxEqual(other Rect, tol float64) bool {
	return absf(r.MinX-other.MinX) <= tol && absf(r.MinY-other.MinY) <= tol &&
		absf(r.MaxX-other.MaxX) <= tol && absf(r.MaxY-other.MaxY) <= tol
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
