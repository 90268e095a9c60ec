package geom

// Ring is a closed sequence of coordinates produced by a planar-graph walk.
// By convention the first and last coordinates are equal.
type Ring []Coordinate

// SignedArea returns the shoelace signed area of the ring. Positive area
// means the ring winds counter-clockwise (a shell); negative means
// clockwise (a hole).
func (r Ring) SignedArea() float64 {
	if len(r) < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < len(r)-1; i++ {
		p, q := r[i], r[i+1]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// UnsignedArea returns the absolute value of SignedArea.
func (r Ring) UnsignedArea() float64 {
	a := r.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// Reversed returns a copy of the ring with its vertex order reversed,
// flipping its winding direction. Used to promote an orphan CW ring to a
// shell.
func (r Ring) Reversed() Ring {
	out := make(Ring, len(r))
	for i, c := range r {
		out[len(r)-1-i] = c
	}
	return out
}

// BoundingRect returns the axis-aligned bounding rectangle of the ring's
// vertices.
func (r Ring) BoundingRect() Rect {
	if len(r) == 0 {
		return Rect{}
	}
	rect := Rect{MinX: r[0].X, MaxX: r[0].X, MinY: r[0].Y, MaxY: r[0].Y}
	for _, c := range r[1:] {
		if c.X < rect.MinX {
			rect.MinX = c.X
		}
		if c.X > rect.MaxX {
			rect.MaxX = c.X
		}
		if c.Y < rect.MinY {
			rect.MinY = c.Y
		}
		if c.Y > rect.MaxY {
			rect.MaxY = c.Y
		}
	}
	return rect
}

// Centroid returns the arithmetic mean of the ring's vertices (excluding
// the closing duplicate), used as a representative interior point for
// containment testing. It is not the area centroid, but for the convex or
// mildly concave rings produced by polygonization it reliably lands inside
// the ring, which is all containment testing requires.
func (r Ring) Centroid() Coordinate {
	n := len(r)
	if n > 1 && r[0].ExactEqual(r[n-1]) {
		n--
	}
	if n == 0 {
		return Coordinate{}
	}
	var sx, sy float64
	for _, c := range r[:n] {
		sx += c.X
		sy += c.Y
	}
	return Coordinate{X: sx / float64(n), Y: sy / float64(n)}
}

// ContainsPoint reports whether (x, y) lies inside the ring using the
// standard even-odd ray-casting rule: cast a ray in the +X direction and
// count edge crossings.
func (r Ring) ContainsPoint(x, y float64) bool {
	inside := false
	n := len(r)
	if n < 3 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, yj := r[i].Y, r[j].Y
		if (yi > y) != (yj > y) {
			xi, xj := r[i].X, r[j].X
			xIntersect := xi + (y-yi)/(yj-yi)*(xj-xi)
			if x < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// ContainsRing reports whether r's bounding rectangle contains other's and
// other's vertex centroid (see Centroid) lies inside r. This is a cheap
// approximation to full polygon containment (it does not check for edge
// crossings between the two rings), adequate for the hole assignor where
// candidates have already been produced by the same noded planar graph and
// therefore cannot partially overlap without sharing graph edges.
func (r Ring) ContainsRing(other Ring) bool {
	if !r.BoundingRect().ContainsRect(other.BoundingRect()) {
		return false
	}
	c := other.Centroid()
	return r.ContainsPoint(c.X, c.Y)
}
