package polygonize

import (
	"math"
	"testing"
)

func pt(x, y float64) Coordinate { return Coordinate{X: x, Y: y} }

func line(pts ...Coordinate) Geometry {
	return Geometry{Kind: KindLineString, Coords: pts}
}

func approx(a, b float64) bool { return math.Abs(a-b) <= 1e-6 }

func area(ring []Coordinate) float64 {
	var sum float64
	for i := 0; i < len(ring); i++ {
		j := (i + 1) % len(ring)
		sum += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	return math.Abs(sum) / 2
}

func TestTriangle(t *testing.T) {
	p := New()
	p.AddGeometry(line(pt(0, 0), pt(10, 0)))
	p.AddGeometry(line(pt(10, 0), pt(0, 10)))
	p.AddGeometry(line(pt(0, 10), pt(0, 0)))

	polys, err := p.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	found := false
	for _, poly := range polys {
		if approx(area(poly.Exterior), 50) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a polygon of area 50, got %+v", polys)
	}
}

func TestDonut(t *testing.T) {
	p := New()
	p.AddGeometry(line(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10), pt(0, 0)))
	p.AddGeometry(line(pt(2, 2), pt(2, 8), pt(8, 8), pt(8, 2), pt(2, 2)))

	polys, err := p.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}

	var sawDonut, sawInner bool
	for _, poly := range polys {
		a := area(poly.Exterior)
		if approx(a, 100) && len(poly.Holes) == 1 && approx(area(poly.Holes[0]), 36) {
			sawDonut = true
		}
		if approx(a, 36) && len(poly.Holes) == 0 {
			sawInner = true
		}
	}
	if !sawDonut || !sawInner {
		t.Fatalf("expected a donut (area 100, hole 36) and a simple square (area 36), got %+v", polys)
	}
}

func TestBowtieWithNoding(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	p := NewWithOptions(opts)
	p.AddGeometry(line(pt(0, 0), pt(10, 10), pt(0, 10), pt(10, 0), pt(0, 0)))

	polys, err := p.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	count := 0
	for _, poly := range polys {
		if approx(area(poly.Exterior), 25) {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected two triangles of area 25, got %d of %+v", count, polys)
	}
}

func TestGrid3x3(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	p := NewWithOptions(opts)
	for i := 0; i <= 3; i++ {
		p.AddGeometry(line(pt(float64(i), 0), pt(float64(i), 3)))
	}
	for j := 0; j <= 3; j++ {
		p.AddGeometry(line(pt(0, float64(j)), pt(3, float64(j))))
	}

	polys, err := p.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	cells := 0
	for _, poly := range polys {
		if approx(area(poly.Exterior), 1) {
			cells++
		}
	}
	if cells != 9 {
		t.Fatalf("expected 9 unit cells, got %d of %+v", cells, polys)
	}
}

func TestOverlappingCirclesApproximation(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	p := NewWithOptions(opts)

	const n = 24
	octagon := func(cx, cy, r float64) []Coordinate {
		pts := make([]Coordinate, 0, n+1)
		for i := 0; i <= n; i++ {
			a := 2 * math.Pi * float64(i) / n
			pts = append(pts, pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
		}
		return pts
	}
	p.AddGeometry(line(octagon(0, 0, 5)...))
	p.AddGeometry(line(octagon(6, 0, 5)...))

	polys, err := p.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	if len(polys) == 0 {
		t.Fatal("expected at least one polygon from overlapping circle approximations")
	}
}

func TestDuplicateEdgeRemoval(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	p := NewWithOptions(opts)
	p.AddGeometry(line(pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10), pt(0, 0)))
	p.AddGeometry(line(pt(0, 0), pt(10, 0)))

	polys, err := p.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	found := false
	for _, poly := range polys {
		if approx(area(poly.Exterior), 100) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the square to survive a duplicated edge, got %+v", polys)
	}
}

func TestRejectsNonFiniteCoordinate(t *testing.T) {
	p := New()
	err := p.AddGeometry(line(pt(0, 0), pt(math.Inf(1), 1)))
	if err == nil {
		t.Fatal("expected an error for a non-finite coordinate")
	}
}

func TestPolygonFlattening(t *testing.T) {
	p := New()
	err := p.AddGeometry(Geometry{
		Kind: KindPolygon,
		Rings: [][]Coordinate{
			{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10), pt(0, 0)},
		},
	})
	if err != nil {
		t.Fatalf("AddGeometry: %v", err)
	}
	polys, err := p.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	found := false
	for _, poly := range polys {
		if approx(area(poly.Exterior), 100) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a polygon of area 100 from a Polygon geometry, got %+v", polys)
	}
}
