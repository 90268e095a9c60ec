package engine

import (
	"math"
	"testing"

	"github.com/archgeo/polygonize/internal/geom"
)

func coord(x, y float64) geom.Coordinate { return geom.Coordinate{X: x, Y: y} }

func lineString(pts ...geom.Coordinate) Geometry {
	return Geometry{Kind: KindLineString, Coords: pts}
}

func closeRing(pts ...geom.Coordinate) []geom.Coordinate {
	return append(append([]geom.Coordinate{}, pts...), pts[0])
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestPolygonizeTriangle(t *testing.T) {
	e := New(DefaultOptions())
	e.AddGeometry(lineString(coord(0, 0), coord(10, 0)))
	e.AddGeometry(lineString(coord(10, 0), coord(0, 10)))
	e.AddGeometry(lineString(coord(0, 10), coord(0, 0)))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}

	found := false
	for _, p := range polys {
		if almostEqual(p.Exterior.UnsignedArea(), 50, 1e-6) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a polygon of area 50, got %+v", polys)
	}
}

func TestPolygonizeDonut(t *testing.T) {
	e := New(DefaultOptions())
	e.AddGeometry(lineString(
		coord(0, 0), coord(10, 0), coord(10, 10), coord(0, 10), coord(0, 0),
	))
	e.AddGeometry(lineString(
		coord(2, 2), coord(2, 8), coord(8, 8), coord(8, 2), coord(2, 2),
	))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}

	var sawDonut, sawInner bool
	for _, p := range polys {
		area := p.Exterior.UnsignedArea()
		if almostEqual(area, 100, 1e-6) && len(p.Holes) == 1 && almostEqual(p.Holes[0].UnsignedArea(), 36, 1e-6) {
			sawDonut = true
		}
		if almostEqual(area, 36, 1e-6) && len(p.Holes) == 0 {
			sawInner = true
		}
	}
	if !sawDonut {
		t.Errorf("expected a donut polygon (area 100, one hole of area 36), got %+v", polys)
	}
	if !sawInner {
		t.Errorf("expected a simple inner polygon of area 36, got %+v", polys)
	}
}

func TestPolygonizeBowtieWithNoding(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	e := New(opts)
	e.AddGeometry(lineString(
		coord(0, 0), coord(10, 10), coord(0, 10), coord(10, 0), coord(0, 0),
	))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}

	count := 0
	for _, p := range polys {
		if almostEqual(p.Exterior.UnsignedArea(), 25, 1e-6) {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected two triangles of area 25, got %d matching of %+v", count, polys)
	}
}

func TestPolygonizeGrid3x3(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	e := New(opts)
	for i := 0; i <= 3; i++ {
		e.AddGeometry(lineString(coord(float64(i), 0), coord(float64(i), 3)))
	}
	for j := 0; j <= 3; j++ {
		e.AddGeometry(lineString(coord(0, float64(j)), coord(3, float64(j))))
	}

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}

	unitCells := 0
	for _, p := range polys {
		if almostEqual(p.Exterior.UnsignedArea(), 1, 1e-6) {
			unitCells++
		}
	}
	if unitCells != 9 {
		t.Fatalf("expected 9 unit cells in a 3x3 grid, got %d of %+v", unitCells, polys)
	}
}

func TestPolygonizeCollinearOverlapWithNoding(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	e := New(opts)
	e.AddGeometry(lineString(coord(0, 0), coord(10, 0)))
	e.AddGeometry(lineString(coord(5, 0), coord(15, 0)))
	e.AddGeometry(lineString(coord(10, 0), coord(10, 10), coord(5, 10), coord(5, 0)))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}

	found := false
	for _, p := range polys {
		if almostEqual(p.Exterior.UnsignedArea(), 50, 1e-6) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a rectangle of area 50, got %+v", polys)
	}
}

func TestPolygonizeNodedDanglingSegmentYieldsNoPolygonsWithoutError(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	e := New(opts)
	e.AddGeometry(lineString(coord(0, 0), coord(1, 1)))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("expected a lone dangling segment to produce no error, got %v", err)
	}
	if len(polys) != 0 {
		t.Fatalf("expected no polygons from a single dangling segment, got %+v", polys)
	}
}

func TestPolygonizeRejectsNonFiniteCoordinate(t *testing.T) {
	e := New(DefaultOptions())
	err := e.AddGeometry(lineString(coord(0, 0), coord(math.NaN(), 1)))
	if err == nil {
		t.Fatal("expected InvalidGeometryError, got nil")
	}
	if _, ok := err.(*InvalidGeometryError); !ok {
		t.Fatalf("expected *InvalidGeometryError, got %T", err)
	}
}

func TestPolygonizeNestedHoles(t *testing.T) {
	e := New(DefaultOptions())
	e.AddGeometry(lineString(
		coord(0, 0), coord(20, 0), coord(20, 20), coord(0, 20), coord(0, 0),
	))
	e.AddGeometry(lineString(
		coord(4, 4), coord(4, 16), coord(16, 16), coord(16, 4), coord(4, 4),
	))
	e.AddGeometry(lineString(
		coord(8, 8), coord(8, 12), coord(12, 12), coord(12, 8), coord(8, 8),
	))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	if len(polys) == 0 {
		t.Fatal("expected at least one polygon from nested rings")
	}
}

func TestPolygonizeTouchingPolygonsKeepDistinctShells(t *testing.T) {
	opts := DefaultOptions()
	opts.NodeInput = true
	e := New(opts)
	e.AddGeometry(lineString(
		coord(0, 0), coord(5, 0), coord(5, 5), coord(0, 5), coord(0, 0),
	))
	e.AddGeometry(lineString(
		coord(5, 0), coord(10, 0), coord(10, 5), coord(5, 5), coord(5, 0),
	))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}

	count := 0
	for _, p := range polys {
		if almostEqual(p.Exterior.UnsignedArea(), 25, 1e-6) {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected two adjacent 5x5 squares of area 25 each, got %d of %+v", count, polys)
	}
}

func TestPolygonizeDegenerateSegmentYieldsNoPolygons(t *testing.T) {
	var diagnostics []string
	opts := DefaultOptions()
	opts.OnDiagnostic = func(msg string) { diagnostics = append(diagnostics, msg) }
	e := New(opts)
	e.AddGeometry(lineString(coord(0, 0), coord(0, 0)))

	polys, err := e.Polygonize()
	if err != nil {
		t.Fatalf("Polygonize: %v", err)
	}
	if len(polys) != 0 {
		t.Fatalf("expected no polygons from degenerate input, got %+v", polys)
	}
}
