package geom

import "testing"

func square(x0, y0, x1, y1 float64) Ring {
	return Ring{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
		{X: x0, Y: y0},
	}
}

func TestRingSignedArea(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	if a := ccw.SignedArea(); a != 100 {
		t.Fatalf("expected area 100, got %v", a)
	}

	cw := ccw.Reversed()
	if a := cw.SignedArea(); a != -100 {
		t.Fatalf("expected area -100 for reversed ring, got %v", a)
	}
}

func TestRingContainsPoint(t *testing.T) {
	outer := square(0, 0, 10, 10)
	if !outer.ContainsPoint(5, 5) {
		t.Fatal("expected (5,5) inside square")
	}
	if outer.ContainsPoint(15, 15) {
		t.Fatal("expected (15,15) outside square")
	}
}

func TestRingContainsRing(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(2, 2, 8, 8)
	if !outer.ContainsRing(inner) {
		t.Fatal("expected outer to contain inner")
	}
	if inner.ContainsRing(outer) {
		t.Fatal("inner should not contain outer")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	b := Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}
	c := Rect{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30}

	if !a.Intersects(b) {
		t.Fatal("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Fatal("expected a and c to be disjoint")
	}
}
