package snap

import (
	"testing"

	"github.com/archgeo/polygonize/internal/geom"
)

func TestRoundDisabled(t *testing.T) {
	c := geom.Coordinate{X: 1.23456789, Y: 9.87654321}
	if got := Round(c, 0); got != c {
		t.Fatalf("expected unchanged coordinate, got %+v", got)
	}
}

func TestRoundSnapsToGrid(t *testing.T) {
	c := geom.Coordinate{X: 1.04, Y: 1.06}
	got := Round(c, 0.1)
	if got.X != 1.0 || got.Y != 1.1 {
		t.Fatalf("expected (1.0, 1.1), got %+v", got)
	}
}

func TestKeyStability(t *testing.T) {
	a := Round(geom.Coordinate{X: 1.0000000001, Y: 2.0}, 1e-6)
	b := Round(geom.Coordinate{X: 0.9999999999, Y: 2.0}, 1e-6)
	if Key(a) != Key(b) {
		t.Fatalf("expected snapped coordinates to share a key: %+v vs %+v", a, b)
	}
}
