package classify

import (
	"testing"

	"github.com/archgeo/polygonize/internal/geom"
)

func c(x, y float64) geom.Coordinate { return geom.Coordinate{X: x, Y: y} }

func square(x0, y0, x1, y1 float64) geom.Ring {
	return geom.Ring{c(x0, y0), c(x1, y0), c(x1, y1), c(x0, y1), c(x0, y0)}
}

func TestClassifyLoneSquareKeepsOneShellAndTwinHole(t *testing.T) {
	shell := square(0, 0, 10, 10)
	mirror := shell.Reversed()

	result := Classify([]geom.Ring{shell, mirror}, 0)
	if len(result.Shells) != 1 {
		t.Fatalf("expected exactly 1 shell (the mirror has a twin, so it isn't promoted), got %d", len(result.Shells))
	}
	if len(result.Holes) != 1 {
		t.Fatalf("expected the mirror ring to still appear in Holes (classify never filters holes), got %d", len(result.Holes))
	}
}

func TestClassifyDonutProducesTwoShellsAndTwoHoles(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(2, 2, 8, 8)

	// GetEdgeRings produces all 4 rings for a two-component donut graph:
	// the outer boundary walked both ways, and the inner boundary walked
	// both ways.
	rings := []geom.Ring{outer, outer.Reversed(), inner, inner.Reversed()}

	result := Classify(rings, 0)
	if len(result.Shells) != 2 {
		t.Fatalf("expected 2 shells (outer + inner, both twinned so neither gets promoted), got %d", len(result.Shells))
	}
	if len(result.Holes) != 2 {
		t.Fatalf("expected 2 holes (outer's and inner's CW mirrors), got %d", len(result.Holes))
	}
}

func TestClassifyPromotesOrphanHoleWithNoTwin(t *testing.T) {
	// A single CW ring with nothing to pair it: no CCW shell was ever
	// produced for this boundary (e.g. its partner walk was pruned as a
	// dangle elsewhere in the graph).
	orphan := square(0, 0, 5, 5).Reversed()

	result := Classify([]geom.Ring{orphan}, 0)
	if len(result.Shells) != 1 {
		t.Fatalf("expected the orphan hole to be promoted to a shell, got %d shells", len(result.Shells))
	}
	if result.Shells[0].SignedArea() <= 0 {
		t.Fatalf("expected the promoted shell to wind CCW, got signed area %v", result.Shells[0].SignedArea())
	}
	if len(result.Holes) != 1 {
		t.Fatalf("expected the orphan to still also appear in Holes, got %d", len(result.Holes))
	}
}

func TestClassifyDropsDegenerateRing(t *testing.T) {
	spike := geom.Ring{c(0, 0), c(1, 1e-10), c(0, 0)}
	result := Classify([]geom.Ring{spike}, 0)
	if len(result.Shells) != 0 || len(result.Holes) != 0 {
		t.Fatalf("expected degenerate ring to be dropped entirely, got %+v", result)
	}
}
