package holes

import (
	"math"

	"github.com/archgeo/polygonize/internal/geom"
	"github.com/archgeo/polygonize/internal/parallel"
)

// areaMargin is the minimum amount by which a candidate shell's area must
// exceed a hole's for the shell to be eligible to contain it. Without
// this, a hole could be assigned to its own CCW twin (same ring, same
// area, walked the other way), which is not a containment relationship.
const areaMargin = 1e-6

// Assignment maps each shell's index (in the shells slice passed to
// Assign) to the holes assigned to it.
type Assignment map[int][]geom.Ring

// Assign finds, for every hole, the smallest shell that both contains its
// bounding rectangle and contains one of its points, and is not the
// hole's own twin (same boundary, opposite winding). A hole with no
// eligible containing shell is dropped — it can only be the reverse walk
// of a shell that has nothing larger around it, and that case is already
// handled by classify.Classify's orphan promotion before Assign ever
// runs.
//
// Each hole's search is independent, so it runs across workers via
// parallel.Map; the index narrows candidates to shells whose bounding
// rectangle could possibly contain the hole's before the expensive
// point-in-polygon check.
func Assign(shells, holeRings []geom.Ring, workers int) Assignment {
	idx := newShellIndex(shells)

	type found struct {
		shellIdx int
		hole     geom.Ring
		ok       bool
	}

	results := parallel.Map(len(holeRings), workers, func(i int) found {
		h := holeRings[i]
		shellIdx, ok := bestContainingShell(idx, shells, h)
		return found{shellIdx: shellIdx, hole: h, ok: ok}
	})

	out := make(Assignment)
	for _, r := range results {
		if r.ok {
			out[r.shellIdx] = append(out[r.shellIdx], r.hole)
		}
	}
	return out
}

func bestContainingShell(idx *shellIndex, shells []geom.Ring, hole geom.Ring) (int, bool) {
	holeArea := hole.UnsignedArea()
	holeRect := hole.BoundingRect()
	testPoint := hole.Centroid()

	best := -1
	bestArea := math.MaxFloat64

	for _, i := range idx.Candidates(hole) {
		shell := shells[i]
		if !shell.BoundingRect().ContainsRect(holeRect) {
			continue
		}
		area := shell.UnsignedArea()
		if area <= holeArea+areaMargin || area >= bestArea {
			continue
		}
		if containsPoint(shell, testPoint.X, testPoint.Y) {
			best = i
			bestArea = area
		}
	}
	return best, best >= 0
}
