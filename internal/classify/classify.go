// Package classify sorts planar-graph rings into shells and holes by
// signed area, then promotes CW rings that have no CCW twin into shells
// of their own.
package classify

import (
	"math"

	"github.com/archgeo/polygonize/internal/geom"
	"github.com/archgeo/polygonize/internal/parallel"
)

// DegenerateAreaEps is the signed-area magnitude below which a ring is
// treated as a noding artifact and dropped rather than classified.
const DegenerateAreaEps = 1e-9

// twinAreaTolerance bounds how closely a hole's area must match a shell's
// to be considered its CCW twin (see promoteOrphans).
const twinAreaTolerance = 1e-6

// Result holds every ring sorted by its signed area, plus whatever CW
// rings were promoted to shells for lacking a twin. Holes are NOT
// filtered against their twins here: assigning each hole to the shell
// that actually contains it (and rejecting a hole's own twin as its
// container) is internal/holes' job, downstream of this package.
type Result struct {
	Shells []geom.Ring
	Holes  []geom.Ring
}

// Classify splits rings into shells (positive signed area) and holes
// (negative signed area), drops degenerate rings, and promotes CW rings
// with no matching CCW twin into shells.
//
// GetEdgeRings walks every face of the planar subdivision from both
// sides, so a simple closed boundary produces one CCW ring (its shell
// reading) and one CW ring (the same boundary walked as the face on its
// other side). Ordinarily that CW ring is either a real hole of some
// larger enclosing shell, or the mirror of its own CCW twin with no
// larger enclosing shell — a lone ring with no surrounding context at
// all (the graph's outermost component, or a dangling-whisker remnant
// that survived pruning). Promoting it recovers that case: a CCW shell
// with no separately-produced mirror, as happens when the walk only ever
// reaches it from one side.
func Classify(rings []geom.Ring, workers int) Result {
	var shells, holes []geom.Ring
	for _, r := range rings {
		area := r.SignedArea()
		switch {
		case math.Abs(area) < DegenerateAreaEps:
			continue
		case area > 0:
			shells = append(shells, r)
		default:
			holes = append(holes, r)
		}
	}
	return promoteOrphans(shells, holes, workers)
}

// promoteOrphans adds a reversed copy of every hole that has no twin
// among shells (matching unsigned area and bounding rectangle within
// tolerance) to the shell list. The twin-less check runs against the
// original shell snapshot so that one hole's promotion never changes
// whether a later hole counts as having a twin, and the per-hole checks
// are independent so they run across workers via parallel.Map.
func promoteOrphans(shells, holes []geom.Ring, workers int) Result {
	hasTwin := parallel.Map(len(holes), workers, func(i int) bool {
		return hasMatchingShell(holes[i], shells)
	})

	for i, h := range holes {
		if !hasTwin[i] {
			shells = append(shells, h.Reversed())
		}
	}
	return Result{Shells: shells, Holes: holes}
}

// hasMatchingShell reports whether some shell is the same boundary as h
// walked the other way: matching unsigned area within tolerance and a
// matching bounding rectangle.
func hasMatchingShell(h geom.Ring, shells []geom.Ring) bool {
	hArea := h.UnsignedArea()
	hRect := h.BoundingRect()
	for _, s := range shells {
		if math.Abs(s.UnsignedArea()-hArea) > twinAreaTolerance {
			continue
		}
		if s.BoundingRect().ApproxEqual(hRect, twinAreaTolerance) {
			return true
		}
	}
	return false
}
