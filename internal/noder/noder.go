// Package noder implements iterated snap-rounding: splitting a set of
// input segments at every mutual intersection until no two segments cross
// except at shared endpoints (or the iteration budget runs out).
package noder

import (
	"sort"

	"github.com/archgeo/polygonize/internal/geom"
	"github.com/archgeo/polygonize/internal/predicates"
	"github.com/archgeo/polygonize/internal/snap"
)

// DefaultMaxIter is the default iteration budget for Noder.Node.
const DefaultMaxIter = 10

// Noder splits a set of segments until pairwise disjoint except at shared
// endpoints, via iterated snap-rounding accelerated by a per-iteration
// R-tree over segment bounds.
type Noder struct {
	// GridSize is the snap grid size; 0 disables snapping.
	GridSize float64
	// MaxIter bounds the number of split/rebuild iterations. If the limit
	// is reached with splits still pending, Node returns whatever has been
	// produced so far (see package engine for how this surfaces as
	// NodingFailureError).
	MaxIter int
}

// New returns a Noder with the given grid size and DefaultMaxIter.
func New(gridSize float64) *Noder {
	return &Noder{GridSize: gridSize, MaxIter: DefaultMaxIter}
}

// Node runs iterated snap-rounding on segs and returns the noded result.
// Stable reports whether the loop terminated because no more splits were
// found (true) or because MaxIter was exhausted with splits still pending
// (false).
func (n *Noder) Node(segs []geom.Segment) (result []geom.Segment, stable bool) {
	maxIter := n.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	lines := make([]geom.Segment, 0, len(segs))
	for _, s := range segs {
		s.A = snap.Round(s.A, n.GridSize)
		s.B = snap.Round(s.B, n.GridSize)
		if !s.IsDegenerate() {
			lines = append(lines, s)
		}
	}

	stable = false
	for iter := 0; iter < maxIter; iter++ {
		splits := n.findSplits(lines)
		if len(splits) == 0 {
			stable = true
			break
		}
		lines = rebuild(lines, splits)
	}

	return dedupeAndNormalize(lines), stable
}

// findSplits builds an R-tree over the current segments and, for every
// candidate pair whose bounds overlap, classifies their intersection and
// records any split point that lies strictly interior to either segment.
func (n *Noder) findSplits(lines []geom.Segment) map[int][]geom.Coordinate {
	splits := make(map[int][]geom.Coordinate)
	if len(lines) < 2 {
		return splits
	}

	idx := newSegmentIndex(lines)
	for _, pair := range idx.CandidatePairs() {
		i, j := pair[0], pair[1]
		s1, s2 := lines[i], lines[j]

		res := predicates.Intersect(s1, s2)
		switch res.Kind {
		case predicates.PointIntersection:
			p := snap.Round(res.Point, n.GridSize)
			n.addSplitIfInterior(splits, i, s1, p)
			n.addSplitIfInterior(splits, j, s2, p)
		case predicates.CollinearIntersection:
			a := snap.Round(res.Overlap.A, n.GridSize)
			b := snap.Round(res.Overlap.B, n.GridSize)
			n.addSplitIfInterior(splits, i, s1, a)
			n.addSplitIfInterior(splits, i, s1, b)
			n.addSplitIfInterior(splits, j, s2, a)
			n.addSplitIfInterior(splits, j, s2, b)
		}
	}
	return splits
}

func (n *Noder) addSplitIfInterior(splits map[int][]geom.Coordinate, idx int, s geom.Segment, p geom.Coordinate) {
	if p.Equal(s.A) || p.Equal(s.B) {
		return
	}
	splits[idx] = append(splits[idx], p)
}

// rebuild replaces each split segment with its ordered chain of
// sub-segments, and passes untouched segments through unchanged.
func rebuild(lines []geom.Segment, splits map[int][]geom.Coordinate) []geom.Segment {
	out := make([]geom.Segment, 0, len(lines)*2)
	for i, s := range lines {
		pts, ok := splits[i]
		if !ok {
			out = append(out, s)
			continue
		}

		all := make([]geom.Coordinate, 0, len(pts)+2)
		all = append(all, s.A, s.B)
		all = append(all, pts...)

		sort.Slice(all, func(a, b int) bool {
			return all[a].DistanceSquared(s.A) < all[b].DistanceSquared(s.A)
		})
		all = dedupeCoords(all)

		for k := 0; k+1 < len(all); k++ {
			sub := geom.Segment{A: all[k], B: all[k+1]}
			if !sub.IsDegenerate() {
				out = append(out, sub)
			}
		}
	}
	return out
}

func dedupeCoords(coords []geom.Coordinate) []geom.Coordinate {
	out := coords[:0:0]
	for _, c := range coords {
		if len(out) > 0 && out[len(out)-1].Equal(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// dedupeAndNormalize normalizes every segment's endpoint order and removes
// duplicate geometries, which arise because a crossing at a shared node
// produces the same sub-segment from both original inputs.
func dedupeAndNormalize(lines []geom.Segment) []geom.Segment {
	normalized := make([]geom.Segment, 0, len(lines))
	for _, s := range lines {
		if !s.IsDegenerate() {
			normalized = append(normalized, s.Normalized())
		}
	}

	sort.Slice(normalized, func(i, j int) bool {
		a, b := normalized[i], normalized[j]
		if a.A.X != b.A.X {
			return a.A.X < b.A.X
		}
		if a.A.Y != b.A.Y {
			return a.A.Y < b.A.Y
		}
		if a.B.X != b.B.X {
			return a.B.X < b.B.X
		}
		return a.B.Y < b.B.Y
	})

	out := normalized[:0:0]
	for _, s := range normalized {
		if len(out) > 0 {
			last := out[len(out)-1]
			if last.A.Equal(s.A) && last.B.Equal(s.B) {
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
