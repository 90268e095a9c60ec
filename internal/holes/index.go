// Package holes assigns each hole ring to the smallest shell ring that
// geometrically contains it, via an R-tree spatial index over shell
// bounding rectangles plus a point-in-polygon containment check.
package holes

import (
	"github.com/archgeo/polygonize/internal/geom"
	"github.com/dhconnelly/rtreego"
)

// linearScanThreshold is the shell count below which a plain linear scan
// beats building an R-tree at all: R-tree construction and traversal
// overhead dominates for small candidate sets.
const linearScanThreshold = 50

type indexedShell struct {
	ring geom.Ring
	idx  int
}

// Bounds implements rtreego.Spatial.
func (s indexedShell) Bounds() rtreego.Rect {
	b := s.ring.BoundingRect()
	width := b.MaxX - b.MinX
	height := b.MaxY - b.MinY
	if width <= 0 {
		width = 1e-12
	}
	if height <= 0 {
		height = 1e-12
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, height})
	return rect
}

// shellIndex accelerates "which shells might contain this hole" queries,
// mirroring the ChartIndex pattern used to narrow chart loading by
// geographic region: build an R-tree over bounding boxes, then query
// it once per hole instead of scanning every shell.
type shellIndex struct {
	tree   *rtreego.Rtree
	shells []indexedShell
}

func newShellIndex(shells []geom.Ring) *shellIndex {
	idx := &shellIndex{shells: make([]indexedShell, len(shells))}
	tree := rtreego.NewTree(2, 4, 16)
	for i, s := range shells {
		is := indexedShell{ring: s, idx: i}
		idx.shells[i] = is
		tree.Insert(is)
	}
	idx.tree = tree
	return idx
}

// Candidates returns the indices of every shell whose bounding rectangle
// intersects hole's, or every shell index when there are too few shells
// to make the R-tree worthwhile.
func (idx *shellIndex) Candidates(hole geom.Ring) []int {
	if len(idx.shells) < linearScanThreshold {
		all := make([]int, len(idx.shells))
		for i := range idx.shells {
			all[i] = i
		}
		return all
	}

	b := hole.BoundingRect()
	width := b.MaxX - b.MinX
	height := b.MaxY - b.MinY
	if width <= 0 {
		width = 1e-12
	}
	if height <= 0 {
		height = 1e-12
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, height})

	hits := idx.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(indexedShell).idx)
	}
	return out
}
