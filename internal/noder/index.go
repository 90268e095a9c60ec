package noder

import (
	"github.com/archgeo/polygonize/internal/geom"
	"github.com/dhconnelly/rtreego"
)

// indexedSegment wraps a segment with its position in the working slice so
// an rtreego query result can be mapped back to it. The same wrap-in-a-
// small-struct-with-a-Bounds-method shape used to index charts by
// geographic bounds indexes segments by planar bounds here.
type indexedSegment struct {
	seg geom.Segment
	idx int
}

// Bounds implements rtreego.Spatial.
func (s indexedSegment) Bounds() rtreego.Rect {
	b := s.seg.Bounds()
	width := b.MaxX - b.MinX
	height := b.MaxY - b.MinY
	// rtreego requires strictly positive side lengths; degenerate
	// (axis-aligned) segments get an epsilon pad.
	if width <= 0 {
		width = 1e-12
	}
	if height <= 0 {
		height = 1e-12
	}
	rect, _ := rtreego.NewRect(rtreego.Point{b.MinX, b.MinY}, []float64{width, height})
	return rect
}

// segmentIndex accelerates the noder's pairwise intersection search: rather
// than comparing every segment against every other (O(n^2)), it builds an
// R-tree over segment bounding boxes and queries it once per segment,
// visiting only the segments whose bounds actually overlap.
type segmentIndex struct {
	tree *rtreego.Rtree
	segs []indexedSegment
}

// newSegmentIndex builds an R-tree over segs, inserting them one at a time.
func newSegmentIndex(segs []geom.Segment) *segmentIndex {
	idx := &segmentIndex{segs: make([]indexedSegment, len(segs))}
	tree := rtreego.NewTree(2, 4, 16)
	for i, s := range segs {
		is := indexedSegment{seg: s, idx: i}
		idx.segs[i] = is
		tree.Insert(is)
	}
	idx.tree = tree
	return idx
}

// CandidatePairs returns every pair (i, j) with i < j whose segments' bounds
// intersect, scanning the whole tree once per segment.
func (idx *segmentIndex) CandidatePairs() [][2]int {
	var pairs [][2]int
	for i, is := range idx.segs {
		hits := idx.tree.SearchIntersect(is.Bounds())
		for _, h := range hits {
			other := h.(indexedSegment)
			if other.idx > i {
				pairs = append(pairs, [2]int{i, other.idx})
			}
		}
	}
	return pairs
}
