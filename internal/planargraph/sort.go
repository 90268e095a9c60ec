package planargraph

import (
	"sort"

	"github.com/archgeo/polygonize/internal/parallel"
)

// SortEdges orders every node's outgoing half-edges counter-clockwise by
// direction angle, which GetEdgeRings depends on for its next-CCW walk.
// Each node sorts independently, so the work is split across workers via
// parallel.Map (serial below parallel.Threshold nodes).
func (g *Graph) SortEdges(workers int) {
	parallel.Map(len(g.Nodes), workers, func(i int) struct{} {
		g.sortNodeEdges(NodeID(i))
		return struct{}{}
	})
}

func (g *Graph) sortNodeEdges(id NodeID) {
	outgoing := g.Nodes[id].Outgoing
	sort.Slice(outgoing, func(a, b int) bool {
		da, db := g.DirEdges[outgoing[a]], g.DirEdges[outgoing[b]]
		if da.Angle != db.Angle {
			return da.Angle < db.Angle
		}
		// Two half-edges leaving the same node in exactly the same
		// direction (overlapping collinear input, already deduped by the
		// noder down to distinct lengths) still need a total order; break
		// the tie by distance so the shorter one sorts first.
		lenA := g.Edges[da.Edge].Segment.A.DistanceSquared(g.Edges[da.Edge].Segment.B)
		lenB := g.Edges[db.Edge].Segment.A.DistanceSquared(g.Edges[db.Edge].Segment.B)
		return lenA < lenB
	})
}
