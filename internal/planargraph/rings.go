package planargraph

import "github.com/archgeo/polygonize/internal/geom"

// GetEdgeRings walks every still-live half-edge exactly once, grouping
// them into face boundaries by the next-counter-clockwise rule: having
// arrived at a node via some half-edge, the next half-edge of the same
// ring is the first live outgoing half-edge found by scanning the node's
// CCW-sorted adjacency list starting just after the arriving half-edge's
// sym. SortEdges must have been called first.
//
// A half-edge whose walk re-visits an edge before returning to its start,
// or whose next-CCW step has nowhere live to go, belongs to a ring that
// cannot be closed (an artifact of degenerate or self-overlapping input
// surviving noding); that partial ring is dropped rather than reported,
// matching the rest of the walk being best-effort over possibly-messy
// input.
func (g *Graph) GetEdgeRings() []geom.Ring {
	for i := range g.DirEdges {
		g.DirEdges[i].Visited = false
	}

	var rings []geom.Ring
	for start := range g.DirEdges {
		startID := DirEdgeID(start)
		de := g.DirEdges[start]
		if de.Visited || de.Marked {
			continue
		}
		if edges, ok := g.walkRing(startID); ok {
			rings = append(rings, g.ringCoords(edges))
		}
	}
	return rings
}

func (g *Graph) walkRing(start DirEdgeID) ([]DirEdgeID, bool) {
	edges := make([]DirEdgeID, 0, 8)
	cur := start
	for {
		g.DirEdges[cur].Visited = true
		edges = append(edges, cur)

		next, ok := g.nextCCW(g.DirEdges[cur].Dst, g.DirEdges[cur].Sym)
		if !ok {
			return nil, false
		}
		if next == start {
			return edges, true
		}
		if g.DirEdges[next].Visited {
			return nil, false
		}
		cur = next
	}
}

// nextCCW returns the first live half-edge strictly after `after` in
// node's CCW-sorted adjacency list, wrapping around.
func (g *Graph) nextCCW(node NodeID, after DirEdgeID) (DirEdgeID, bool) {
	outgoing := g.Nodes[node].Outgoing
	pos := -1
	for i, de := range outgoing {
		if de == after {
			pos = i
			break
		}
	}
	if pos == -1 {
		return 0, false
	}

	n := len(outgoing)
	for k := 1; k <= n; k++ {
		cand := outgoing[(pos+k)%n]
		if !g.DirEdges[cand].Marked {
			return cand, true
		}
	}
	return 0, false
}

func (g *Graph) ringCoords(edges []DirEdgeID) geom.Ring {
	ring := make(geom.Ring, 0, len(edges)+1)
	ring = append(ring, g.Nodes[g.DirEdges[edges[0]].Src].Coord)
	for _, de := range edges {
		ring = append(ring, g.Nodes[g.DirEdges[de].Dst].Coord)
	}
	return ring
}
