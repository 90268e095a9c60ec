package planargraph

// PruneDangles repeatedly removes degree-1 nodes (and the single half-edge
// pair reaching them) until none remain, which clears the dangling
// whiskers left by unclosed LineString input before ring extraction runs.
// It returns the number of nodes removed.
func (g *Graph) PruneDangles() int {
	worklist := make([]NodeID, 0, len(g.Nodes))
	for i := range g.Nodes {
		if g.Nodes[i].Degree == 1 {
			worklist = append(worklist, NodeID(i))
		}
	}

	removed := 0
	for len(worklist) > 0 {
		n := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		node := &g.Nodes[n]
		if node.Marked || node.Degree != 1 {
			continue
		}
		node.Marked = true
		removed++

		live := DirEdgeID(-1)
		for _, de := range node.Outgoing {
			if !g.DirEdges[de].Marked {
				live = de
				break
			}
		}
		if live == -1 {
			continue
		}

		sym := g.DirEdges[live].Sym
		g.DirEdges[live].Marked = true
		g.DirEdges[sym].Marked = true
		g.Edges[g.DirEdges[live].Edge].Marked = true

		neighbor := &g.Nodes[g.DirEdges[live].Dst]
		if neighbor.Degree > 0 {
			neighbor.Degree--
			if neighbor.Degree == 1 && !neighbor.Marked {
				worklist = append(worklist, g.DirEdges[live].Dst)
			}
		}
	}
	return removed
}
