// Package planargraph builds a half-edge (DCEL-style) planar graph over a
// noded set of segments and extracts its face boundaries as rings, walking
// each face by the next-counter-clockwise rule.
//
// Nodes, edges, and directed edges are stored in dense, contiguous slices
// indexed by small integer ids (NodeID, EdgeID, DirEdgeID) rather than
// linked by pointers, so the structure has no aliasing or cycle-collection
// concerns and stays cache-friendly during traversal.
package planargraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/archgeo/polygonize/internal/geom"
)

// NodeID, EdgeID and DirEdgeID index Graph.Nodes, Graph.Edges and
// Graph.DirEdges respectively.
type (
	NodeID    int
	EdgeID    int
	DirEdgeID int
)

// Node is a graph vertex corresponding to one distinct input coordinate.
type Node struct {
	Coord geom.Coordinate
	// Outgoing holds the ids of every half-edge leaving this node,
	// including ones later marked removed by PruneDangles. After
	// SortEdges, it is ordered counter-clockwise by direction angle.
	Outgoing []DirEdgeID
	// Degree counts outgoing half-edges not marked removed.
	Degree int
	// Marked is true once the node has been pruned as a dangle.
	Marked bool
}

// Edge is an undirected geometric edge: the owner of a segment and the two
// half-edges that traverse it in either direction.
type Edge struct {
	Segment geom.Segment
	Pair    [2]DirEdgeID
	Marked  bool
}

// DirectedEdge is one of the two half-edges of an Edge.
type DirectedEdge struct {
	Src, Dst NodeID
	Edge     EdgeID
	// Sym is the reverse half-edge: Sym(Sym(e)) == e and
	// Src(e) == Dst(Sym(e)) always hold.
	Sym DirEdgeID
	// Angle is atan2(dy, dx) of Dst-Src, precomputed at construction.
	Angle float64

	Visited bool
	Marked  bool
}

// Graph is the half-edge arena: three dense slices. Nodes are kept in the
// sorted order BulkLoad builds, so node lookup is a binary search.
type Graph struct {
	Nodes    []Node
	Edges    []Edge
	DirEdges []DirectedEdge
}

type endpoint struct {
	coord  geom.Coordinate
	morton uint64
}

func endpointLess(a, b endpoint) bool {
	if a.morton != b.morton {
		return a.morton < b.morton
	}
	if a.coord.X != b.coord.X {
		return a.coord.X < b.coord.X
	}
	return a.coord.Y < b.coord.Y
}

// BulkLoad builds a graph over segs: every endpoint becomes a node (deduped
// by exact coordinate equality after sorting by Z-order for spatial
// locality), and every non-degenerate segment becomes an edge with two
// directed half-edges. Reservations use the known upper bounds (2 endpoints
// and 2 half-edges per segment), so no per-element allocation happens
// during the scan.
func BulkLoad(segs []geom.Segment) *Graph {
	g := &Graph{
		Nodes:    make([]Node, 0, 2*len(segs)),
		Edges:    make([]Edge, 0, len(segs)),
		DirEdges: make([]DirectedEdge, 0, 2*len(segs)),
	}

	endpoints := make([]endpoint, 0, 2*len(segs))
	for _, s := range segs {
		if s.IsDegenerate() {
			continue
		}
		endpoints = append(endpoints, endpoint{coord: s.A, morton: mortonKey(s.A)})
		endpoints = append(endpoints, endpoint{coord: s.B, morton: mortonKey(s.B)})
	}
	sort.Slice(endpoints, func(i, j int) bool { return endpointLess(endpoints[i], endpoints[j]) })

	for _, e := range endpoints {
		if n := len(g.Nodes); n > 0 && g.Nodes[n-1].Coord.ExactEqual(e.coord) {
			continue
		}
		g.Nodes = append(g.Nodes, Node{Coord: e.coord})
	}

	for _, s := range segs {
		if s.IsDegenerate() {
			continue
		}
		u, okU := g.locate(s.A)
		v, okV := g.locate(s.B)
		if !okU || !okV || u == v {
			continue
		}
		g.addEdge(u, v, s)
	}

	return g
}

// locate binary-searches the sorted, deduped node list for c's node id,
// using the same (Z-key, x, y) ordering BulkLoad sorted endpoints by.
func (g *Graph) locate(c geom.Coordinate) (NodeID, bool) {
	m := mortonKey(c)
	target := endpoint{coord: c, morton: m}
	idx := sort.Search(len(g.Nodes), func(i int) bool {
		return !endpointLess(endpoint{coord: g.Nodes[i].Coord, morton: mortonKey(g.Nodes[i].Coord)}, target)
	})
	if idx < len(g.Nodes) && g.Nodes[idx].Coord.ExactEqual(c) {
		return NodeID(idx), true
	}
	return 0, false
}

func (g *Graph) addEdge(u, v NodeID, seg geom.Segment) {
	eid := EdgeID(len(g.Edges))
	deUV := DirEdgeID(len(g.DirEdges))
	deVU := deUV + 1

	pu, pv := g.Nodes[u].Coord, g.Nodes[v].Coord
	angleUV := math.Atan2(pv.Y-pu.Y, pv.X-pu.X)
	angleVU := math.Atan2(pu.Y-pv.Y, pu.X-pv.X)

	g.DirEdges = append(g.DirEdges,
		DirectedEdge{Src: u, Dst: v, Edge: eid, Sym: deVU, Angle: angleUV},
		DirectedEdge{Src: v, Dst: u, Edge: eid, Sym: deUV, Angle: angleVU},
	)
	g.Edges = append(g.Edges, Edge{Segment: seg, Pair: [2]DirEdgeID{deUV, deVU}})

	g.Nodes[u].Outgoing = append(g.Nodes[u].Outgoing, deUV)
	g.Nodes[u].Degree++
	g.Nodes[v].Outgoing = append(g.Nodes[v].Outgoing, deVU)
	g.Nodes[v].Degree++
}

// CheckInvariants verifies the Sym/Src/Dst round-trip invariant that ring
// extraction depends on. A violation indicates a construction bug rather
// than a recoverable input problem, and is surfaced as a TopologyError.
func (g *Graph) CheckInvariants() error {
	for i, de := range g.DirEdges {
		id := DirEdgeID(i)
		sym := g.DirEdges[de.Sym]
		if sym.Sym != id {
			return &TopologyError{Reason: fmt.Sprintf("sym(sym(%d)) != %d", id, id)}
		}
		if de.Src != sym.Dst || de.Dst != sym.Src {
			return &TopologyError{Reason: fmt.Sprintf("src/dst mismatch between half-edge %d and its sym", id)}
		}
	}
	return nil
}
