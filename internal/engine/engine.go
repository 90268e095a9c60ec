package engine

import (
	"github.com/archgeo/polygonize/internal/classify"
	"github.com/archgeo/polygonize/internal/geom"
	"github.com/archgeo/polygonize/internal/holes"
	"github.com/archgeo/polygonize/internal/noder"
	"github.com/archgeo/polygonize/internal/planargraph"
)

const collapsedAreaEps = 1e-6

// Polygon is a classified, hole-assigned output face: one CCW exterior
// ring and zero or more CW interior rings.
type Polygon struct {
	Exterior geom.Ring
	Holes    []geom.Ring
}

// Engine buffers input geometries and turns them into polygons on demand,
// mirroring the teacher's Parser: a stateful accumulator configured once
// via Options and driven by a single terminal method.
type Engine struct {
	options Options
	geoms   []Geometry
}

// New returns an Engine configured with opts.
func New(opts Options) *Engine {
	return &Engine{options: opts}
}

// SetOptions replaces the engine's configuration. It does not affect
// geometries already buffered.
func (e *Engine) SetOptions(opts Options) {
	e.options = opts
}

// AddGeometry validates g and appends it to the buffer. It returns
// *InvalidGeometryError if g contains a non-finite coordinate.
func (e *Engine) AddGeometry(g Geometry) error {
	if err := ValidateGeometry(g); err != nil {
		return err
	}
	e.geoms = append(e.geoms, g)
	return nil
}

// Polygonize flattens every buffered geometry to line segments, optionally
// nodes them, builds the planar graph, extracts rings, classifies them
// into shells and holes, assigns holes to shells, and returns the
// resulting polygons.
func (e *Engine) Polygonize() ([]Polygon, error) {
	var segs []geom.Segment
	for _, g := range e.geoms {
		flatten(g, &segs)
	}

	nodingStable := true
	if e.options.NodeInput {
		n := noder.New(e.options.SnapGridSize)
		var noded []geom.Segment
		noded, nodingStable = n.Node(segs)
		segs = noded
		if !nodingStable {
			e.options.diag("noder exhausted max_iter without stabilizing")
		}
	}

	graph := planargraph.BulkLoad(segs)
	workers := e.options.Workers
	if workers <= 0 {
		workers = 1
	}
	graph.SortEdges(workers)
	if n := graph.PruneDangles(); n > 0 {
		e.options.diag("pruned dangling edges")
	}
	if err := graph.CheckInvariants(); err != nil {
		return nil, err
	}

	rings := graph.GetEdgeRings()
	if e.options.CheckValidRings {
		rings = filterSimpleRings(rings, e.options)
	}

	if !nodingStable && len(rings) == 0 {
		return nil, &NodingFailureError{Reason: "noder did not stabilize and no rings were extracted"}
	}

	result := classify.Classify(rings, workers)
	assignment := holes.Assign(result.Shells, result.Holes, workers)

	polys := make([]Polygon, 0, len(result.Shells))
	for i, shell := range result.Shells {
		shellHoles := assignment[i]
		net := shell.UnsignedArea()
		for _, h := range shellHoles {
			net -= h.UnsignedArea()
		}
		if net < collapsedAreaEps {
			e.options.diag("discarded collapsed polygon")
			continue
		}
		polys = append(polys, Polygon{Exterior: shell, Holes: shellHoles})
	}

	return polys, nil
}

// filterSimpleRings drops rings with fewer than 3 vertices before
// classification; zero-area rings are left for classify.Classify's own
// DegenerateAreaEps check.
func filterSimpleRings(rings []geom.Ring, opts Options) []geom.Ring {
	out := rings[:0:0]
	for _, r := range rings {
		if len(r) < 3 {
			opts.diag("discarded degenerate ring")
			continue
		}
		out = append(out, r)
	}
	return out
}
