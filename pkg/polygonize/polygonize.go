package polygonize

import "github.com/archgeo/polygonize/internal/engine"

// Polygon is one output face: a single CCW exterior ring plus zero or
// more CW interior (hole) rings.
type Polygon struct {
	Exterior []Coordinate
	Holes    [][]Coordinate
}

func convertPolygon(p engine.Polygon) Polygon {
	holes := make([][]Coordinate, len(p.Holes))
	for i, h := range p.Holes {
		holes[i] = []Coordinate(h)
	}
	return Polygon{
		Exterior: []Coordinate(p.Exterior),
		Holes:    holes,
	}
}

// Polygonizer assembles polygons from a buffer of input geometries.
//
// Create one with New, feed it geometries with AddGeometry, and call
// Polygonize to extract the resulting faces.
type Polygonizer struct {
	engine *engine.Engine
}

// New returns a Polygonizer configured with DefaultOptions.
func New() *Polygonizer {
	return &Polygonizer{engine: engine.New(DefaultOptions())}
}

// NewWithOptions returns a Polygonizer configured with opts.
func NewWithOptions(opts Options) *Polygonizer {
	return &Polygonizer{engine: engine.New(opts)}
}

// SetOptions replaces the polygonizer's configuration. It does not affect
// geometries already buffered.
func (p *Polygonizer) SetOptions(opts Options) {
	p.engine.SetOptions(opts)
}

// AddGeometry validates and buffers g. It returns an error if g contains
// a non-finite coordinate.
func (p *Polygonizer) AddGeometry(g Geometry) error {
	return p.engine.AddGeometry(g)
}

// Polygonize flattens, nodes (if configured), and extracts the faces of
// every buffered geometry, returning the resulting polygons.
func (p *Polygonizer) Polygonize() ([]Polygon, error) {
	raw, err := p.engine.Polygonize()
	if err != nil {
		return nil, err
	}
	out := make([]Polygon, len(raw))
	for i, rp := range raw {
		out[i] = convertPolygon(rp)
	}
	return out, nil
}
