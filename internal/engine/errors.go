package engine

import (
	"fmt"

	"github.com/archgeo/polygonize/internal/planargraph"
)

// InvalidGeometryError indicates an input could not be interpreted as a
// supported lineal geometry, for example a NaN or infinite coordinate.
type InvalidGeometryError struct {
	Reason string
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// NodingFailureError indicates the noder exhausted its iteration budget
// without stabilizing, and the graph built from its best-effort output
// still produced no rings at all.
type NodingFailureError struct {
	Reason string
}

func (e *NodingFailureError) Error() string {
	return fmt.Sprintf("noding failure: %s", e.Reason)
}

// TopologyError indicates a planar-graph invariant was violated, as found
// by the check Polygonize runs before ring extraction. This is the same
// type planargraph.CheckInvariants
// returns; Engine just surfaces it under its own package for callers that
// only import engine.
type TopologyError = planargraph.TopologyError
