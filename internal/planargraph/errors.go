package planargraph

import "fmt"

// TopologyError indicates a graph invariant was violated, for example a
// directed edge whose symmetric pointer does not round-trip. It signals a
// construction bug or a genuine numerical catastrophe, not a recoverable
// input problem.
type TopologyError struct {
	Reason string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("planargraph: topology invariant violated: %s", e.Reason)
}
