package engine

import "runtime"

// Options configures a Polygonize run, following the teacher's
// ParseOptions/DefaultParseOptions shape: doc-commented fields, explicit
// defaults spelled out in comments rather than left implicit.
type Options struct {
	// NodeInput runs the noder (iterated snap-rounding) before graph
	// construction. Default false: callers that already know their
	// segments are pairwise non-crossing except at shared endpoints can
	// skip the extra pass.
	NodeInput bool

	// SnapGridSize is the grid size the noder rounds coordinates to; 0
	// disables snapping. Only meaningful when NodeInput is true.
	// Default 1e-10.
	SnapGridSize float64

	// CheckValidRings discards rings with fewer than 3 coordinates before
	// classification. Rings are not tested for self-intersection. Default
	// true.
	CheckValidRings bool

	// Workers bounds how many goroutines the internal parallel passes
	// (angular sort, orphan promotion, hole assignment) may use. Default
	// runtime.NumCPU().
	Workers int

	// OnDiagnostic, if set, is called with a one-line message when the
	// noder exhausts its iteration budget, when dangling edges are pruned,
	// when CheckValidRings drops a ring, and when a collapsed polygon is
	// discarded. Degenerate segments, zero-area rings, unassigned holes and
	// abandoned ring walks are dropped without a call. Mirrors the teacher's optional
	// Progress/ErrorLog hooks; this is not a logging framework.
	OnDiagnostic func(string)
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		NodeInput:       false,
		SnapGridSize:    1e-10,
		CheckValidRings: true,
		Workers:         runtime.NumCPU(),
		OnDiagnostic:    nil,
	}
}

func (o Options) diag(msg string) {
	if o.OnDiagnostic != nil {
		o.OnDiagnostic(msg)
	}
}
