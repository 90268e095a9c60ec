package polygonize

import "github.com/archgeo/polygonize/internal/engine"

// Options configures a Polygonizer.
type Options = engine.Options

// DefaultOptions returns the default configuration: no pre-noding,
// 1e-10 snap grid (only used if NodeInput is enabled), ring validation
// on, and Workers set to runtime.NumCPU().
func DefaultOptions() Options {
	return engine.DefaultOptions()
}
