// Package polygonize provides a clean public API for assembling polygons
// from a set of line segments and rings: feed it lines, line-strings,
// polygons, or collections of those, and it returns the faces of the
// planar subdivision they describe, with holes correctly assigned to
// their enclosing shells.
package polygonize
