// Package geom is the 2D geometry kernel used throughout arcweave: points,
// polygons, linestrings and arcs, plus the boolean and offsetting operations
// the rest of the module builds on (buffer, union, intersection, difference,
// containment, distance, and farthest-point queries).
//
// Boolean operations and polygon offsetting are delegated to
// github.com/aligator/go.clipper (the Clipper polygon library, the same one
// the reference slicer in this codebase's lineage uses for its own clip
// package); simple metric queries (area, distance, point containment) are
// delegated to github.com/paulmach/orb/planar. geom exists to give both of
// those a single float64-millimeter, error-tolerant surface rather than
// scattering unit conversions and degenerate-input checks across callers.
//
// All operations are robust on degenerate input (empty or self-touching
// polygons yield empty results, never panics or errors) per the ε = Epsilon
// tolerance for "touching".
package geom
