// Package arcweave is the arc-overhang toolpath generation core: a
// post-processor that rewrites a slicer-emitted motion program so that
// bridge-infill regions are replaced with concentric circular arcs that
// anchor unsupported overhangs up to 90 degrees.
//
// The module is organized by concern, leaves first:
//
//	geom/      — 2D geometry kernel: polygons, buffering, boolean ops
//	gcode/     — motion-program model: line-oriented parser and writer
//	region/    — bridge region extraction from a parsed motion program
//	arcplan/   — the arc planner: breadth-first frontier search over
//	             concentric arcs (the hard geometric core)
//	emit/      — motion emitter: splices planned arcs back into the
//	             motion program with correct extrusion and overrides
//	rewrite/   — follow-up-layer thermal mitigation, interface only
//	arcconfig/ — planner configuration and sidecar overrides
//	diagnostic/ — the error taxonomy and structured logging
//	cmd/arcweave/ — the CLI entrypoint
//
// See spec.md and SPEC_FULL.md for the full specification this module
// implements, and DESIGN.md for how each package is grounded.
package arcweave
