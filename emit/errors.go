package emit

import "errors"

// ErrNoArcs is returned when Splice is called with an empty plan; the
// caller should treat this as diagnostic.PlanFailure and leave the
// bridge segments untouched rather than calling Splice at all.
var ErrNoArcs = errors.New("emit: plan has no arcs")

// ErrInvalidExtrusion is returned when a computed extrusion amount is
// not strictly positive, the EmitError condition of spec.md §7.
var ErrInvalidExtrusion = errors.New("emit: computed non-positive extrusion")

// ErrNoSourceSegments is returned when the patch carries no source
// line ranges to remove, which would otherwise silently duplicate
// material.
var ErrNoSourceSegments = errors.New("emit: patch has no source segments")
