package rewrite

import (
	"github.com/gcodearc/arcweave/gcode"
	"github.com/gcodearc/arcweave/geom"
)

// Patch describes one emitted arc patch: the footprint it covers and
// the z-range (in mm) of layers a follow-up pass should consider
// mitigating thermally.
type Patch struct {
	Footprint geom.Polygon
	ZRange    [2]float64
}

// Rewriter is implemented by follow-up-layer thermal mitigation
// passes. The arc-overhang core only calls Apply with the footprints
// and z-ranges it produced (spec.md §4.5); it has no opinion on how a
// Rewriter rewrites solid-infill segments into a space-filling curve.
type Rewriter interface {
	Apply(program *gcode.Program, patches []Patch) error
}

// NoopRewriter performs no follow-up rewriting. It is the default R
// implementation: the arc-overhang core's hard scope ends at emitting
// arcs, and most callers have no thermal-mitigation pass to run.
type NoopRewriter struct{}

// Apply implements Rewriter by doing nothing.
func (NoopRewriter) Apply(*gcode.Program, []Patch) error { return nil }
