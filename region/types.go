package region

import "github.com/gcodearc/arcweave/geom"

// SourceSegment identifies one bridge-infill segment within the motion
// program's line stream, so X knows exactly what to splice out.
type SourceSegment struct {
	Start, End int // line range in gcode.Program.Lines
}

// BridgeRegion is the thickened footprint of a group of bridge-infill
// segments plus the anchor boundary the planner seeds arcs from
// (spec.md §3).
type BridgeRegion struct {
	Polygon        geom.Polygon
	Anchor         geom.LineString
	SourceSegments []SourceSegment
	LayerIndex     int
}

// Centroid returns the arithmetic mean of the outer ring's vertices,
// used only to order regions deterministically within a layer (spec.md
// §5: "sorted by region centroid, lexicographic").
func (r BridgeRegion) Centroid() geom.Point {
	if len(r.Polygon.Outer) == 0 {
		return geom.Point{}
	}
	var sx, sy float64
	for _, p := range r.Polygon.Outer {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(r.Polygon.Outer))
	return geom.Point{X: sx / n, Y: sy / n}
}
