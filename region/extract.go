package region

import (
	"math"

	"github.com/gcodearc/arcweave/arcconfig"
	"github.com/gcodearc/arcweave/gcode"
	"github.com/gcodearc/arcweave/geom"
)

// Extract finds candidate bridge regions in layer li of prog, anchored
// against the previous layer's external perimeter. It never returns an
// error for "no bridge segments" (spec.md §4.2 failure modes): that case
// yields a nil slice. Regions that exist but fail the candidacy filter
// are omitted from the result and described in rejections.
func Extract(prog *gcode.Program, li int, cfg arcconfig.Config) (regions []BridgeRegion, rejections []error) {
	layer := prog.Layers[li]

	if li == 0 {
		if hasBridgeSegments(layer) {
			rejections = append(rejections, ErrNoPreviousLayer)
		}
		return nil, rejections
	}

	bridgeSegs := collectBridgeSegments(prog, layer)
	if len(bridgeSegs) == 0 {
		return nil, nil
	}

	prevPerimeter := layerPerimeter(prog, prog.Layers[li-1], gcode.KindOuterPerimeter, cfg.ArcWidth)

	for _, group := range groupBridgeSegments(bridgeSegs) {
		r, err := buildRegion(group, prevPerimeter, li, cfg)
		if err != nil {
			rejections = append(rejections, err)
			continue
		}
		regions = append(regions, r)
	}
	return regions, rejections
}

func hasBridgeSegments(layer gcode.Layer) bool {
	for _, s := range layer.Segments {
		if s.Kind == gcode.KindBridgeInfill {
			return true
		}
	}
	return false
}

// collectBridgeSegments derives the XY path of every bridge-infill
// segment in layer, tracking head position across the whole layer so
// Path() has a correct start point for each segment in turn.
func collectBridgeSegments(prog *gcode.Program, layer gcode.Layer) []bridgeSegment {
	var out []bridgeSegment
	cur := geom.Point{}
	for i := range layer.Segments {
		seg := layer.Segments[i]
		path := prog.Path(&seg, cur)
		if len(path) > 0 {
			cur = path[len(path)-1]
		}
		if seg.Kind == gcode.KindBridgeInfill && len(path) >= 2 {
			out = append(out, bridgeSegment{seg: seg, path: path})
		}
	}
	return out
}

// layerPerimeter unions the buffered paths of every segment of kind k in
// layer into a single polygon, approximating the layer's printed
// perimeter footprint.
func layerPerimeter(prog *gcode.Program, layer gcode.Layer, k gcode.Kind, arcWidth float64) geom.Polygon {
	var acc geom.Polygon
	cur := geom.Point{}
	for i := range layer.Segments {
		seg := layer.Segments[i]
		path := prog.Path(&seg, cur)
		if len(path) > 0 {
			cur = path[len(path)-1]
		}
		if seg.Kind != k || len(path) < 2 {
			continue
		}
		buf := geom.BufferLine(path, arcWidth/2)
		if acc.Empty() {
			acc = buf
			continue
		}
		if merged := geom.Union(acc, buf); len(merged) > 0 {
			acc = merged[0]
		}
	}
	return acc
}

// buildRegion runs steps 2-5 of spec.md §4.2 on one connected component
// of bridge segments.
func buildRegion(group []bridgeSegment, perimeter geom.Polygon, li int, cfg arcconfig.Config) (BridgeRegion, error) {
	q, sources := thickenGroup(group, cfg.ArcWidth)
	if cfg.ExtendArcsIntoPerimeter > 0 {
		q = geom.Buffer(q, cfg.ExtendArcsIntoPerimeter)
	}
	if q.Empty() {
		return BridgeRegion{}, ErrBelowMinArea
	}

	if geom.Area(q) < cfg.MinBridgeArea {
		return BridgeRegion{}, ErrBelowMinArea
	}

	if !sharesBoundaryOutside(q, perimeter) {
		return BridgeRegion{}, ErrNoOverhangBoundary
	}

	if inscribedExtent(q) < cfg.MinBridgeLength {
		return BridgeRegion{}, ErrBelowMinLength
	}

	anchor := deriveAnchor(q, perimeter)
	if len(anchor) < 2 || geom.Length(anchor) < geom.Epsilon {
		return BridgeRegion{}, ErrZeroLengthAnchor
	}

	return BridgeRegion{
		Polygon:        q,
		Anchor:         anchor,
		SourceSegments: sources,
		LayerIndex:     li,
	}, nil
}

func thickenGroup(group []bridgeSegment, arcWidth float64) (geom.Polygon, []SourceSegment) {
	var acc geom.Polygon
	sources := make([]SourceSegment, 0, len(group))
	for _, bs := range group {
		sources = append(sources, SourceSegment{Start: bs.seg.Start, End: bs.seg.End})
		buf := geom.BufferLine(bs.path, arcWidth/2)
		if acc.Empty() {
			acc = buf
			continue
		}
		if merged := geom.Union(acc, buf); len(merged) > 0 {
			acc = merged[0]
		}
	}
	return acc, sources
}

// sharesBoundaryOutside reports whether any vertex or edge midpoint of
// q's outer boundary lies outside perimeter, i.e. q is not wholly
// swallowed by the solid region beneath it (spec.md §4.2 step 4).
func sharesBoundaryOutside(q, perimeter geom.Polygon) bool {
	if perimeter.Empty() {
		return true
	}
	for i, p := range q.Outer {
		next := q.Outer[(i+1)%len(q.Outer)]
		mid := geom.Point{X: (p.X + next.X) / 2, Y: (p.Y + next.Y) / 2}
		if !geom.Contains(perimeter, p) || !geom.Contains(perimeter, mid) {
			return true
		}
	}
	return false
}

// inscribedExtent approximates the region's maximum linear extent by the
// diagonal of its outer ring's bounding box. This is a conservative,
// cheap stand-in for a true diameter computation and is documented as
// such in DESIGN.md.
func inscribedExtent(q geom.Polygon) float64 {
	if len(q.Outer) == 0 {
		return 0
	}
	minX, minY := q.Outer[0].X, q.Outer[0].Y
	maxX, maxY := minX, minY
	for _, p := range q.Outer {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	dx, dy := maxX-minX, maxY-minY
	return math.Sqrt(dx*dx + dy*dy)
}
