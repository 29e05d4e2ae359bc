package geom

import (
	"github.com/aligator/go.clipper"
)

// clipperScale converts millimeters to Clipper's integer coordinate space.
// Clipper requires integer coordinates to guarantee robust intersection
// tests; 1e5 gives 10nm resolution, far below anything that matters for
// arc toolpaths.
const clipperScale = 1e5

func toClipperPoint(p Point) clipper.IntPoint {
	return clipper.IntPoint{
		X: clipper.CInt(p.X * clipperScale),
		Y: clipper.CInt(p.Y * clipperScale),
	}
}

func fromClipperPoint(p *clipper.IntPoint) Point {
	return Point{
		X: float64(p.X) / clipperScale,
		Y: float64(p.Y) / clipperScale,
	}
}

func toClipperPath(r Ring) clipper.Path {
	path := make(clipper.Path, len(r))
	for i, p := range r {
		cp := toClipperPoint(p)
		path[i] = &cp
	}
	return path
}

func fromClipperPath(path clipper.Path) Ring {
	out := make(Ring, len(path))
	for i, p := range path {
		out[i] = fromClipperPoint(p)
	}
	return out
}

func (poly Polygon) toClipperPaths() clipper.Paths {
	paths := make(clipper.Paths, 0, 1+len(poly.Holes))
	if len(poly.Outer) >= 3 {
		paths = append(paths, toClipperPath(poly.Outer))
	}
	for _, h := range poly.Holes {
		if len(h) >= 3 {
			paths = append(paths, toClipperPath(h))
		}
	}
	return paths
}

// polygonsFromClipperPaths reassembles Clipper's flat path-set into
// polygons: each positively-oriented (CCW) path starts a new polygon;
// subsequent negatively-oriented (CW) paths until the next CCW path are
// its holes. Clipper normalizes orientation this way both in boolean
// results (every boolean operation here requests PftNonZero) and in
// ClipperOffset results (Buffer, BufferLine).
func polygonsFromClipperPaths(paths clipper.Paths) []Polygon {
	var out []Polygon
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		ring := fromClipperPath(path)
		if isCCW(ring) {
			out = append(out, Polygon{Outer: ring})
		} else if len(out) > 0 {
			last := &out[len(out)-1]
			last.Holes = append(last.Holes, ring)
		}
		// A CW ring with no preceding CCW outer is degenerate input; drop it
		// rather than error, per the kernel's degenerate-input contract.
	}
	return out
}

func isCCW(r Ring) bool {
	var sum float64
	for i := range r {
		j := (i + 1) % len(r)
		sum += (r[j].X - r[i].X) * (r[j].Y + r[i].Y)
	}
	return sum < 0
}

// Buffer returns the signed offset of p by d: positive d expands outward,
// negative d contracts inward. Returns an empty Polygon if the offset
// consumes the entire shape.
func Buffer(p Polygon, d float64) Polygon {
	if p.Empty() {
		return Polygon{}
	}
	co := clipper.NewClipperOffset()
	co.MiterLimit = 2
	co.ArcTolerance = Epsilon * clipperScale
	co.AddPaths(p.toClipperPaths(), clipper.JtRound, clipper.EtClosedPolygon)
	solution := co.Execute(d * clipperScale)
	polys := polygonsFromClipperPaths(solution)
	if len(polys) == 0 {
		return Polygon{}
	}
	return mergeOuterHoles(polys)
}

// BufferLine buffers an open linestring by halfWidth on both sides,
// producing the "thickened footprint" region used by the bridge region
// extractor (spec §4.2 step 2).
func BufferLine(l LineString, halfWidth float64) Polygon {
	if len(l) < 2 {
		return Polygon{}
	}
	co := clipper.NewClipperOffset()
	co.MiterLimit = 2
	co.ArcTolerance = Epsilon * clipperScale
	path := make(clipper.Path, len(l))
	for i, p := range l {
		cp := toClipperPoint(p)
		path[i] = &cp
	}
	co.AddPath(path, clipper.JtRound, clipper.EtOpenRound)
	solution := co.Execute(halfWidth * clipperScale)
	polys := polygonsFromClipperPaths(solution)
	if len(polys) == 0 {
		return Polygon{}
	}
	return mergeOuterHoles(polys)
}

// mergeOuterHoles unions disjoint-looking outer rings that Clipper emitted
// separately (e.g. when buffering several well-separated segments) back
// into a single multi-part Polygon value as far as callers are concerned:
// for this planner, a "Polygon" is the union of everything fed in, so we
// keep only the first outer and fold the rest in as additional structure
// via a real union pass when there is more than one component.
func mergeOuterHoles(polys []Polygon) Polygon {
	if len(polys) == 1 {
		return polys[0]
	}
	acc := polys[0]
	for _, p := range polys[1:] {
		merged := Union(acc, p)
		if len(merged) > 0 {
			acc = merged[0]
			for _, extra := range merged[1:] {
				acc.Holes = append(acc.Holes, extra.Outer)
				acc.Holes = append(acc.Holes, extra.Holes...)
			}
		}
	}
	return acc
}

func booleanOp(op clipper.ClipType, a, b Polygon) []Polygon {
	c := clipper.NewClipper(clipper.IoNone)
	if !a.Empty() {
		c.AddPaths(a.toClipperPaths(), clipper.PtSubject, true)
	}
	if !b.Empty() {
		c.AddPaths(b.toClipperPaths(), clipper.PtClip, true)
	}
	solution, ok := c.Execute2(op, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return polygonsFromClipperPaths(solution)
}

// Union returns the union of a and b. The result may have multiple parts
// if a and b do not overlap.
func Union(a, b Polygon) []Polygon { return booleanOp(clipper.CtUnion, a, b) }

// Intersection returns a ∩ b, possibly empty or multi-part.
func Intersection(a, b Polygon) []Polygon { return booleanOp(clipper.CtIntersection, a, b) }

// Difference returns a \ b, possibly empty or multi-part.
func Difference(a, b Polygon) []Polygon { return booleanOp(clipper.CtDifference, a, b) }
