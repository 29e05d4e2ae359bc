package geom

import "github.com/paulmach/orb"

// Epsilon is the numerical tolerance, in millimeters, used throughout the
// planner to decide whether two points or boundaries "touch".
const Epsilon = 1e-6

// Point is a double-precision coordinate in millimeters.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Ring is a closed polyline: the first and last points are implicitly
// joined and must not be repeated.
type Ring []Point

// Polygon is a simple or multi-part planar region: an outer boundary plus
// zero or more holes. Both Outer and each hole follow the Ring invariant.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// LineString is an ordered, not-necessarily-closed sequence of points.
type LineString []Point

// Arc is a circular arc: center, radius, swept angle in [StartAngle,
// EndAngle] (radians, EndAngle > StartAngle), and winding direction.
type Arc struct {
	Center               Point
	Radius               float64
	StartAngle, EndAngle float64
	CCW                  bool
}

// Sweep returns the arc's swept angle in radians. Always positive.
func (a Arc) Sweep() float64 { return a.EndAngle - a.StartAngle }

func (p Point) toOrb() orb.Point { return orb.Point{p.X, p.Y} }

func fromOrb(p orb.Point) Point { return Point{p[0], p[1]} }

func (r Ring) toOrb() orb.Ring {
	out := make(orb.Ring, len(r))
	for i, p := range r {
		out[i] = p.toOrb()
	}
	return out
}

func ringFromOrb(r orb.Ring) Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[i] = fromOrb(p)
	}
	return out
}

func (poly Polygon) toOrb() orb.Polygon {
	out := make(orb.Polygon, 0, 1+len(poly.Holes))
	out = append(out, poly.Outer.toOrb())
	for _, h := range poly.Holes {
		out = append(out, h.toOrb())
	}
	return out
}

func polygonFromOrb(op orb.Polygon) Polygon {
	if len(op) == 0 {
		return Polygon{}
	}
	poly := Polygon{Outer: ringFromOrb(op[0])}
	if len(op) > 1 {
		poly.Holes = make([]Ring, len(op)-1)
		for i, h := range op[1:] {
			poly.Holes[i] = ringFromOrb(h)
		}
	}
	return poly
}

// Empty reports whether the polygon has no outer boundary (degenerate / the
// result of a boolean op on disjoint inputs).
func (poly Polygon) Empty() bool { return len(poly.Outer) < 3 }
