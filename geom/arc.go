package geom

import "math"

// PointsOnArc discretizes a into a polyline at the given angular step
// (radians). The returned polyline always includes both endpoints; step
// must be positive.
func PointsOnArc(a Arc, step float64) []Point {
	sweep := a.Sweep()
	if sweep <= 0 || step <= 0 {
		return []Point{a.Center.Add(Point{a.Radius, 0})}
	}
	n := int(math.Ceil(sweep / step))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	dir := 1.0
	if !a.CCW {
		dir = -1.0
	}
	for i := 0; i <= n; i++ {
		t := a.StartAngle + dir*sweep*float64(i)/float64(n)
		pts = append(pts, Point{
			X: a.Center.X + a.Radius*math.Cos(t),
			Y: a.Center.Y + a.Radius*math.Sin(t),
		})
	}
	return pts
}

// Normalize returns a with StartAngle wrapped into [0, 2π) and EndAngle
// adjusted to preserve the same sweep.
func (a Arc) Normalize() Arc {
	start := math.Mod(a.StartAngle, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}
	a.EndAngle = start + a.Sweep()
	a.StartAngle = start
	return a
}

// AngleOf returns the angle (radians, in [0, 2π)) of pt relative to center.
func AngleOf(center, pt Point) float64 {
	t := math.Atan2(pt.Y-center.Y, pt.X-center.X)
	if t < 0 {
		t += 2 * math.Pi
	}
	return t
}
