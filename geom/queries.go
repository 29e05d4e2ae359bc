package geom

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Area returns the planar area of p's outer ring minus its holes, in mm²,
// as a non-negative value regardless of ring orientation. Wraps
// orb/planar.Area.
func Area(p Polygon) float64 {
	if p.Empty() {
		return 0
	}
	return math.Abs(planar.Area(p.toOrb()))
}

// Length returns the total length of a linestring. Wraps orb/planar.Length.
func Length(l LineString) float64 {
	if len(l) < 2 {
		return 0
	}
	ls := make(orb.LineString, len(l))
	for i, p := range l {
		ls[i] = p.toOrb()
	}
	return planar.Length(ls)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return planar.Distance(a.toOrb(), b.toOrb())
}

// Contains reports whether pt lies within p (outer boundary, excluding
// holes), using the standard ray-casting test. Boundary points within
// Epsilon count as contained.
func Contains(p Polygon, pt Point) bool {
	if p.Empty() {
		return false
	}
	if !ringContains(p.Outer, pt) {
		return false
	}
	for _, h := range p.Holes {
		if ringContains(h, pt) && !onRing(h, pt) {
			return false
		}
	}
	return true
}

func ringContains(r Ring, pt Point) bool {
	if onRing(r, pt) {
		return true
	}
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := r[i], r[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) {
			xint := (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if pt.X < xint {
				inside = !inside
			}
		}
	}
	return inside
}

func onRing(r Ring, pt Point) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		if segmentDistance(a, b, pt) < Epsilon {
			return true
		}
	}
	return false
}

func segmentDistance(a, b, pt Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	apx, apy := pt.X-a.X, pt.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < Epsilon*Epsilon {
		return Distance(a, pt)
	}
	t := (apx*abx + apy*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	proj := Point{a.X + t*abx, a.Y + t*aby}
	return Distance(proj, pt)
}

// Boundary returns the outer ring and every hole of p as closed
// linestrings (first point repeated at the end).
func Boundary(p Polygon) []LineString {
	if p.Empty() {
		return nil
	}
	out := make([]LineString, 0, 1+len(p.Holes))
	out = append(out, closedLineString(p.Outer))
	for _, h := range p.Holes {
		out = append(out, closedLineString(h))
	}
	return out
}

func closedLineString(r Ring) LineString {
	if len(r) == 0 {
		return nil
	}
	ls := make(LineString, len(r)+1)
	copy(ls, r)
	ls[len(r)] = r[0]
	return ls
}

// NearestPoint returns the point on l closest to pt, and that distance.
func NearestPoint(l LineString, pt Point) (Point, float64) {
	best := Point{}
	bestDist := math.Inf(1)
	for i := 0; i+1 < len(l); i++ {
		a, b := l[i], l[i+1]
		proj := closestPointOnSegment(a, b, pt)
		d := Distance(proj, pt)
		if d < bestDist {
			bestDist = d
			best = proj
		}
	}
	return best, bestDist
}

func closestPointOnSegment(a, b, pt Point) Point {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < Epsilon*Epsilon {
		return a
	}
	t := ((pt.X-a.X)*abx + (pt.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Point{a.X + t*abx, a.Y + t*aby}
}

// FarthestPoint returns the point on l that maximizes the minimum distance
// to every linestring in ref, restricted to points that lie inside
// (strictly, up to Epsilon) the given polygon. Ties are broken
// deterministically by smaller X, then smaller Y (spec §4.3.5).
//
// l is sampled at its existing vertices plus the midpoint of every segment;
// this is sufficient resolution for the arc planner's center-selection use
// (frontiers are themselves discretized curves, not smooth analytic ones).
func FarthestPoint(l LineString, ref []LineString, inside Polygon) (Point, float64) {
	candidates := sampleWithMidpoints(l)

	type scored struct {
		pt   Point
		dist float64
	}
	var best []scored
	bestDist := math.Inf(-1)

	for _, c := range candidates {
		if !inside.Empty() && !Contains(inside, c) {
			continue
		}
		d := math.Inf(1)
		for _, r := range ref {
			if len(r) < 2 {
				continue
			}
			_, dd := NearestPoint(r, c)
			if dd < d {
				d = dd
			}
		}
		if math.IsInf(d, 1) {
			continue
		}
		switch {
		case d > bestDist+Epsilon:
			bestDist = d
			best = []scored{{c, d}}
		case d > bestDist-Epsilon:
			best = append(best, scored{c, d})
		}
	}

	if len(best) == 0 {
		if len(l) == 0 {
			return Point{}, 0
		}
		return l[0], 0
	}

	sort.Slice(best, func(i, j int) bool {
		if best[i].pt.X != best[j].pt.X {
			return best[i].pt.X < best[j].pt.X
		}
		return best[i].pt.Y < best[j].pt.Y
	})
	return best[0].pt, bestDist
}

func sampleWithMidpoints(l LineString) []Point {
	if len(l) == 0 {
		return nil
	}
	out := make([]Point, 0, 2*len(l))
	out = append(out, l[0])
	for i := 0; i+1 < len(l); i++ {
		mid := Point{(l[i].X + l[i+1].X) / 2, (l[i].Y + l[i+1].Y) / 2}
		out = append(out, mid, l[i+1])
	}
	return out
}
