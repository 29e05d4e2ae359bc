package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) Polygon {
	return Polygon{Outer: Ring{
		{0, 0}, {side, 0}, {side, side}, {0, side},
	}}
}

func TestArea(t *testing.T) {
	got := Area(square(10))
	assert.InDelta(t, 100.0, got, 1e-6)
}

func TestContains(t *testing.T) {
	poly := square(10)
	assert.True(t, Contains(poly, Point{5, 5}))
	assert.False(t, Contains(poly, Point{15, 5}))
	assert.True(t, Contains(poly, Point{0, 5}), "boundary point should count as contained")
}

func TestBufferExpandsArea(t *testing.T) {
	poly := square(10)
	grown := Buffer(poly, 1)
	require.False(t, grown.Empty())
	assert.Greater(t, Area(grown), Area(poly))
}

func TestBufferShrinkToEmpty(t *testing.T) {
	poly := square(1)
	shrunk := Buffer(poly, -10)
	assert.True(t, shrunk.Empty())
}

func TestUnionOfDisjointSquaresIsTwoParts(t *testing.T) {
	a := square(1)
	b := Polygon{Outer: Ring{{10, 10}, {11, 10}, {11, 11}, {10, 11}}}
	merged := Union(a, b)
	assert.Len(t, merged, 2)
}

func TestIntersectionOfOverlappingSquares(t *testing.T) {
	a := square(10)
	b := Polygon{Outer: Ring{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}
	result := Intersection(a, b)
	require.Len(t, result, 1)
	assert.InDelta(t, 25.0, Area(result[0]), 1e-3)
}

func TestDifferenceRemovesOverlap(t *testing.T) {
	a := square(10)
	b := Polygon{Outer: Ring{{5, 5}, {15, 5}, {15, 15}, {5, 15}}}
	result := Difference(a, b)
	require.Len(t, result, 1)
	assert.InDelta(t, 75.0, Area(result[0]), 1e-3)
}

func TestPointsOnArcIncludesEndpoints(t *testing.T) {
	arc := Arc{Center: Point{0, 0}, Radius: 5, StartAngle: 0, EndAngle: math.Pi, CCW: true}
	pts := PointsOnArc(arc, math.Pi/180)
	require.GreaterOrEqual(t, len(pts), 2)
	assert.InDelta(t, 5.0, pts[0].X, 1e-6)
	assert.InDelta(t, 0.0, pts[0].Y, 1e-6)
	last := pts[len(pts)-1]
	assert.InDelta(t, -5.0, last.X, 1e-6)
	assert.InDelta(t, 0.0, last.Y, 1e-6)
}

func TestFarthestPointTieBreakIsDeterministic(t *testing.T) {
	// Two candidates equidistant from a single reference point: the one
	// with smaller X must win.
	l := LineString{{-5, 0}, {5, 0}}
	ref := []LineString{{{0, 100}, {0, 100}}}
	pt, _ := FarthestPoint(l, ref, Polygon{})
	assert.LessOrEqual(t, pt.X, 0.0)
}

func TestNearestPointOnSegment(t *testing.T) {
	l := LineString{{0, 0}, {10, 0}}
	pt, dist := NearestPoint(l, Point{4, 3})
	assert.InDelta(t, 4.0, pt.X, 1e-6)
	assert.InDelta(t, 0.0, pt.Y, 1e-6)
	assert.InDelta(t, 3.0, dist, 1e-6)
}
