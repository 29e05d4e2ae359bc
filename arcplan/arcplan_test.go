package arcplan

import (
	"context"
	"math"
	"testing"

	"github.com/gcodearc/arcweave/arcconfig"
	"github.com/gcodearc/arcweave/geom"
	"github.com/gcodearc/arcweave/region"
	"github.com/stretchr/testify/require"
)

func circleRing(center geom.Point, radius float64, n int) geom.Ring {
	r := make(geom.Ring, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		r[i] = geom.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return r
}

func diskConfig() arcconfig.Config {
	cfg := arcconfig.Default()
	cfg.ArcWidth = 0.5
	cfg.RMin = 0.5
	cfg.RMax = 8
	cfg.ArcCenterOffset = 1
	cfg.ExtendArcsIntoPerimeter = 0.25
	cfg.MaxDistanceFromPerimeter = 2
	cfg.AngularStep = math.Pi / 180
	return cfg
}

// TestPlan_DiskBridge mirrors spec.md §8 scenario 1: a disk-shaped
// region anchored on its full boundary should yield a non-empty,
// radius-bounded set of concentric arcs.
func TestPlan_DiskBridge(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}
	outer := circleRing(center, 20, 180)
	anchor := append(geom.LineString{}, geom.LineString(outer)...)
	anchor = append(anchor, outer[0])

	r := region.BridgeRegion{
		Polygon: geom.Polygon{Outer: outer},
		Anchor:  anchor,
	}

	plan, err := Plan(context.Background(), r, diskConfig())
	require.NoError(t, err)
	require.NotEmpty(t, plan.Arcs)

	for _, a := range plan.Arcs {
		require.GreaterOrEqual(t, a.Radius, diskConfig().RMin-geom.Epsilon)
		require.LessOrEqual(t, a.Radius, diskConfig().RMax+geom.Epsilon)
		require.Greater(t, a.EndAngle, a.StartAngle)
	}
}

// TestPlan_RejectsInvertedRadiusBounds covers spec.md §4.3.5: r_min >
// r_max after config must reject the region outright.
func TestPlan_RejectsInvertedRadiusBounds(t *testing.T) {
	cfg := diskConfig()
	cfg.RMin = 10
	cfg.RMax = 1

	center := geom.Point{X: 0, Y: 0}
	outer := circleRing(center, 20, 60)
	r := region.BridgeRegion{Polygon: geom.Polygon{Outer: outer}, Anchor: geom.LineString(outer)}

	_, err := Plan(context.Background(), r, cfg)
	require.ErrorIs(t, err, arcconfig.ErrRMaxBelowRMin)
}

// TestPlan_RejectsZeroLengthAnchor covers spec.md §4.3.5: an anchor of
// zero length must reject the region.
func TestPlan_RejectsZeroLengthAnchor(t *testing.T) {
	center := geom.Point{X: 0, Y: 0}
	outer := circleRing(center, 20, 60)
	r := region.BridgeRegion{
		Polygon: geom.Polygon{Outer: outer},
		Anchor:  geom.LineString{{X: 1, Y: 1}},
	}

	_, err := Plan(context.Background(), r, diskConfig())
	require.ErrorIs(t, err, ErrEmptyPlan)
}

// TestPlan_RectangularBridgeBetweenWalls exercises an anchor that is
// only one short side of the boundary (the wall the bridge starts
// from, not a full island) rather than the whole ring.
func TestPlan_RectangularBridgeBetweenWalls(t *testing.T) {
	outer := geom.Ring{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 0, Y: 10},
	}
	anchor := geom.LineString{{X: 0, Y: 0}, {X: 0, Y: 10}}

	r := region.BridgeRegion{
		Polygon: geom.Polygon{Outer: outer},
		Anchor:  anchor,
	}

	cfg := diskConfig()
	cfg.RMax = 25
	plan, err := Plan(context.Background(), r, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, plan.Arcs)
}

// TestPlan_ContextCancellationStopsPlanning ensures a pre-cancelled
// context is honored before any work is done, matching the reference
// BFS walker's cancellation contract.
func TestPlan_ContextCancellationStopsPlanning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outer := circleRing(geom.Point{}, 20, 60)
	r := region.BridgeRegion{Polygon: geom.Polygon{Outer: outer}, Anchor: geom.LineString(outer)}

	_, err := Plan(ctx, r, diskConfig())
	require.ErrorIs(t, err, context.Canceled)
}
