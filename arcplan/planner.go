package arcplan

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/gcodearc/arcweave/arcconfig"
	"github.com/gcodearc/arcweave/geom"
	"github.com/gcodearc/arcweave/region"
)

// maxArcs bounds total emitted arcs per region as a safety valve
// against pathological configurations (e.g. r_max just above r_min on
// a huge region) rather than looping until a caller-side timeout.
const maxArcs = 20000

// frontierItem is a candidate start curve for the next arc (spec.md
// §4.3.1). hasSource is false only for the seed anchor, which
// selectCenter treats differently; sourceCenter/sourceRadius record the
// center and radius of the arc it was spawned from, consulted only when
// use_least_center_points asks to keep reusing that center.
type frontierItem struct {
	curve        geom.LineString
	hasSource    bool
	sourceCenter geom.Point
	sourceRadius float64
}

// walker carries the planner's mutable state across one region, mirroring
// the reference library's BFS walker: a FIFO queue, a visited/covered
// accumulator, and a loop that pops, processes, and re-enqueues.
type walker struct {
	cfg       arcconfig.Config
	opts      options
	ctx       context.Context
	queue     []frontierItem
	covered   geom.Polygon
	boundaryQ []geom.LineString
	arcs      []geom.Arc
}

// Plan runs the arc planner over one bridge region, returning arcs in
// breadth-first, radius-ascending emission order. ctx bounds the
// region's wall-clock budget (spec.md §5); its cancellation is checked
// at the same two points the reference BFS walker checks cancellation.
func Plan(ctx context.Context, r region.BridgeRegion, cfg arcconfig.Config, opts ...Option) (ArcPlan, error) {
	if err := cfg.Validate(); err != nil {
		return ArcPlan{}, err
	}
	if len(r.Anchor) < 2 || geom.Length(r.Anchor) < geom.Epsilon {
		return ArcPlan{}, ErrEmptyPlan
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		cfg:       cfg,
		opts:      o,
		ctx:       ctx,
		boundaryQ: geom.Boundary(r.Polygon),
	}
	w.queue = append(w.queue, frontierItem{curve: r.Anchor})

	if err := w.loop(r.Polygon); err != nil {
		return ArcPlan{}, err
	}
	if len(w.arcs) == 0 {
		return ArcPlan{}, ErrEmptyPlan
	}
	return ArcPlan{Arcs: w.arcs}, nil
}

// loop processes the frontier queue until empty, cancelled, or the
// maxArcs safety valve trips.
func (w *walker) loop(q geom.Polygon) error {
	for len(w.queue) > 0 && len(w.arcs) < maxArcs {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		f := w.dequeue()
		next, err := w.processFrontier(q, f)
		if err != nil {
			if errors.Is(err, ErrNoViableCenter) {
				continue
			}
			return err
		}
		for _, nf := range next {
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}
			w.queue = append(w.queue, nf)
		}
	}
	return nil
}

func (w *walker) dequeue() frontierItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

func (w *walker) isCovered(p geom.Point) bool {
	return !w.covered.Empty() && geom.Contains(w.covered, p)
}

// selectCenter implements spec.md §4.3.2 step 1: pick the point on f
// farthest from the region's far boundary, nudged outward by
// arc_center_offset, or reuse the previous center when
// use_least_center_points says it is still viable. A point lying on Q's
// boundary (as the seed anchor's midpoint always does) is nudged along
// the normal of the edge of f it lies on, towards Q's interior; when
// neither side of that normal stays inside Q, it is left where it is.
func (w *walker) selectCenter(q geom.Polygon, f frontierItem) (geom.Point, float64, bool) {
	if f.hasSource && w.cfg.UseLeastCenterPoints {
		next := f.sourceRadius + w.cfg.ArcWidth
		if next <= w.cfg.RMax {
			return f.sourceCenter, next, true
		}
	}

	var p geom.Point
	if !f.hasSource {
		// Seed frontier (the anchor itself): farthest-point-from-boundary
		// is degenerate here since the anchor IS part of the boundary, so
		// the initial center is the anchor's geometric midpoint instead.
		p = pointAtFraction(f.curve, 0.5)
	} else {
		p, _ = geom.FarthestPoint(f.curve, w.boundaryQ, q)
	}

	if !geom.Contains(q, p) {
		return geom.Point{}, 0, false
	}

	if nearest, dist := nearestBoundaryPoint(w.boundaryQ, p); dist > geom.Epsilon {
		dx, dy := p.X-nearest.X, p.Y-nearest.Y
		norm := math.Hypot(dx, dy)
		if norm > geom.Epsilon {
			p = geom.Point{
				X: p.X + dx/norm*w.cfg.ArcCenterOffset,
				Y: p.Y + dy/norm*w.cfg.ArcCenterOffset,
			}
		}
	} else {
		for i := 0; i+1 < len(f.curve); i++ {
			a, b := f.curve[i], f.curve[i+1]
			l := geom.Distance(a, b)
			if _, d := geom.NearestPoint(geom.LineString{a, b}, p); d > geom.Epsilon || l < geom.Epsilon {
				continue
			}
			n := geom.Point{X: a.Y - b.Y, Y: b.X - a.X}.Scale(w.cfg.ArcCenterOffset / l)
			if c := p.Add(n); geom.Contains(q, c) {
				p = c
			} else if c := p.Sub(n); geom.Contains(q, c) {
				p = c
			}
			break
		}
	}
	if !geom.Contains(q, p) {
		return geom.Point{}, 0, false
	}
	return p, w.cfg.RMin, true
}

// processFrontier runs the per-frontier procedure (spec.md §4.3.2) for
// one popped frontier: select a center, grow its radius, clip and emit
// arcs, update coverage, and return the new frontiers spawned by the
// arcs just emitted.
func (w *walker) processFrontier(q geom.Polygon, f frontierItem) ([]frontierItem, error) {
	center, radius, ok := w.selectCenter(q, f)
	if !ok {
		return nil, ErrNoViableCenter
	}

	n := w.opts.sampleCount
	producedAny := false
	var next []frontierItem

	for radius <= w.cfg.RMax+geom.Epsilon {
		samples := circlePoints(center, radius, n)
		mask := make([]bool, n)
		insideCount := 0
		anyNew := false
		for i, p := range samples {
			in := geom.Contains(q, p)
			if in {
				insideCount++
			}
			mask[i] = in && !w.isCovered(p)
			anyNew = anyNew || mask[i]
		}

		if float64(insideCount)/float64(n) < 0.5 {
			break // circle has grown mostly outside Q: stop this center
		}
		if !anyNew {
			radius += w.cfg.ArcWidth
			continue
		}

		runs := contiguousAngularRuns(mask)
		sort.Slice(runs, func(i, j int) bool {
			return angleOfIdx(runs[i].startIdx, n) < angleOfIdx(runs[j].startIdx, n)
		})

		var emitted []geom.Arc
		var emittedRuns []angularRun
		for _, run := range runs {
			if run.count < 2 {
				continue
			}
			start := angleOfIdx(run.startIdx, n)
			sweep := float64(run.count-1) * angleStep(n)
			if sweep < w.cfg.AngularStep {
				continue
			}
			emitted = append(emitted, geom.Arc{
				Center: center, Radius: radius,
				StartAngle: start, EndAngle: start + sweep,
				CCW: true,
			})
			emittedRuns = append(emittedRuns, run)
		}
		if len(emitted) == 0 {
			radius += w.cfg.ArcWidth
			continue
		}

		w.arcs = append(w.arcs, emitted...)
		producedAny = true
		for _, arc := range emitted {
			path := geom.PointsOnArc(arc, w.cfg.AngularStep)
			buf := geom.BufferLine(path, w.cfg.ArcWidth/2)
			w.covered = unionAll(w.covered, buf)
		}

		if w.residualWidth(emitted) < w.cfg.MaxDistanceFromPerimeter {
			break // step 6: remaining uncovered width is small
		}

		nextRadius := radius + w.cfg.ArcWidth
		if w.cfg.UseLeastCenterPoints && nextRadius <= w.cfg.RMax {
			radius = nextRadius
			continue
		}

		for i, run := range emittedRuns {
			curve := outwardCurve(center, radius, w.cfg.ArcWidth, run, n)
			next = append(next, frontierItem{
				curve: curve, hasSource: true,
				sourceCenter: center, sourceRadius: emitted[i].Radius,
			})
		}
		break
	}

	if !producedAny {
		return nil, ErrNoViableCenter
	}
	return next, nil
}

// residualWidth estimates the uncovered width remaining beyond the
// just-emitted arcs: the distance from their sample points to the
// region's boundary (spec.md §4.3.2 step 6, §4.3.3).
func (w *walker) residualWidth(arcs []geom.Arc) float64 {
	min := math.Inf(1)
	for _, a := range arcs {
		for _, p := range geom.PointsOnArc(a, w.cfg.AngularStep) {
			if _, d := nearestBoundaryPoint(w.boundaryQ, p); d < min {
				min = d
			}
		}
	}
	return min
}
