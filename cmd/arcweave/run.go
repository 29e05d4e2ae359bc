package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gcodearc/arcweave/arcconfig"
	"github.com/gcodearc/arcweave/arcplan"
	"github.com/gcodearc/arcweave/diagnostic"
	"github.com/gcodearc/arcweave/emit"
	"github.com/gcodearc/arcweave/gcode"
	"github.com/gcodearc/arcweave/region"
	"github.com/gcodearc/arcweave/rewrite"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Exit codes, spec.md §6.3.
const (
	exitOK               = 0
	exitFileNotFound     = 2
	exitParseFailure     = 3
	exitNoBridgeRegions  = 4
	exitAllRegionsReject = 5
	// exitFatal covers EmitError, spec.md §7's other abort condition,
	// which the §6.3 table leaves unnumbered; chosen here as the
	// catch-all non-zero code.
	exitFatal = 1
)

// regionTimeout is the per-region wall-clock budget spec.md §5
// requires the planner to respect. Not exposed as a configuration
// field: it bounds worst-case CLI latency, not print geometry.
const regionTimeout = 5 * time.Second

// Process runs the full pipeline against path and rewrites it in
// place, returning the process exit code.
func Process(path string, logger *zap.SugaredLogger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return exitFileNotFound, err
		}
		return exitFatal, err
	}
	prog, parseErr := gcode.Parse(f)
	closeErr := f.Close()
	if parseErr != nil {
		return exitParseFailure, parseErr
	}
	if closeErr != nil {
		return exitFatal, closeErr
	}

	cfg, err := arcconfig.Resolve(prog.Config, path)
	if err != nil {
		return exitFatal, err
	}

	found, accepted, fatalErr := processLayers(prog, cfg, logger, rewrite.NoopRewriter{})
	if fatalErr != nil {
		return exitFatal, fatalErr
	}
	if found == 0 {
		return exitNoBridgeRegions, nil
	}
	if accepted == 0 {
		return exitAllRegionsReject, nil
	}

	if err := writeAtomic(path, prog); err != nil {
		return exitFatal, err
	}
	return exitOK, nil
}

// planJob is one bridge region awaiting a plan, in the deterministic
// order spec.md §5 requires (layer index ascending, then region
// centroid lexicographic within a layer).
type planJob struct {
	layer  int
	region int
	r      region.BridgeRegion
}

// processLayers extracts every layer's bridge regions (sequential:
// region.Extract only reads prog), plans them concurrently over a
// bounded worker pool (spec.md §5's optional coarse-grained
// parallelism — independent BridgeRegions, each a pure read of prog),
// then splices successful plans into prog one at a time in
// deterministic order, since splicing must be serialized.
func processLayers(prog *gcode.Program, cfg arcconfig.Config, logger *zap.SugaredLogger, rewriter rewrite.Rewriter) (found, accepted int, fatalErr error) {
	var jobs []planJob
	for li := range prog.Layers {
		regions, rejections := region.Extract(prog, li, cfg)
		found += len(regions) + len(rejections)
		for _, rejErr := range rejections {
			diagnostic.Log(logger, diagnostic.New(diagnostic.KindRegionRejected, li, -1, rejErr))
		}

		sort.Slice(regions, func(i, j int) bool {
			ci, cj := regions[i].Centroid(), regions[j].Centroid()
			if ci.X != cj.X {
				return ci.X < cj.X
			}
			return ci.Y < cj.Y
		})
		for ri, r := range regions {
			jobs = append(jobs, planJob{layer: li, region: ri, r: r})
		}
	}

	plans := make([]arcplan.ArcPlan, len(jobs))
	planErrs := make([]error, len(jobs))

	g := new(errgroup.Group)
	g.SetLimit(4)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), regionTimeout)
			defer cancel()
			plan, err := arcplan.Plan(ctx, job.r, cfg)
			plans[i], planErrs[i] = plan, err
			return nil
		})
	}
	_ = g.Wait() // per-job errors are carried in planErrs, never aborts the pool

	type spliceCandidate struct {
		job  planJob
		plan arcplan.ArcPlan
	}
	var candidates []spliceCandidate
	for i, job := range jobs {
		if err := planErrs[i]; err != nil {
			kind := diagnostic.KindPlanFailure
			if errors.Is(err, context.DeadlineExceeded) {
				kind = diagnostic.KindTimeout
			}
			diagnostic.Log(logger, diagnostic.New(kind, job.layer, job.region, err))
			continue
		}
		candidates = append(candidates, spliceCandidate{job: job, plan: plans[i]})
	}

	// Splice from the bottom of the file upward. ReplaceRange shifts every
	// line index at or after the edited range, so a region spliced first
	// must be the one furthest down the file — otherwise its edit would
	// invalidate the SourceSegments already captured for regions above it
	// (spec.md §8 invariant 5). Regions never overlap in line range, so any
	// point within a region's source lines is a safe ordering key.
	sort.Slice(candidates, func(i, j int) bool {
		return spliceLine(candidates[i].job.r) > spliceLine(candidates[j].job.r)
	})

	emitter := &emit.Emitter{Config: cfg, Log: logger}
	var patches []rewrite.Patch
	for _, c := range candidates {
		if err := emitter.Splice(prog, c.job.r, c.plan); err != nil {
			d := diagnostic.New(diagnostic.KindEmitError, c.job.layer, c.job.region, err)
			diagnostic.Log(logger, d)
			return found, accepted, d
		}
		accepted++
		z := prog.Layers[c.job.layer].ZHeight
		patches = append(patches, rewrite.Patch{Footprint: c.job.r.Polygon, ZRange: [2]float64{z, z}})
	}

	if len(patches) > 0 {
		if err := rewriter.Apply(prog, patches); err != nil {
			d := diagnostic.New(diagnostic.KindEmitError, -1, -1, err)
			diagnostic.Log(logger, d)
			return found, accepted, d
		}
	}
	return found, accepted, nil
}

// spliceLine returns a representative source-line index for r, used only
// to order splices from the bottom of the file upward. Regions never
// overlap in line range, so the maximum SourceSegments.Start is a safe,
// stable key.
func spliceLine(r region.BridgeRegion) int {
	max := -1
	for _, s := range r.SourceSegments {
		if s.Start > max {
			max = s.Start
		}
	}
	return max
}

// writeAtomic writes prog to a temp file beside path and renames it
// over the original, so a crash or error mid-write never corrupts the
// input (spec.md §7: "output file is written atomically").
func writeAtomic(path string, prog *gcode.Program) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".arcweave-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := prog.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
