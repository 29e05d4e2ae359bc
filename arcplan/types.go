package arcplan

import "github.com/gcodearc/arcweave/geom"

// ArcPlan is the ordered output of Plan: arcs in breadth-first,
// radius-ascending emission order (spec.md §4.3.4), the order X must
// preserve when splicing motion.
type ArcPlan struct {
	Arcs []geom.Arc
}

// options holds tunables for Plan that are not part of the printed
// configuration (arcconfig.Config) but affect the planner's internal
// discretization. Kept as functional options in the style of the
// reference library's builder/bfs packages rather than extra Plan
// parameters.
type options struct {
	sampleCount int
}

// Option configures Plan.
type Option func(*options)

// DefaultOptions returns the planner's default tunables: 360 angular
// samples per circle, matching a 1-degree resolution regardless of the
// configured angular_step (which governs emitted arc discretization,
// not the planner's internal coverage sampling).
func DefaultOptions() options {
	return options{sampleCount: 360}
}

// WithSampleCount overrides the number of angular samples used to test
// circle/region containment during radius growth and arc clipping.
// Higher values trade CPU time for angular precision.
func WithSampleCount(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.sampleCount = n
		}
	}
}
