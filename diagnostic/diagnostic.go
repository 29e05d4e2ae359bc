package diagnostic

import (
	"errors"
	"fmt"
)

// Kind names one of the six error classes of spec.md §7.
type Kind int

const (
	// KindParseError: malformed motion program. Fatal.
	KindParseError Kind = iota
	// KindRegionRejected: region failed the candidacy filter. Local.
	KindRegionRejected
	// KindPlanFailure: planner produced an empty plan. Local.
	KindPlanFailure
	// KindGeometryDegenerate: kernel returned empty from non-empty input. Local.
	KindGeometryDegenerate
	// KindTimeout: per-region wall-clock budget exceeded. Local.
	KindTimeout
	// KindEmitError: splice would produce invalid motion. Fatal.
	KindEmitError
)

func (k Kind) String() string {
	switch k {
	case KindParseError:
		return "ParseError"
	case KindRegionRejected:
		return "RegionRejected"
	case KindPlanFailure:
		return "PlanFailure"
	case KindGeometryDegenerate:
		return "GeometryDegenerate"
	case KindTimeout:
		return "Timeout"
	case KindEmitError:
		return "EmitError"
	default:
		return "Unknown"
	}
}

// Diagnostic is a classified error carrying the layer/region it
// occurred in, per spec.md §7 propagation rules.
type Diagnostic struct {
	Kind   Kind
	Layer  int
	Region int // -1 when not region-specific
	Err    error
}

func (d *Diagnostic) Error() string {
	if d.Region >= 0 {
		return fmt.Sprintf("%s: layer %d region %d: %v", d.Kind, d.Layer, d.Region, d.Err)
	}
	return fmt.Sprintf("%s: layer %d: %v", d.Kind, d.Layer, d.Err)
}

func (d *Diagnostic) Unwrap() error { return d.Err }

// Fatal reports whether this diagnostic must abort the whole run
// (ParseError, EmitError) as opposed to being skipped locally.
func (d *Diagnostic) Fatal() bool {
	return d.Kind == KindParseError || d.Kind == KindEmitError
}

func New(kind Kind, layer, region int, err error) *Diagnostic {
	return &Diagnostic{Kind: kind, Layer: layer, Region: region, Err: err}
}

// IsFatal reports whether err is (or wraps) a fatal Diagnostic. A plain
// error that isn't a Diagnostic at all is treated as fatal, since it
// didn't go through the classification the driver expects.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var d *Diagnostic
	if errors.As(err, &d) {
		return d.Fatal()
	}
	return true
}
