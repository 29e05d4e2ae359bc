package arcplan

import "errors"

// ErrNoViableCenter is returned when a frontier curve cannot seed even
// an r_min arc inside the region (the candidate center cannot fit any
// valid radius without immediately leaving Q). The caller treats this
// as diagnostic.PlanFailure on the whole region if no arcs at all were
// produced.
var ErrNoViableCenter = errors.New("arcplan: no viable arc center on frontier")

// ErrEmptyPlan is returned when the planner never emitted a single arc
// for a region that otherwise passed the candidacy filter.
var ErrEmptyPlan = errors.New("arcplan: planner produced no arcs")
