package geom

import "errors"

// ErrDegenerate is returned by callers (not by geom itself, which never
// errors) when a geom operation unexpectedly produced an empty result from
// a non-empty input — the condition spec.md §7 calls GeometryDegenerate.
var ErrDegenerate = errors.New("geom: operation produced a degenerate result")
