// Package diagnostic implements the error taxonomy of spec.md §7:
// ParseError and EmitError are fatal (they abort the whole run);
// RegionRejected, PlanFailure, GeometryDegenerate and Timeout are local
// (they cause one bridge region to be skipped, logged, and left
// untouched). Callers branch on fatality with IsFatal rather than a type
// switch at every call site.
package diagnostic
