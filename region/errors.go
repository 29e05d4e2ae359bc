package region

import "errors"

// Sentinel errors for region extraction. Callers should use errors.Is to
// branch on these; diagnostic.New(KindRegionRejected, ...) wraps them for
// propagation to the driver.
var (
	// ErrNoBridgeSegments indicates the layer has no bridge-infill
	// segments at all. Not a rejection — this is the "zero regions"
	// non-error case of spec.md §4.2.
	ErrNoBridgeSegments = errors.New("region: layer has no bridge-infill segments")

	// ErrBelowMinArea indicates area(Q) < min_bridge_area.
	ErrBelowMinArea = errors.New("region: area below min_bridge_area")

	// ErrNoOverhangBoundary indicates Q's boundary never leaves the
	// previous layer's perimeter, so it isn't an overhang at all.
	ErrNoOverhangBoundary = errors.New("region: boundary does not leave surrounding perimeter")

	// ErrBelowMinLength indicates the region's inscribed linear extent
	// is below min_bridge_length.
	ErrBelowMinLength = errors.New("region: inscribed extent below min_bridge_length")

	// ErrZeroLengthAnchor indicates the derived anchor_linestring is
	// empty (spec.md §4.3.5: "Anchor of zero length: reject region").
	ErrZeroLengthAnchor = errors.New("region: anchor has zero length")

	// ErrNoPreviousLayer indicates there is no previous layer to anchor
	// against (the first layer can never host a bridge region).
	ErrNoPreviousLayer = errors.New("region: no previous layer to anchor against")
)
