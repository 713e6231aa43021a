package phase

import "errors"

// Sentinel errors for phase space construction and queries.
var (
	// ErrNilParameter indicates New was given no parameter or no network.
	ErrNilParameter = errors.New("phase: parameter or network is nil")

	// ErrBadExtent indicates an extent below one.
	ErrBadExtent = errors.New("phase: extent must be positive")

	// ErrTooManyDomains indicates the domain count overflows int.
	ErrTooManyDomains = errors.New("phase: domain count overflows")

	// ErrCoordinates indicates coordinates of the wrong length or out of range.
	ErrCoordinates = errors.New("phase: coordinates out of range")

	// ErrLabellingSize indicates the labelling does not cover every base domain.
	ErrLabellingSize = errors.New("phase: labelling length does not match the domain count")

	// ErrInvalidOrder indicates a self edge whose threshold is missing from its order.
	ErrInvalidOrder = errors.New("phase: threshold order does not place a self edge")

	// ErrInconsistentLabelling indicates neighbours of a sliver domain
	// disagree on a wall orthogonal to the sliver.
	ErrInconsistentLabelling = errors.New("phase: inconsistent labelling around sliver domain")

	// ErrEmptyRegion indicates Annotate was given no domains.
	ErrEmptyRegion = errors.New("phase: empty region")

	// ErrDomainOutOfRange indicates a domain index outside the phase space.
	ErrDomainOutOfRange = errors.New("phase: domain out of range")
)
