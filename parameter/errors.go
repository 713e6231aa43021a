package parameter

import "errors"

// Sentinel errors for parameter construction.
var (
	ErrNilNetwork        = errors.New("parameter: network is nil")
	ErrTooManyDimensions = errors.New("parameter: network has more than 32 nodes")
	ErrLabellingSize     = errors.New("parameter: labelling length does not match the domain count")
	ErrLabellingBits     = errors.New("parameter: label uses bits beyond 2*D")
	ErrOrderCount        = errors.New("parameter: one order per node is required")
	ErrInvalidOrder      = errors.New("parameter: order is not a permutation of the thresholds")
	ErrWallLength        = errors.New("parameter: left and right walls differ in length")
	ErrInvalidDocument   = errors.New("parameter: invalid document")
)

// MaxDimension bounds the network size so that 2*D bits fit one uint64.
const MaxDimension = 32
