package parameter

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/regnet/network"
)

// Fixed is an immutable parameter point.
type Fixed struct {
	net       *network.Network
	labelling []uint64
	orders    []Order
}

// New validates and binds a labelling and per-variable orders to net.
// A nil orders slice selects the identity order for every variable.
func New(net *network.Network, labelling []uint64, orders []Order) (*Fixed, error) {
	// 1. Network shape
	if net == nil {
		return nil, ErrNilNetwork
	}
	dim := net.Size()
	if dim > MaxDimension {
		return nil, fmt.Errorf("%w: %d", ErrTooManyDimensions, dim)
	}

	// 2. One label per base domain, each within 2*D bits
	size := 1
	for _, extent := range net.Domains() {
		if size > math.MaxInt/extent {
			return nil, fmt.Errorf("%w: domain count overflows", ErrLabellingSize)
		}
		size *= extent
	}
	if len(labelling) != size {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLabellingSize, len(labelling), size)
	}
	for dom, label := range labelling {
		if 2*dim < 64 && label>>(2*dim) != 0 {
			return nil, fmt.Errorf("%w: domain %d label %#x", ErrLabellingBits, dom, label)
		}
	}

	// 3. Orders are permutations of each variable's thresholds
	if orders == nil {
		orders = make([]Order, dim)
		for d := range orders {
			orders[d] = Identity(net.NumThresholds(d))
		}
	}
	if len(orders) != dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrOrderCount, len(orders), dim)
	}
	owned := make([]Order, dim)
	for d, o := range orders {
		if err := o.Validate(net.NumThresholds(d)); err != nil {
			return nil, fmt.Errorf("variable %d: %w", d, err)
		}
		owned[d] = slices.Clone(o)
	}

	return &Fixed{net: net, labelling: slices.Clone(labelling), orders: owned}, nil
}

// Network returns the network the parameter belongs to, or nil on a nil
// parameter.
func (p *Fixed) Network() *network.Network {
	if p == nil {
		return nil
	}
	return p.net
}

// Labelling returns a copy of the per-domain wall labels.
func (p *Fixed) Labelling() []uint64 { return slices.Clone(p.labelling) }

// Order returns a copy of variable d's threshold order.
func (p *Fixed) Order(d int) Order {
	if d < 0 || d >= len(p.orders) {
		return nil
	}
	return slices.Clone(p.orders[d])
}

// Regulator returns the node whose threshold sits at position threshold of
// variable d. Positions that map past d's outputs, and positions out of
// range, belong to d itself.
func (p *Fixed) Regulator(d, threshold int) int {
	if d < 0 || d >= len(p.orders) || threshold < 0 || threshold >= len(p.orders[d]) {
		return d
	}
	outputs := p.net.Outputs(d)
	if k := p.orders[d][threshold]; k < len(outputs) {
		return outputs[k]
	}
	return d
}
