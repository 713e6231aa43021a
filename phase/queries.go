package phase

import (
	"github.com/katalvlaran/regnet/digraph"
	"github.com/katalvlaran/regnet/network"
	"github.com/katalvlaran/regnet/parameter"
)

// Digraph returns the finalized transition graph.
func (dg *DomainGraph) Digraph() *digraph.Digraph { return dg.graph }

// Network returns the network of the underlying parameter.
func (dg *DomainGraph) Network() *network.Network { return dg.net }

// Dimension returns the number of network nodes.
func (dg *DomainGraph) Dimension() int { return dg.dim }

// Size returns the number of (extended) domains.
func (dg *DomainGraph) Size() int { return dg.ext.Size() }

// BaseSize returns the number of domains of the base phase space.
func (dg *DomainGraph) BaseSize() int { return dg.base.Size() }

// Extended reports whether some node represses itself.
func (dg *DomainGraph) Extended() bool { return dg.extended }

// NonRegular returns the number of sliver domains.
func (dg *DomainGraph) NonRegular() int { return dg.nonRegular }

// Inconsistencies returns how many sliver domains had neighbours that
// disagreed on an orthogonal wall.
func (dg *DomainGraph) Inconsistencies() int { return dg.inconsistencies }

// Indexer returns the indexer of the (extended) phase space.
func (dg *DomainGraph) Indexer() *Indexer { return dg.ext }

// SelfRepressors lists the self-repressing dimensions.
func (dg *DomainGraph) SelfRepressors() []int {
	var out []int
	for d, p := range dg.selfThreshold {
		if p >= 0 {
			out = append(out, d)
		}
	}
	return out
}

// SelfThreshold returns the doubled threshold position of dimension d.
func (dg *DomainGraph) SelfThreshold(d int) (int, bool) {
	if d < 0 || d >= dg.dim || dg.selfThreshold[d] < 0 {
		return 0, false
	}
	return dg.selfThreshold[d], true
}

// Coordinates decodes an (extended) domain index.
func (dg *DomainGraph) Coordinates(dom int) []int {
	if !dg.valid(dom) {
		return nil
	}
	return dg.ext.Coordinates(dom)
}

// RegularDomain maps an extended domain to its base domain.
func (dg *DomainGraph) RegularDomain(dom int) (int, bool) {
	if !dg.valid(dom) || dg.regular[dom] < 0 {
		return 0, false
	}
	return dg.regular[dom], true
}

// FirstSelfThreshold returns the lowest dimension along which dom is a sliver.
func (dg *DomainGraph) FirstSelfThreshold(dom int) (int, bool) {
	if !dg.valid(dom) || dg.firstSelf[dom] < 0 {
		return 0, false
	}
	return dg.firstSelf[dom], true
}

// Walls returns the absorbing flags of dom's left and right walls.
func (dg *DomainGraph) Walls(dom int) (left, right []bool) {
	if !dg.valid(dom) {
		return nil, nil
	}
	return parameter.Walls(dg.Label(dom), dg.dim)
}

// Attracting reports whether dom has no absorbing wall.
func (dg *DomainGraph) Attracting(dom int) bool {
	return dg.valid(dom) && dg.walls[dom].left == 0 && dg.walls[dom].right == 0
}

// Label encodes dom's resolved walls in the labelling layout. For regular
// domains this is the parameter's label.
func (dg *DomainGraph) Label(dom int) uint64 {
	if !dg.valid(dom) {
		return 0
	}
	return dg.walls[dom].left | dg.walls[dom].right<<dg.dim
}

// Direction returns the dimension separating two adjacent regular domains,
// or Dimension() when either is a sliver, they coincide, or they are not
// adjacent.
func (dg *DomainGraph) Direction(source, target int) int {
	rs, ok := dg.RegularDomain(source)
	if !ok {
		return dg.dim
	}
	rt, ok := dg.RegularDomain(target)
	if !ok || rs == rt {
		return dg.dim
	}
	lo, hi := min(rs, rt), max(rs, rt)
	for d := 0; d < dg.dim; d++ {
		if next, ok := dg.base.Neighbor(lo, d, 1); ok && next == hi {
			return d
		}
	}

	return dg.dim
}

// Regulator returns the node whose threshold separates source and target,
// or Dimension() when Direction does.
func (dg *DomainGraph) Regulator(source, target int) int {
	d, threshold, ok := dg.crossing(source, target)
	if !ok {
		return dg.dim
	}
	return dg.param.Regulator(d, threshold)
}

// EdgeLabel marks which wall of regulator j the transition source→target
// implicates. Bit j is set when an increasing transition crosses a
// repressing edge's threshold or a decreasing one an activating edge's;
// bit D+j is set otherwise. It is 0 when no regulator applies or the
// regulator is the crossing dimension itself.
func (dg *DomainGraph) EdgeLabel(source, target int) uint64 {
	d, threshold, ok := dg.crossing(source, target)
	if !ok {
		return 0
	}
	j := dg.param.Regulator(d, threshold)
	if j == d {
		return 0
	}
	k := dg.param.Order(d)[threshold]
	outs := dg.net.OutputEdges(d)
	if k >= len(outs) {
		return 0
	}
	rs, _ := dg.RegularDomain(source)
	rt, _ := dg.RegularDomain(target)
	if (rs < rt) != outs[k].Activating {
		return 1 << j
	}

	return 1 << (j + dg.dim)
}

// crossing returns the dimension and threshold position crossed between two
// adjacent regular domains.
func (dg *DomainGraph) crossing(source, target int) (d, threshold int, ok bool) {
	d = dg.Direction(source, target)
	if d == dg.dim {
		return 0, 0, false
	}
	rs, _ := dg.RegularDomain(source)
	rt, _ := dg.RegularDomain(target)
	return d, dg.base.Coordinate(min(rs, rt), d), true
}

// Graphviz renders the transition graph in DOT format.
func (dg *DomainGraph) Graphviz() string { return dg.graph.Graphviz() }

func (dg *DomainGraph) valid(dom int) bool {
	return dom >= 0 && dom < dg.ext.Size()
}
