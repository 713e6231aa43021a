package phase

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/regnet/digraph"
	"github.com/katalvlaran/regnet/network"
	"github.com/katalvlaran/regnet/parameter"
)

// Parameter is the view of a parameter point the phase space consumes.
// *parameter.Fixed satisfies it.
type Parameter interface {
	Network() *network.Network
	Labelling() []uint64
	Order(d int) parameter.Order
	Regulator(d, threshold int) int
}

// wallMask holds absorbing flags: bit d of left (right) marks the left
// (right) wall along dimension d as absorbing.
type wallMask struct {
	left, right uint64
	set         bool
}

// DomainGraph is the state transition graph of a parameter point over the
// (possibly extended) phase space. It is immutable once built.
type DomainGraph struct {
	param     Parameter
	net       *network.Network
	dim       int
	labelling []uint64

	base     *Indexer
	ext      *Indexer
	extended bool

	selfThreshold []int // doubled threshold position per dimension, -1 if none
	regular       []int // extended -> base index, -1 for sliver domains
	firstSelf     []int // extended -> lowest sliver dimension, -1 if regular
	walls         []wallMask

	graph           *digraph.Digraph
	nonRegular      int
	inconsistencies int
}

// New builds the domain graph of p.
//
// When some node represses itself, its dimension gains one coordinate: the
// sliver sitting on the doubled self threshold. Regular domains copy their
// walls from the labelling; sliver domains are resolved in increasing order
// of their number of sliver coordinates, so both neighbours along the first
// sliver dimension are always resolved first.
func New(p Parameter, opts ...Option) (*DomainGraph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	start := time.Now()

	// 1. Validate collaborators
	if p == nil || p.Network() == nil {
		return nil, ErrNilParameter
	}
	net := p.Network()
	dg := &DomainGraph{
		param:     p,
		net:       net,
		dim:       net.Size(),
		labelling: p.Labelling(),
	}
	if dg.dim > parameter.MaxDimension {
		return nil, fmt.Errorf("%w: dimension %d", parameter.ErrTooManyDimensions, dg.dim)
	}
	base, err := NewIndexer(net.Domains())
	if err != nil {
		return nil, err
	}
	dg.base = base
	if len(dg.labelling) != base.Size() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLabellingSize, len(dg.labelling), base.Size())
	}

	// 2. Self repressors and the extended extents
	if err := dg.findSelfRepressors(o.baseSpace); err != nil {
		return nil, err
	}
	extents := net.Domains()
	for d, pos := range dg.selfThreshold {
		if pos >= 0 {
			extents[d]++
			dg.extended = true
		}
	}
	if dg.ext, err = NewIndexer(extents); err != nil {
		return nil, err
	}

	// 3. Walls
	if err := dg.resolve(o); err != nil {
		return nil, err
	}

	// 4. Transitions
	if err := dg.assemble(); err != nil {
		return nil, err
	}

	o.metrics.RecordDomainGraph(dg.extended, dg.ext.Size(), dg.nonRegular, dg.inconsistencies, time.Since(start))
	o.logger.Debug("domain graph built",
		zap.Int("dimension", dg.dim),
		zap.Int("domains", dg.ext.Size()),
		zap.Bool("extended", dg.extended),
		zap.Int("non_regular", dg.nonRegular),
		zap.Int("edges", dg.graph.EdgeCount()),
		zap.Duration("elapsed", time.Since(start)))

	return dg, nil
}

// findSelfRepressors records, for each node with a repressing self edge, the
// threshold position of the first such edge under the node's order.
func (dg *DomainGraph) findSelfRepressors(skip bool) error {
	dg.selfThreshold = make([]int, dg.dim)
	for d := range dg.selfThreshold {
		dg.selfThreshold[d] = -1
		if skip {
			continue
		}
		for _, e := range dg.net.SelfEdges(d) {
			if e.Activating {
				continue
			}
			p := dg.param.Order(d).Inverse(e.Order)
			if p < 0 {
				return fmt.Errorf("%w: node %d, out-edge %d", ErrInvalidOrder, d, e.Order)
			}
			dg.selfThreshold[d] = p
			break
		}
	}

	return nil
}

// resolve fills the wall masks of every extended domain.
func (dg *DomainGraph) resolve(o options) error {
	size := dg.ext.Size()
	dg.regular = make([]int, size)
	dg.firstSelf = make([]int, size)
	dg.walls = make([]wallMask, size)

	// 1. Project extended coordinates and bucket by sliver count
	buckets := make([][]int, dg.dim+1)
	for dom := 0; dom < size; dom++ {
		coords := dg.ext.Coordinates(dom)
		slivers, first := 0, -1
		for d, p := range dg.selfThreshold {
			switch {
			case p < 0 || coords[d] <= p:
			case coords[d] == p+1:
				slivers++
				if first < 0 {
					first = d
				}
			default:
				coords[d]--
			}
		}
		dg.firstSelf[dom] = first
		dg.regular[dom] = -1
		if slivers == 0 {
			// coords are now base coordinates and always in range
			dg.regular[dom], _ = dg.base.Index(coords)
		}
		buckets[slivers] = append(buckets[slivers], dom)
	}

	// 2. Regular domains read the labelling directly
	full := uint64(1)<<dg.dim - 1
	for _, dom := range buckets[0] {
		label := dg.labelling[dg.regular[dom]]
		dg.assign(dom, wallMask{left: label & full, right: label >> dg.dim & full})
	}

	// 3. Sliver domains flip their neighbours' walls along the sliver
	for k := 1; k < len(buckets); k++ {
		for _, dom := range buckets[k] {
			if err := dg.resolveSliver(dom, o); err != nil {
				return err
			}
		}
		dg.nonRegular += len(buckets[k])
	}

	return nil
}

func (dg *DomainGraph) resolveSliver(dom int, o options) error {
	d := dg.firstSelf[dom]
	jump := dg.ext.Jump(d)
	prev, next := dg.walls[dom-jump], dg.walls[dom+jump]
	if !prev.set || !next.set {
		return fmt.Errorf("phase: sliver domain %d resolved before its neighbours", dom)
	}

	bit := uint64(1) << d
	w := wallMask{left: prev.left &^ bit, right: prev.right &^ bit}
	if prev.right&bit == 0 {
		w.left |= bit
	}
	if next.left&bit == 0 {
		w.right |= bit
	}

	if (prev.left^next.left)&^bit != 0 || (prev.right^next.right)&^bit != 0 {
		dg.inconsistencies++
		o.logger.Warn("inconsistent labelling around sliver domain",
			zap.Int("domain", dom),
			zap.Int("prev", dom-jump),
			zap.Int("next", dom+jump),
			zap.Int("dimension", d))
		if o.strict {
			return fmt.Errorf("%w: domain %d along dimension %d", ErrInconsistentLabelling, dom, d)
		}
	}
	dg.assign(dom, w)

	return nil
}

// assign writes a domain's walls once; later writes are ignored.
func (dg *DomainGraph) assign(dom int, w wallMask) {
	if dg.walls[dom].set {
		return
	}
	w.set = true
	dg.walls[dom] = w
}

// assemble turns wall masks into transitions. A domain with no absorbing
// wall keeps a self-loop; otherwise it moves through each absorbing wall
// whose far side is not absorbing too.
func (dg *DomainGraph) assemble() error {
	size := dg.ext.Size()
	g := digraph.New(size, digraph.WithLoops())
	for dom := 0; dom < size; dom++ {
		w := dg.walls[dom]
		if w.left == 0 && w.right == 0 {
			if err := g.AddEdge(dom, dom); err != nil {
				return err
			}
		}
		for d := 0; d < dg.dim; d++ {
			bit := uint64(1) << d
			if w.right&bit != 0 {
				if next, ok := dg.ext.Neighbor(dom, d, 1); ok && dg.walls[next].left&bit == 0 {
					if err := g.AddEdge(dom, next); err != nil {
						return err
					}
				}
			}
			if w.left&bit != 0 {
				if prev, ok := dg.ext.Neighbor(dom, d, -1); ok && dg.walls[prev].right&bit == 0 {
					if err := g.AddEdge(dom, prev); err != nil {
						return err
					}
				}
			}
		}
	}
	g.Finalize()
	dg.graph = g

	return nil
}
