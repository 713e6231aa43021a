package network

import (
	"fmt"
	"slices"
)

// termRecord is a canonical term whose edges are arena IDs.
type termRecord struct {
	kind     TermKind
	positive bool
	edges    []int
}

// Network is an immutable, parsed regulatory network. It is safe for
// concurrent readers.
type Network struct {
	model     Model
	spec      string
	names     []string
	index     map[string]int
	essential []bool
	decaySign []bool

	edges      []Edge         // arena
	terms      [][]termRecord // per target, canonical order
	inEdges    [][]int        // per target, canonical order
	outEdges   [][]int        // per source, assignment order
	thresholds []int
}

// build places parsed logic into the arena and runs the instance pass.
func build(model Model, spec string, lines []line, parsed []parsedLogic) *Network {
	size := len(lines)
	n := &Network{
		model:      model,
		spec:       spec,
		names:      make([]string, size),
		index:      make(map[string]int, size),
		essential:  make([]bool, size),
		decaySign:  make([]bool, size),
		terms:      make([][]termRecord, size),
		inEdges:    make([][]int, size),
		outEdges:   make([][]int, size),
		thresholds: make([]int, size),
	}
	for i, l := range lines {
		n.names[i] = l.name
		n.index[l.name] = i
		n.essential[i] = l.essential
		n.decaySign[i] = parsed[i].decaySign
	}

	// 1. Arena placement in canonical order
	for target, pl := range parsed {
		for ti, t := range pl.terms {
			rec := termRecord{kind: t.kind, positive: t.positive}
			for _, u := range t.units {
				first := len(n.edges)
				for k, re := range u {
					e := Edge{
						ID:         len(n.edges),
						Source:     re.source,
						Target:     target,
						Activating: re.activating,
						Positive:   re.positive,
						PTM:        re.ptm,
						Decay:      re.decay,
						Term:       ti,
						Partner:    -1,
					}
					if len(u) == 2 {
						e.Partner = first + 1 - k
					}
					rec.edges = append(rec.edges, e.ID)
					n.edges = append(n.edges, e)
				}
			}
			n.terms[target] = append(n.terms[target], rec)
		}
	}

	// 2. Instances, inputs and outputs, targets ascending
	for target := 0; target < size; target++ {
		instances := make(map[int]int)
		for _, rec := range n.terms[target] {
			for _, id := range rec.edges {
				e := &n.edges[id]
				e.Instance = instances[e.Source]
				instances[e.Source]++
				e.Order = len(n.outEdges[e.Source])
				n.inEdges[target] = append(n.inEdges[target], id)
				n.outEdges[e.Source] = append(n.outEdges[e.Source], id)
			}
		}
	}

	// 3. Thresholds: one per output (at least one) plus one per self-edge
	for v := 0; v < size; v++ {
		self := 0
		for _, id := range n.outEdges[v] {
			if n.edges[id].Target == v {
				self++
			}
		}
		n.thresholds[v] = max(len(n.outEdges[v]), 1) + self
	}

	return n
}

// Size returns the number of nodes.
func (n *Network) Size() int { return len(n.names) }

// Model returns the grammar variant the network was parsed with.
func (n *Network) Model() Model { return n.model }

// Specification returns the normalized specification text.
func (n *Network) Specification() string { return n.spec }

// Index returns the index of the named node.
func (n *Network) Index(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownNode, name)
	}
	return i, nil
}

// Name returns the name of node i.
func (n *Network) Name(i int) (string, error) {
	if !n.valid(i) {
		return "", fmt.Errorf("%w: index %d", ErrUnknownNode, i)
	}
	return n.names[i], nil
}

// Names returns all node names in index order.
func (n *Network) Names() []string { return slices.Clone(n.names) }

// Essential reports the line-level essential marker of node i.
func (n *Network) Essential(i int) bool { return n.valid(i) && n.essential[i] }

// DecaySign reports the sign of node i's decay term; false when it has none.
func (n *Network) DecaySign(i int) bool { return n.valid(i) && n.decaySign[i] }

// Inputs lists the source of every edge into i, in canonical order.
func (n *Network) Inputs(i int) []int {
	if !n.valid(i) {
		return nil
	}
	out := make([]int, len(n.inEdges[i]))
	for k, id := range n.inEdges[i] {
		out[k] = n.edges[id].Source
	}
	return out
}

// InputInstances parallels Inputs with each edge's instance number.
func (n *Network) InputInstances(i int) []int {
	if !n.valid(i) {
		return nil
	}
	out := make([]int, len(n.inEdges[i]))
	for k, id := range n.inEdges[i] {
		out[k] = n.edges[id].Instance
	}
	return out
}

// Outputs lists the target of every edge out of i, in order.
func (n *Network) Outputs(i int) []int {
	if !n.valid(i) {
		return nil
	}
	out := make([]int, len(n.outEdges[i]))
	for k, id := range n.outEdges[i] {
		out[k] = n.edges[id].Target
	}
	return out
}

// OutputEdges returns the edges out of i; OutputEdges(i)[k].Order == k.
func (n *Network) OutputEdges(i int) []Edge {
	if !n.valid(i) {
		return nil
	}
	return n.collect(n.outEdges[i])
}

// InputEdges returns the edges into i in canonical order.
func (n *Network) InputEdges(i int) []Edge {
	if !n.valid(i) {
		return nil
	}
	return n.collect(n.inEdges[i])
}

// SelfEdges returns the edges from i to itself in canonical order.
func (n *Network) SelfEdges(i int) []Edge {
	var out []Edge
	for _, e := range n.InputEdges(i) {
		if e.Source == i {
			out = append(out, e)
		}
	}
	return out
}

// Edges returns a copy of the whole edge arena, indexed by Edge.ID.
func (n *Network) Edges() []Edge { return slices.Clone(n.edges) }

// Logic returns node i's terms as source indices.
func (n *Network) Logic(i int) [][]int {
	if !n.valid(i) {
		return nil
	}
	out := make([][]int, len(n.terms[i]))
	for k, rec := range n.terms[i] {
		out[k] = make([]int, len(rec.edges))
		for j, id := range rec.edges {
			out[k][j] = n.edges[id].Source
		}
	}

	return out
}

// LogicEdges returns node i's terms as full edges.
func (n *Network) LogicEdges(i int) [][]Edge {
	if !n.valid(i) {
		return nil
	}
	out := make([][]Edge, len(n.terms[i]))
	for k, rec := range n.terms[i] {
		out[k] = n.collect(rec.edges)
	}
	return out
}

// Terms returns node i's terms with kind and sign.
func (n *Network) Terms(i int) []Term {
	if !n.valid(i) {
		return nil
	}
	out := make([]Term, len(n.terms[i]))
	for k, rec := range n.terms[i] {
		out[k] = Term{Kind: rec.kind, Positive: rec.positive, Edges: n.collect(rec.edges)}
	}
	return out
}

// TermSigns returns the sign of each of node i's terms.
func (n *Network) TermSigns(i int) []bool {
	if !n.valid(i) {
		return nil
	}
	out := make([]bool, len(n.terms[i]))
	for k, rec := range n.terms[i] {
		out[k] = rec.positive
	}
	return out
}

// Edge looks up the instance-th edge from source into target.
func (n *Network) Edge(source, target, instance int) (Edge, error) {
	if n.valid(target) {
		for _, id := range n.inEdges[target] {
			if e := n.edges[id]; e.Source == source && e.Instance == instance {
				return e, nil
			}
		}
	}
	return Edge{}, fmt.Errorf("%w: (%d, %d, %d)", ErrEdgeNotFound, source, target, instance)
}

// Interaction reports whether the edge activates its target.
func (n *Network) Interaction(source, target, instance int) (bool, error) {
	e, err := n.Edge(source, target, instance)
	return e.Activating, err
}

// EdgeSign reports the sign of the term holding the edge.
func (n *Network) EdgeSign(source, target, instance int) (bool, error) {
	e, err := n.Edge(source, target, instance)
	return e.Positive, err
}

// Decay reports whether the edge sits in a decay term.
func (n *Network) Decay(source, target, instance int) (bool, error) {
	e, err := n.Edge(source, target, instance)
	return e.Decay, err
}

// PTM reports whether the edge is part of a PTM pair.
func (n *Network) PTM(source, target, instance int) (bool, error) {
	e, err := n.Edge(source, target, instance)
	return e.PTM, err
}

// Order returns the position of (target, instance) among source's outputs.
func (n *Network) Order(source, target, instance int) (int, error) {
	e, err := n.Edge(source, target, instance)
	if err != nil {
		return 0, err
	}
	return e.Order, nil
}

// NumThresholds returns max(|outputs(i)|, 1) plus the number of self-edges of i.
func (n *Network) NumThresholds(i int) int {
	if !n.valid(i) {
		return 0
	}
	return n.thresholds[i]
}

// Domains returns NumThresholds(d)+1 for every node d.
func (n *Network) Domains() []int {
	out := make([]int, len(n.thresholds))
	for d, k := range n.thresholds {
		out[d] = k + 1
	}
	return out
}

func (n *Network) collect(ids []int) []Edge {
	out := make([]Edge, len(ids))
	for k, id := range ids {
		out[k] = n.edges[id]
	}
	return out
}

func (n *Network) valid(i int) bool {
	return i >= 0 && i < len(n.names)
}
