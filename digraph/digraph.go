package digraph

import (
	"fmt"
	"slices"
	"sort"
)

// AddVertex appends an isolated vertex and returns its index.
func (g *Digraph) AddVertex() (int, error) {
	if g.finalized {
		return 0, ErrFinalized
	}
	g.adjacency = append(g.adjacency, nil)
	return len(g.adjacency) - 1, nil
}

// Resize grows the graph to n vertices. New vertices are isolated.
func (g *Digraph) Resize(n int) error {
	if g.finalized {
		return ErrFinalized
	}
	if n < len(g.adjacency) {
		return fmt.Errorf("%w: %d < %d", ErrBadSize, n, len(g.adjacency))
	}
	for len(g.adjacency) < n {
		g.adjacency = append(g.adjacency, nil)
	}

	return nil
}

// AddEdge adds the edge from→to. Duplicates are tolerated and collapsed by Finalize.
func (g *Digraph) AddEdge(from, to int) error {
	// 1. Reject mutation of a frozen graph
	if g.finalized {
		return ErrFinalized
	}
	// 2. Validate endpoints
	if !g.valid(from) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, from)
	}
	if !g.valid(to) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, to)
	}
	// 3. Enforce loop policy
	if from == to && !g.loops {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++

	return nil
}

// Finalize sorts and deduplicates every adjacency list and freezes the graph.
// Calling Finalize twice is a no-op.
func (g *Digraph) Finalize() {
	if g.finalized {
		return
	}
	count := 0
	for v, adj := range g.adjacency {
		sort.Ints(adj)
		adj = slices.Compact(adj)
		g.adjacency[v] = slices.Clip(adj)
		count += len(adj)
	}
	g.edgeCount = count
	g.finalized = true
}

// Finalized reports whether Finalize has been called.
func (g *Digraph) Finalized() bool { return g.finalized }

// Size returns the number of vertices.
func (g *Digraph) Size() int { return len(g.adjacency) }

// EdgeCount returns the number of stored edges.
func (g *Digraph) EdgeCount() int { return g.edgeCount }

// Loops reports whether self-loops are permitted.
func (g *Digraph) Loops() bool { return g.loops }

// Adjacencies returns a copy of the targets of v.
func (g *Digraph) Adjacencies(v int) ([]int, error) {
	if !g.valid(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return slices.Clone(g.adjacency[v]), nil
}

// OutDegree returns the number of targets of v.
func (g *Digraph) OutDegree(v int) (int, error) {
	if !g.valid(v) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	return len(g.adjacency[v]), nil
}

// HasEdge reports whether from→to is present. Unknown vertices yield false.
func (g *Digraph) HasEdge(from, to int) bool {
	if !g.valid(from) {
		return false
	}
	adj := g.adjacency[from]
	if g.finalized {
		_, found := slices.BinarySearch(adj, to)
		return found
	}
	return slices.Contains(adj, to)
}

// Transpose returns a new graph with every edge reversed. The result is
// finalized when g is.
func (g *Digraph) Transpose() *Digraph {
	t := &Digraph{adjacency: make([][]int, len(g.adjacency)), loops: g.loops}
	for v, adj := range g.adjacency {
		for _, w := range adj {
			t.adjacency[w] = append(t.adjacency[w], v)
			t.edgeCount++
		}
	}
	if g.finalized {
		t.Finalize()
	}

	return t
}

// Stats computes vertex, edge, loop and sink counts.
func (g *Digraph) Stats() Stats {
	s := Stats{Vertices: len(g.adjacency), Edges: g.edgeCount, Finalized: g.finalized}
	for v, adj := range g.adjacency {
		if len(adj) == 0 {
			s.Sinks++
		}
		if g.HasEdge(v, v) {
			s.SelfLoops++
		}
	}

	return s
}

func (g *Digraph) valid(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}
