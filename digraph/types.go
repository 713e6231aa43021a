package digraph

import "errors"

// Sentinel errors for digraph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex outside 0..Size()-1.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")

	// ErrFinalized indicates a mutation was attempted on a finalized graph.
	ErrFinalized = errors.New("digraph: graph is finalized")

	// ErrBadSize indicates Resize was asked to shrink the graph.
	ErrBadSize = errors.New("digraph: size may not decrease")
)

// Digraph is a directed graph over vertices 0..Size()-1.
type Digraph struct {
	adjacency [][]int // adjacency[v] lists the targets of v
	edgeCount int     // number of stored edges (deduplicated once finalized)
	loops     bool    // self-loops permitted
	finalized bool    // adjacency sorted, deduplicated and frozen
}

// Option configures a Digraph at construction time.
type Option func(*Digraph)

// WithLoops permits self-loops v→v.
func WithLoops() Option {
	return func(g *Digraph) {
		g.loops = true
	}
}

// Stats summarizes the shape of a graph.
type Stats struct {
	Vertices  int  // number of vertices
	Edges     int  // number of edges
	SelfLoops int  // vertices with an edge to themselves
	Sinks     int  // vertices with out-degree zero
	Finalized bool // Finalize has been called
}

// New creates a graph with n isolated vertices. A negative n is treated as 0.
func New(n int, opts ...Option) *Digraph {
	if n < 0 {
		n = 0
	}
	g := &Digraph{adjacency: make([][]int, n)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
