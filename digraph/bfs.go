package digraph

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when BFS is given a nil graph.
	ErrGraphNil = errors.New("digraph: graph is nil")

	// ErrBadDepth is returned when WithMaxDepth is given a negative depth.
	ErrBadDepth = errors.New("digraph: max depth must be non-negative")
)

// BFSResult holds the outcome of a breadth-first search.
type BFSResult struct {
	Order  []int // vertices in visit order, start first
	Depth  []int // edge distance from start; -1 when unreached
	Parent []int // BFS tree parent; -1 for start and unreached vertices
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo rebuilds the shortest start→v path, or nil when v is unreached.
func (r *BFSResult) PathTo(v int) []int {
	if !r.Reached(v) {
		return nil
	}
	path := make([]int, r.Depth[v]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = v
		v = r.Parent[v]
	}
	return path
}

// BFSOption configures BFS.
type BFSOption func(*bfsOptions)

type bfsOptions struct {
	ctx      context.Context
	maxDepth int // 0 disables the limit
	err      error
}

// WithContext sets a context checked once per dequeued vertex.
func WithContext(ctx context.Context) BFSOption {
	return func(o *bfsOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth stops exploring beyond depth d; 0 means unlimited.
func WithMaxDepth(d int) BFSOption {
	return func(o *bfsOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadDepth, d)
			return
		}
		o.maxDepth = d
	}
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *Digraph
	opts  bfsOptions
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search from start over g's adjacency order.
func BFS(g *Digraph, start int, opts ...BFSOption) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := bfsOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.valid(start) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}

	n := g.Size()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(v, depth, parent int) {
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)

		next := w.res.Depth[v] + 1
		if w.opts.maxDepth > 0 && next > w.opts.maxDepth {
			continue
		}
		for _, u := range w.graph.adjacency[v] {
			if w.res.Depth[u] < 0 {
				w.enqueue(u, next, v)
			}
		}
	}

	return nil
}
