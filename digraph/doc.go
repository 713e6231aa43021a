// Package digraph provides a compact directed graph over dense integer
// vertices 0..n-1, used as the state transition graph of a phase space.
//
// What
//
//   - Two-phase lifecycle: AddEdge appends to the source's adjacency list,
//     then Finalize sorts every list and drops duplicates.
//   - After Finalize the graph is read-only and safe for concurrent readers
//     without locking.
//   - Optional self-loops (WithLoops), rejected by default.
//   - Transpose, degree statistics, DOT and JSON-like renderings.
//   - StronglyConnectedComponents (iterative Tarjan) and Recurrent.
//   - BFS with depth limit, cancellation and shortest-path recovery.
//
// Why
//
//   - Phase space graphs are dense in vertex ids, so slices beat maps.
//   - Recurrent regions of a domain graph are exactly its nontrivial or
//     self-looped strongly connected components.
//
// Determinism
//
//	Adjacency lists are sorted by Finalize. SCC and BFS walk neighbours in
//	that order, so components and visit sequences are reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - AddEdge:  O(1) amortized
//   - Finalize: O(V + E log E)
//   - HasEdge:  O(log deg) once finalized, O(deg) before
//   - SCC:      O(V + E) time, O(V) memory, no recursion
//   - BFS:      O(V + E) time, O(V) memory
//
// Usage
//
//	g := digraph.New(4, digraph.WithLoops())
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 0)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(3, 3)
//	g.Finalize()
//
//	sccs := digraph.StronglyConnectedComponents(g) // [[2] [0 1] [3]]
//	rec := digraph.Recurrent(g)                     // [[0 1] [3]]
//
//	res, err := digraph.BFS(g, 0, digraph.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrVertexNotFound, ErrBadDepth or ctx.Err()
//	}
//	path := res.PathTo(2) // [0 1 2]
//
// Errors
//
//	ErrGraphNil        - BFS on a nil graph.
//	ErrVertexNotFound  - an endpoint is outside 0..Size()-1.
//	ErrLoopNotAllowed  - self-loop on a graph built without WithLoops.
//	ErrFinalized       - mutation after Finalize.
//	ErrBadSize         - Resize below the current size.
//	ErrBadDepth        - negative WithMaxDepth.
package digraph
