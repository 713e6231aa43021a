package digraph

import "sort"

// frame is one level of the explicit Tarjan call stack.
type frame struct {
	v    int // vertex being expanded
	next int // position of the next adjacency to visit
}

// StronglyConnectedComponents returns the strongly connected components of g
// using an iterative form of Tarjan's algorithm. Components are emitted in
// reverse topological order of the condensation (sinks first); vertices
// inside each component are sorted ascending.
func StronglyConnectedComponents(g *Digraph) [][]int {
	n := g.Size()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for v := range index {
		index[v] = -1
	}

	var (
		stack      []int
		components [][]int
		counter    int
	)
	visit := func(v int) {
		index[v], low[v] = counter, counter
		counter++
		stack = append(stack, v)
		onStack[v] = true
	}

	for root := 0; root < n; root++ {
		if index[root] >= 0 {
			continue
		}
		visit(root)
		calls := []frame{{v: root}}
		for len(calls) > 0 {
			top := &calls[len(calls)-1]
			v := top.v
			if adj := g.adjacency[v]; top.next < len(adj) {
				w := adj[top.next]
				top.next++
				if index[w] < 0 {
					visit(w)
					calls = append(calls, frame{v: w})
				} else if onStack[w] && index[w] < low[v] {
					low[v] = index[w]
				}
				continue
			}

			// v is fully expanded: propagate low-link and maybe pop a component
			calls = calls[:len(calls)-1]
			if len(calls) > 0 {
				if u := calls[len(calls)-1].v; low[v] < low[u] {
					low[u] = low[v]
				}
			}
			if low[v] != index[v] {
				continue
			}
			var component []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				component = append(component, w)
				if w == v {
					break
				}
			}
			sort.Ints(component)
			components = append(components, component)
		}
	}

	return components
}

// Recurrent returns the components of g that support an infinite path:
// those with more than one vertex, or a single vertex carrying a self-loop.
func Recurrent(g *Digraph) [][]int {
	var out [][]int
	for _, c := range StronglyConnectedComponents(g) {
		if len(c) > 1 || g.HasEdge(c[0], c[0]) {
			out = append(out, c)
		}
	}
	return out
}
