package digraph

import (
	"strconv"
	"strings"
)

// Graphviz renders the graph in DOT format, one vertex per line followed
// by one edge per line.
func (g *Digraph) Graphviz() string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	for v := range g.adjacency {
		sb.WriteString("  ")
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(";\n")
	}
	for v, adj := range g.adjacency {
		for _, w := range adj {
			sb.WriteString("  ")
			sb.WriteString(strconv.Itoa(v))
			sb.WriteString(" -> ")
			sb.WriteString(strconv.Itoa(w))
			sb.WriteString(";\n")
		}
	}
	sb.WriteString("}\n")

	return sb.String()
}

// String renders the adjacency lists as a JSON array of arrays.
func (g *Digraph) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for v, adj := range g.adjacency {
		if v > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for i, w := range adj {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(w))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}
