package network

import (
	"fmt"
	"strings"
)

// DefaultTheme is [background, node fill, term colours...].
var DefaultTheme = []string{"aliceblue", "beige", "black", "darkgoldenrod", "blue", "orange", "red", "yellow"}

// Graphviz renders the network in DOT format. Each term of a node's logic
// gets its own edge colour; the last term draws in the first term colour.
// A theme with fewer than three entries falls back to DefaultTheme.
func (n *Network) Graphviz(theme ...string) string {
	if len(theme) < 3 {
		theme = DefaultTheme
	}
	palette := theme[2:]

	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph {\nbgcolor = %s;\n", theme[0])
	for _, name := range n.names {
		fmt.Fprintf(&sb, "\"%s\" [style=filled fillcolor=%s];\n", name, theme[1])
	}
	for target := range n.names {
		terms := n.terms[target]
		for k := len(terms) - 1; k >= 0; k-- {
			color := palette[(len(terms)-1-k)%len(palette)]
			for _, id := range terms[k].edges {
				e := n.edges[id]
				head := "tee"
				if e.Decay != (e.Activating == e.Positive) {
					head = "normal"
				}
				style := "solid"
				if e.PTM {
					style = "dashed"
				}
				fmt.Fprintf(&sb, "\"%s\" -> \"%s\" [color=%s arrowhead=%s style=%s];\n",
					n.names[e.Source], n.names[target], color, head, style)
			}
		}
	}
	sb.WriteString("}\n")

	return sb.String()
}
