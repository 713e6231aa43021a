package network

import (
	"encoding/json"
	"strings"
)

// Canonical renders the network as specification text in canonical order.
// Parsing the result yields the same structure.
//
//	c : <-b + a> + c d + [x, ~y] : E
func (n *Network) Canonical() string {
	var sb strings.Builder
	for v, name := range n.names {
		sb.WriteString(name)
		sb.WriteString(" :")
		if logic := n.formatLogic(v); logic != "" {
			sb.WriteByte(' ')
			sb.WriteString(logic)
		}
		if n.essential[v] {
			sb.WriteString(" : E")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (n *Network) formatLogic(v int) string {
	var sb strings.Builder
	inDecay := false
	for k, rec := range n.terms[v] {
		decay := rec.kind == TermDecay
		switch {
		case k == 0 && decay:
			sb.WriteByte('<')
			inDecay = true
			if !rec.positive {
				sb.WriteByte('-')
			}
		case inDecay && !decay:
			sb.WriteByte('>')
			inDecay = false
			sb.WriteString(signed(rec.positive))
		case k == 0:
			if !rec.positive {
				sb.WriteByte('-')
			}
		default:
			sb.WriteString(signed(rec.positive))
		}
		n.formatTerm(&sb, rec)
	}
	if inDecay {
		sb.WriteByte('>')
	}

	return sb.String()
}

func signed(positive bool) string {
	if positive {
		return " + "
	}
	return " - "
}

func (n *Network) formatTerm(sb *strings.Builder, rec termRecord) {
	for k := 0; k < len(rec.edges); k++ {
		if k > 0 {
			sb.WriteByte(' ')
		}
		e := n.edges[rec.edges[k]]
		if e.Partner != e.ID+1 {
			n.formatEdge(sb, e)
			continue
		}
		sb.WriteByte('[')
		n.formatEdge(sb, e)
		sb.WriteString(", ")
		n.formatEdge(sb, n.edges[e.Partner])
		sb.WriteByte(']')
		k++
	}
}

func (n *Network) formatEdge(sb *strings.Builder, e Edge) {
	if !e.Activating {
		sb.WriteByte('~')
	}
	sb.WriteString(n.names[e.Source])
}

// MarshalJSON encodes the network as
// [["name", [["a","~b"], ...], ["out", ...]], ...].
func (n *Network) MarshalJSON() ([]byte, error) {
	nodes := make([][]any, len(n.names))
	for v, name := range n.names {
		logic := make([][]string, len(n.terms[v]))
		for k, rec := range n.terms[v] {
			logic[k] = make([]string, len(rec.edges))
			for j, id := range rec.edges {
				e := n.edges[id]
				head := ""
				if !e.Activating {
					head = "~"
				}
				logic[k][j] = head + n.names[e.Source]
			}
		}
		outputs := make([]string, len(n.outEdges[v]))
		for k, id := range n.outEdges[v] {
			outputs[k] = n.names[n.edges[id].Target]
		}
		nodes[v] = []any{name, logic, outputs}
	}

	return json.Marshal(nodes)
}

// MarshalText returns the normalized specification text.
func (n *Network) MarshalText() ([]byte, error) {
	return []byte(n.spec), nil
}

// UnmarshalText replaces n with the network parsed from text, keeping n's model.
func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text), WithModel(n.model))
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

// String returns the JSON form, or the error text if encoding fails.
func (n *Network) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	return string(b)
}
