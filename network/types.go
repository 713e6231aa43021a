package network

import (
	"fmt"
	"strings"
)

// Model selects the logic grammar variant.
type Model int

const (
	// ModelOriginal rejects '-' outside decay scopes and every repeated input.
	ModelOriginal Model = iota
	// ModelEcology allows negative terms and one signed pair of self-edges.
	ModelEcology
)

// ParseModel maps a model name to its Model. The empty string selects ModelOriginal.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "original", "default":
		return ModelOriginal, nil
	case "ecology":
		return ModelEcology, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidModelName, name)
}

func (m Model) String() string {
	switch m {
	case ModelOriginal:
		return "original"
	case ModelEcology:
		return "ecology"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

// grammar holds the rules on which the two model variants differ.
type grammar struct {
	negativeTerms  bool // '-' may separate regular terms
	signedSelfEdge bool // the target may appear once positive and once negative
}

func (m Model) grammar() grammar {
	if m == ModelEcology {
		return grammar{negativeTerms: true, signedSelfEdge: true}
	}
	return grammar{}
}

// TermKind orders terms canonically: decay, then PTM, then regular.
type TermKind int

const (
	TermDecay TermKind = iota
	TermPTM
	TermRegular
)

func (k TermKind) String() string {
	switch k {
	case TermDecay:
		return "decay"
	case TermPTM:
		return "ptm"
	case TermRegular:
		return "regular"
	}
	return fmt.Sprintf("TermKind(%d)", int(k))
}

// Edge is one parsed occurrence of source feeding target.
//
// Edges live in an arena owned by the Network; ID is the arena position and
// both per-source and per-target adjacency refer to edges by ID.
type Edge struct {
	ID         int  // arena position
	Source     int  // source node index
	Target     int  // target node index
	Instance   int  // occurrence number of Source among Target's inputs
	Activating bool // parity: true activates, false represses
	Positive   bool // sign of the term holding the edge
	PTM        bool // member of a [a, b] pair
	Decay      bool // inside the <...> scope
	Term       int  // index of the holding term in Logic(Target)
	Order      int  // position of (Target, Instance) in Outputs(Source)
	Partner    int  // arena ID of the other PTM edge of the pair, -1 otherwise
}

// Term is one additive term of a node's logic.
type Term struct {
	Kind     TermKind
	Positive bool
	Edges    []Edge
}

// Sources lists the source index of every edge of the term in order.
func (t Term) Sources() []int {
	out := make([]int, len(t.Edges))
	for i, e := range t.Edges {
		out[i] = e.Source
	}
	return out
}
