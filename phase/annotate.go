package phase

import (
	"fmt"
	"strconv"
	"strings"
)

// AnnotationKind classifies a region by which coordinates vary across it.
type AnnotationKind int

const (
	// FixedPoint regions do not vary in any dimension.
	FixedPoint AnnotationKind = iota
	// FullCycle regions vary in every dimension.
	FullCycle
	// CrossComponent regions vary in some dimensions only.
	CrossComponent
)

func (k AnnotationKind) String() string {
	switch k {
	case FixedPoint:
		return "FP"
	case FullCycle:
		return "FC"
	case CrossComponent:
		return "XC"
	}
	return fmt.Sprintf("AnnotationKind(%d)", int(k))
}

// Annotation describes a connected region of domains.
type Annotation struct {
	Kind        AnnotationKind
	Coordinates []int    // FixedPoint: the shared coordinates
	Dimensions  []int    // CrossComponent: the varying dimensions
	Names       []string // CrossComponent: names of Dimensions
}

// String renders "FP { 0, 1 }", "FC" or "XC {x, y}".
func (a Annotation) String() string {
	switch a.Kind {
	case FixedPoint:
		parts := make([]string, len(a.Coordinates))
		for i, c := range a.Coordinates {
			parts[i] = strconv.Itoa(c)
		}
		return "FP { " + strings.Join(parts, ", ") + " }"
	case CrossComponent:
		return "XC {" + strings.Join(a.Names, ", ") + "}"
	}

	return a.Kind.String()
}

// Annotate classifies region from the per-dimension span of its coordinates.
func (dg *DomainGraph) Annotate(region []int) (Annotation, error) {
	if len(region) == 0 {
		return Annotation{}, ErrEmptyRegion
	}
	lo := make([]int, dg.dim)
	hi := make([]int, dg.dim)
	for i, dom := range region {
		if !dg.valid(dom) {
			return Annotation{}, fmt.Errorf("%w: %d", ErrDomainOutOfRange, dom)
		}
		for d := 0; d < dg.dim; d++ {
			c := dg.ext.Coordinate(dom, d)
			if i == 0 || c < lo[d] {
				lo[d] = c
			}
			if i == 0 || c > hi[d] {
				hi[d] = c
			}
		}
	}

	var varying []int
	for d := 0; d < dg.dim; d++ {
		if lo[d] != hi[d] {
			varying = append(varying, d)
		}
	}
	switch len(varying) {
	case 0:
		return Annotation{Kind: FixedPoint, Coordinates: lo}, nil
	case dg.dim:
		return Annotation{Kind: FullCycle}, nil
	}
	names := dg.net.Names()
	a := Annotation{Kind: CrossComponent, Dimensions: varying}
	for _, d := range varying {
		a.Names = append(a.Names, names[d])
	}

	return a, nil
}
