package phase

import (
	"fmt"
	"math"
	"slices"
)

// Indexer converts between flat domain indices and mixed-radix coordinates.
// Dimension 0 varies fastest: coordinate d of index i is (i / Jump(d)) % Extent(d).
type Indexer struct {
	extents []int
	jumps   []int
	size    int
}

// NewIndexer builds an indexer over the given per-dimension extents.
func NewIndexer(extents []int) (*Indexer, error) {
	ix := &Indexer{
		extents: slices.Clone(extents),
		jumps:   make([]int, len(extents)),
		size:    1,
	}
	for d, extent := range extents {
		if extent < 1 {
			return nil, fmt.Errorf("%w: dimension %d has extent %d", ErrBadExtent, d, extent)
		}
		if ix.size > math.MaxInt/extent {
			return nil, fmt.Errorf("%w: extents %v", ErrTooManyDomains, extents)
		}
		ix.jumps[d] = ix.size
		ix.size *= extent
	}

	return ix, nil
}

// Size returns the number of domains.
func (ix *Indexer) Size() int { return ix.size }

// Dimension returns the number of dimensions.
func (ix *Indexer) Dimension() int { return len(ix.extents) }

// Extent returns the number of coordinate values along d.
func (ix *Indexer) Extent(d int) int { return ix.extents[d] }

// Extents returns a copy of all extents.
func (ix *Indexer) Extents() []int { return slices.Clone(ix.extents) }

// Jump returns the index stride of dimension d.
func (ix *Indexer) Jump(d int) int { return ix.jumps[d] }

// Coordinates decodes index i.
func (ix *Indexer) Coordinates(i int) []int {
	coords := make([]int, len(ix.extents))
	for d, extent := range ix.extents {
		coords[d] = i % extent
		i /= extent
	}
	return coords
}

// Coordinate decodes only dimension d of index i.
func (ix *Indexer) Coordinate(i, d int) int {
	return (i / ix.jumps[d]) % ix.extents[d]
}

// Index encodes coordinates into a flat index.
func (ix *Indexer) Index(coords []int) (int, error) {
	if len(coords) != len(ix.extents) {
		return 0, fmt.Errorf("%w: %d coordinates for %d dimensions", ErrCoordinates, len(coords), len(ix.extents))
	}
	i := 0
	for d, c := range coords {
		if c < 0 || c >= ix.extents[d] {
			return 0, fmt.Errorf("%w: coordinate %d of dimension %d", ErrCoordinates, c, d)
		}
		i += c * ix.jumps[d]
	}

	return i, nil
}

// Neighbor steps index i by step along d, reporting false when the result
// leaves the hypercube.
func (ix *Indexer) Neighbor(i, d, step int) (int, bool) {
	c := ix.Coordinate(i, d) + step
	if c < 0 || c >= ix.extents[d] {
		return 0, false
	}
	return i + step*ix.jumps[d], true
}
