// Package phase builds the domain graph of a parameter point: a directed
// graph over the cells of the discretized phase space of a regulatory
// network.
//
// Each node d of the network contributes one dimension with
// NumThresholds(d)+1 coordinate values. Domains are addressed by a flat
// mixed-radix index (see Indexer). The parameter supplies, for each base
// domain, which of its walls are absorbing; a domain moves across an
// absorbing wall unless the neighbour's facing wall absorbs too, and a
// domain with no absorbing wall keeps a self-loop.
//
// Extended phase space:
//
// A node that represses itself has its self threshold doubled. Its
// dimension gains a sliver coordinate between the two copies, and sliver
// domains have no base counterpart. Their walls are derived from the two
// neighbours along the sliver dimension:
//
//	left(sliver)  = not right(prev)
//	right(sliver) = not left(next)
//
// and copied from prev along every other dimension. When prev and next
// disagree there, the disagreement is logged, counted, and rejected under
// WithStrictLabelling. WithBaseSpace skips the extension altogether.
//
// Complexity:
//
//   - Time:   O(N·D) for N extended domains and D dimensions
//   - Memory: O(N) wall masks plus the graph
//
// Errors:
//
//	ErrNilParameter          - no parameter or network.
//	ErrBadExtent             - an indexer extent below one.
//	ErrTooManyDomains        - the domain count overflows int.
//	ErrCoordinates           - Index got coordinates out of range.
//	ErrLabellingSize         - labelling does not cover the base domains.
//	ErrInvalidOrder          - a self edge has no threshold position.
//	ErrInconsistentLabelling - strict mode rejected a sliver.
//	ErrEmptyRegion           - Annotate got no domains.
//	ErrDomainOutOfRange      - Annotate got an unknown domain.
package phase
