// Package network parses regulatory network specifications into an
// immutable, canonically ordered Network.
//
// What
//
//   - Line oriented specifications, one "name : logic [: E]" per node.
//   - Blank lines and lines starting with '.' or '@' are skipped. Quotes are
//     dropped and literal "\n" sequences become line breaks before splitting.
//   - Every edge lives in an arena addressed by Edge.ID. The instance pass
//     numbers repeated source→target occurrences and assigns each edge its
//     position among the source's outputs.
//   - Canonical, JSON, text and graphviz renderings of the parsed network.
//
// Logic grammar
//
//   - whitespace and parentheses only delimit names
//   - juxtaposed names are multiplied within one term; '+' and '-' separate terms
//   - '~' before a name makes the edge repressing
//   - <...> at the very start holds the decay term(s), which may be signed
//   - [a, b] is a post-translational modification pair; [[a], b] marks the
//     pair active and is read as [a, ~b]
//
// Canonical order
//
//	Decay terms come first with negative ones ahead of positive ones, then
//	PTM terms, then regular terms. Within each group terms are ordered by
//	size, by largest source index and finally by their source sequence. The
//	decay sign of a node is the sign of its first decay term, so
//	"c : <a - b> + c" is rendered "c : <-b + a> + c" with a negative sign.
//
// Why
//
//   - Parameter and phase code address edges by (source, target, instance)
//     and by output order; both must not depend on how the text was written.
//   - Canonical() round trips: parsing its output yields the same Network.
//
// Models
//
//	ModelOriginal - '-' only inside the decay scope; no repeated inputs.
//	ModelEcology  - negative terms allowed; the target may feed itself once
//	                positively and once negatively.
//
// Complexity (N = nodes, L = logic length, E = edges)
//
//   - Tokenizing and term building: O(L) per node.
//   - Term sort: O(T log T) per node for T terms.
//   - Arena, instances and output orders: O(N + E log E).
//   - ParseContext tokenizes node logic on up to WithParallelism workers.
//
// Usage
//
//	net, err := network.Parse("x : c + ~x\ny : <-y> + [x, ~y]\nc : x")
//	if err != nil {
//		var pe *network.ParseError
//		if errors.As(err, &pe) {
//			// pe.Node, pe.Line and pe.Pos locate the failure
//		}
//	}
//	fmt.Print(net.Canonical())
//
//	eco, err := network.Load("net.txt",
//		network.WithModel(network.ModelEcology),
//		network.WithLogger(logger),
//	)
//
// Errors
//
//	ErrUnreadableFile    - Load could not read the file.
//	ErrUnknownNode       - logic or lookup names an undeclared node.
//	ErrMalformedLogic    - grammar violation; see the Err* subtypes.
//	ErrRepeatedInput     - a source repeats without a sanctioned exception.
//	ErrInvalidModelName  - ParseModel does not know the name.
//	ErrDuplicateNode     - a name is declared twice.
//	ErrInvalidNodeName   - a name is empty or holds a logic delimiter.
//	ErrEdgeNotFound      - no edge matches (source, target, instance).
//
// Parse errors are *ParseError values carrying node, line and column.
package network
