// Package regnet parses gene regulatory network specifications and turns
// parameter points into state transition graphs over a discretized phase
// space.
//
// What is inside:
//
//	network/   - specification parser: logic grammar, canonical term order,
//	             edge arena with instances and output orders
//	parameter/ - parameter points: wall labelling plus per-variable threshold
//	             orders, and their YAML documents
//	phase/     - mixed-radix domain indexer, extended phase space for
//	             self-repressing nodes, domain graph assembly and annotations
//	digraph/   - compact directed graph with Tarjan strongly connected
//	             components and recurrent region detection
//	metrics/   - prometheus collectors for parsing and graph construction
//	config/    - YAML settings shared by the command line
//	cmd/regnet - parse, graphviz and domaingraph commands
//
// Quick example:
//
//	net, _ := network.Parse("x : ~x")
//	p, _ := parameter.New(net, []uint64{2, 1, 1}, nil)
//	dg, _ := phase.New(p)
//	fmt.Println(dg.Digraph()) // [[1],[1],[1],[2]]
//
// A self repressor such as x above doubles the threshold it places on
// itself; the extra "sliver" domain between the two copies is where the
// trajectory settles.
//
//	go install github.com/katalvlaran/regnet/cmd/regnet@latest
package regnet
