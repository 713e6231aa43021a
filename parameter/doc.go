// Package parameter holds a concrete parameter point for a network: the
// wall labelling of every base domain plus, per variable, the order in
// which its out-edges' thresholds are placed.
//
// Labelling bit layout for a network of dimension D:
//
//	bit d     - left wall of dimension d is absorbing
//	bit D + d - right wall of dimension d is absorbing
//
// A Fixed value can be built directly with New, or decoded from a YAML
// document:
//
//	network: |
//	  x : ~x
//	model: original
//	labelling: [2, 1, 1]
//	orders: [[0, 1]]
//
// Orders may be omitted, in which case every variable uses the identity order.
package parameter
