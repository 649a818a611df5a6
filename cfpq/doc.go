// Package cfpq implements the three context-free path query engines, each
// computing the same set of derivable triples (start node, grammar
// variable, end node) by a different route:
//
//	Hellings      — worklist closure over a CFG's Weak Chomsky Normal Form.
//	MatrixClosure — per-variable boolean matrices, closed by a fixed point.
//	TensorRSM     — repeated Kronecker intersection against an RSM.
//
// The query façade filters the returned TripleSet by start symbol and by
// start/final node membership; none of the three engines does that
// filtering itself.
package cfpq
