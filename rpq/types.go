package rpq

// Pair is a (start, final) node-index pair in the result of a Tensor query.
type Pair struct {
	Start int
	Final int
}

// PairSet is an unordered set of Pair.
type PairSet map[Pair]bool

// NodeSet is an unordered set of automaton.Matrix state indices.
type NodeSet map[int]bool
