package pathql

import "github.com/katalvlaran/pathql/graphs"

// Pair is a (start, final) node pair in the result of RPQ or RunCFPQ.
type Pair struct {
	Start graphs.Node
	End   graphs.Node
}

// PairSet is an unordered set of Pair.
type PairSet map[Pair]bool

// NodeSet is an unordered set of graphs.Node.
type NodeSet map[graphs.Node]bool
