package graphs

import "github.com/katalvlaran/pathql/automaton"

// LabeledTwoCycles builds the two-cycles-sharing-a-node test graph used
// throughout this module's test suites:
//
// node 0 is shared by both cycles. The first cycle walks nodes
// 1..firstCycleSize, with edges 0->1->2->...->firstCycleSize->0, every edge
// labeled labels[0]. The second cycle walks nodes
// firstCycleSize+1..firstCycleSize+secondCycleSize, with edges
// 0->(n+1)->...->(n+m)->0, every edge labeled labels[1]. The graph has
// firstCycleSize+secondCycleSize+1 nodes and firstCycleSize+secondCycleSize+2
// edges.
func LabeledTwoCycles(firstCycleSize, secondCycleSize int, labels [2]automaton.Symbol) *Graph {
	g := New()
	g.AddNode(0)

	prev := Node(0)
	for i := 1; i <= firstCycleSize; i++ {
		g.AddEdge(prev, Node(i), labels[0])
		prev = Node(i)
	}
	g.AddEdge(prev, 0, labels[0])

	prev = Node(0)
	for i := 1; i <= secondCycleSize; i++ {
		node := Node(firstCycleSize + i)
		g.AddEdge(prev, node, labels[1])
		prev = node
	}
	g.AddEdge(prev, 0, labels[1])

	return g
}
