package rpq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/regexengine"
	"github.com/katalvlaran/pathql/rpq"
)

func buildAutomata(t *testing.T, g *graphs.Graph, starts, finals []graphs.Node, query string) (*automaton.Matrix, *automaton.Matrix) {
	t.Helper()

	nfa, err := g.ToNFA(starts, finals)
	require.NoError(t, err)
	aG, err := automaton.FromNFA(nfa)
	require.NoError(t, err)

	aQ, err := regexengine.ToMinDFA(query)
	require.NoError(t, err)

	return aG, aQ
}

// nodeIndex returns aG's StateIndex position for graph node n.
func nodeIndex(t *testing.T, aG *automaton.Matrix, n graphs.Node) int {
	t.Helper()
	idx, ok := aG.Index().IndexOf(automaton.NewState(n))
	require.True(t, ok)

	return idx
}

func TestTensorTwoCycles(t *testing.T) {
	g := graphs.LabeledTwoCycles(5, 3, [2]automaton.Symbol{"A", "B"})
	aG, aQ := buildAutomata(t, g, []graphs.Node{0}, []graphs.Node{1, 2, 3, 4, 5, 6}, "AAAAAA|B")

	got, err := rpq.Tensor(aG, aQ)
	require.NoError(t, err)

	want := rpq.PairSet{{Start: nodeIndex(t, aG, 0), Final: nodeIndex(t, aG, 6)}: true}
	require.Equal(t, want, got)
}

func TestBFSAllReachableSingleStart(t *testing.T) {
	g := graphs.LabeledTwoCycles(5, 3, [2]automaton.Symbol{"A", "B"})
	aG, aQ := buildAutomata(t, g, []graphs.Node{0}, []graphs.Node{1, 2, 3, 4, 5, 6}, "AAAAAA|B")

	gs := nodeIndex(t, aG, 0)
	got, err := rpq.BFS(aG, aQ, []int{gs}, rpq.WithAllReachable(true))
	require.NoError(t, err)

	want := map[int]rpq.NodeSet{gs: {nodeIndex(t, aG, 6): true}}
	require.Equal(t, want, got)
}

func TestBFSFlatAllStartsAndFinals(t *testing.T) {
	g := graphs.LabeledTwoCycles(5, 3, [2]automaton.Symbol{"A", "B"})
	aG, aQ := buildAutomata(t, g, nil, nil, "AAAAAA|B")

	gStarts := aG.Starts()
	got, err := rpq.BFS(aG, aQ, gStarts)
	require.NoError(t, err)

	want := rpq.NodeSet{
		nodeIndex(t, aG, 0): true,
		nodeIndex(t, aG, 6): true,
		nodeIndex(t, aG, 7): true,
		nodeIndex(t, aG, 8): true,
	}
	require.Equal(t, want, got)
}

func buildNonCycleGraph() *graphs.Graph {
	g := graphs.New()
	g.AddEdge(0, 1, "A")
	g.AddEdge(0, 2, "B")
	g.AddEdge(1, 3, "C")
	g.AddEdge(1, 3, "D")
	g.AddEdge(2, 3, "C")
	g.AddEdge(2, 3, "D")
	g.AddEdge(3, 4, "E")
	g.AddEdge(4, 5, "E")

	return g
}

func TestBFSSingleStartSingleFinalFlat(t *testing.T) {
	g := buildNonCycleGraph()
	aG, aQ := buildAutomata(t, g, []graphs.Node{0}, []graphs.Node{3}, "(A|B)C(D*)(E*)")

	got, err := rpq.BFS(aG, aQ, []int{nodeIndex(t, aG, 0)})
	require.NoError(t, err)
	require.Equal(t, rpq.NodeSet{nodeIndex(t, aG, 3): true}, got)
}

func TestBFSAllReachableSet(t *testing.T) {
	g := buildNonCycleGraph()
	aG, aQ := buildAutomata(t, g, []graphs.Node{0}, []graphs.Node{4, 5}, "(A*)(C*)(E*)")

	gs := nodeIndex(t, aG, 0)
	got, err := rpq.BFS(aG, aQ, []int{gs}, rpq.WithAllReachable(true))
	require.NoError(t, err)

	want := map[int]rpq.NodeSet{gs: {
		nodeIndex(t, aG, 4): true,
		nodeIndex(t, aG, 5): true,
	}}
	require.Equal(t, want, got)
}

func TestBFSEmptyStartsReturnsEmpty(t *testing.T) {
	g := graphs.New()
	g.AddEdge(0, 1, "a")
	aG, aQ := buildAutomata(t, g, []graphs.Node{0}, []graphs.Node{1}, "a")

	got, err := rpq.BFS(aG, aQ, nil)
	require.NoError(t, err)
	require.Equal(t, rpq.NodeSet{}, got)
}
