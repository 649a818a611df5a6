package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graphs"
)

func TestToNFADefaultsAndSkipsNullLabel(t *testing.T) {
	g := graphs.New()
	g.AddEdge(0, 1, "a")
	g.AddEdge(1, 2, "")

	nfa, err := g.ToNFA(nil, nil)
	require.NoError(t, err)
	require.Len(t, nfa.States, 3)
	require.Len(t, nfa.Starts, 3)
	require.Len(t, nfa.Finals, 3)
	require.Len(t, nfa.Transitions, 1)
	require.Equal(t, automaton.Symbol("a"), nfa.Transitions[0].Label)
}

func TestToNFAUnknownNode(t *testing.T) {
	g := graphs.New()
	g.AddNode(0)

	_, err := g.ToNFA([]graphs.Node{7}, nil)
	require.ErrorIs(t, err, graphs.ErrUnknownNode)
}

func TestToNFAExplicitStartsFinals(t *testing.T) {
	g := graphs.New()
	g.AddEdge(0, 1, "a")
	g.AddEdge(1, 0, "b")

	nfa, err := g.ToNFA([]graphs.Node{0}, []graphs.Node{1})
	require.NoError(t, err)
	require.Len(t, nfa.Starts, 1)
	require.Len(t, nfa.Finals, 1)
}

func TestLabeledTwoCyclesShape(t *testing.T) {
	g := graphs.LabeledTwoCycles(3, 3, [2]automaton.Symbol{"A", "B"})
	require.Equal(t, 7, g.NodeCount())

	want := []graphs.Edge{
		{From: 0, To: 1, Label: "A"},
		{From: 1, To: 2, Label: "A"},
		{From: 2, To: 3, Label: "A"},
		{From: 3, To: 0, Label: "A"},
		{From: 0, To: 4, Label: "B"},
		{From: 4, To: 5, Label: "B"},
		{From: 5, To: 6, Label: "B"},
		{From: 6, To: 0, Label: "B"},
	}
	require.Equal(t, want, g.Edges())
}

func TestLabeledTwoCyclesNFAShape(t *testing.T) {
	g := graphs.LabeledTwoCycles(1, 1, [2]automaton.Symbol{"A", "B"})
	nfa, err := g.ToNFA(nil, nil)
	require.NoError(t, err)
	require.Len(t, nfa.States, 3)
	require.Len(t, nfa.Transitions, 4)
}
