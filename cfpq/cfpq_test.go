package cfpq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xerr"
)

type pair struct{ U, V graphs.Node }

func filterStart(triples cfpq.TripleSet, start cfgpipe.Variable) map[pair]bool {
	out := map[pair]bool{}
	for t := range triples {
		if t.Var == start {
			out[pair{U: t.Start, V: t.End}] = true
		}
	}

	return out
}

// An ε-only grammar over the two-cycles graph reduces to the diagonal.
func TestHellingsEpsilonGrammar(t *testing.T) {
	g := graphs.LabeledTwoCycles(1, 1, [2]automaton.Symbol{"A", "B"})
	cfg, err := cfgpipe.ParseCFG("S -> epsilon", "S")
	require.NoError(t, err)

	triples, err := cfpq.Hellings(g, cfg)
	require.NoError(t, err)

	want := map[pair]bool{{0, 0}: true, {1, 1}: true, {2, 2}: true}
	require.Equal(t, want, filterStart(triples, "S"))
}

// All three engines must agree on a right-recursive grammar over the
// two-cycles graph.
func TestAlgorithmsAgreeRightRecursive(t *testing.T) {
	g := graphs.LabeledTwoCycles(1, 1, [2]automaton.Symbol{"a", "b"})
	cfg, err := cfgpipe.ParseCFG("S -> a S | epsilon", "S")
	require.NoError(t, err)

	want := map[pair]bool{
		{0, 1}: true, {0, 0}: true, {1, 1}: true, {2, 2}: true, {1, 0}: true,
	}

	hellings, err := cfpq.Hellings(g, cfg)
	require.NoError(t, err)
	require.Equal(t, want, filterStart(hellings, "S"))

	matrix, err := cfpq.MatrixClosure(g, cfg)
	require.NoError(t, err)
	require.Equal(t, want, filterStart(matrix, "S"))

	tensor, err := cfpq.TensorRSM(g, cfg)
	require.NoError(t, err)
	require.Equal(t, want, filterStart(tensor, "S"))
}

// A paren grammar over a graph with no "("/")" edges leaves only the
// ε-derived diagonal. The grammar's terminals are regex metacharacters,
// which the CFG -> ECFG conversion must carry as literal atoms.
func TestAlgorithmsAgreeParenGrammar(t *testing.T) {
	g := graphs.LabeledTwoCycles(2, 3, [2]automaton.Symbol{"a", "b"})
	cfg, err := cfgpipe.ParseCFG("S -> ( S ) S | S ( S ) | epsilon", "S")
	require.NoError(t, err)

	want := map[pair]bool{
		{0, 0}: true, {1, 1}: true, {2, 2}: true, {3, 3}: true, {4, 4}: true, {5, 5}: true,
	}

	hellings, err := cfpq.Hellings(g, cfg)
	require.NoError(t, err)
	require.Equal(t, want, filterStart(hellings, "S"))

	matrix, err := cfpq.MatrixClosure(g, cfg)
	require.NoError(t, err)
	require.Equal(t, want, filterStart(matrix, "S"))

	tensor, err := cfpq.TensorRSM(g, cfg)
	require.NoError(t, err)
	require.Equal(t, want, filterStart(tensor, "S"))
}

func TestHellingsEmptyGraph(t *testing.T) {
	g := graphs.New()
	cfg, err := cfgpipe.ParseCFG("S -> epsilon", "S")
	require.NoError(t, err)

	triples, err := cfpq.Hellings(g, cfg)
	require.NoError(t, err)
	require.Empty(t, triples)
}

func TestNilInputsRejected(t *testing.T) {
	_, err := cfpq.Hellings(nil, nil)
	require.ErrorIs(t, err, xerr.ErrNilGraph)
	_, err = cfpq.MatrixClosure(nil, nil)
	require.ErrorIs(t, err, xerr.ErrNilGraph)
	_, err = cfpq.TensorRSM(nil, nil)
	require.ErrorIs(t, err, xerr.ErrNilGraph)
}
