package pathql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql"
	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/graphs"
)

// An ε-only grammar derives exactly the empty word, so only the diagonal
// survives.
func TestCFPQEpsilonGrammar(t *testing.T) {
	g := graphs.LabeledTwoCycles(1, 1, [2]automaton.Symbol{"A", "B"})
	cfg, err := cfgpipe.ParseCFG("S -> epsilon", "S")
	require.NoError(t, err)

	got, err := pathql.RunCFPQ(pathql.AlgoHellings, g, cfg)
	require.NoError(t, err)

	want := pathql.PairSet{{Start: 0, End: 0}: true, {Start: 1, End: 1}: true, {Start: 2, End: 2}: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RunCFPQ mismatch (-want +got):\n%s", diff)
	}
}

// All three CFPQ engines must agree on a right-recursive grammar over the
// two-cycles graph.
func TestCFPQAllEnginesAgree(t *testing.T) {
	g := graphs.LabeledTwoCycles(1, 1, [2]automaton.Symbol{"a", "b"})
	cfg, err := cfgpipe.ParseCFG("S -> a S | epsilon", "S")
	require.NoError(t, err)

	want := pathql.PairSet{
		{Start: 0, End: 1}: true, {Start: 0, End: 0}: true, {Start: 1, End: 1}: true,
		{Start: 2, End: 2}: true, {Start: 1, End: 0}: true,
	}

	for _, algo := range []pathql.AlgoKind{pathql.AlgoHellings, pathql.AlgoMatrix, pathql.AlgoTensor} {
		got, err := pathql.RunCFPQ(algo, g, cfg)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("RunCFPQ(%s) mismatch (-want +got):\n%s", algo, diff)
		}
	}
}

// A balanced-paren grammar over a graph with no "("/")" edges leaves only
// the ε-derived diagonal.
func TestCFPQParenGrammarDiagonalOnly(t *testing.T) {
	g := graphs.LabeledTwoCycles(2, 3, [2]automaton.Symbol{"a", "b"})
	cfg, err := cfgpipe.ParseCFG("S -> ( S ) S | S ( S ) | epsilon", "S")
	require.NoError(t, err)

	want := pathql.PairSet{
		{Start: 0, End: 0}: true, {Start: 1, End: 1}: true, {Start: 2, End: 2}: true,
		{Start: 3, End: 3}: true, {Start: 4, End: 4}: true, {Start: 5, End: 5}: true,
	}

	for _, algo := range []pathql.AlgoKind{pathql.AlgoHellings, pathql.AlgoMatrix, pathql.AlgoTensor} {
		got, err := pathql.RunCFPQ(algo, g, cfg)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("RunCFPQ(%s) mismatch (-want +got):\n%s", algo, diff)
		}
	}
}

// Only the single-atom "B" branch of the query matches edges in the
// two-cycles graph; "AAAAAA" names no edge label.
func TestRPQTwoCycles(t *testing.T) {
	g := graphs.LabeledTwoCycles(5, 3, [2]automaton.Symbol{"A", "B"})

	got, err := pathql.RPQ(g, "AAAAAA|B",
		pathql.WithStarts(0),
		pathql.WithFinals(1, 2, 3, 4, 5, 6),
	)
	require.NoError(t, err)

	want := pathql.PairSet{{Start: 0, End: 6}: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RPQ mismatch (-want +got):\n%s", diff)
	}
}

// Same graph and query as TestRPQTwoCycles, BFS with all_reachable=false
// and default (every-node) starts/finals.
func TestRPQBFSFlatDefaults(t *testing.T) {
	g := graphs.LabeledTwoCycles(5, 3, [2]automaton.Symbol{"A", "B"})

	got, err := pathql.RPQBFS(g, "AAAAAA|B")
	require.NoError(t, err)

	want := pathql.NodeSet{0: true, 6: true, 7: true, 8: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RPQBFS mismatch (-want +got):\n%s", diff)
	}
}

func buildDagGraph() *graphs.Graph {
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

// Grouped alternation and stars against a small DAG, single final.
func TestRPQGroupedQuery(t *testing.T) {
	g := buildDagGraph()

	got, err := pathql.RPQ(g, "(A|B)C(D*)(E*)", pathql.WithStarts(0), pathql.WithFinals(3))
	require.NoError(t, err)

	want := pathql.PairSet{{Start: 0, End: 3}: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RPQ mismatch (-want +got):\n%s", diff)
	}
}

// All-reachable BFS over the same DAG, starred query.
func TestRPQBFSAllReachable(t *testing.T) {
	g := buildDagGraph()

	got, err := pathql.RPQBFS(g, "(A*)(C*)(E*)",
		pathql.WithBFSStarts(0),
		pathql.WithBFSFinals(4, 5),
		pathql.WithAllReachable(true),
	)
	require.NoError(t, err)

	want := map[graphs.Node]pathql.NodeSet{0: {4: true, 5: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RPQBFS mismatch (-want +got):\n%s", diff)
	}
}

// CYK on the balanced-paren grammar, including the empty word.
func TestCYKBalancedParens(t *testing.T) {
	cfg, err := cfgpipe.ParseCFG("S -> ( S ) S | S ( S ) | epsilon", "S")
	require.NoError(t, err)

	accept := []string{"", "()", "()()", "((()))"}
	reject := []string{"((", "()(", "bb"}

	for _, w := range accept {
		ok, err := pathql.CYK(wordOf(w), cfg)
		require.NoError(t, err)
		require.True(t, ok, "expected %q to be accepted", w)
	}
	for _, w := range reject {
		ok, err := pathql.CYK(wordOf(w), cfg)
		require.NoError(t, err)
		require.False(t, ok, "expected %q to be rejected", w)
	}
}

func wordOf(s string) []cfgpipe.Terminal {
	out := make([]cfgpipe.Terminal, 0, len(s))
	for _, r := range s {
		out = append(out, cfgpipe.Terminal(string(r)))
	}

	return out
}

// TestBFSMatchesTensor asserts that the pair set from tensor RPQ equals
// the BFS result unioned over per-start runs.
func TestBFSMatchesTensor(t *testing.T) {
	cases := []struct {
		name  string
		graph *graphs.Graph
		query string
	}{
		{"two-cycles", graphs.LabeledTwoCycles(5, 3, [2]automaton.Symbol{"A", "B"}), "AAAAAA|B"},
		{"dag", buildDagGraph(), "(A|B)C(D*)(E*)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tensorPairs, err := pathql.RPQ(tc.graph, tc.query)
			require.NoError(t, err)

			bfsPairs := pathql.PairSet{}
			for _, start := range tc.graph.Nodes() {
				res, err := pathql.RPQBFS(tc.graph, tc.query, pathql.WithBFSStarts(start))
				require.NoError(t, err)
				for end := range res.(pathql.NodeSet) {
					bfsPairs[pathql.Pair{Start: start, End: end}] = true
				}
			}

			if diff := cmp.Diff(tensorPairs, bfsPairs); diff != "" {
				t.Errorf("tensor vs BFS mismatch (-tensor +bfs):\n%s", diff)
			}
		})
	}
}

// Empty graphs short-circuit to empty results rather than erroring, and
// all-reachable BFS returns an empty map.
func TestEmptyGraphShortCircuits(t *testing.T) {
	g := graphs.New()

	pairs, err := pathql.RPQ(g, "a")
	require.NoError(t, err)
	require.Empty(t, pairs)

	res, err := pathql.RPQBFS(g, "a", pathql.WithAllReachable(true))
	require.NoError(t, err)
	require.Empty(t, res.(map[graphs.Node]pathql.NodeSet))
}

func TestUnknownAlgorithmRejected(t *testing.T) {
	g := graphs.New()
	g.AddEdge(0, 1, "a")
	cfg, err := cfgpipe.ParseCFG("S -> a", "S")
	require.NoError(t, err)

	_, err = pathql.RunCFPQ(pathql.AlgoKind("dijkstra"), g, cfg)
	require.Error(t, err)
}

func TestNilGraphRejected(t *testing.T) {
	_, err := pathql.RPQ(nil, "a")
	require.Error(t, err)
	_, err = pathql.RPQBFS(nil, "a")
	require.Error(t, err)
	cfg, err := cfgpipe.ParseCFG("S -> epsilon", "S")
	require.NoError(t, err)
	_, err = pathql.RunCFPQ(pathql.AlgoHellings, nil, cfg)
	require.Error(t, err)
}
