package pathql

import (
	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/cyk"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xerr"
	"github.com/katalvlaran/pathql/regexengine"
	"github.com/katalvlaran/pathql/rpq"
)

// RPQ answers a regular path query over g by the tensor-intersection
// engine: query is a regex over g's edge labels, and the result is every
// (start, final) pair for which some path from start to
// final spells a word query accepts. By default every node in g is both a
// candidate start and a candidate final; WithStarts/WithFinals narrow
// either set.
func RPQ(g *graphs.Graph, query string, opts ...RPQOption) (PairSet, error) {
	if g == nil {
		return nil, xerr.Wrap("pathql.RPQ", xerr.ErrNilGraph)
	}
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	aG, err := buildGraphAutomaton(g, o.starts, o.finals)
	if err != nil {
		return nil, err
	}
	aQ, err := regexengine.ToMinDFA(query)
	if err != nil {
		return nil, err
	}

	pairs, err := rpq.Tensor(aG, aQ, rpq.WithTensorLogger(o.logger))
	if err != nil {
		return nil, err
	}

	result := make(PairSet, len(pairs))
	for p := range pairs {
		result[Pair{Start: nodeAt(aG, p.Start), End: nodeAt(aG, p.Final)}] = true
	}

	return result, nil
}

// RPQBFS answers the same query as RPQ by synchronized multi-source BFS
// instead of tensor intersection. With the default
// WithAllReachable(false) it returns a NodeSet: the finals reachable from
// the union of all requested starts. With WithAllReachable(true) it
// returns map[graphs.Node]NodeSet, one reachable-finals set per start.
func RPQBFS(g *graphs.Graph, query string, opts ...BFSOption) (any, error) {
	if g == nil {
		return nil, xerr.Wrap("pathql.RPQBFS", xerr.ErrNilGraph)
	}
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}

	aG, err := buildGraphAutomaton(g, o.starts, o.finals)
	if err != nil {
		return nil, err
	}
	aQ, err := regexengine.ToMinDFA(query)
	if err != nil {
		return nil, err
	}

	startNodes := o.starts
	if startNodes == nil {
		startNodes = g.Nodes()
	}
	gStarts := make([]int, len(startNodes))
	for i, n := range startNodes {
		idx, ok := aG.Index().IndexOf(automaton.NewState(n))
		if !ok {
			return nil, xerr.Wrap("pathql.RPQBFS", graphs.ErrUnknownNode)
		}
		gStarts[i] = idx
	}

	res, err := rpq.BFS(aG, aQ, gStarts,
		rpq.WithAllReachable(o.allReachable),
		rpq.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}

	if o.allReachable {
		byStart := res.(map[int]rpq.NodeSet)
		out := make(map[graphs.Node]NodeSet, len(byStart))
		for gs, ns := range byStart {
			out[nodeAt(aG, gs)] = projectNodeSet(aG, ns)
		}

		return out, nil
	}

	return projectNodeSet(aG, res.(rpq.NodeSet)), nil
}

// RunCFPQ answers a context-free path query over g by algo, one of
// AlgoHellings, AlgoMatrix, or AlgoTensor. A derived triple (u, N, v)
// contributes pair (u, v) iff N is the start symbol
// (grammar.Start unless overridden by WithStartSymbol), u is an allowed
// start and v an allowed final (every node, unless narrowed by
// WithCFPQStarts/WithCFPQFinals).
func RunCFPQ(algo AlgoKind, g *graphs.Graph, grammar *cfgpipe.CFG, opts ...CFPQOption) (PairSet, error) {
	if g == nil {
		return nil, xerr.Wrap("pathql.RunCFPQ", xerr.ErrNilGraph)
	}
	if grammar == nil {
		return nil, xerr.Wrap("pathql.RunCFPQ", xerr.ErrNilGrammar)
	}
	o := newOptions()
	for _, opt := range opts {
		opt(o)
	}
	startSymbol := grammar.Start
	if o.startSymbol != "" {
		startSymbol = o.startSymbol
	}

	triples, err := cfpq.Run(g, grammar,
		cfpq.WithAlgorithm(algo),
		cfpq.WithLogger(o.logger),
		cfpq.WithMaxIterations(o.maxIterations),
	)
	if err != nil {
		return nil, err
	}

	result := make(PairSet)
	for t := range triples {
		if t.Var != startSymbol {
			continue
		}
		if !nodeAllowed(t.Start, o.starts) || !nodeAllowed(t.End, o.finals) {
			continue
		}
		result[Pair{Start: t.Start, End: t.End}] = true
	}

	return result, nil
}

// nodeAllowed reports whether n is in the restriction set; a nil set means
// every node is allowed.
func nodeAllowed(n graphs.Node, restrict []graphs.Node) bool {
	if restrict == nil {
		return true
	}
	for _, r := range restrict {
		if r == n {
			return true
		}
	}

	return false
}

// CYK reports whether word belongs to grammar's language. word is a
// sequence of terminal tokens; each Terminal occupies one position, so
// multi-character terminals produced by ParseCFG stay atomic.
func CYK(word []cfgpipe.Terminal, grammar *cfgpipe.CFG) (bool, error) {
	return cyk.Accepts(word, grammar)
}

// buildGraphAutomaton promotes g to an automaton.Matrix restricted to the
// given starts/finals (nil meaning "every node", matching graphs.Graph.ToNFA).
func buildGraphAutomaton(g *graphs.Graph, starts, finals []graphs.Node) (*automaton.Matrix, error) {
	nfa, err := g.ToNFA(starts, finals)
	if err != nil {
		return nil, err
	}

	return automaton.FromNFA(nfa)
}

// nodeAt projects an aG state index back to the graphs.Node it was built
// from.
func nodeAt(aG *automaton.Matrix, idx int) graphs.Node {
	return aG.Index().StateAt(idx).Payload.(graphs.Node)
}

// projectNodeSet projects an rpq.NodeSet of aG state indices to graphs.Node.
func projectNodeSet(aG *automaton.Matrix, ns rpq.NodeSet) NodeSet {
	out := make(NodeSet, len(ns))
	for idx := range ns {
		out[nodeAt(aG, idx)] = true
	}

	return out
}
