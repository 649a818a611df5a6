package cfpq

import (
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xerr"
)

// TensorRSM computes the derivable-triple set by repeated Kronecker
// intersection against an RSM: build A_R from cfg's RSM and A_G from g
// (with a self-loop under every nullable nonterminal),
// then repeatedly intersect, close, and promote newly-reachable box
// start/final pairs into A_G as direct edges under that box's variable,
// until the closure's nonzero count stops growing.
func TensorRSM(g *graphs.Graph, cfg *cfgpipe.CFG, opts ...Option) (TripleSet, error) {
	if err := checkInputs("cfpq.TensorRSM", g, cfg); err != nil {
		return nil, err
	}
	if g.NodeCount() == 0 {
		return make(TripleSet), nil
	}
	o := NewConfig(opts...)

	rsm, err := cfgpipe.ECFGToRSM(cfgpipe.CFGToECFG(cfg))
	if err != nil {
		return nil, err
	}
	rsm, err = rsm.Minimize()
	if err != nil {
		return nil, err
	}

	aR, variableOf, err := buildBoxAutomaton(rsm)
	if err != nil {
		return nil, err
	}

	aG, err := buildGraphAutomaton(g, cfg.Variables(), cfg.Nullable())
	if err != nil {
		return nil, err
	}

	nG := aG.N()
	prevSize := -1
	for iter := 0; ; iter++ {
		r, err := automaton.Intersect(aR, aG)
		if err != nil {
			return nil, err
		}
		t, err := r.Closure()
		if err != nil {
			return nil, err
		}
		nz := t.Nonzeros()

		for _, p := range nz {
			if !r.IsStart(p.Row) || !r.IsFinal(p.Col) {
				continue
			}
			iR, iG := p.Row/nG, p.Row%nG
			jR, jG := p.Col/nG, p.Col%nG
			v := variableOf[iR]
			if v != variableOf[jR] {
				continue
			}
			if err := aG.ByLabel(v).Set(iG, jG); err != nil {
				return nil, err
			}
		}

		o.Logger.Logf("cfpq.TensorRSM: iteration=%d nnz=%d", iter, len(nz))
		if len(nz) == prevSize {
			break
		}
		prevSize = len(nz)
		if o.MaxIterations > 0 && iter+1 >= o.MaxIterations {
			return nil, xerr.Wrap("cfpq.TensorRSM", xerr.ErrNonTerminating)
		}
	}

	result := make(TripleSet)
	nodes := g.Nodes()
	for _, v := range cfg.Variables() {
		for _, p := range aG.ByLabel(v).Nonzeros() {
			result[Triple{Start: nodes[p.Row], Var: v, End: nodes[p.Col]}] = true
		}
	}

	return result, nil
}

// buildBoxAutomaton flattens every RSM box into one AutomatonMatrix whose
// states are (variable, box-local-state) pairs. variableOf maps each
// resulting global index back to the variable whose box it belongs to.
func buildBoxAutomaton(rsm *cfgpipe.RSM) (*automaton.Matrix, map[int]cfgpipe.Variable, error) {
	vars := make([]cfgpipe.Variable, 0, len(rsm.Boxes))
	for v := range rsm.Boxes {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })

	index := automaton.NewStateIndex()
	variableOf := make(map[int]cfgpipe.Variable)
	localToGlobal := make(map[cfgpipe.Variable][]int, len(vars))

	for _, v := range vars {
		box := rsm.Boxes[v]
		mapping := make([]int, box.N())
		for i := 0; i < box.N(); i++ {
			g := index.Add(automaton.NewState([2]interface{}{v, i}))
			mapping[i] = g
			variableOf[g] = v
		}
		localToGlobal[v] = mapping
	}

	var starts, finals []int
	for _, v := range vars {
		box := rsm.Boxes[v]
		mapping := localToGlobal[v]
		for i := 0; i < box.N(); i++ {
			if box.IsStart(i) {
				starts = append(starts, mapping[i])
			}
			if box.IsFinal(i) {
				finals = append(finals, mapping[i])
			}
		}
	}

	n := index.Len()
	byLabel := make(map[automaton.Label]*boolmatrix.Matrix)
	for _, v := range vars {
		box := rsm.Boxes[v]
		mapping := localToGlobal[v]
		for _, l := range box.Labels() {
			mat, ok := byLabel[l]
			if !ok {
				var err error
				mat, err = boolmatrix.New(n, n)
				if err != nil {
					return nil, nil, err
				}
				byLabel[l] = mat
			}
			for _, p := range box.ByLabel(l).Nonzeros() {
				if err := mat.Set(mapping[p.Row], mapping[p.Col]); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	aR, err := automaton.FromParts(index, starts, finals, byLabel)
	if err != nil {
		return nil, nil, err
	}

	return aR, variableOf, nil
}

// buildGraphAutomaton promotes g into an AutomatonMatrix whose edges are
// labeled by Terminal, plus a self-loop at every node under every variable
// in nullable. Every variable gets a (possibly empty) matrix up front so
// the tensor fixed point always has somewhere to record a newly-derived
// pair.
func buildGraphAutomaton(g *graphs.Graph, variables []cfgpipe.Variable, nullable map[cfgpipe.Variable]bool) (*automaton.Matrix, error) {
	index := automaton.NewStateIndex()
	for _, n := range g.Nodes() {
		index.Add(automaton.NewState(n))
	}
	n := index.Len()

	allIdx := make([]int, n)
	for i := range allIdx {
		allIdx[i] = i
	}

	byLabel := make(map[automaton.Label]*boolmatrix.Matrix)
	ensure := func(l automaton.Label) (*boolmatrix.Matrix, error) {
		if m, ok := byLabel[l]; ok {
			return m, nil
		}
		m, err := boolmatrix.New(n, n)
		if err != nil {
			return nil, err
		}
		byLabel[l] = m

		return m, nil
	}

	for _, e := range g.Edges() {
		m, err := ensure(cfgpipe.Terminal(e.Label))
		if err != nil {
			return nil, err
		}
		i, _ := index.IndexOf(automaton.NewState(e.From))
		j, _ := index.IndexOf(automaton.NewState(e.To))
		if err := m.Set(i, j); err != nil {
			return nil, err
		}
	}

	for _, v := range variables {
		m, err := ensure(v)
		if err != nil {
			return nil, err
		}
		if !nullable[v] {
			continue
		}
		for i := 0; i < n; i++ {
			if err := m.Set(i, i); err != nil {
				return nil, err
			}
		}
	}

	return automaton.FromParts(index, allIdx, allIdx, byLabel)
}
