package cfpq

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xerr"
)

// Hellings computes the derivable-triple set by worklist closure: seed
// from ε- and terminal-productions of cfg's Weak Chomsky Normal Form,
// then close under binary productions until the worklist drains.
func Hellings(g *graphs.Graph, cfg *cfgpipe.CFG, opts ...Option) (TripleSet, error) {
	if err := checkInputs("cfpq.Hellings", g, cfg); err != nil {
		return nil, err
	}
	if g.NodeCount() == 0 {
		return make(TripleSet), nil
	}
	o := NewConfig(opts...)

	wcnf := cfg.ToWCNF()
	c := classify(wcnf)

	result := make(TripleSet)
	worklist := arraylist.New()
	add := func(t Triple) {
		if !result[t] {
			result[t] = true
			worklist.Add(t)
		}
	}

	for _, n := range g.Nodes() {
		for _, v := range c.epsilon {
			add(Triple{Start: n, Var: v, End: n})
		}
	}
	for _, e := range g.Edges() {
		for _, v := range c.unary[cfgpipe.Terminal(e.Label)] {
			add(Triple{Start: e.From, Var: v, End: e.To})
		}
	}

	o.Logger.Logf("cfpq.Hellings: seeded worklist=%d", worklist.Size())

	for pops := 0; !worklist.Empty(); pops++ {
		if o.MaxIterations > 0 && pops >= o.MaxIterations {
			return nil, xerr.Wrap("cfpq.Hellings", xerr.ErrNonTerminating)
		}
		head, _ := worklist.Get(0)
		worklist.Remove(0)
		popped := head.(Triple)
		i, var1, j := popped.Start, popped.Var, popped.End

		snapshot := make([]Triple, 0, len(result))
		for t := range result {
			snapshot = append(snapshot, t)
		}

		for _, pr := range snapshot {
			u, var2, v := pr.Start, pr.Var, pr.End
			if v == i {
				for _, m := range c.binary[pairKey{B: var2, C: var1}] {
					add(Triple{Start: u, Var: m, End: j})
				}
			}
			if j == u {
				for _, m := range c.binary[pairKey{B: var1, C: var2}] {
					add(Triple{Start: i, Var: m, End: v})
				}
			}
		}
	}

	o.Logger.Logf("cfpq.Hellings: done triples=%d", len(result))

	return result, nil
}
