package cfpq

import (
	"github.com/katalvlaran/pathql/boolmatrix"
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xerr"
)

// MatrixClosure computes the derivable-triple set by a per-variable
// boolean-matrix fixed point: seed each variable's matrix like Hellings,
// then sweep every binary rule M -> B C with M_M |= M_B @ M_C until no
// matrix grows. Two explicit maps (nodeToIndex, indexToNode) keep the
// index decode correct for non-contiguous node ids.
func MatrixClosure(g *graphs.Graph, cfg *cfgpipe.CFG, opts ...Option) (TripleSet, error) {
	if err := checkInputs("cfpq.MatrixClosure", g, cfg); err != nil {
		return nil, err
	}
	o := NewConfig(opts...)
	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return make(TripleSet), nil
	}

	nodeToIndex := make(map[graphs.Node]int, n)
	indexToNode := make([]graphs.Node, n)
	for i, node := range nodes {
		nodeToIndex[node] = i
		indexToNode[i] = node
	}

	wcnf := cfg.ToWCNF()
	c := classify(wcnf)

	varToMatrix := make(map[cfgpipe.Variable]*boolmatrix.Matrix, len(wcnf.Variables()))
	for _, v := range wcnf.Variables() {
		m, err := boolmatrix.New(n, n)
		if err != nil {
			return nil, err
		}
		varToMatrix[v] = m
	}

	for i := 0; i < n; i++ {
		for _, v := range c.epsilon {
			if err := varToMatrix[v].Set(i, i); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range g.Edges() {
		i, j := nodeToIndex[e.From], nodeToIndex[e.To]
		for _, v := range c.unary[cfgpipe.Terminal(e.Label)] {
			if err := varToMatrix[v].Set(i, j); err != nil {
				return nil, err
			}
		}
	}

	for iter := 0; ; iter++ {
		changed := false
		for key, heads := range c.binary {
			product, err := boolmatrix.Mul(varToMatrix[key.B], varToMatrix[key.C])
			if err != nil {
				return nil, err
			}
			for _, head := range heads {
				before := varToMatrix[head].NNZ()
				varToMatrix[head].OrInPlace(product)
				if varToMatrix[head].NNZ() != before {
					changed = true
				}
			}
		}
		o.Logger.Logf("cfpq.MatrixClosure: iteration=%d changed=%t", iter, changed)
		if !changed {
			break
		}
		if o.MaxIterations > 0 && iter+1 >= o.MaxIterations {
			return nil, xerr.Wrap("cfpq.MatrixClosure", xerr.ErrNonTerminating)
		}
	}

	result := make(TripleSet)
	for v, m := range varToMatrix {
		for _, p := range m.Nonzeros() {
			result[Triple{Start: indexToNode[p.Row], Var: v, End: indexToNode[p.Col]}] = true
		}
	}

	return result, nil
}
