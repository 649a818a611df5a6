package rpq

import (
	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmatrix"
)

// BFS runs the synchronized multi-source BFS RPQ algorithm.
// aG is the graph automaton, aQ the query automaton, gStarts the G-state
// indices to start from (callers typically pass the indices of aG's own
// Starts(), but an explicit subset is accepted).
//
// With WithAllReachable(false) (the default) it returns a single NodeSet:
// the G-final states reachable from the union of gStarts. With
// WithAllReachable(true) it returns map[int]NodeSet, one reachable-finals
// set per entry of gStarts, keyed by the original G-state index.
func BFS(aG, aQ *automaton.Matrix, gStarts []int, opts ...BFSOption) (interface{}, error) {
	if aG == nil || aQ == nil {
		return nil, ErrNilAutomaton
	}
	o := NewBFSOptions(opts...)

	if len(gStarts) == 0 {
		if o.AllReachable {
			return map[int]NodeSet{}, nil
		}

		return NodeSet{}, nil
	}

	m, n := aQ.N(), aG.N()
	common := commonLabels(aG, aQ)

	k := 1
	if o.AllReachable {
		k = len(gStarts)
	}
	front, err := boolmatrix.New(k*m, n)
	if err != nil {
		return nil, err
	}
	qStarts := aQ.Starts()
	if o.AllReachable {
		for block, gs := range gStarts {
			for _, qs := range qStarts {
				if err := front.Set(block*m+qs, gs); err != nil {
					return nil, err
				}
			}
		}
	} else {
		for _, qs := range qStarts {
			for _, gs := range gStarts {
				if err := front.Set(qs, gs); err != nil {
					return nil, err
				}
			}
		}
	}

	visited := front.Clone()
	for iter := 0; ; iter++ {
		o.Logger.Logf("rpq.BFS: iteration=%d nnz=%d", iter, front.NNZ())

		next, err := boolmatrix.New(k*m, n)
		if err != nil {
			return nil, err
		}
		for _, label := range common {
			part, err := boolmatrix.Mul(front, aG.ByLabel(label))
			if err != nil {
				return nil, err
			}
			qMat := aQ.ByLabel(label)
			for _, p := range qMat.Nonzeros() {
				i, j := p.Row, p.Col
				for b := 0; b < k; b++ {
					offset := b * m
					for _, col := range part.Row(offset + i) {
						if err := next.Set(offset+j, col); err != nil {
							return nil, err
						}
					}
				}
			}
		}

		fresh, err := boolmatrix.AndNot(next, visited)
		if err != nil {
			return nil, err
		}
		if fresh.NNZ() == 0 {
			break
		}
		visited.OrInPlace(fresh)
		front = fresh
	}

	if o.AllReachable {
		result := make(map[int]NodeSet, len(gStarts))
		for block, gs := range gStarts {
			result[gs] = reachableFinals(aG, aQ, visited, block*m)
		}

		return result, nil
	}

	return reachableFinals(aG, aQ, visited, 0), nil
}

// reachableFinals reads out the G-final states reachable for the block
// starting at row offset: union the visited rows at (offset + qf) for every
// Q-final qf, restricted to columns that are G-final.
func reachableFinals(aG, aQ *automaton.Matrix, visited *boolmatrix.Matrix, offset int) NodeSet {
	out := make(NodeSet)
	for _, qf := range aQ.Finals() {
		for _, col := range visited.Row(offset + qf) {
			if aG.IsFinal(col) {
				out[col] = true
			}
		}
	}

	return out
}

// commonLabels returns the labels present in both aG and aQ, the BFS
// step alphabet.
func commonLabels(aG, aQ *automaton.Matrix) []automaton.Label {
	qKeys := make(map[string]bool)
	for _, l := range aQ.Labels() {
		qKeys[l.LabelKey()] = true
	}
	var out []automaton.Label
	for _, l := range aG.Labels() {
		if qKeys[l.LabelKey()] {
			out = append(out, l)
		}
	}

	return out
}
