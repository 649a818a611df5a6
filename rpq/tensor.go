package rpq

import (
	"github.com/katalvlaran/pathql/automaton"
)

// Tensor runs the tensor-intersection RPQ algorithm:
//
//  1. R := aG ⊗ aQ (automaton.Intersect, the Kronecker product).
//  2. T := transitive-closure(R).
//  3. Result: {(i/|aQ|, j/|aQ|) | (i, j) ∈ nnz(T), i ∈ starts_R, j ∈ finals_R}.
//
// aG is the graph automaton (graphs.Graph promoted via ToNFA then
// automaton.FromNFA), aQ the query automaton (regexengine.ToMinDFA's
// result). Both must be non-nil.
func Tensor(aG, aQ *automaton.Matrix, opts ...TensorOption) (PairSet, error) {
	if aG == nil || aQ == nil {
		return nil, ErrNilAutomaton
	}
	o := NewTensorOptions(opts...)

	r, err := automaton.Intersect(aG, aQ)
	if err != nil {
		return nil, err
	}
	o.Logger.Logf("rpq.Tensor: intersection states=%d", r.N())
	closure, err := r.Closure()
	if err != nil {
		return nil, err
	}
	o.Logger.Logf("rpq.Tensor: closure nnz=%d", closure.NNZ())

	nQ := aQ.N()
	result := make(PairSet)
	for _, p := range closure.Nonzeros() {
		if !r.IsStart(p.Row) || !r.IsFinal(p.Col) {
			continue
		}
		result[Pair{Start: p.Row / nQ, Final: p.Col / nQ}] = true
	}

	o.Logger.Logf("rpq.Tensor: done pairs=%d", len(result))

	return result, nil
}
