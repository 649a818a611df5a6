// SPDX-License-Identifier: MIT
package automaton

import (
	"sort"

	"github.com/katalvlaran/pathql/boolmatrix"
)

// Matrix is the tuple (index, starts, finals, byLabel):
// a bijective State<->int index, the start/final subsets, and one
// boolean matrix per label. A missing label key is the zero matrix.
type Matrix struct {
	index   *StateIndex
	starts  map[int]bool
	finals  map[int]bool
	byLabel map[string]*boolmatrix.Matrix
	labelOf map[string]Label
}

// N returns the number of indexed states.
func (m *Matrix) N() int { return m.index.Len() }

// Index returns the underlying StateIndex.
func (m *Matrix) Index() *StateIndex { return m.index }

// IsStart reports whether state index i is a start state.
func (m *Matrix) IsStart(i int) bool { return m.starts[i] }

// IsFinal reports whether state index i is a final state.
func (m *Matrix) IsFinal(i int) bool { return m.finals[i] }

// Starts returns the start-state indices in ascending order.
func (m *Matrix) Starts() []int { return sortedKeys(m.starts) }

// Finals returns the final-state indices in ascending order.
func (m *Matrix) Finals() []int { return sortedKeys(m.finals) }

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// Labels returns the labels that have a stored transition matrix. A matrix
// handed to FromParts is stored even when it has no nonzero cell, so a
// returned label's matrix may be empty.
func (m *Matrix) Labels() []Label {
	out := make([]Label, 0, len(m.labelOf))
	for _, l := range m.labelOf {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LabelKey() < out[j].LabelKey() })

	return out
}

// ByLabel returns the transition matrix for l. A label with no transitions
// reads as the n×n zero matrix.
func (m *Matrix) ByLabel(l Label) *boolmatrix.Matrix {
	if mat, ok := m.byLabel[l.LabelKey()]; ok {
		return mat
	}
	z, _ := boolmatrix.New(m.N(), m.N())

	return z
}

// Empty returns the automaton with zero states.
func Empty() *Matrix {
	return &Matrix{
		index:   NewStateIndex(),
		starts:  map[int]bool{},
		finals:  map[int]bool{},
		byLabel: map[string]*boolmatrix.Matrix{},
		labelOf: map[string]Label{},
	}
}

// FromParts builds a Matrix directly from a pre-built index, start/final
// index sets and a per-label matrix map. Every matrix in byLabel must be
// n×n where n = index.Len(). This is the constructor used by engines that
// already computed the index and matrices themselves (tensor intersection,
// RSM assembly) rather than going through an NFA.
func FromParts(index *StateIndex, starts, finals []int, byLabel map[Label]*boolmatrix.Matrix) (*Matrix, error) {
	n := index.Len()
	out := &Matrix{
		index:   index,
		starts:  toSet(starts),
		finals:  toSet(finals),
		byLabel: make(map[string]*boolmatrix.Matrix, len(byLabel)),
		labelOf: make(map[string]Label, len(byLabel)),
	}
	for l, mat := range byLabel {
		if mat.Rows() != n || mat.Cols() != n {
			return nil, ErrDimensionMismatch
		}
		out.byLabel[l.LabelKey()] = mat
		out.labelOf[l.LabelKey()] = l
	}

	return out, nil
}

func toSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}

	return set
}

// FromNFA builds a Matrix by enumerating nfa.States to form the index and
// setting bit (index(from), index(to)) in byLabel[label] for every
// transition.
func FromNFA(nfa *NFA) (*Matrix, error) {
	index := NewStateIndex()
	for _, s := range nfa.States {
		index.Add(s)
	}
	// Defensive: also pick up any state mentioned only via starts/finals or
	// a transition endpoint, so callers never have to pre-enumerate States
	// exhaustively by hand.
	for _, s := range nfa.Starts {
		index.Add(s)
	}
	for _, s := range nfa.Finals {
		index.Add(s)
	}
	for _, tr := range nfa.Transitions {
		index.Add(tr.From)
		index.Add(tr.To)
	}

	n := index.Len()
	starts := make([]int, 0, len(nfa.Starts))
	for _, s := range nfa.Starts {
		i, _ := index.IndexOf(s)
		starts = append(starts, i)
	}
	finals := make([]int, 0, len(nfa.Finals))
	for _, s := range nfa.Finals {
		i, _ := index.IndexOf(s)
		finals = append(finals, i)
	}

	mats := make(map[string]*boolmatrix.Matrix)
	labelOf := make(map[string]Label)
	for _, tr := range nfa.Transitions {
		key := tr.Label.LabelKey()
		mat, ok := mats[key]
		if !ok {
			mat, _ = boolmatrix.New(n, n)
			mats[key] = mat
			labelOf[key] = tr.Label
		}
		from, _ := index.IndexOf(tr.From)
		to, _ := index.IndexOf(tr.To)
		_ = mat.Set(from, to) // multi-edges with the same (from, label, to) collapse
	}

	return &Matrix{
		index:   index,
		starts:  toSet(starts),
		finals:  toSet(finals),
		byLabel: mats,
		labelOf: labelOf,
	}, nil
}

// NFA renders m back into the flat-transition view: for each label and
// each nonzero (i, j), emit transition (state(i), label, state(j)), with
// starts/finals lifted through the index.
func (m *Matrix) NFA() *NFA {
	out := &NFA{
		States: append([]State{}, m.index.States()...),
	}
	for _, i := range m.Starts() {
		out.Starts = append(out.Starts, m.index.StateAt(i))
	}
	for _, i := range m.Finals() {
		out.Finals = append(out.Finals, m.index.StateAt(i))
	}
	for _, l := range m.Labels() {
		mat := m.byLabel[l.LabelKey()]
		for _, p := range mat.Nonzeros() {
			out.Transitions = append(out.Transitions, Transition{
				From:  m.index.StateAt(p.Row),
				Label: l,
				To:    m.index.StateAt(p.Col),
			})
		}
	}

	return out
}

// Closure computes the transitive closure of the union of every labeled
// transition matrix (labels elided): reachability under the union of
// labeled edges.
func (m *Matrix) Closure() (*boolmatrix.Matrix, error) {
	mats := make([]*boolmatrix.Matrix, 0, len(m.byLabel))
	for _, mat := range m.byLabel {
		mats = append(mats, mat)
	}

	return boolmatrix.Closure(m.N(), mats)
}

// Intersect computes the Kronecker (synchronized) product A ⊗ B: for each
// label present in both, byLabel_R[s] = kron(byLabel_A[s], byLabel_B[s]);
// the composite index for (i_A, i_B) is i_A*|B|+i_B; starts/finals are the
// Cartesian products of the operands' starts/finals.
//
// The resulting state payload is the pair (a-state, b-state) so the
// product automaton's states remain traceable back to their factors.
func Intersect(a, b *Matrix) (*Matrix, error) {
	nA, nB := a.N(), b.N()
	index := NewStateIndex()
	// Insertion order i_A*nB+i_B guarantees Add assigns exactly that index,
	// since StateIndex assigns sequential indices in insertion order.
	for iA := 0; iA < nA; iA++ {
		for iB := 0; iB < nB; iB++ {
			index.Add(NewState([2]State{a.index.StateAt(iA), b.index.StateAt(iB)}))
		}
	}

	var starts, finals []int
	for iA := 0; iA < nA; iA++ {
		for iB := 0; iB < nB; iB++ {
			composite := iA*nB + iB
			if a.IsStart(iA) && b.IsStart(iB) {
				starts = append(starts, composite)
			}
			if a.IsFinal(iA) && b.IsFinal(iB) {
				finals = append(finals, composite)
			}
		}
	}

	byLabel := make(map[Label]*boolmatrix.Matrix)
	for _, l := range a.Labels() {
		key := l.LabelKey()
		if _, ok := b.labelOf[key]; !ok {
			continue
		}
		byLabel[l] = boolmatrix.Kron(a.byLabel[key], b.byLabel[key])
	}

	return FromParts(index, starts, finals, byLabel)
}
