package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
)

func ab() (automaton.State, automaton.State, automaton.State) {
	return automaton.NewState(0), automaton.NewState(1), automaton.NewState(2)
}

func TestFromNFARoundTrip(t *testing.T) {
	s0, s1, s2 := ab()
	nfa := &automaton.NFA{
		States: []automaton.State{s0, s1, s2},
		Starts: []automaton.State{s0},
		Finals: []automaton.State{s2},
		Transitions: []automaton.Transition{
			{From: s0, Label: automaton.Symbol("a"), To: s1},
			{From: s1, Label: automaton.Symbol("b"), To: s2},
		},
	}
	m, err := automaton.FromNFA(nfa)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())
	require.Equal(t, []int{0}, m.Starts())
	require.Equal(t, []int{2}, m.Finals())
	require.True(t, m.ByLabel(automaton.Symbol("a")).Get(0, 1))
	require.True(t, m.ByLabel(automaton.Symbol("b")).Get(1, 2))
	require.False(t, m.ByLabel(automaton.Symbol("c")).Get(0, 1)) // missing label = zero matrix

	back := m.NFA()
	require.Len(t, back.Transitions, 2)
}

func TestClosureReachability(t *testing.T) {
	s0, s1, s2 := ab()
	nfa := &automaton.NFA{
		States: []automaton.State{s0, s1, s2},
		Transitions: []automaton.Transition{
			{From: s0, Label: automaton.Symbol("a"), To: s1},
			{From: s1, Label: automaton.Symbol("a"), To: s2},
		},
	}
	m, err := automaton.FromNFA(nfa)
	require.NoError(t, err)
	closure, err := m.Closure()
	require.NoError(t, err)
	require.True(t, closure.Get(0, 2))
	require.False(t, closure.Get(2, 0))
}

func TestIntersectKroneckerIdentity(t *testing.T) {
	s0, s1, _ := ab()
	nfaA := &automaton.NFA{
		States: []automaton.State{s0, s1},
		Starts: []automaton.State{s0},
		Finals: []automaton.State{s1},
		Transitions: []automaton.Transition{
			{From: s0, Label: automaton.Symbol("a"), To: s1},
		},
	}
	a, err := automaton.FromNFA(nfaA)
	require.NoError(t, err)

	t0, t1, t2 := automaton.NewState("q0"), automaton.NewState("q1"), automaton.NewState("q2")
	nfaB := &automaton.NFA{
		States: []automaton.State{t0, t1, t2},
		Starts: []automaton.State{t0},
		Finals: []automaton.State{t2},
		Transitions: []automaton.Transition{
			{From: t0, Label: automaton.Symbol("a"), To: t1},
			{From: t1, Label: automaton.Symbol("a"), To: t2},
		},
	}
	b, err := automaton.FromNFA(nfaB)
	require.NoError(t, err)

	prod, err := automaton.Intersect(a, b)
	require.NoError(t, err)
	// Kronecker identity: |A⊗B| = |A|*|B|
	require.Equal(t, a.N()*b.N(), prod.N())
	// composite index bijective: starts/finals are the cartesian products
	require.Len(t, prod.Starts(), 1)
	require.Len(t, prod.Finals(), 1)
}
