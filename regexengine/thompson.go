package regexengine

import "github.com/katalvlaran/pathql/automaton"

// eNFA is a private ε-NFA representation used only inside regexengine
// while building a DFA. EPSILON never occurs in a stored automaton.Matrix,
// so the ε-bearing intermediate representation lives entirely here and is
// consumed by subsetConstruct, never exported.
type eNFA struct {
	numStates int
	trans     []map[automaton.Label][]int // trans[state][label] -> target states; label automaton.Epsilon for ε-edges
	start     int
	final     int
}

func newENFA() *eNFA {
	return &eNFA{}
}

// addState allocates and returns a fresh state id.
func (g *eNFA) addState() int {
	g.trans = append(g.trans, make(map[automaton.Label][]int))
	id := g.numStates
	g.numStates++

	return id
}

func (g *eNFA) addEdge(from int, l automaton.Label, to int) {
	g.trans[from][l] = append(g.trans[from][l], to)
}

// fragment is a Thompson-construction fragment with a single entry and a
// single exit state.
type fragment struct {
	start, final int
}

// build performs the classic Thompson construction: each AST node becomes
// a fragment wired via ε-edges, composed bottom-up.
func build(n Node, g *eNFA) fragment {
	switch t := n.(type) {
	case Eps:
		s := g.addState()
		return fragment{start: s, final: s}
	case Lit:
		s0, s1 := g.addState(), g.addState()
		g.addEdge(s0, t.Sym, s1)
		return fragment{start: s0, final: s1}
	case Concat:
		a := build(t.Left, g)
		b := build(t.Right, g)
		g.addEdge(a.final, automaton.Epsilon, b.start)
		return fragment{start: a.start, final: b.final}
	case Alt:
		a := build(t.Left, g)
		b := build(t.Right, g)
		s0, s1 := g.addState(), g.addState()
		g.addEdge(s0, automaton.Epsilon, a.start)
		g.addEdge(s0, automaton.Epsilon, b.start)
		g.addEdge(a.final, automaton.Epsilon, s1)
		g.addEdge(b.final, automaton.Epsilon, s1)
		return fragment{start: s0, final: s1}
	case Star:
		a := build(t.Sub, g)
		s0, s1 := g.addState(), g.addState()
		g.addEdge(s0, automaton.Epsilon, a.start)
		g.addEdge(s0, automaton.Epsilon, s1)
		g.addEdge(a.final, automaton.Epsilon, a.start)
		g.addEdge(a.final, automaton.Epsilon, s1)
		return fragment{start: s0, final: s1}
	default:
		panic("regexengine: unknown AST node")
	}
}

// toENFA runs the Thompson construction over the whole tree.
func toENFA(n Node) *eNFA {
	g := newENFA()
	frag := build(n, g)
	g.start = frag.start
	g.final = frag.final

	return g
}
