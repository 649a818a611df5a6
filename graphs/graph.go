package graphs

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/pathql/automaton"
)

// Node is a graph vertex identifier. Graphs here carry no payload per
// node — a node is just its int id.
type Node int

// Edge is a single labeled arc From --Label--> To. An empty Label (the zero
// automaton.Symbol, "") marks a null-labeled edge: AddEdge stores it like
// any other edge, and ToNFA skips it.
type Edge struct {
	From  Node
	To    Node
	Label automaton.Symbol
}

// Graph is a directed multigraph with string-labeled edges. All mutation
// is guarded by an internal mutex so a Graph can be shared across
// goroutines without external locking.
type Graph struct {
	mu    sync.RWMutex
	nodes map[Node]bool
	edges []Edge
	out   map[Node][]Edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[Node]bool),
		out:   make(map[Node][]Edge),
	}
}

// AddNode inserts n if absent. Idempotent.
func (g *Graph) AddNode(n Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[n] = true
	if _, ok := g.out[n]; !ok {
		g.out[n] = nil
	}
}

// AddEdge inserts a labeled arc from -> to, adding either endpoint as a
// node if not already present. Parallel edges with the same (from, label,
// to) are kept distinct here; they collapse only when promoted to an
// automaton.Matrix (boolean semiring has no multiplicity).
func (g *Graph) AddEdge(from, to Node, label automaton.Symbol) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[from] = true
	g.nodes[to] = true
	e := Edge{From: from, To: to, Label: label}
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], e)
}

// Nodes returns every node id in ascending order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]Edge{}, g.edges...)
}

// NodeCount reports the number of distinct nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// ToNFA promotes g to an automaton.NFA: states are g's
// nodes, transitions are g's edges with a non-empty label, and starts/
// finals default to every node in g when the corresponding argument is
// nil. A non-nil starts/finals naming a node absent from g is a caller
// error, wrapped as ErrUnknownNode.
func (g *Graph) ToNFA(starts, finals []Node) (*automaton.NFA, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if starts == nil {
		starts = allNodes(g.nodes)
	}
	if finals == nil {
		finals = allNodes(g.nodes)
	}
	for _, n := range starts {
		if !g.nodes[n] {
			return nil, fmt.Errorf("graphs: start node %d: %w", n, ErrUnknownNode)
		}
	}
	for _, n := range finals {
		if !g.nodes[n] {
			return nil, fmt.Errorf("graphs: final node %d: %w", n, ErrUnknownNode)
		}
	}

	nfa := &automaton.NFA{}
	for _, n := range allNodes(g.nodes) {
		nfa.States = append(nfa.States, automaton.NewState(n))
	}
	for _, n := range starts {
		nfa.Starts = append(nfa.Starts, automaton.NewState(n))
	}
	for _, n := range finals {
		nfa.Finals = append(nfa.Finals, automaton.NewState(n))
	}
	for _, e := range g.edges {
		if e.Label == "" {
			continue
		}
		nfa.Transitions = append(nfa.Transitions, automaton.Transition{
			From:  automaton.NewState(e.From),
			Label: e.Label,
			To:    automaton.NewState(e.To),
		})
	}

	return nfa, nil
}

func allNodes(set map[Node]bool) []Node {
	out := make([]Node, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
