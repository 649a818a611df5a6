package regexengine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathql/automaton"
)

// epsilonClosure returns the set of states reachable from seeds via zero
// or more ε-edges, seeds included.
func epsilonClosure(g *eNFA, seeds []int) map[int]bool {
	closure := make(map[int]bool, len(seeds))
	stack := append([]int{}, seeds...)
	for _, s := range seeds {
		closure[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range g.trans[s][automaton.Epsilon] {
			if !closure[t] {
				closure[t] = true
				stack = append(stack, t)
			}
		}
	}

	return closure
}

// setKey canonicalizes a state set into a sorted, comma-joined string so it
// can serve as a deterministic DFA-state identity.
func setKey(set map[int]bool) string {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ",")
}

// alphabet collects every non-ε label appearing in g.
func alphabet(g *eNFA) []automaton.Label {
	seen := map[automaton.Label]bool{}
	for _, edges := range g.trans {
		for l := range edges {
			if l != automaton.Label(automaton.Epsilon) {
				seen[l] = true
			}
		}
	}
	out := make([]automaton.Label, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LabelKey() < out[j].LabelKey() })

	return out
}

// subsetConstruct performs the standard ε-NFA -> DFA subset construction
// and renders the result as an automaton.Matrix. The
// produced matrix never carries an automaton.Epsilon transition.
func subsetConstruct(g *eNFA) (*automaton.Matrix, error) {
	sigma := alphabet(g)

	startSet := epsilonClosure(g, []int{g.start})
	startKey := setKey(startSet)

	type dfaState struct {
		set map[int]bool
		key string
	}
	states := map[string]dfaState{startKey: {set: startSet, key: startKey}}
	queue := []string{startKey}

	transitions := map[string]map[automaton.Label]string{startKey: {}}

	for len(queue) > 0 {
		curKey := queue[0]
		queue = queue[1:]
		cur := states[curKey]

		for _, sym := range sigma {
			var moved []int
			for s := range cur.set {
				moved = append(moved, g.trans[s][sym]...)
			}
			if len(moved) == 0 {
				continue
			}
			target := epsilonClosure(g, moved)
			tKey := setKey(target)
			if _, ok := states[tKey]; !ok {
				states[tKey] = dfaState{set: target, key: tKey}
				transitions[tKey] = map[automaton.Label]string{}
				queue = append(queue, tKey)
			}
			transitions[curKey][sym] = tKey
		}
	}

	nfa := &automaton.NFA{}
	stateOf := make(map[string]automaton.State, len(states))
	for key := range states {
		st := automaton.NewState(key)
		stateOf[key] = st
		nfa.States = append(nfa.States, st)
	}
	nfa.Starts = []automaton.State{stateOf[startKey]}
	for key, ds := range states {
		if ds.set[g.final] {
			nfa.Finals = append(nfa.Finals, stateOf[key])
		}
	}
	for fromKey, row := range transitions {
		for sym, toKey := range row {
			nfa.Transitions = append(nfa.Transitions, automaton.Transition{
				From:  stateOf[fromKey],
				Label: sym,
				To:    stateOf[toKey],
			})
		}
	}

	return automaton.FromNFA(nfa)
}
