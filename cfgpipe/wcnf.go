package cfgpipe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/pathql/automaton"
)

// ToWCNF converts g to Weak Chomsky Normal Form: every
// production body is ε, a single terminal, or a pair of variables. The
// pipeline is remove-useless -> eliminate-unit-productions ->
// remove-useless -> decompose-long-and-mixed-bodies, mirroring the
// reference grammar-normalization pipeline step for step.
func (g *CFG) ToWCNF() *CFG {
	cleared := removeUseless(eliminateUnit(removeUseless(g)))
	out := decompose(cleared)
	sortProductions(out.Productions)

	return out
}

// computeGenerating returns the variables that can derive some terminal
// string: a fixed point starting from ε-productions and single-terminal
// productions, extended through bodies whose variable symbols are all
// already known generating.
func computeGenerating(g *CFG) map[Variable]bool {
	generating := map[Variable]bool{}
	for {
		before := len(generating)
		for _, p := range g.Productions {
			if generating[p.Head] {
				continue
			}
			if bodyAllGenerating(p.Body, generating) {
				generating[p.Head] = true
			}
		}
		if len(generating) == before {
			break
		}
	}

	return generating
}

func bodyAllGenerating(body []automaton.Label, generating map[Variable]bool) bool {
	for _, sym := range body {
		if v, ok := sym.(Variable); ok && !generating[v] {
			return false
		}
	}

	return true
}

// computeReachable returns the variables reachable from g.Start by
// following the variable symbols in production bodies.
func computeReachable(g *CFG) map[Variable]bool {
	reachable := map[Variable]bool{g.Start: true}
	queue := []Variable{g.Start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, p := range g.Productions {
			if p.Head != v {
				continue
			}
			for _, sym := range p.Body {
				if nv, ok := sym.(Variable); ok && !reachable[nv] {
					reachable[nv] = true
					queue = append(queue, nv)
				}
			}
		}
	}

	return reachable
}

// removeUseless drops productions whose head is not generating (cannot
// derive any terminal string), then drops productions whose head is not
// reachable from g.Start.
func removeUseless(g *CFG) *CFG {
	generating := computeGenerating(g)
	var productive []Production
	for _, p := range g.Productions {
		if generating[p.Head] && bodyAllGenerating(p.Body, generating) {
			productive = append(productive, p)
		}
	}
	g2 := &CFG{Start: g.Start, Productions: productive}

	reachable := computeReachable(g2)
	var out []Production
	for _, p := range g2.Productions {
		if reachable[p.Head] {
			out = append(out, p)
		}
	}

	return &CFG{Start: g.Start, Productions: out}
}

func isUnitProduction(p Production) (Variable, bool) {
	if len(p.Body) != 1 {
		return "", false
	}
	v, ok := p.Body[0].(Variable)

	return v, ok
}

// eliminateUnit replaces every chain of unit productions A -> B -> ... -> C
// with direct copies of C's non-unit productions under A.
func eliminateUnit(g *CFG) *CFG {
	vars := g.Variables()
	closure := make(map[Variable]map[Variable]bool, len(vars))
	for _, v := range vars {
		closure[v] = map[Variable]bool{v: true}
	}

	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			target, ok := isUnitProduction(p)
			if !ok {
				continue
			}
			for reached := range closure[target] {
				if !closure[p.Head][reached] {
					closure[p.Head][reached] = true
					changed = true
				}
			}
		}
	}

	seen := map[string]bool{}
	var out []Production
	for a, reachedSet := range closure {
		for b := range reachedSet {
			for _, p := range g.Productions {
				if p.Head != b {
					continue
				}
				if _, unit := isUnitProduction(p); unit {
					continue
				}
				np := Production{Head: a, Body: p.Body}
				key := prodKey(np)
				if !seen[key] {
					seen[key] = true
					out = append(out, np)
				}
			}
		}
	}

	return &CFG{Start: g.Start, Productions: out}
}

// decompose rewrites every production body into weak-CNF shape: terminals
// occurring inside a body of length >= 2 are isolated behind a fresh
// per-terminal variable, then bodies longer than two variables are chained
// through fresh binary variables.
func decompose(g *CFG) *CFG {
	termVar := map[Terminal]Variable{}
	fresh := 0
	nextVar := func(prefix string) Variable {
		fresh++

		return Variable(fmt.Sprintf("#%s%d", prefix, fresh))
	}

	var out []Production
	for _, p := range g.Productions {
		switch {
		case len(p.Body) <= 1:
			out = append(out, p)
			continue
		}

		pureBody := make([]automaton.Label, len(p.Body))
		for i, sym := range p.Body {
			if t, ok := sym.(Terminal); ok {
				tv, ok := termVar[t]
				if !ok {
					tv = nextVar("T")
					termVar[t] = tv
				}
				pureBody[i] = tv
			} else {
				pureBody[i] = sym
			}
		}

		head := p.Head
		for len(pureBody) > 2 {
			chainVar := nextVar("C")
			out = append(out, Production{Head: head, Body: []automaton.Label{pureBody[0], chainVar}})
			head = chainVar
			pureBody = pureBody[1:]
		}
		out = append(out, Production{Head: head, Body: pureBody})
	}

	for t, v := range termVar {
		out = append(out, Production{Head: v, Body: []automaton.Label{t}})
	}

	return &CFG{Start: g.Start, Productions: out}
}

func prodKey(p Production) string {
	parts := make([]string, len(p.Body)+1)
	parts[0] = string(p.Head)
	for i, sym := range p.Body {
		parts[i+1] = sym.LabelKey()
	}

	return strings.Join(parts, "\x1f")
}

func sortProductions(prods []Production) {
	sort.Slice(prods, func(i, j int) bool { return prodKey(prods[i]) < prodKey(prods[j]) })
}
