package cfgpipe

import (
	"strings"

	"github.com/katalvlaran/pathql/automaton"
)

// ToCNF converts g to true Chomsky Normal Form: every production body is a
// single terminal or a pair of variables, with no ε-production anywhere
// (ported from pyformlang's CFG.to_normal_form, which cyk.Accepts needs —
// unlike ToWCNF, which keeps ε-productions for every CFPQ engine's seed
// step, CYK's span table has no cell for the empty string, so a nullable
// variable buried inside a longer body must be substituted out rather than
// left in place). The empty word is handled by callers via g.Nullable,
// not by this conversion.
func (g *CFG) ToCNF() *CFG {
	cleared := removeUseless(eliminateUnit(removeUseless(g)))
	denulled := eliminateEpsilon(cleared)
	recleared := removeUseless(eliminateUnit(removeUseless(denulled)))
	out := decompose(recleared)
	sortProductions(out.Productions)

	return out
}

// eliminateEpsilon drops every ε-production, replacing each remaining
// production with one copy per way of deleting a subset of its nullable
// variable occurrences (the standard CNF "substitute out nullable
// symbols" step). A variant that becomes empty after substitution is
// itself discarded, since ε has no place in CNF.
func eliminateEpsilon(g *CFG) *CFG {
	nullable := g.Nullable()
	seen := map[string]bool{}
	var out []Production
	for _, p := range g.Productions {
		if len(p.Body) == 0 {
			continue
		}
		for _, body := range substituteNullable(p.Body, nullable) {
			if len(body) == 0 {
				continue
			}
			np := Production{Head: p.Head, Body: body}
			key := prodKey(np)
			if !seen[key] {
				seen[key] = true
				out = append(out, np)
			}
		}
	}

	return &CFG{Start: g.Start, Productions: out}
}

// substituteNullable enumerates every way of dropping a subset of body's
// nullable-variable occurrences, deduplicated.
func substituteNullable(body []automaton.Label, nullable map[Variable]bool) [][]automaton.Label {
	var nullableAt []int
	for i, sym := range body {
		if v, ok := sym.(Variable); ok && nullable[v] {
			nullableAt = append(nullableAt, i)
		}
	}

	k := len(nullableAt)
	seen := map[string]bool{}
	variants := make([][]automaton.Label, 0, 1<<uint(k))
	for mask := 0; mask < (1 << uint(k)); mask++ {
		drop := make(map[int]bool, k)
		for bit, idx := range nullableAt {
			if mask&(1<<uint(bit)) != 0 {
				drop[idx] = true
			}
		}
		variant := make([]automaton.Label, 0, len(body))
		for i, sym := range body {
			if !drop[i] {
				variant = append(variant, sym)
			}
		}
		key := bodyKey(variant)
		if seen[key] {
			continue
		}
		seen[key] = true
		variants = append(variants, variant)
	}

	return variants
}

func bodyKey(body []automaton.Label) string {
	parts := make([]string, len(body))
	for i, sym := range body {
		parts[i] = sym.LabelKey()
	}

	return strings.Join(parts, "\x1f")
}
