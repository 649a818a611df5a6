package cfgpipe

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/pathql/automaton"
)

// Production is one grammar rule Head -> Body. An empty Body is an ε
// production. Body entries are Variable or Terminal values, both
// satisfying automaton.Label.
type Production struct {
	Head Variable
	Body []automaton.Label
}

// CFG is a context-free grammar: a start symbol and a flat production
// list, P ⊆ V × (V ∪ T)*.
type CFG struct {
	Start       Variable
	Productions []Production
}

// variableComparator orders Variable values lexically for treeset storage.
func variableComparator(a, b interface{}) int {
	return utils.StringComparator(string(a.(Variable)), string(b.(Variable)))
}

func newVariableSet() *treeset.Set {
	return treeset.NewWith(variableComparator)
}

// Variables returns every Variable appearing as a head or inside a body,
// deduplicated.
func (g *CFG) Variables() []Variable {
	set := newVariableSet()
	for _, p := range g.Productions {
		set.Add(p.Head)
		for _, sym := range p.Body {
			if v, ok := sym.(Variable); ok {
				set.Add(v)
			}
		}
	}
	out := make([]Variable, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(Variable))
	}

	return out
}

// Terminals returns every Terminal appearing in any production body,
// deduplicated (order not significant; callers needing determinism sort).
func (g *CFG) Terminals() []Terminal {
	seen := map[Terminal]bool{}
	var out []Terminal
	for _, p := range g.Productions {
		for _, sym := range p.Body {
			if t, ok := sym.(Terminal); ok && !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}

	return out
}

// Nullable computes, on the grammar as given (not its WCNF), the set of
// variables that can derive the empty word: a fixed point starting from
// variables with an ε production, extended to any variable all of whose
// body symbols are themselves nullable. Used by cfpq's Tensor-RSM engine
// to add self-loops for nullable nonterminals.
func (g *CFG) Nullable() map[Variable]bool {
	nullable := newVariableSet()
	for {
		before := nullable.Size()
		for _, p := range g.Productions {
			if nullable.Contains(p.Head) {
				continue
			}
			if allNullable(p.Body, nullable) {
				nullable.Add(p.Head)
			}
		}
		if nullable.Size() == before {
			break
		}
	}

	out := make(map[Variable]bool, nullable.Size())
	for _, v := range nullable.Values() {
		out[v.(Variable)] = true
	}

	return out
}

func allNullable(body []automaton.Label, nullable *treeset.Set) bool {
	for _, sym := range body {
		v, ok := sym.(Variable)
		if !ok || !nullable.Contains(v) {
			return false
		}
	}

	return true
}

// ParseCFG parses grammar text: one production per
// line, "HEAD -> body", "|" separating alternative bodies on the same line,
// and "epsilon" or "$" denoting the empty body. Body tokens are
// whitespace-separated; an all-uppercase token is a Variable, anything
// else a Terminal.
func ParseCFG(text string, start Variable) (*CFG, error) {
	g := &CFG{Start: start}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		head, alts, err := splitRule(line)
		if err != nil {
			return nil, err
		}
		for _, alt := range alts {
			body, err := parseBody(alt)
			if err != nil {
				return nil, err
			}
			g.Productions = append(g.Productions, Production{Head: head, Body: body})
		}
	}

	return g, nil
}

func splitRule(line string) (Variable, []string, error) {
	parts := strings.SplitN(line, "->", 2)
	if len(parts) != 2 {
		return "", nil, ErrSyntax
	}
	head := strings.TrimSpace(parts[0])
	if head == "" {
		return "", nil, ErrSyntax
	}
	alts := strings.Split(parts[1], "|")

	return Variable(head), alts, nil
}

func parseBody(alt string) ([]automaton.Label, error) {
	fields := strings.Fields(alt)
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) == 1 && isEpsilonToken(fields[0]) {
		return nil, nil
	}

	body := make([]automaton.Label, 0, len(fields))
	for _, f := range fields {
		if isEpsilonToken(f) {
			return nil, ErrSyntax
		}
		if isVariableName(f) {
			body = append(body, Variable(f))
		} else {
			body = append(body, Terminal(f))
		}
	}

	return body, nil
}

func isEpsilonToken(s string) bool {
	return s == "epsilon" || s == "$"
}
