package cfgpipe

// Variable is a context-free grammar nonterminal.
type Variable string

// LabelKey implements automaton.Label, so RSM box alphabets can mix
// Variable and Terminal labels in a single ByLabel map.
func (v Variable) LabelKey() string { return "var:" + string(v) }

// Terminal is a context-free grammar terminal symbol.
type Terminal string

// LabelKey implements automaton.Label.
func (t Terminal) LabelKey() string { return "term:" + string(t) }

// isVariableName applies the grammar-text convention used throughout this
// module: an all-uppercase token is a Variable, anything else (including
// punctuation terminals like "(" and ")") is a Terminal.
func isVariableName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
