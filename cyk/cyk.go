package cyk

import (
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/internal/xerr"
)

type pairKey struct {
	B, C cfgpipe.Variable
}

// Accepts reports whether word belongs to the language of cfg, by the CYK
// algorithm over cfg.ToCNF(). word is a sequence of terminal tokens, one
// table position each, so multi-character terminals stay atomic. The empty
// word is handled separately via cfg.Nullable, since a true-CNF span table
// has no cell for the empty word — only unary and binary bodies do.
func Accepts(word []cfgpipe.Terminal, cfg *cfgpipe.CFG) (bool, error) {
	if cfg == nil {
		return false, xerr.Wrap("cyk.Accepts", xerr.ErrNilGrammar)
	}
	if len(word) == 0 {
		return cfg.Nullable()[cfg.Start], nil
	}

	cnf := cfg.ToCNF()
	unary := make(map[cfgpipe.Terminal][]cfgpipe.Variable)
	binary := make(map[pairKey][]cfgpipe.Variable)
	for _, p := range cnf.Productions {
		switch len(p.Body) {
		case 1:
			if t, ok := p.Body[0].(cfgpipe.Terminal); ok {
				unary[t] = append(unary[t], p.Head)
			}
		case 2:
			b, okB := p.Body[0].(cfgpipe.Variable)
			c, okC := p.Body[1].(cfgpipe.Variable)
			if okB && okC {
				key := pairKey{B: b, C: c}
				binary[key] = append(binary[key], p.Head)
			}
		}
	}

	n := len(word)
	table := make([][]map[cfgpipe.Variable]bool, n)
	for i := range table {
		table[i] = make([]map[cfgpipe.Variable]bool, n)
		for j := range table[i] {
			table[i][j] = make(map[cfgpipe.Variable]bool)
		}
	}

	for i, t := range word {
		for _, v := range unary[t] {
			table[i][i][v] = true
		}
	}

	for span := 1; span < n; span++ {
		for i := 0; i+span < n; i++ {
			j := i + span
			for k := i; k < j; k++ {
				for key, heads := range binary {
					if !table[i][k][key.B] || !table[k+1][j][key.C] {
						continue
					}
					for _, h := range heads {
						table[i][j][h] = true
					}
				}
			}
		}
	}

	return table[0][n-1][cfg.Start], nil
}
