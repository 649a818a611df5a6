package cfgpipe

import (
	"sort"
	"strings"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/regexengine"
)

// ECFG is an Extended CFG: each variable has exactly one regex right-hand
// side over V ∪ T. The regex is held as a parsed regexengine tree rather
// than text, so grammar terminals that collide
// with regex metacharacters ("(", ")", "*", "|") survive the conversion.
type ECFG struct {
	Start       Variable
	Productions map[Variable]regexengine.Node
}

// CFGToECFG groups g's productions by head and builds, for each head, the
// alternation of the concatenations of its production bodies (an empty
// body becomes ε). Body symbols keep their Variable/Terminal identity
// inside the regex atoms.
func CFGToECFG(g *CFG) *ECFG {
	byHead := map[Variable][]regexengine.Node{}
	var heads []Variable
	seen := map[Variable]bool{}
	for _, p := range g.Productions {
		if !seen[p.Head] {
			seen[p.Head] = true
			heads = append(heads, p.Head)
		}
		byHead[p.Head] = append(byHead[p.Head], bodyToRegex(p.Body))
	}
	sort.Slice(heads, func(i, j int) bool { return heads[i] < heads[j] })

	prods := make(map[Variable]regexengine.Node, len(heads))
	for _, h := range heads {
		alts := byHead[h]
		node := alts[0]
		for _, alt := range alts[1:] {
			node = regexengine.Alt{Left: node, Right: alt}
		}
		prods[h] = node
	}

	return &ECFG{Start: g.Start, Productions: prods}
}

func bodyToRegex(body []automaton.Label) regexengine.Node {
	if len(body) == 0 {
		return regexengine.Eps{}
	}
	var node regexengine.Node = regexengine.Lit{Sym: body[0]}
	for _, sym := range body[1:] {
		node = regexengine.Concat{Left: node, Right: regexengine.Lit{Sym: sym}}
	}

	return node
}

// ParseECFG parses ECFG text: one "HEAD -> regex"
// line per variable, regex in regexengine's syntax. Atoms are reclassified
// as Variable or Terminal by isVariableName's convention before storage.
func ParseECFG(text string, start Variable) (*ECFG, error) {
	e := &ECFG{Start: start, Productions: map[Variable]regexengine.Node{}}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, ErrSyntax
		}
		head := Variable(strings.TrimSpace(parts[0]))
		if head == "" {
			return nil, ErrSyntax
		}
		rhs := strings.TrimSpace(parts[1])
		if rhs == "" {
			e.Productions[head] = regexengine.Eps{}
			continue
		}
		ast, err := regexengine.Parse(rhs)
		if err != nil {
			return nil, err
		}
		e.Productions[head] = grammarize(ast)
	}

	return e, nil
}

// grammarize rewrites every plain-Symbol atom of a text-parsed regex into
// the Variable/Terminal grammar label isVariableName's convention assigns
// it, leaving atoms that already carry grammar labels untouched.
func grammarize(n regexengine.Node) regexengine.Node {
	switch t := n.(type) {
	case regexengine.Lit:
		sym, ok := t.Sym.(automaton.Symbol)
		if !ok {
			return t
		}
		name := string(sym)
		if isVariableName(name) {
			return regexengine.Lit{Sym: Variable(name)}
		}
		return regexengine.Lit{Sym: Terminal(name)}
	case regexengine.Alt:
		return regexengine.Alt{Left: grammarize(t.Left), Right: grammarize(t.Right)}
	case regexengine.Concat:
		return regexengine.Concat{Left: grammarize(t.Left), Right: grammarize(t.Right)}
	case regexengine.Star:
		return regexengine.Star{Sub: grammarize(t.Sub)}
	default:
		return n
	}
}
