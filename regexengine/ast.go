package regexengine

import "github.com/katalvlaran/pathql/automaton"

// Node is a parsed regex abstract syntax tree node.
type Node interface {
	node()
}

// Eps matches the empty word.
type Eps struct{}

// Lit matches a single literal label. Text-parsed patterns carry plain
// automaton.Symbol atoms; programmatically-built trees (cfgpipe's ECFG)
// may carry grammar Variable/Terminal labels instead.
type Lit struct {
	Sym automaton.Label
}

// Alt matches Left or Right.
type Alt struct {
	Left, Right Node
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Star matches zero or more repetitions of Sub.
type Star struct {
	Sub Node
}

func (Eps) node()    {}
func (Lit) node()    {}
func (Alt) node()    {}
func (Concat) node() {}
func (Star) node()   {}
