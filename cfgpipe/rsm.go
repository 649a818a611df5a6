package cfgpipe

import (
	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/regexengine"
)

// RSM is a Recursive State Machine: one minimized-DFA "box" per variable,
// sharing a start symbol with the ECFG it was built from.
type RSM struct {
	Start Variable
	Boxes map[Variable]*automaton.Matrix
}

// ECFGToRSM builds one box per ECFG production by compiling its regex tree
// through regexengine.CompileAST. Box alphabets mix Variable and Terminal
// labels, carried verbatim from the regex atoms.
func ECFGToRSM(e *ECFG) (*RSM, error) {
	boxes := make(map[Variable]*automaton.Matrix, len(e.Productions))
	for head, regex := range e.Productions {
		box, err := regexengine.CompileAST(regex)
		if err != nil {
			return nil, err
		}
		boxes[head] = box
	}

	return &RSM{Start: e.Start, Boxes: boxes}, nil
}

// Minimize re-minimizes every box DFA. regexengine.Minimize is
// label-agnostic, so
// it runs unchanged over boxes whose labels are Variable/Terminal rather
// than plain Symbol.
func (r *RSM) Minimize() (*RSM, error) {
	boxes := make(map[Variable]*automaton.Matrix, len(r.Boxes))
	for v, box := range r.Boxes {
		min, err := regexengine.Minimize(box)
		if err != nil {
			return nil, err
		}
		boxes[v] = min
	}

	return &RSM{Start: r.Start, Boxes: boxes}, nil
}
