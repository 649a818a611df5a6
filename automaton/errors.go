package automaton

import "errors"

// ErrDimensionMismatch indicates a byLabel matrix whose shape disagrees
// with the automaton's index size.
var ErrDimensionMismatch = errors.New("automaton: dimension mismatch")
