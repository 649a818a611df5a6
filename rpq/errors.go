package rpq

import "errors"

// ErrNilAutomaton is returned when a nil *automaton.Matrix is passed where
// a query or graph automaton was required.
var ErrNilAutomaton = errors.New("rpq: nil automaton")
