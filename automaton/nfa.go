package automaton

// Transition is a single labeled edge q --label--> q' in an NFA view.
type Transition struct {
	From  State
	Label Label
	To    State
}

// NFA is the finite-automaton-shaped view that AutomatonMatrix can be
// built from (FromNFA) or rendered back into (Matrix.NFA). Transitions is
// always a flat slice, never a map keyed by (state, symbol) with ad-hoc
// single-vs-set values — callers needing the grouped view build it
// themselves from this flat, explicit contract.
type NFA struct {
	States      []State
	Starts      []State
	Finals      []State
	Transitions []Transition
}
