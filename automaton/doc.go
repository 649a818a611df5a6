// Package automaton is your shared representation for every automaton
// this module touches: graphs promoted to NFAs, regexes compiled to DFAs,
// RSM boxes, and the tensor-product automata the RPQ/CFPQ engines build
// along the way.
//
//	index    — bijection State <-> int
//	starts   — subset of indexed states
//	finals   — subset of indexed states
//	byLabel  — Label -> boolean transition matrix (missing key = zero matrix)
//
// Construction is via named constructors (FromNFA, FromParts, Empty),
// never a single variadic constructor with mutually exclusive optional
// arguments.
package automaton
