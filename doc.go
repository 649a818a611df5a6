// Package pathql answers path queries over labeled directed graphs where
// the path-admissibility constraint is itself a formal language.
//
// 🚀 What is pathql?
//
//	A small engine that, given a multi-edge labeled directed graph G and a
//	constraint L (a regular language for RPQ, a context-free language for
//	CFPQ), returns all pairs (u, v) such that u is a start node, v is a
//	final node, and some path from u to v has a label word in L. It also
//	answers the multi-source reachability variant.
//
// Under the hood, everything is organized under subpackages:
//
//	boolmatrix/  — boolean sparse matrix: the semiring every engine runs on
//	automaton/   — AutomatonMatrix: states + start/final sets + per-label matrices
//	regexengine/ — regex → ε-NFA → DFA → minimal DFA
//	graphs/      — labeled multigraph, promotion to NFA
//	cfgpipe/     — CFG → Weak CNF → ECFG → RSM
//	rpq/         — tensor and synchronized-BFS regular path query engines
//	cfpq/        — Hellings, matrix-closure and tensor-RSM context-free path query engines
//	cyk/         — CYK membership on a CNF grammar
//
// The root package is the façade: it normalises inputs, dispatches to the
// right engine, and projects engine output down to node pairs.
//
//	go get github.com/katalvlaran/pathql
package pathql
