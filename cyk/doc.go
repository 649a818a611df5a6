// Package cyk implements CYK membership testing on a context-free
// grammar: Accepts normalizes the grammar to Chomsky Normal Form
// and fills a lower-triangular span table bottom-up, independent of the
// CFPQ engines in package cfpq (membership is a yes/no question over a
// single word, not a graph traversal).
package cyk
