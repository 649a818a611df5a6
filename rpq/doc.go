// Package rpq answers regular path queries over an automaton.Matrix pair:
// Tensor runs tensor-intersection + transitive closure, BFS
// runs synchronized multi-source BFS over a shared front matrix. Both
// consume a graph automaton and a query automaton
// built elsewhere (graphs.ToNFA + automaton.FromNFA; regexengine.ToMinDFA).
package rpq
