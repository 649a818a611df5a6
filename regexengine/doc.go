// Package regexengine turns a regex string into a minimal DFA, expressed
// as an automaton.Matrix, ready to be used as an RPQ query automaton or as
// one box of a Recursive State Machine.
//
//	Parse        — regex text -> AST
//	toENFA/build — AST -> Thompson ε-NFA (private, never exposed)
//	subsetConstruct — ε-NFA -> DFA, rendered as automaton.Matrix
//	Minimize     — Moore partition refinement -> minimal DFA
//	ToMinDFA     — the composed facade: text -> minimal DFA
//	CompileAST   — the same pipeline entered at the AST level
package regexengine
