package regexengine

import "github.com/katalvlaran/pathql/automaton"

// ToMinDFA parses pattern, builds its ε-NFA via Thompson construction,
// determinizes it by subset construction, and minimizes the result. The
// returned automaton.Matrix never contains an
// automaton.Epsilon transition.
func ToMinDFA(pattern string) (*automaton.Matrix, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	return CompileAST(ast)
}

// CompileAST runs the ε-NFA / subset-construction / minimization pipeline
// over an already-built AST. Callers that assemble trees programmatically
// (cfgpipe's CFG -> ECFG conversion) use this entry point so Lit atoms can
// carry labels the text syntax cannot spell, such as grammar terminals
// "(" and ")".
func CompileAST(ast Node) (*automaton.Matrix, error) {
	dfa, err := subsetConstruct(toENFA(ast))
	if err != nil {
		return nil, err
	}

	return Minimize(dfa)
}
