package cfpq

import (
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/graphs"
)

// Triple is one derivable (start, variable, end) fact: graph nodes start
// and end have a path between them whose label word derives from
// variable under the grammar in question.
type Triple struct {
	Start graphs.Node
	Var   cfgpipe.Variable
	End   graphs.Node
}

// TripleSet is the result type shared by Hellings, MatrixClosure, and
// TensorRSM.
type TripleSet map[Triple]bool
