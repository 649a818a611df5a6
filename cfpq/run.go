package cfpq

import (
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xerr"
)

// Run dispatches to the engine named by a Config's Algorithm (set via
// WithAlgorithm; the default is AlgoHellings), passing opts through
// unchanged. An algorithm tag outside {hellings, matrix, tensor} is
// rejected with xerr.ErrUnknownAlgorithm. Run is the single entry point
// the pathql façade's RunCFPQ wraps.
func Run(g *graphs.Graph, cfg *cfgpipe.CFG, opts ...Option) (TripleSet, error) {
	switch NewConfig(opts...).Algorithm {
	case AlgoHellings:
		return Hellings(g, cfg, opts...)
	case AlgoMatrix:
		return MatrixClosure(g, cfg, opts...)
	case AlgoTensor:
		return TensorRSM(g, cfg, opts...)
	default:
		return nil, xerr.Wrap("cfpq.Run", xerr.ErrUnknownAlgorithm)
	}
}
