package cfpq

import (
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xerr"
)

func checkInputs(op string, g *graphs.Graph, cfg *cfgpipe.CFG) error {
	if g == nil {
		return xerr.Wrap(op, xerr.ErrNilGraph)
	}
	if cfg == nil {
		return xerr.Wrap(op, xerr.ErrNilGrammar)
	}

	return nil
}
