package pathql

import (
	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/graphs"
	"github.com/katalvlaran/pathql/internal/xlog"
)

// AlgoKind names one of the three CFPQ engines RunCFPQ can dispatch to.
type AlgoKind = cfpq.AlgoKind

// The three CFPQ engines, for RunCFPQ's algo argument.
const (
	AlgoHellings = cfpq.AlgoHellings
	AlgoMatrix   = cfpq.AlgoMatrix
	AlgoTensor   = cfpq.AlgoTensor
)

// options is the shared configuration every *Option type mutates. RPQ and
// RPQBFS share starts/finals/logger; RunCFPQ uses starts/finals/logger plus
// maxIterations and startSymbol; allReachable is BFS-only.
type options struct {
	starts        []graphs.Node
	finals        []graphs.Node
	logger        xlog.Logger
	allReachable  bool
	maxIterations int
	startSymbol   cfgpipe.Variable
}

func newOptions() *options {
	return &options{logger: xlog.Discard()}
}

// RPQOption configures RPQ.
type RPQOption func(*options)

// WithStarts restricts RPQ to the given start nodes (default: every node
// in the graph).
func WithStarts(nodes ...graphs.Node) RPQOption {
	return func(o *options) { o.starts = nodes }
}

// WithFinals restricts RPQ to the given final nodes (default: every node
// in the graph).
func WithFinals(nodes ...graphs.Node) RPQOption {
	return func(o *options) { o.finals = nodes }
}

// WithRPQLogger attaches a diagnostic logger to RPQ's tensor engine.
func WithRPQLogger(l xlog.Logger) RPQOption {
	return func(o *options) { o.logger = l }
}

// BFSOption configures RPQBFS.
type BFSOption func(*options)

// WithBFSStarts restricts RPQBFS to the given start nodes (default: every
// node in the graph).
func WithBFSStarts(nodes ...graphs.Node) BFSOption {
	return func(o *options) { o.starts = nodes }
}

// WithBFSFinals restricts RPQBFS's acceptance test to the given final
// nodes (default: every node in the graph).
func WithBFSFinals(nodes ...graphs.Node) BFSOption {
	return func(o *options) { o.finals = nodes }
}

// WithAllReachable selects RPQBFS's multi-source mode: one reachable-finals
// set per start, returned as map[graphs.Node]NodeSet, instead of the
// default flat NodeSet over the union of all requested starts.
func WithAllReachable(v bool) BFSOption {
	return func(o *options) { o.allReachable = v }
}

// WithBFSLogger attaches a diagnostic logger to RPQBFS's BFS engine.
func WithBFSLogger(l xlog.Logger) BFSOption {
	return func(o *options) { o.logger = l }
}

// CFPQOption configures RunCFPQ.
type CFPQOption func(*options)

// WithCFPQStarts restricts RunCFPQ's result pairs to those whose start is
// in nodes (default: every node in the graph).
func WithCFPQStarts(nodes ...graphs.Node) CFPQOption {
	return func(o *options) { o.starts = nodes }
}

// WithCFPQFinals restricts RunCFPQ's result pairs to those whose end is in
// nodes (default: every node in the graph).
func WithCFPQFinals(nodes ...graphs.Node) CFPQOption {
	return func(o *options) { o.finals = nodes }
}

// WithStartSymbol overrides which variable's triples become result pairs
// (default: the grammar's own start variable). The grammar itself is never
// mutated.
func WithStartSymbol(v cfgpipe.Variable) CFPQOption {
	return func(o *options) { o.startSymbol = v }
}

// WithMaxIterations caps the chosen CFPQ engine's fixed-point loop (0, the
// default, is unbounded); exceeding it surfaces xerr.ErrNonTerminating.
func WithMaxIterations(n int) CFPQOption {
	return func(o *options) { o.maxIterations = n }
}

// WithCFPQLogger attaches a diagnostic logger to RunCFPQ's chosen engine.
func WithCFPQLogger(l xlog.Logger) CFPQOption {
	return func(o *options) { o.logger = l }
}
