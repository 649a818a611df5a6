package cfpq

import "github.com/katalvlaran/pathql/internal/xlog"

// AlgoKind names one of the three CFPQ engines, for Run's dispatch and the
// pathql façade's RunCFPQ.
type AlgoKind string

const (
	AlgoHellings AlgoKind = "hellings"
	AlgoMatrix   AlgoKind = "matrix"
	AlgoTensor   AlgoKind = "tensor"
)

// Config tunes the CFPQ engines: MaxIterations
// caps the fixed-point loop (0 = unbounded, the default) per §7's
// NonTerminating guard, Algorithm selects the engine for Run, and Logger is
// the usual diagnostic hook.
type Config struct {
	MaxIterations int
	Algorithm     AlgoKind
	Logger        xlog.Logger
}

// Option mutates a Config in place.
type Option func(*Config)

// WithLogger attaches a diagnostic logger; the default is xlog.Discard().
func WithLogger(l xlog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMaxIterations caps the number of fixed-point loop iterations an
// engine will run (worklist pops for Hellings, sweeps for MatrixClosure and
// TensorRSM) before returning xerr.ErrNonTerminating. 0 (the default) is
// unbounded.
func WithMaxIterations(n int) Option {
	return func(c *Config) { c.MaxIterations = n }
}

// WithAlgorithm selects the engine Run dispatches to. The default is
// AlgoHellings.
func WithAlgorithm(a AlgoKind) Option {
	return func(c *Config) { c.Algorithm = a }
}

// NewConfig applies opts over the defaults (Algorithm=AlgoHellings,
// MaxIterations=0, Logger=xlog.Discard()).
func NewConfig(opts ...Option) *Config {
	c := &Config{Algorithm: AlgoHellings, Logger: xlog.Discard()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
