package rpq

import "github.com/katalvlaran/pathql/internal/xlog"

// BFSOptions configures BFS.
type BFSOptions struct {
	AllReachable bool
	Logger       xlog.Logger
}

// BFSOption mutates a BFSOptions in place.
type BFSOption func(*BFSOptions)

// WithAllReachable selects multi-source mode: one reachable-finals set per
// G-start, returned as map[int]NodeSet, instead of the default single
// flat NodeSet over the union of all requested starts.
func WithAllReachable(v bool) BFSOption {
	return func(o *BFSOptions) { o.AllReachable = v }
}

// WithLogger attaches a diagnostic logger; the default is xlog.Discard().
func WithLogger(l xlog.Logger) BFSOption {
	return func(o *BFSOptions) { o.Logger = l }
}

// NewBFSOptions applies opts over the defaults (AllReachable=false,
// Logger=xlog.Discard()).
func NewBFSOptions(opts ...BFSOption) *BFSOptions {
	o := &BFSOptions{Logger: xlog.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// TensorOptions configures Tensor.
type TensorOptions struct {
	Logger xlog.Logger
}

// TensorOption mutates a TensorOptions in place.
type TensorOption func(*TensorOptions)

// WithTensorLogger attaches a diagnostic logger to Tensor; the default is
// xlog.Discard().
func WithTensorLogger(l xlog.Logger) TensorOption {
	return func(o *TensorOptions) { o.Logger = l }
}

// NewTensorOptions applies opts over the defaults (Logger=xlog.Discard()).
func NewTensorOptions(opts ...TensorOption) *TensorOptions {
	o := &TensorOptions{Logger: xlog.Discard()}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
