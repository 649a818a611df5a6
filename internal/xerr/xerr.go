// Package xerr centralizes the sentinel errors shared across pathql's
// subpackages and a thin wrapper that attaches call-site context.
package xerr

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the engine packages and the root façade.
// Concerns owned by a single package (regex/grammar syntax, matrix shapes)
// keep their sentinels next to the code that returns them:
// regexengine.ErrSyntax, cfgpipe.ErrSyntax, boolmatrix.ErrDimensionMismatch,
// automaton.ErrDimensionMismatch.
var (
	// ErrUnknownAlgorithm indicates an algo tag outside {hellings, matrix, tensor}.
	ErrUnknownAlgorithm = errors.New("pathql: unknown algorithm")

	// ErrNonTerminating is returned by the defensive fixed-point iteration
	// guard when an iteration cap is configured and exceeded.
	ErrNonTerminating = errors.New("pathql: fixed point did not converge within iteration cap")

	// ErrNilGraph indicates a nil graph was passed where one was required.
	ErrNilGraph = errors.New("pathql: graph is nil")

	// ErrNilGrammar indicates a nil CFG/ECFG/RSM was passed where one was required.
	ErrNilGrammar = errors.New("pathql: grammar is nil")
)

// Wrap attaches an operation tag to err, or returns nil if err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, err)
}
