package regexengine

import "errors"

// Sentinel errors for regexengine, returned directly so callers that only
// depend on this package need not import anything else.
var (
	// ErrSyntax indicates malformed regex text.
	ErrSyntax = errors.New("regexengine: syntax error")

	// ErrEmptyPattern indicates an empty pattern string was parsed where a
	// regex was expected (use the "epsilon" keyword to denote the empty
	// word explicitly).
	ErrEmptyPattern = errors.New("regexengine: empty pattern")
)
