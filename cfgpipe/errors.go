package cfgpipe

import "errors"

// ErrSyntax indicates malformed grammar text.
var ErrSyntax = errors.New("cfgpipe: syntax error")
