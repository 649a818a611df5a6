package graphs

import "errors"

// ErrUnknownNode is returned when a start/final set names a node that was
// never added to the graph. (AddEdge adds its endpoints itself.)
var ErrUnknownNode = errors.New("graphs: unknown node")
