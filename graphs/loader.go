package graphs

// Loader loads a Graph from an external source: a named dataset, a .dot
// file, a CSV edge list. No concrete implementation ships here — callers
// wanting dataset-by-name or file-backed graphs bring their own Loader, the
// same way the rest of this module accepts an already-built *Graph rather
// than owning I/O.
type Loader interface {
	Load(name string) (*Graph, error)
}
