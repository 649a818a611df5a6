package cfgpipe

// Loader loads a CFG from an external source: a named dataset, a grammar
// file on disk. No concrete implementation ships here; ParseCFG already
// covers the in-memory text-to-CFG step, and file/dataset I/O is left to
// the caller (os.ReadFile followed by ParseCFG is the expected pattern).
type Loader interface {
	Load(name string) (*CFG, error)
}
