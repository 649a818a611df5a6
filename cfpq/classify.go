package cfpq

import "github.com/katalvlaran/pathql/cfgpipe"

// pairKey is a WCNF binary body (B, C), keying the heads of every rule
// M -> B C.
type pairKey struct {
	B, C cfgpipe.Variable
}

// classified buckets a WCNF's productions by body shape, the form every
// CFPQ engine seeds and closes over.
type classified struct {
	epsilon []cfgpipe.Variable
	unary   map[cfgpipe.Terminal][]cfgpipe.Variable
	binary  map[pairKey][]cfgpipe.Variable
}

func classify(wcnf *cfgpipe.CFG) *classified {
	c := &classified{
		unary:  make(map[cfgpipe.Terminal][]cfgpipe.Variable),
		binary: make(map[pairKey][]cfgpipe.Variable),
	}
	for _, p := range wcnf.Productions {
		switch len(p.Body) {
		case 0:
			c.epsilon = append(c.epsilon, p.Head)
		case 1:
			if t, ok := p.Body[0].(cfgpipe.Terminal); ok {
				c.unary[t] = append(c.unary[t], p.Head)
			}
		case 2:
			b, okB := p.Body[0].(cfgpipe.Variable)
			d, okD := p.Body[1].(cfgpipe.Variable)
			if okB && okD {
				key := pairKey{B: b, C: d}
				c.binary[key] = append(c.binary[key], p.Head)
			}
		}
	}

	return c
}
