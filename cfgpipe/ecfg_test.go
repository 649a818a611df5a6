package cfgpipe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/cfgpipe"
	"github.com/katalvlaran/pathql/regexengine"
)

func TestCFGToECFGGroupsByHead(t *testing.T) {
	g, err := cfgpipe.ParseCFG("S -> a S | epsilon", "S")
	require.NoError(t, err)

	e := cfgpipe.CFGToECFG(g)
	require.Equal(t, cfgpipe.Variable("S"), e.Start)

	// "a S | epsilon" becomes Alt(Concat(a, S), ε).
	alt, ok := e.Productions["S"].(regexengine.Alt)
	require.True(t, ok)
	concat, ok := alt.Left.(regexengine.Concat)
	require.True(t, ok)
	require.Equal(t, regexengine.Lit{Sym: cfgpipe.Terminal("a")}, concat.Left)
	require.Equal(t, regexengine.Lit{Sym: cfgpipe.Variable("S")}, concat.Right)
	require.Equal(t, regexengine.Eps{}, alt.Right)
}

// Grammar terminals that collide with regex metacharacters must survive
// the conversion as literal atoms.
func TestCFGToECFGParenTerminals(t *testing.T) {
	g, err := cfgpipe.ParseCFG("S -> ( S ) S | epsilon", "S")
	require.NoError(t, err)

	e := cfgpipe.CFGToECFG(g)
	var lits []regexengine.Lit
	var walk func(n regexengine.Node)
	walk = func(n regexengine.Node) {
		switch t := n.(type) {
		case regexengine.Lit:
			lits = append(lits, t)
		case regexengine.Alt:
			walk(t.Left)
			walk(t.Right)
		case regexengine.Concat:
			walk(t.Left)
			walk(t.Right)
		case regexengine.Star:
			walk(t.Sub)
		}
	}
	walk(e.Productions["S"])

	require.Contains(t, lits, regexengine.Lit{Sym: cfgpipe.Terminal("(")})
	require.Contains(t, lits, regexengine.Lit{Sym: cfgpipe.Terminal(")")})
	require.Contains(t, lits, regexengine.Lit{Sym: cfgpipe.Variable("S")})
}

func TestParseECFGClassifiesAtoms(t *testing.T) {
	e, err := cfgpipe.ParseECFG("S -> a S|epsilon", "S")
	require.NoError(t, err)

	alt, ok := e.Productions["S"].(regexengine.Alt)
	require.True(t, ok)
	concat, ok := alt.Left.(regexengine.Concat)
	require.True(t, ok)
	require.Equal(t, regexengine.Lit{Sym: cfgpipe.Terminal("a")}, concat.Left)
	require.Equal(t, regexengine.Lit{Sym: cfgpipe.Variable("S")}, concat.Right)
}

func TestParseECFGSyntaxError(t *testing.T) {
	_, err := cfgpipe.ParseECFG("S a S", "S")
	require.ErrorIs(t, err, cfgpipe.ErrSyntax)
}
