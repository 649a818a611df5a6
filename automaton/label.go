package automaton

// Label is anything usable as an AutomatonMatrix transition marker. Symbol
// (plain alphabet letters) and, for RSMs, grammar variables/terminals all
// implement it, so a single ByLabel map can carry a mixed alphabet.
type Label interface {
	LabelKey() string
}

// Symbol is an opaque immutable label with equality by value.
type Symbol string

// LabelKey implements Label.
func (s Symbol) LabelKey() string { return "sym:" + string(s) }

// Epsilon is the distinguished empty-word symbol. It never occurs in a
// stored transition matrix: ε-transitions exist only in regexengine's
// private Thompson ε-NFA and are eliminated by its subset construction, or
// are never materialized in the first place (graphs.ToNFA skips
// empty-labeled edges).
const Epsilon Symbol = "\x00epsilon\x00"
