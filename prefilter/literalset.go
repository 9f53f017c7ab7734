package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/minigrep/literal"
)

// LiteralSet dispatches to an Aho-Corasick automaton for patterns whose
// literal.Extract yields more than one required alternative (a top-level
// alternation of literal branches, e.g. "(cat|dog) food"). Grounded on
// meta.Engine's UseAhoCorasick strategy (meta/compile.go, meta/find.go),
// which builds the same kind of automaton over extracted literal
// alternatives and uses it as the literal-engine bypass for large
// alternations; ours is driven by our own compiled tokens instead of
// coregex's NFA literal analysis.
type LiteralSet struct {
	automaton *ahocorasick.Automaton
}

// NewLiteralSet builds a LiteralSet prefilter from a literal.Seq with two or
// more alternatives. Returns an error if the automaton fails to build; the
// caller should treat that as "no prefilter available" and fall back to
// probing every position.
func NewLiteralSet(seq literal.Seq) (*LiteralSet, error) {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralSet{automaton: automaton}, nil
}

// Find returns the start of the next occurrence of any alternative at or
// after start, or -1.
func (l *LiteralSet) Find(haystack []byte, start int) int {
	m := l.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}
