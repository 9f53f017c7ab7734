// Package literal extracts required literal byte sequences from a compiled
// token sequence, for prefilter optimization (package prefilter): by
// recognizing that a pattern can only match where one of its extracted
// literals occurs, the outer search loop can skip candidate start positions
// instead of probing the backtracking matcher at every byte.
//
// This mirrors github.com/coregx/coregex/literal, which extracts literal
// prefixes/suffixes from a parsed regexp/syntax.Regexp for the same reason;
// here the source is our own compiled token.Token sequence rather than a
// stdlib-syntax AST, since spec.md's compiler is hand-rolled.
package literal

import "github.com/coregx/minigrep/token"

// Literal is a single required byte sequence.
type Literal struct {
	Bytes []byte
}

// Seq is a set of alternative literals, any one of which must occur for the
// pattern to match at that position. An empty Seq means no literal could be
// extracted — the caller must fall back to probing every position.
type Seq struct {
	literals []Literal
}

// IsEmpty reports whether no literal could be extracted.
func (s Seq) IsEmpty() bool {
	return len(s.literals) == 0
}

// Len returns the number of alternative literals in the sequence.
func (s Seq) Len() int {
	return len(s.literals)
}

// Get returns the i'th alternative literal.
func (s Seq) Get(i int) Literal {
	return s.literals[i]
}

// Extract walks the start of a compiled token sequence and returns the
// literal(s) that must appear at a match's start position.
//
// A leading Start ('^') token is skipped first; after it, two shapes are
// recognized:
//   - One or more leading Char tokens with Char != '.' → a single required
//     literal prefix (e.g. "cat$" → "cat").
//   - A single leading Group whose every alternative itself starts with a
//     non-empty literal prefix (possibly followed by more tokens) → one
//     literal per alternative (e.g. "(cat|dog) food" → {"cat", "dog"}).
//
// Anything else (leading '.', character class, '$' anchor, predefined class, or
// a group with a non-literal alternative) yields an empty Seq: extraction is
// an optimization, never required for correctness, so the caller always has
// a safe fallback.
func Extract(tokens []token.Token) Seq {
	if len(tokens) == 0 {
		return Seq{}
	}

	start := 0
	if tokens[0].Kind == token.Start {
		start = 1
	}
	if start >= len(tokens) {
		return Seq{}
	}

	if prefix := literalPrefix(tokens[start:]); len(prefix) > 0 {
		return Seq{literals: []Literal{{Bytes: prefix}}}
	}

	if tokens[start].Kind == token.Group {
		return extractGroupAlternatives(tokens[start])
	}

	return Seq{}
}

// literalPrefix returns the longest run of leading literal-Char bytes in
// tokens (stopping at a quantifier, since a quantified literal's minimum
// occurrence count isn't 1 in general — Plus/Range still guarantee at least
// one copy, but Star/Optional don't, so a safe prefix must stop there too).
func literalPrefix(tokens []token.Token) []byte {
	var prefix []byte
	for _, t := range tokens {
		if t.Kind != token.Char || t.Char == '.' {
			break
		}
		prefix = append(prefix, t.Char)
	}
	return prefix
}

func extractGroupAlternatives(group token.Token) Seq {
	var literals []Literal
	for _, alt := range group.Alternatives {
		prefix := literalPrefix(alt)
		if len(prefix) == 0 {
			return Seq{} // one branch has no literal prefix: extraction is unsafe
		}
		literals = append(literals, Literal{Bytes: prefix})
	}
	return Seq{literals: literals}
}
