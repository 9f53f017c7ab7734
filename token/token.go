// Package token defines the tagged-variant vocabulary a compiled pattern is
// made of.
//
// A Token is pure data: the compiler (package compile) produces a flat
// []Token sequence from a pattern string, and the matcher (package match)
// walks that sequence against a subject. Neither package reaches back into
// the other's internals; Token is the contract between them.
package token

// Kind identifies which variant a Token holds.
type Kind int

const (
	// Char matches a literal byte, or any byte if Char == '.'.
	Char Kind = iota
	// Start anchors a match at subject position 0.
	Start
	// End anchors a match at the end of the subject.
	End
	// PredefinedClass matches a short-hand character class: 'd', 'w', or '\\'.
	PredefinedClass
	// CharacterClass matches one byte against a custom bracketed set.
	CharacterClass
	// Star is zero-or-more greedy repetitions of Prev.
	Star
	// Plus is one-or-more greedy repetitions of Prev.
	Plus
	// Optional is zero-or-one occurrence of Prev.
	Optional
	// Range is between Min and Max greedy repetitions of Prev.
	Range
	// Group matches any one of Alternatives and records capture slot Num.
	Group
	// Backreference matches the literal text previously captured into slot Num.
	Backreference
)

// Unbounded marks Range.Max as having no upper bound ({m,}).
const Unbounded = -1

// Token is a tagged variant over the eleven token kinds in the data model.
// Only the fields relevant to Kind are populated; the zero value of the
// rest is never inspected.
type Token struct {
	Kind Kind

	// Char holds the literal byte for Kind == Char.
	Char byte

	// Class selects the predefined class for Kind == PredefinedClass:
	// 'd' (digit), 'w' (word), or '\\' (literal backslash).
	Class byte

	// Set and Negated describe a Kind == CharacterClass.
	Set     map[byte]bool
	Negated bool

	// Prev is the single prior token owned by a quantifier
	// (Kind ∈ {Star, Plus, Optional, Range}). It is moved out of the
	// enclosing token list when the quantifier is emitted, so it has
	// exactly one owner.
	Prev *Token

	// Min and Max bound a Kind == Range repetition. Max == Unbounded means
	// no upper bound.
	Min, Max int

	// Alternatives and Num describe a Kind == Group: one token sequence per
	// alternative, and the 1-based capture-group number assigned at the
	// group's opening delimiter.
	Alternatives [][]Token
	Num          int
}

// MatchByte reports whether the token matches a single byte at subject[pos],
// returning the subject index just past the match. It only handles the
// fixed-arity, zero/one-byte token kinds (Char, Start, End, PredefinedClass,
// CharacterClass); quantifiers, groups, and backreferences are driven by the
// matcher itself since they require backtracking state.
func (t Token) MatchByte(subject string, pos int) (bool, int) {
	switch t.Kind {
	case Char:
		if pos < len(subject) {
			c := subject[pos]
			if t.Char == '.' || c == t.Char {
				return true, pos + 1
			}
		}
		return false, -1

	case Start:
		if pos == 0 {
			return true, pos
		}
		return false, -1

	case End:
		if pos == len(subject) {
			return true, pos
		}
		return false, -1

	case PredefinedClass:
		if pos >= len(subject) {
			return false, -1
		}
		c := subject[pos]
		switch t.Class {
		case 'd':
			if isDigit(c) {
				return true, pos + 1
			}
		case 'w':
			if isWord(c) {
				return true, pos + 1
			}
		case '\\':
			if c == '\\' {
				return true, pos + 1
			}
		}
		return false, -1

	case CharacterClass:
		if pos >= len(subject) {
			return false, -1
		}
		c := subject[pos]
		if t.Negated {
			if !t.Set[c] && isAlpha(c) {
				return true, pos + 1
			}
			return false, -1
		}
		if t.Set[c] {
			return true, pos + 1
		}
		return false, -1
	}

	return false, -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWord(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}
