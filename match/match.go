// Package match implements the backtracking executor described in spec
// §4.2: it walks a compiled token.Token sequence against a subject string,
// honoring quantifier greediness, capture-group recording, and
// backreference verification.
//
// The executor never produces errors; a failed match is simply false. All
// of the interesting control flow — the LIFO worklist of (text-index,
// token-index) states that gives quantifiers their greediness — lives in
// matchHere.
package match

import "github.com/coregx/minigrep/token"

// Span is a half-open byte range [Start, End) of a subject string.
type Span struct {
	Start, End int
}

// Matcher executes a fixed, immutable token sequence against subject
// strings. A Matcher is not thread-safe: Captures state is scratch space
// reused across calls. Use one Matcher per goroutine.
type Matcher struct {
	tokens   []token.Token
	anchored bool // pattern's first token is Start
	captures Captures
}

// New builds a Matcher over a compiled token sequence.
func New(tokens []token.Token) *Matcher {
	m := &Matcher{tokens: tokens}
	if len(tokens) > 0 {
		m.anchored = tokens[0].Kind == token.Start
	}
	return m
}

// Captures returns the capture-slot table as left by the most recent match
// attempt. Every attempt (TryAt, and each start position MatchAny, FindAll
// and SearchFrom try) resets it first, so it holds a match's captures only
// right after a TryAt or MatchAny that succeeded; after FindAll it reflects
// the scan's final attempt, not necessarily the last match returned.
func (m *Matcher) Captures() *Captures {
	return &m.captures
}

// MatchAny reports whether any substring of subject matches the compiled
// pattern.
func (m *Matcher) MatchAny(subject string) bool {
	_, ok := m.SearchFrom(subject, 0)
	return ok
}

// FindAll returns every non-overlapping match in subject, left to right.
// Advances the scan index past each match's end; zero-length matches
// advance by one byte to guarantee progress.
func (m *Matcher) FindAll(subject string) []Span {
	var spans []Span
	pos := 0
	for pos <= len(subject) {
		span, ok := m.SearchFrom(subject, pos)
		if !ok {
			break
		}
		spans = append(spans, span)
		if span.End > span.Start {
			pos = span.End
		} else {
			pos = span.End + 1
		}
	}
	return spans
}

// TryAt attempts a single match anchored at the given subject position
// only (no scanning). It is the primitive a prefilter-accelerated outer
// loop (package minigrep at the module root) drives once it has picked a
// candidate start position; it performs exactly the same matchHere
// algorithm MatchAny/FindAll use internally, so results are identical to
// scanning every position by hand, just without re-probing positions a
// prefilter has already ruled out.
func (m *Matcher) TryAt(subject string, at int) (Span, bool) {
	if at > len(subject) {
		return Span{}, false
	}
	m.captures.reset()
	end, ok := matchHere(m.tokens, subject, at, &m.captures)
	if !ok {
		return Span{}, false
	}
	return Span{Start: at, End: end}, true
}

// SearchFrom runs the spec §4.2 outer loop starting the scan no earlier than
// from: try candidate start positions left to right, skipping all but
// position 0 when the pattern is anchored with '^', continuing one
// position past len(subject) to allow a zero-length match at end of input.
// Exported so a prefilter-accelerated caller (package minigrep at the module root)
// can fall back to it verbatim when no prefilter was built for a pattern.
func (m *Matcher) SearchFrom(subject string, from int) (Span, bool) {
	if m.anchored {
		if from > 0 {
			return Span{}, false
		}
		return m.TryAt(subject, 0)
	}

	for i := from; i <= len(subject); i++ {
		if span, ok := m.TryAt(subject, i); ok {
			return span, true
		}
	}
	return Span{}, false
}

// state is one entry in matchHere's LIFO worklist: "consume tokens starting
// at TokenIdx against subject starting at TextIdx."
type state struct {
	TextIdx, TokenIdx int
}

// matchHere backtracks over tokens against subject starting at start. The
// worklist is LIFO (depth-first, right-bias): every token kind that branches
// pushes its continuations in the order that makes the longest/latest
// option pop first, which is what gives Star/Plus/Range their greediness
// and Group alternatives their latest-declared-wins tie-break (spec §4.2).
func matchHere(tokens []token.Token, subject string, start int, captures *Captures) (int, bool) {
	worklist := []state{{TextIdx: start, TokenIdx: 0}}

	for len(worklist) > 0 {
		st := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		textIdx, tokenIdx := st.TextIdx, st.TokenIdx
		ok := true

		for tokenIdx < len(tokens) {
			tok := tokens[tokenIdx]

			switch tok.Kind {
			case token.Star, token.Plus:
				worklist = pushRepeat(worklist, tok, subject, textIdx, tokenIdx, captures)
				ok = false

			case token.Optional:
				worklist = pushOptional(worklist, tok, subject, textIdx, tokenIdx, captures)
				ok = false

			case token.Range:
				worklist = pushRange(worklist, tok, subject, textIdx, tokenIdx, captures)
				ok = false

			case token.Group:
				worklist = pushGroup(worklist, tok, subject, textIdx, tokenIdx, captures)
				ok = false

			case token.Backreference:
				worklist = pushBackreference(worklist, tok, subject, textIdx, tokenIdx, captures)
				ok = false

			default:
				matched, next := tok.MatchByte(subject, textIdx)
				if !matched {
					ok = false
					break
				}
				textIdx, tokenIdx = next, tokenIdx+1
				continue
			}
			break
		}

		if ok && tokenIdx == len(tokens) {
			return textIdx, true
		}
	}

	return -1, false
}

// pushRepeat implements Star/Plus: walk the prior token greedily to its
// maximal extent, pushing a resumption state after every successful step so
// the LIFO pop order tries the longest match first. Star additionally
// pushes the zero-consumption continuation before the loop, so (being
// pushed first) it is tried dead last.
func pushRepeat(worklist []state, tok token.Token, subject string, textIdx, tokenIdx int, captures *Captures) []state {
	if tok.Kind == token.Star {
		worklist = append(worklist, state{TextIdx: textIdx, TokenIdx: tokenIdx + 1})
	}

	cur := textIdx
	for cur != len(subject) {
		end, ok := matchHere([]token.Token{*tok.Prev}, subject, cur, captures)
		if !ok {
			break
		}
		worklist = append(worklist, state{TextIdx: end, TokenIdx: tokenIdx + 1})
		cur = end
	}
	return worklist
}

// pushOptional implements `?`: push the zero-consumption state first, then
// (on top, so tried first) the one-consumption state if the prior token
// matches here.
func pushOptional(worklist []state, tok token.Token, subject string, textIdx, tokenIdx int, captures *Captures) []state {
	worklist = append(worklist, state{TextIdx: textIdx, TokenIdx: tokenIdx + 1})
	if end, ok := matchHere([]token.Token{*tok.Prev}, subject, textIdx, captures); ok {
		worklist = append(worklist, state{TextIdx: end, TokenIdx: tokenIdx + 1})
	}
	return worklist
}

// pushRange implements {m,n}: the prior token must match at least m times
// (failure here fails the whole token, not just this branch); after that,
// every additional successful match up to n pushes a resumption so longer
// matches are preferred.
func pushRange(worklist []state, tok token.Token, subject string, textIdx, tokenIdx int, captures *Captures) []state {
	cur := textIdx
	for i := 0; i < tok.Min; i++ {
		end, ok := matchHere([]token.Token{*tok.Prev}, subject, cur, captures)
		if !ok {
			return worklist
		}
		cur = end
	}

	worklist = append(worklist, state{TextIdx: cur, TokenIdx: tokenIdx + 1})

	consumed := tok.Min
	for tok.Max == token.Unbounded || consumed < tok.Max {
		end, ok := matchHere([]token.Token{*tok.Prev}, subject, cur, captures)
		if !ok {
			break
		}
		worklist = append(worklist, state{TextIdx: end, TokenIdx: tokenIdx + 1})
		cur = end
		consumed++
	}

	return worklist
}

// pushGroup implements capture groups: try every alternative in declaration
// order; each success records its range into the capture slot and pushes a
// continuation. Because the worklist is LIFO, the latest-declared
// successful alternative is tried first on resumption, and (since slot
// writes are side effects, not part of the pushed state) the slot reflects
// whichever alternative's continuation ultimately reaches the end of
// tokens.
func pushGroup(worklist []state, tok token.Token, subject string, textIdx, tokenIdx int, captures *Captures) []state {
	for _, alt := range tok.Alternatives {
		end, ok := matchHere(alt, subject, textIdx, captures)
		if !ok {
			continue
		}
		captures.set(tok.Num, textIdx, end)
		worklist = append(worklist, state{TextIdx: end, TokenIdx: tokenIdx + 1})
	}
	return worklist
}

// pushBackreference implements \g: the referenced slot must already be
// assigned (an earlier alternative in the same path must have matched), and
// the subject at textIdx must equal the captured text byte-for-byte.
func pushBackreference(worklist []state, tok token.Token, subject string, textIdx, tokenIdx int, captures *Captures) []state {
	start, end, ok := captures.Get(tok.Num)
	if !ok {
		return worklist
	}
	captured := subject[start:end]
	newEnd := textIdx + len(captured)
	if newEnd > len(subject) || subject[textIdx:newEnd] != captured {
		return worklist
	}
	return append(worklist, state{TextIdx: newEnd, TokenIdx: tokenIdx + 1})
}
