// Package minigrep is a small regular-expression engine: it compiles a
// textual pattern into an intermediate token sequence (package token via
// package compile) and searches input text for occurrences of that pattern
// with a backtracking matcher (package match).
//
// It supports literal characters, the wildcard '.', anchors ^ and $,
// predefined classes \d and \w, custom character classes ([abc], [^abc]),
// alternation and numbered capture groups, backreferences, and the
// quantifiers ?, +, *, {m}, {m,}, {m,n}. It deliberately does not build an
// NFA/DFA, does not support Unicode properties, named captures, lookaround,
// atomic groups, or possessive quantifiers, and offers no guarantee of
// linear-time matching: complexity may be exponential on adversarial
// patterns (spec.md Non-goals).
//
// Basic usage:
//
//	re, err := minigrep.Compile(`\d+ apples`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchAny("sally has 3 apples") {
//	    fmt.Println("matched!")
//	}
package minigrep

import (
	"fmt"

	"github.com/coregx/minigrep/compile"
	"github.com/coregx/minigrep/literal"
	"github.com/coregx/minigrep/match"
	"github.com/coregx/minigrep/prefilter"
	"github.com/coregx/minigrep/token"
)

// Span is a half-open byte range [Start, End) of a subject string.
type Span = match.Span

// Regex is a compiled regular expression: an immutable token sequence plus
// the scratch matcher state and any prefilter built to accelerate search
// over it.
//
// A Regex is not safe for concurrent use: MatchAny/FindAll mutate scratch
// capture-slot state on every call (spec §3.2 — "not thread-safe; a
// compiled pattern is intended for single-threaded use or must be cloned
// per thread"). Concurrent callers should compile independent Regex values
// per goroutine.
type Regex struct {
	pattern   string
	numGroups int
	anchored  bool
	matcher   *match.Matcher
	pf        prefilter.Prefilter
}

// Compile compiles a regular expression pattern. Returns a *compile.Error
// (spec's single InvalidPattern error kind) if the pattern is malformed.
func Compile(pattern string) (*Regex, error) {
	toks, numGroups, err := compile.Compile(pattern)
	if err != nil {
		return nil, err
	}

	seq := literal.Extract(toks)

	return &Regex{
		pattern:   pattern,
		numGroups: numGroups,
		anchored:  len(toks) > 0 && toks[0].Kind == token.Start,
		matcher:   match.New(toks),
		pf:        prefilter.Build(seq),
	}, nil
}

// MustCompile compiles pattern and panics if it fails. Useful for patterns
// known to be valid at compile time, e.g. package-level vars.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("minigrep: Compile(%q): %v", pattern, err))
	}
	return re
}

// String returns the source pattern used to compile the Regex.
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of capture groups in the pattern.
func (r *Regex) NumSubexp() int {
	return r.numGroups
}

// MatchAny reports whether any substring of subject matches the pattern
// (spec's match_any).
func (r *Regex) MatchAny(subject string) bool {
	_, ok := r.search(subject, from0Bytes(subject), 0)
	return ok
}

// FindAll returns every non-overlapping match of the pattern in subject,
// left to right (spec's find_all).
func (r *Regex) FindAll(subject string) []Span {
	hay := from0Bytes(subject)
	var spans []Span
	pos := 0
	for pos <= len(subject) {
		span, ok := r.search(subject, hay, pos)
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

// FindAllString is a convenience wrapper over FindAll returning the matched
// substrings instead of their byte ranges.
func (r *Regex) FindAllString(subject string) []string {
	spans := r.FindAll(subject)
	if spans == nil {
		return nil
	}
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = subject[s.Start:s.End]
	}
	return out
}

// Group returns the text captured into the given 1-based group number,
// applied to subject (which must be the same string that produced that
// match — capture slots are byte ranges into "the most recent subject
// string", spec §3.2). The capture table is reset at every attempted start
// position, so it holds a match's captures only right after a MatchAny call
// that returned true; after FindAll it reflects the scan's final attempt,
// not necessarily the last match returned.
func (r *Regex) Group(subject string, num int) (string, bool) {
	start, end, ok := r.matcher.Captures().Get(num)
	if !ok {
		return "", false
	}
	return subject[start:end], true
}

// search finds the next match at or after from, using the prefilter (if
// any) to skip candidate start positions the matcher would otherwise have
// to probe one by one.
func (r *Regex) search(subject string, hay []byte, from int) (Span, bool) {
	if r.anchored {
		if from > 0 {
			return Span{}, false
		}
		return r.matcher.TryAt(subject, 0)
	}

	if r.pf == nil {
		return r.matcher.SearchFrom(subject, from)
	}

	pos := from
	for {
		cand := r.pf.Find(hay, pos)
		if cand < 0 {
			return Span{}, false
		}
		if span, ok := r.matcher.TryAt(subject, cand); ok {
			return span, true
		}
		pos = cand + 1
	}
}

func from0Bytes(s string) []byte {
	return []byte(s)
}
