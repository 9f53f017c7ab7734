// Package compile turns a pattern string into the flat token.Token sequence
// the match package executes.
//
// The algorithm is a single left-to-right recursive-descent scan over the
// pattern (compile.go), with one shared, monotonic capture-group counter
// threaded through every recursive call so group numbers follow pattern
// position rather than recursion depth. Compilation either succeeds with a
// token sequence or fails with a single *Error identifying the first
// offending construct; there are no partial results on failure.
package compile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/coregx/minigrep/token"
)

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) ([]token.Token, int, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern into a token sequence and reports how
// many capture groups it assigned. Returns an *Error on any syntax
// violation listed in the data model's invariants.
func CompileWithConfig(pattern string, config Config) ([]token.Token, int, error) {
	c := &compiler{pattern: pattern, config: config, groupCounter: 1}
	toks, err := c.compileRange(0, len(pattern))
	if err != nil {
		return nil, 0, err
	}
	return toks, c.groupCounter - 1, nil
}

type compiler struct {
	pattern      string
	config       Config
	groupCounter int // next capture-group number to assign; starts at 1
	depth        int // current group-recursion depth
}

func (c *compiler) errAt(offset int, reason string) error {
	return &Error{Pattern: c.pattern, Offset: offset, Reason: reason}
}

// compileRange compiles pattern[lo:hi] into a token sequence. It is the one
// recursive entry point: group bodies and top-level pattern text both go
// through it, with lo/hi carved out of the shared pattern string so error
// offsets stay absolute even under recursion.
func (c *compiler) compileRange(lo, hi int) ([]token.Token, error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.config.MaxRecursionDepth {
		return nil, c.errAt(lo, "pattern nesting too deep")
	}

	var toks []token.Token
	i := lo
	for i < hi {
		ch := c.pattern[i]

		switch ch {
		case '^':
			if i != lo {
				return nil, c.errAt(i, "'^' must be the first character in the pattern")
			}
			toks = append(toks, token.Token{Kind: token.Start})
			i++

		case '$':
			if i != hi-1 {
				return nil, c.errAt(i, "'$' must be the last character in the pattern")
			}
			toks = append(toks, token.Token{Kind: token.End})
			i++

		case '\\':
			next, err := c.compileEscape(i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, next.tok)
			i = next.end

		case '[':
			tok, end, err := c.compileClass(i, hi)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = end

		case '(':
			tok, end, err := c.compileGroup(i, hi)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = end

		case '*', '+', '?':
			if len(toks) == 0 {
				return nil, c.errAt(i, "quantifier has no preceding token to repeat")
			}
			prev := toks[len(toks)-1]
			toks = toks[:len(toks)-1]
			kind := map[byte]token.Kind{'*': token.Star, '+': token.Plus, '?': token.Optional}[ch]
			toks = append(toks, token.Token{Kind: kind, Prev: &prev})
			i++

		case '{':
			tok, end, err := c.compileRangeQuantifier(i, hi, toks)
			if err != nil {
				return nil, err
			}
			toks = toks[:len(toks)-1]
			toks = append(toks, tok)
			i = end

		default:
			toks = append(toks, token.Token{Kind: token.Char, Char: ch})
			i++
		}
	}

	return toks, nil
}

type escapeResult struct {
	tok token.Token
	end int
}

// compileEscape handles a '\' at position i, consuming exactly one more
// character.
func (c *compiler) compileEscape(i int) (escapeResult, error) {
	if i+1 >= len(c.pattern) {
		return escapeResult{}, c.errAt(i, "dangling '\\' with no following character")
	}
	ch := c.pattern[i+1]

	if ch >= '0' && ch <= '9' {
		groupNum := int(ch - '0')
		if groupNum >= c.groupCounter {
			return escapeResult{}, c.errAt(i, "backreference to a group that has not been opened yet")
		}
		return escapeResult{tok: token.Token{Kind: token.Backreference, Num: groupNum}, end: i + 2}, nil
	}

	switch ch {
	case 'd', 'w', '\\':
		return escapeResult{tok: token.Token{Kind: token.PredefinedClass, Class: ch}, end: i + 2}, nil
	}

	return escapeResult{}, c.errAt(i, fmt.Sprintf("unrecognized escape sequence '\\%c'", ch))
}

// compileClass handles a '[' at position i, reading up to the matching ']'.
func (c *compiler) compileClass(i, hi int) (token.Token, int, error) {
	j := i + 1
	negated := false
	if j < hi && c.pattern[j] == '^' {
		negated = true
		j++
	}

	set := make(map[byte]bool)
	for j < hi && c.pattern[j] != ']' {
		set[c.pattern[j]] = true
		j++
	}
	if j >= hi {
		return token.Token{}, 0, c.errAt(i, "character class missing closing ']'")
	}

	return token.Token{Kind: token.CharacterClass, Set: set, Negated: negated}, j + 1, nil
}

// compileGroup handles a '(' at position i. It tracks paren nesting depth to
// find the matching ')' and to split top-level alternatives on '|', then
// recurses into compileRange for each alternative so the capture counter is
// shared across every level.
func (c *compiler) compileGroup(i, hi int) (token.Token, int, error) {
	groupNum := c.groupCounter
	c.groupCounter++
	if groupNum > MaxCaptureGroups {
		return token.Token{}, 0, c.errAt(i, "pattern opens more capture groups than the matcher's capture table holds")
	}

	var alternatives [][]token.Token
	altStart := i + 1
	depth := 1
	j := i + 1
	closed := false

	for j < hi {
		switch c.pattern[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				alt, err := c.compileRange(altStart, j)
				if err != nil {
					return token.Token{}, 0, err
				}
				alternatives = append(alternatives, alt)
				closed = true
			}
		case '|':
			if depth == 1 {
				alt, err := c.compileRange(altStart, j)
				if err != nil {
					return token.Token{}, 0, err
				}
				alternatives = append(alternatives, alt)
				altStart = j + 1
			}
		}
		if closed {
			break
		}
		j++
	}

	if !closed {
		return token.Token{}, 0, c.errAt(i, "group missing closing ')'")
	}

	return token.Token{Kind: token.Group, Alternatives: alternatives, Num: groupNum}, j + 1, nil
}

// compileRangeQuantifier handles a '{' at position i, reading a bounded
// repetition of the form {m}, {m,}, or {m,n}.
func (c *compiler) compileRangeQuantifier(i, hi int, toks []token.Token) (token.Token, int, error) {
	if len(toks) == 0 {
		return token.Token{}, 0, c.errAt(i, "quantifier has no preceding token to repeat")
	}

	j := i + 1
	minStart := j
	for j < hi && isDecimalDigit(c.pattern[j]) {
		j++
	}
	minStr := c.pattern[minStart:j]
	if minStr == "" {
		return token.Token{}, 0, c.errAt(i, "bounded repetition missing minimum value")
	}

	seenComma := false
	maxStr := ""
	if j < hi && c.pattern[j] == ',' {
		seenComma = true
		j++
		maxStart := j
		for j < hi && isDecimalDigit(c.pattern[j]) {
			j++
		}
		maxStr = c.pattern[maxStart:j]
	}

	if j >= hi || c.pattern[j] != '}' {
		return token.Token{}, 0, c.errAt(i, "bounded repetition missing closing '}'")
	}

	min, err := strconv.Atoi(minStr)
	if err != nil {
		return token.Token{}, 0, c.errAt(i, "bounded repetition minimum is not a valid number")
	}
	if min > math.MaxUint32 {
		return token.Token{}, 0, c.errAt(i, "bounded repetition minimum is too large")
	}

	max := min
	if seenComma {
		if maxStr == "" {
			max = token.Unbounded
		} else {
			max, err = strconv.Atoi(maxStr)
			if err != nil {
				return token.Token{}, 0, c.errAt(i, "bounded repetition maximum is not a valid number")
			}
			if max > math.MaxUint32 {
				return token.Token{}, 0, c.errAt(i, "bounded repetition maximum is too large")
			}
		}
	}

	prev := toks[len(toks)-1]
	return token.Token{Kind: token.Range, Prev: &prev, Min: min, Max: max}, j + 1, nil
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
