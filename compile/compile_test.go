package compile

import (
	"errors"
	"testing"

	"github.com/coregx/minigrep/token"
)

func TestCompileValidPatterns(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		wantGroups  int
		wantNumToks int
	}{
		{"literal run", "abc", 0, 3},
		{"start anchor", "^abc", 0, 4},
		{"end anchor", "abc$", 0, 4},
		{"digit class", `\d+`, 0, 1},
		{"word class", `\w*`, 0, 1},
		{"character class", "[abc]", 0, 1},
		{"negated class", "[^abc]", 0, 1},
		{"star", "a*", 0, 1},
		{"plus", "a+", 0, 1},
		{"optional", "a?", 0, 1},
		{"bounded range", "a{2,4}", 0, 1},
		{"exact range", "a{3}", 0, 1},
		{"unbounded range", "a{2,}", 0, 1},
		{"single group", "(cat)", 1, 1},
		{"nested groups", "(a(b))", 2, 1},
		{"alternation", "(cat|dog)", 1, 1},
		{"backreference", `(cat) \1`, 1, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, groups, err := Compile(tc.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) returned error: %v", tc.pattern, err)
			}
			if groups != tc.wantGroups {
				t.Errorf("Compile(%q) groups = %d, want %d", tc.pattern, groups, tc.wantGroups)
			}
			if len(toks) != tc.wantNumToks {
				t.Errorf("Compile(%q) produced %d tokens, want %d", tc.pattern, len(toks), tc.wantNumToks)
			}
		})
	}
}

func TestCompileInvalidPatterns(t *testing.T) {
	tests := []string{
		"(abc",
		"[abc",
		"*abc",
		`a\`,
		"a{",
		`\2`,
		"a{abc}",
		"a{4300000000,}",
	}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			_, _, err := Compile(pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want an error", pattern)
			}
			var compileErr *Error
			if !errors.As(err, &compileErr) {
				t.Fatalf("Compile(%q) error is not *compile.Error: %v", pattern, err)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Compile(%q) error does not wrap ErrInvalidPattern", pattern)
			}
		})
	}
}

func TestCompileTooManyGroups(t *testing.T) {
	pattern := ""
	for i := 0; i < MaxCaptureGroups+1; i++ {
		pattern += "(a)"
	}
	_, _, err := Compile(pattern)
	if err == nil {
		t.Fatalf("Compile(%d groups) succeeded, want an error", MaxCaptureGroups+1)
	}
}

func TestCompileAnchorsLocalToGroup(t *testing.T) {
	// '$' inside a group alternative is relative to that alternative's own
	// range, not the whole pattern, matching the original implementation's
	// per-substring recursion.
	toks, _, err := Compile("(cat$)ish")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("expected 4 top-level tokens (group, i, s, h), got %d", len(toks))
	}
	group := toks[0]
	if group.Kind != token.Group {
		t.Fatalf("expected first token to be a Group, got %v", group.Kind)
	}
	alt := group.Alternatives[0]
	if alt[len(alt)-1].Kind != token.End {
		t.Errorf("expected the group's alternative to end with an End token")
	}
}

func TestCompileGroupWithTrailingEmptyAlternative(t *testing.T) {
	// "(cat|)" should yield two alternatives: "cat" and the empty sequence,
	// matching either "cat" or nothing at all. This diverges deliberately
	// from the original source, which silently drops a trailing empty
	// alternative; keeping it is the more consistent, less surprising
	// behavior for callers.
	toks, _, err := Compile("(cat|)")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	group := toks[0]
	if len(group.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(group.Alternatives))
	}
	if len(group.Alternatives[1]) != 0 {
		t.Errorf("expected the second alternative to be empty, got %v", group.Alternatives[1])
	}
}
