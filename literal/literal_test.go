package literal

import (
	"testing"

	"github.com/coregx/minigrep/compile"
)

func extractFor(t *testing.T, pattern string) Seq {
	t.Helper()
	toks, _, err := compile.Compile(pattern)
	if err != nil {
		t.Fatalf("compile.Compile(%q) failed: %v", pattern, err)
	}
	return Extract(toks)
}

func TestExtractLiteralPrefix(t *testing.T) {
	seq := extractFor(t, "cats are great")
	if seq.IsEmpty() {
		t.Fatal("expected a non-empty literal sequence")
	}
	if seq.Len() != 1 {
		t.Fatalf("expected 1 literal, got %d", seq.Len())
	}
	if got := string(seq.Get(0).Bytes); got != "cats are great" {
		t.Errorf("prefix = %q, want %q", got, "cats are great")
	}
}

func TestExtractStopsAtQuantifier(t *testing.T) {
	seq := extractFor(t, "ab*c")
	if seq.IsEmpty() {
		t.Fatal("expected a non-empty literal sequence")
	}
	if got := string(seq.Get(0).Bytes); got != "a" {
		t.Errorf("prefix = %q, want %q (must stop before the quantified 'b')", got, "a")
	}
}

func TestExtractSkipsLeadingAnchor(t *testing.T) {
	seq := extractFor(t, "^hello")
	if got := string(seq.Get(0).Bytes); got != "hello" {
		t.Errorf("prefix = %q, want %q", got, "hello")
	}
}

func TestExtractGroupAlternatives(t *testing.T) {
	seq := extractFor(t, "(cat|dog) food")
	if seq.Len() != 2 {
		t.Fatalf("expected 2 alternative literals, got %d", seq.Len())
	}
	got := map[string]bool{string(seq.Get(0).Bytes): true, string(seq.Get(1).Bytes): true}
	if !got["cat"] || !got["dog"] {
		t.Errorf("expected alternatives {cat, dog}, got %v", got)
	}
}

func TestExtractEmptyWhenNoLiteralPrefix(t *testing.T) {
	tests := []string{
		".*",
		`\d+`,
		"[abc]",
		"(cat|.*)",
	}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			seq := extractFor(t, pattern)
			if !seq.IsEmpty() {
				t.Errorf("Extract(%q) = %v, want empty", pattern, seq)
			}
		})
	}
}
