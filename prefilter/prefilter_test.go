package prefilter

import (
	"testing"

	"github.com/coregx/minigrep/compile"
	"github.com/coregx/minigrep/literal"
)

func TestByteScannerFind(t *testing.T) {
	s := NewByteScanner([]byte("cat"))
	tests := []struct {
		haystack string
		start    int
		want     int
	}{
		{"a cat sat", 0, 2},
		{"no match here", 0, -1},
		{"cat", 0, 0},
		{"xcatx", 1, 1},
	}
	for _, tc := range tests {
		if got := s.Find([]byte(tc.haystack), tc.start); got != tc.want {
			t.Errorf("Find(%q, %d) = %d, want %d", tc.haystack, tc.start, got, tc.want)
		}
	}
}

func TestByteScannerFindAdvancesPastStart(t *testing.T) {
	s := NewByteScanner([]byte("aa"))
	haystack := []byte("xaaaay")
	if got := s.Find(haystack, 0); got != 1 {
		t.Errorf("Find(start=0) = %d, want 1", got)
	}
	if got := s.Find(haystack, 2); got != 2 {
		t.Errorf("Find(start=2) = %d, want 2", got)
	}
	if got := s.Find(haystack, 5); got != -1 {
		t.Errorf("Find(start=5) = %d, want -1", got)
	}
}

func TestByteScannerOutOfRange(t *testing.T) {
	s := NewByteScanner([]byte("a"))
	if got := s.Find([]byte("abc"), 10); got != -1 {
		t.Errorf("Find with start past haystack length = %d, want -1", got)
	}
}

func TestLiteralSetFindsEitherAlternative(t *testing.T) {
	toks, _, err := compile.Compile("(cat|dog) food")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	seq := literal.Extract(toks)
	if seq.Len() != 2 {
		t.Fatalf("expected 2 extracted literals, got %d", seq.Len())
	}

	ls, err := NewLiteralSet(seq)
	if err != nil {
		t.Fatalf("NewLiteralSet failed: %v", err)
	}

	if got := ls.Find([]byte("I have a dog"), 0); got != 9 {
		t.Errorf("Find(dog) = %d, want 9", got)
	}
	if got := ls.Find([]byte("I have a cat"), 0); got != 9 {
		t.Errorf("Find(cat) = %d, want 9", got)
	}
	if got := ls.Find([]byte("I have a fish"), 0); got != -1 {
		t.Errorf("Find(no match) = %d, want -1", got)
	}
}

func TestBuildSelectsStrategyByLiteralCount(t *testing.T) {
	empty, _, err := compile.Compile(`\d+`)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if pf := Build(literal.Extract(empty)); pf != nil {
		t.Errorf("Build on a pattern with no literal prefix = %v, want nil", pf)
	}

	single, _, err := compile.Compile("cats")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	pf := Build(literal.Extract(single))
	if _, ok := pf.(*ByteScanner); !ok {
		t.Errorf("Build on a single literal prefix = %T, want *ByteScanner", pf)
	}

	multi, _, err := compile.Compile("(cat|dog) food")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	pf = Build(literal.Extract(multi))
	if _, ok := pf.(*LiteralSet); !ok {
		t.Errorf("Build on an alternation of literals = %T, want *LiteralSet", pf)
	}
}
