package prefilter

import "github.com/coregx/minigrep/literal"

// Build selects a Prefilter strategy for the given extracted literals,
// mirroring prefilter.NewBuilder's strategy selection in coregex (single
// literal → byte/substring scanner, many literals → Aho-Corasick). Returns
// nil when seq is empty or construction fails — callers must treat a nil
// Prefilter as "no acceleration available" and fall back to probing every
// candidate position, never as an error.
func Build(seq literal.Seq) Prefilter {
	switch seq.Len() {
	case 0:
		return nil
	case 1:
		return NewByteScanner(seq.Get(0).Bytes)
	default:
		pf, err := NewLiteralSet(seq)
		if err != nil {
			return nil
		}
		return pf
	}
}
