// Package prefilter provides fast candidate-position scanning ahead of the
// backtracking matcher (package match).
//
// A prefilter narrows the set of start positions the outer search loop has
// to probe with the real matcher: given literals extracted from a compiled
// pattern (package literal), it finds the next byte offset where one of
// those literals occurs. A prefilter candidate is never a guarantee of a
// full match — the matcher still verifies it — so a prefilter can only make
// search faster, never change its result. When no literal can be
// extracted, callers skip prefiltering entirely and probe every position,
// exactly as spec.md's outer search loop describes.
//
// This mirrors github.com/coregx/coregex/prefilter, adapted to the two
// dependencies the retrieval pack's coregex go.mod actually carries:
// github.com/coregx/ahocorasick for multi-literal alternation dispatch, and
// golang.org/x/sys/cpu for feature-gated byte scanning, in place of
// coregex's assembly-backed SIMD (simd.Memchr*), which this module does not
// carry over (see DESIGN.md).
package prefilter

// Prefilter finds the next candidate start position at or after start.
type Prefilter interface {
	// Find returns the index of the next candidate position at or after
	// start, or -1 if none remains in haystack.
	Find(haystack []byte, start int) int
}
