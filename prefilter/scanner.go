package prefilter

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// ByteScanner finds a single required literal. It is the prefilter for
// patterns whose literal.Extract returns exactly one alternative.
//
// Grounded on github.com/coregx/coregex/prefilter's DigitPrefilter /
// MemchrPrefilter split between a feature-gated fast path and a portable
// fallback; this module has no assembly to gate behind cpu.X86.HasAVX2; it
// uses the flag only to choose between a 32-byte-chunk-unrolled pure Go
// loop (amortizing the bounds check AVX2-width hardware tends to favor) and
// bytes.Index for the exact same result, falling back identically on
// platforms without AVX2 or off amd64/386 entirely.
type ByteScanner struct {
	literal []byte
}

// NewByteScanner builds a prefilter for a single required literal.
func NewByteScanner(literal []byte) *ByteScanner {
	return &ByteScanner{literal: literal}
}

// Find returns the next offset at or after start where the literal occurs,
// or -1.
func (b *ByteScanner) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) || len(b.literal) == 0 {
		return -1
	}

	if cpu.X86.HasAVX2 && len(haystack)-start >= 32 {
		if pos := scanChunked(haystack, start, b.literal); pos >= 0 {
			return pos
		}
		return -1
	}

	pos := bytes.Index(haystack[start:], b.literal)
	if pos < 0 {
		return -1
	}
	return pos + start
}

// scanChunked walks haystack 32 bytes at a time looking for the literal's
// first byte before falling back to a full compare, the same two-phase
// shape a SIMD memmem uses (find candidate first bytes fast, verify the
// rest scalar) without requiring actual vector instructions.
func scanChunked(haystack []byte, start int, literal []byte) int {
	first := literal[0]
	i := start
	for i < len(haystack) {
		end := i + 32
		if end > len(haystack) {
			end = len(haystack)
		}
		chunk := haystack[i:end]
		rel := bytes.IndexByte(chunk, first)
		if rel < 0 {
			i = end
			continue
		}
		pos := i + rel
		if pos+len(literal) > len(haystack) {
			return -1
		}
		if bytes.Equal(haystack[pos:pos+len(literal)], literal) {
			return pos
		}
		i = pos + 1
	}
	return -1
}
