package match

import "github.com/coregx/minigrep/compile"

// Captures is the capture-slot table backing a single top-level match
// attempt: fixed-size (spec §3.2, compile.MaxCaptureGroups slots), reset at
// the start of every attempt, and mutated only by the matcher during
// backtracking. It is not safe for concurrent use; each Matcher owns one
// Captures, so callers matching the same compiled pattern from multiple
// goroutines must use one Matcher per goroutine.
type Captures struct {
	assigned [compile.MaxCaptureGroups]bool
	start    [compile.MaxCaptureGroups]int
	end      [compile.MaxCaptureGroups]int
}

// reset clears every slot back to "unassigned", ready for a new top-level
// match attempt.
func (c *Captures) reset() {
	for i := range c.assigned {
		c.assigned[i] = false
	}
}

// set records subject[start:end] into capture slot num (1-based).
func (c *Captures) set(num, start, end int) {
	c.assigned[num-1] = true
	c.start[num-1] = start
	c.end[num-1] = end
}

// Get returns the (start, end) byte range captured into slot num (1-based)
// and whether that slot has been assigned.
func (c *Captures) Get(num int) (start, end int, ok bool) {
	if num < 1 || num > compile.MaxCaptureGroups {
		return 0, 0, false
	}
	if !c.assigned[num-1] {
		return 0, 0, false
	}
	return c.start[num-1], c.end[num-1], true
}
