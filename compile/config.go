package compile

// MaxCaptureGroups is the fixed size of the capture-slot table a compiled
// pattern's matcher will maintain (spec §3.2: "10 slots, indexed 1..10").
// Patterns that open more groups than this are rejected at compile time
// rather than silently dropping captures past the limit.
const MaxCaptureGroups = 10

// Config configures compiler behavior.
type Config struct {
	// MaxRecursionDepth limits how deeply nested groups may recurse during
	// compilation, guarding against stack overflow on pathological input.
	MaxRecursionDepth int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxRecursionDepth: 100,
	}
}
