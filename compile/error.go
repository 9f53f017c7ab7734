package compile

import (
	"errors"
	"fmt"
)

// Error is the single error kind the compiler raises: InvalidPattern in
// spec terms. It carries the original pattern, the byte offset of the first
// offending construct, and a short human-readable reason.
type Error struct {
	Pattern string
	Offset  int
	Reason  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

// Unwrap lets callers test with errors.Is/errors.As against a sentinel if
// they only care that compilation failed, not why.
func (e *Error) Unwrap() error {
	return ErrInvalidPattern
}

// ErrInvalidPattern is the sentinel every *Error wraps. Callers that don't
// need the offset/reason can compare with errors.Is(err, compile.ErrInvalidPattern).
var ErrInvalidPattern = errors.New("invalid pattern")
