package regex

import (
	"errors"
	"fmt"
)

var (
	// ErrEncoding is wrapped by every EncodingError.
	ErrEncoding = errors.New("non-ASCII input")

	// ErrSyntax is wrapped by every SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrTooManyStates is returned by Explore when the subset construction
	// outgrows its limit.
	ErrTooManyStates = errors.New("too many DFA states")

	ErrInvalidConfig = errors.New("invalid config")
)

// EncodingError reports a byte outside the 7-bit ASCII range.
type EncodingError struct {
	What   string // "pattern" or "input"
	Offset int
	Byte   byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s contains non-ASCII byte 0x%02x at offset %d", e.What, e.Byte, e.Offset)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

// SyntaxError reports a pattern that does not follow the grammar.
type SyntaxError struct {
	Pattern string
	Offset  int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %q at offset %d: %s", e.Pattern, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// checkASCII returns an EncodingError for the first byte above 0x7f.
func checkASCII(what, s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return &EncodingError{What: what, Offset: i, Byte: s[i]}
		}
	}
	return nil
}
