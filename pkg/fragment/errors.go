package fragment

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedToken = errors.New("fragment: unterminated token")
	ErrEmptyDelimiter    = errors.New("fragment: token delimiters cannot be empty")
)

// SyntaxError reports a template that cannot be split into fragments.
// Offset is the rune position of the offending token prefix.
type SyntaxError struct {
	Err    error
	Prefix string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %q opened at offset %d is never closed", e.Err, e.Prefix, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
