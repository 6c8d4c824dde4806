package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNoMatch          = errors.New("no pattern matches")
	ErrZeroLengthMatch  = errors.New("pattern matches the empty string")
	ErrInvalidPattern   = errors.New("invalid token pattern")
	ErrOffsetOutOfRange = errors.New("offset out of range")
)

// NoMatchError reports the offset at which no configured pattern matched.
type NoMatchError struct {
	Offset int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%v at offset %d", ErrNoMatch, e.Offset)
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}
