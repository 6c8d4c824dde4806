package plantgen

import "errors"

var (
	// ErrStackUnderflow is returned when a branch is closed with no open branch.
	ErrStackUnderflow = errors.New("branch stack underflow")
	// ErrInvalidSymbol indicates a rule key that is not exactly one character.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrInvalidRule indicates a malformed production rule.
	ErrInvalidRule = errors.New("invalid production rule")
	// ErrInvalidDefinition is returned when a plant definition fails validation.
	ErrInvalidDefinition = errors.New("invalid plant definition")
)
