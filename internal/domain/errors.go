package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks caller mistakes; adapters map it to a client error.
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// InputError reports a URL or domain that cannot be analysed.
type InputError struct {
	Value  string
	Reason string
	Err    error
}

func NewInputError(value, reason string, cause error) *InputError {
	return &InputError{Value: value, Reason: reason, Err: cause}
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", e.Reason, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q", e.Reason, e.Value)
}

func (e *InputError) Unwrap() error { return e.Err }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }
