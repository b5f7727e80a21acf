package ledger

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only error kind the ledger returns. Every
// *InputError matches it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes why a create request was rejected.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match any InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
