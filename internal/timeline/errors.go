package timeline

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by positional store operations when the index
// does not address a task in the store.
var ErrIndexOutOfRange = errors.New("task index out of range")

// ValidationError represents a draft field that could not be turned into a task.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IsValidationError checks if an error is a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func indexError(op string, index, length int) error {
	return fmt.Errorf("%s index %d (store has %d tasks): %w", op, index, length, ErrIndexOutOfRange)
}
