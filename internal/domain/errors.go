package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by every lookup failure.
	ErrNotFound = errors.New("not found")

	ErrCompanyNotFound = fmt.Errorf("company %w", ErrNotFound)
	ErrListNotFound    = fmt.Errorf("list %w", ErrNotFound)
	ErrAlertNotFound   = fmt.Errorf("alert %w", ErrNotFound)

	// ErrNoPendingDeletion is returned when a deletion is confirmed without
	// an alert having been marked first.
	ErrNoPendingDeletion = errors.New("no alert marked for deletion")
)

// ValidationError reports user input rejected before any mutation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
