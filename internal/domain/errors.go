package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates a malformed or missing input field.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated indicates a protected operation without a signed-in user.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrNameTaken is returned when registering with a name that already exists.
	ErrNameTaken = errors.New("name already taken")
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")
)

// Invalid wraps ErrValidation with a field-level message so handlers can
// match the kind with errors.Is while showing the detail to the user.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
