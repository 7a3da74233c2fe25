package store

import "errors"

var (
	// ErrDuplicateAccount is returned when registering an identifier that is already taken.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrInvalidCredentials is returned when the identifier is unknown or the secret does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when a task id does not exist for the account.
	ErrNotFound = errors.New("task not found")
)

// ValidationError reports rejected user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
