package apperrors

import "errors"

// Sentinel errors used to classify failures across service boundaries.
// Controllers map them to HTTP status codes with errors.Is.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Error carries a human-readable message while remaining matchable
// against one of the sentinel kinds above.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// NotFound returns an error that matches ErrNotFound.
func NotFound(message string) error {
	return &Error{kind: ErrNotFound, message: message}
}

// Conflict returns an error that matches ErrConflict.
func Conflict(message string) error {
	return &Error{kind: ErrConflict, message: message}
}
