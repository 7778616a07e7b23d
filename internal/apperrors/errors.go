package apperrors

import "errors"

// ErrNotFound indicates that a referenced resource does not exist or fails an
// ownership cross-check.
var ErrNotFound = errors.New("resource not found")

// ErrUnprocessable indicates malformed or missing input, caught before any
// repository call.
var ErrUnprocessable = errors.New("unprocessable entity")

// ErrConflict indicates the resource exists but is in a state incompatible
// with the requested transition.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized indicates a presented secret does not match, a business/card
// type mismatch, or insufficient balance.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries a human-readable message while unwrapping to one of the
// sentinel errors above, so callers keep using errors.Is for classification.
type AppError struct {
	kind    error
	message string
}

func (e *AppError) Error() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.kind
}

func NewNotFound(message string) error {
	return &AppError{kind: ErrNotFound, message: message}
}

func NewUnprocessable(message string) error {
	return &AppError{kind: ErrUnprocessable, message: message}
}

func NewConflict(message string) error {
	return &AppError{kind: ErrConflict, message: message}
}

func NewUnauthorized(message string) error {
	return &AppError{kind: ErrUnauthorized, message: message}
}
