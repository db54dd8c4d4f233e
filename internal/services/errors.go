package services

import (
	"errors"

	"github.com/changil/changilweb-server/internal/repositories"
)

// Error kinds. Handlers pick the HTTP status with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrInvalidID    = errors.New("invalid id")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a user-facing message and one of the kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func validationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func duplicateError(msg string) error {
	return &Error{Kind: ErrDuplicate, Message: msg}
}

// notFoundOr turns a repository miss into ErrNotFound with msg and passes
// any other error through.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return &Error{Kind: ErrNotFound, Message: msg}
	}
	return err
}
