package usecase

import (
	"errors"
	"strings"

	"cinevault/internal/data/entity"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidTarget = entity.ErrInvalidTarget
	ErrUnknownUser   = errors.New("only registered users can like reviews and comments")
	ErrDuplicateLike = errors.New("user has already liked this item")
	ErrHasDependents = errors.New("movie has reviews and cannot be deleted")
	ErrEmptyRequest  = errors.New("no movie ids provided")
)

// ValidationError carries one human-readable detail per rejected field.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func newValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

// notFound is an ErrNotFound with a caller-facing message.
type notFound struct {
	msg string
}

func (e notFound) Error() string { return e.msg }

func (e notFound) Unwrap() error { return ErrNotFound }

// errNotFound reports that the named entity does not exist.
func errNotFound(what string) error {
	return notFound{msg: what + " not found"}
}
