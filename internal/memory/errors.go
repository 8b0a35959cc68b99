package memory

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors. The typed errors below match these via errors.Is.
var (
	ErrNotFound   = errors.New("memory not found")
	ErrParse      = errors.New("memory store is corrupt")
	ErrValidation = errors.New("invalid memory input")
)

// NotFoundError is returned when an ID is absent from the requested category.
type NotFoundError struct {
	Category Category
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s memory '%s' not found", e.Category.Title(), e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ParseError is returned when the store file exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing memory store %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ValidationError is returned when create input is incomplete or unreadable.
// Err is the underlying cause, if any.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
