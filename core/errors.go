package core

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("no session")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
)

// NotFound wraps ErrNotFound with the offending article id.
func NotFound(id int) error {
	return fmt.Errorf("article %w: %d", ErrNotFound, id)
}

// Forbidden wraps ErrForbidden with the offending article id.
func Forbidden(id int) error {
	return fmt.Errorf("%w: article %d", ErrForbidden, id)
}

// A ValidationError rejects an edit payload before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
