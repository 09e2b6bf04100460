package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not_found")
	ErrBoardNotFound = fmt.Errorf("board %w", ErrNotFound)
	ErrTodoNotFound  = fmt.Errorf("todo %w", ErrNotFound)

	ErrConflict   = errors.New("conflict")
	ErrEmailTaken = fmt.Errorf("email %w", ErrConflict)

	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidToken       = errors.New("invalid_token")
)

// FieldError is one input field that failed validation. Path is the JSON
// field name.
type FieldError struct {
	Path string
	Msg  string
}

// ValidationError carries every failing field of a request at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Path+": "+f.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message recorded for path, or "".
func (e *ValidationError) Field(path string) string {
	for _, f := range e.Fields {
		if f.Path == path {
			return f.Msg
		}
	}
	return ""
}

// isInternal reports whether err is not one of the service's expected
// outcomes.
func isInternal(err error) bool {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken):
		return false
	}
	return true
}
