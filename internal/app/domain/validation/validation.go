// Package validation provides field-level request validation shared by the
// domain packages. Handlers map *Error to a 400 response; anything else is
// treated as an internal failure.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Error reports a single field that failed validation.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Errorf builds a validation error for the given field.
func Errorf(field, format string, args ...any) error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsError reports whether err (or anything it wraps) is a validation error.
func IsError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Required trims the value and fails when nothing remains.
func Required(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", Errorf(field, "is required")
	}
	return trimmed, nil
}

// OneOf fails unless value matches one of the allowed literals.
func OneOf(value, field string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return Errorf(field, "must be one of %s", strings.Join(allowed, ", "))
}

// IntRange fails when value lies outside [min, max].
func IntRange(value int, field string, min, max int) error {
	if value < min || value > max {
		return Errorf(field, "must be between %d and %d", min, max)
	}
	return nil
}
