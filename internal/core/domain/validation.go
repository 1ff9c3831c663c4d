package domain

import (
	"sort"
	"strings"
)

// ValidationError carries field-level failures. It renders over HTTP as a
// 422 with a {field: [messages]} body, matching what the frontend's
// errorsFor helper expects.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready to collect
// field messages.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no field has failed.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, field+" "+strings.Join(msgs, ", "))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
