package step

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies a step within a run. By convention IDs take the form
// "provider:kind:name", e.g. "apt:package:ripgrep".
type ID struct {
	value string
}

// ErrEmptyID is returned when constructing an ID from an empty string.
var ErrEmptyID = errors.New("step ID must not be empty")

// NewID creates a validated step ID.
func NewID(value string) (ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ID{}, ErrEmptyID
	}
	if strings.ContainsAny(trimmed, " \t\n") {
		return ID{}, fmt.Errorf("step ID %q must not contain whitespace", value)
	}
	return ID{value: trimmed}, nil
}

// MustNewID creates an ID and panics on invalid input. For use with
// compile-time constant IDs only.
func MustNewID(value string) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the ID's string form.
func (id ID) String() string {
	return id.value
}

// IsZero reports whether the ID is the zero value.
func (id ID) IsZero() bool {
	return id.value == ""
}
