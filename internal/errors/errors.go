// Package errors provides sentinel errors, structured error details and exit
// codes for the jproj CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAborted is returned when the operator answers q to the root
	// confirmation or input ends before an answer.
	ErrAborted = errors.New("aborted by user")

	// ErrMalformedTemplate marks an override file that is not a JSON object
	// of relative path lists.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrInvariant marks geometry the engine relies on being violated, such
	// as a package directory outside the project root.
	ErrInvariant = errors.New("invariant violation")

	// ErrValidation marks invalid configuration.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a missing root directory or config file.
	ErrNotFound = errors.New("not found")
)

// templateHint is shown with every malformed template error.
const templateHint = `The override file must be a JSON object mapping a name to a list of relative paths, e.g. {"default": ["src/main/java"]}.`

// DetailError is an error rendered as a labelled block for the terminal.
// Type and Message are always shown; the other fields only when set.
type DetailError struct {
	Type     string
	Message  string
	Location string // file or directory involved
	Field    string // template key or config field involved
	Hint     string
	Cause    error
}

// Error renders the block:
//
//	Error: <Type>
//	  Location: <Location>
//	  Field: <Field>
//
//	  <Message>
//
//	Hint: <Hint>
func (e *DetailError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Error: %s\n", e.Type)

	labelled := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "  %s: %s\n", label, value)
		}
	}
	labelled("Location", e.Location)
	labelled("Field", e.Field)

	fmt.Fprintf(&b, "\n  %s\n", e.Message)

	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s\n", e.Hint)
	}

	return b.String()
}

// Unwrap returns the sentinel or underlying cause.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

func newDetail(cause error, kind, message, location, field, hint string) error {
	return &DetailError{
		Type:     kind,
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    cause,
	}
}

// NewMalformedTemplateError reports an override file at location that could
// not be used. field names the template key when one is involved.
func NewMalformedTemplateError(message, location, field string) error {
	return newDetail(ErrMalformedTemplate, "malformed template", message, location, field, templateHint)
}

// NewValidationError reports invalid configuration.
func NewValidationError(message, location, field, hint string) error {
	return newDetail(ErrValidation, "validation failed", message, location, field, hint)
}

// NewNotFoundError reports a missing directory or file.
func NewNotFoundError(message, location, hint string) error {
	return newDetail(ErrNotFound, "not found", message, location, "", hint)
}
