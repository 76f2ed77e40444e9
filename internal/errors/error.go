package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryReconcile Category = "reconcile"
	CategoryRender    Category = "render"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
)

// PuerroError is a structured error with a code, suggestions, and
// documentation link.
type PuerroError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (reconcile, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PuerroError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PuerroError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *PuerroError) WithDetail(format string, args ...any) *PuerroError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PuerroError) WithSuggestion(s string) *PuerroError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *PuerroError) Wrap(err error) *PuerroError {
	e.Wrapped = err
	return e
}

// New creates a PuerroError from a registered error code.
func New(code string) *PuerroError {
	template, ok := registry[code]
	if !ok {
		return &PuerroError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PuerroError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new PuerroError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PuerroError {
	return &PuerroError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PuerroError.
func FromError(err error, code string) *PuerroError {
	if err == nil {
		return nil
	}
	e := New(code)
	e.Wrapped = err
	return e
}
