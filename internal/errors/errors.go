// Package errors provides a lightweight structured error type (IngestError)
// for category-based classification across the fetching and indexing pipeline.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of an ingestion error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"

	// External system integration errors
	CategoryGit        ErrorCategory = "git"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Corpus processing errors
	CategoryMetadata ErrorCategory = "metadata"
	CategoryIndex    ErrorCategory = "index"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops the run
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded metadata
)

// IngestError is a structured error with category, severity, and context
type IngestError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for IngestError
type ContextFields map[string]any

// Error implements the error interface
func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *IngestError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *IngestError) WithContext(key string, value any) *IngestError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new IngestError
func New(category ErrorCategory, severity ErrorSeverity, message string) *IngestError {
	return &IngestError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new IngestError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *IngestError {
	return &IngestError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}
