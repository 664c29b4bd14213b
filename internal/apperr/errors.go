package apperr

import (
	"fmt"
)

// ForeignOptionError reports an option that is not a member of its category's catalog.
type ForeignOptionError struct {
	Category string
	Value    string
}

// NewForeignOptionError constructs a ForeignOptionError.
func NewForeignOptionError(category, value string) error {
	return &ForeignOptionError{Category: category, Value: value}
}

func (e *ForeignOptionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("option %q is not in the %s catalog", e.Value, e.Category)
}

// ParseError represents a configuration parsing failure.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SourceError reports a failure to load the article from a file or URL.
type SourceError struct {
	Source string
	Err    error
}

// NewSourceError constructs a SourceError.
func NewSourceError(source string, err error) error {
	return &SourceError{Source: source, Err: err}
}

func (e *SourceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("article source %s failed", e.Source)
	}
	return fmt.Sprintf("article source %s: %v", e.Source, e.Err)
}

// Unwrap exposes the underlying error.
func (e *SourceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
