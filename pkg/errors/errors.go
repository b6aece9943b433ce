package errors

import (
	"fmt"
)

// ParseError represents a YAML or JSON parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
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

// ValidationError captures configuration validation issues.
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

// PaletteError indicates issues with palette definitions, registration or lookup.
type PaletteError struct {
	Palette string
	Message string
	Err     error
}

// NewPaletteError constructs a PaletteError for the given palette name.
func NewPaletteError(palette string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PaletteError{Palette: palette, Message: message, Err: err}
}

func (e *PaletteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Palette != "" {
		return fmt.Sprintf("palette error [%s]: %s", e.Palette, e.Message)
	}
	return fmt.Sprintf("palette error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PaletteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
