package errors

import (
	"fmt"
)

// ParseError represents a profile or catalog parsing failure with optional line metadata.
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

// ThemeError reports an unknown theme id or a preset whose stylesheet cannot be used.
type ThemeError struct {
	ThemeID string
	Message string
	Err     error
}

// NewThemeError constructs a ThemeError for the given theme id.
func NewThemeError(themeID, message string, err error) error {
	return &ThemeError{ThemeID: themeID, Message: message, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.ThemeID != "" {
		return fmt.Sprintf("theme error [%s]: %s", e.ThemeID, e.Message)
	}
	return fmt.Sprintf("theme error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError indicates an export artifact could not be rendered or written.
type ExportError struct {
	Artifact string
	Err      error
}

// NewExportError constructs an ExportError for the named artifact.
func NewExportError(artifact string, err error) error {
	return &ExportError{Artifact: artifact, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Artifact != "" {
		return fmt.Sprintf("export error [%s]: %v", e.Artifact, e.Err)
	}
	return fmt.Sprintf("export error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
