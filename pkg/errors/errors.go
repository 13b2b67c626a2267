package errors

import (
	"fmt"
	"strings"
)

// AttributeError reports a style, color or markup name that is not present
// in its lookup table. Valid carries every accepted name for diagnostics.
type AttributeError struct {
	Kind  string
	Name  string
	Valid []string
}

// NewAttributeError constructs an AttributeError for the given attribute kind.
func NewAttributeError(kind, name string, valid []string) error {
	return &AttributeError{Kind: kind, Name: name, Valid: valid}
}

func (e *AttributeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid %s %q, available: %s", e.Kind, e.Name, strings.Join(e.Valid, ", "))
}

// AlignmentError reports an unrecognized alignment mode.
type AlignmentError struct {
	Mode  string
	Valid []string
}

// NewAlignmentError constructs an AlignmentError.
func NewAlignmentError(mode string, valid []string) error {
	return &AlignmentError{Mode: mode, Valid: valid}
}

func (e *AlignmentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid alignment %q, available: %s", e.Mode, strings.Join(e.Valid, ", "))
}

// ParseError represents a configuration parsing failure with optional line metadata.
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

// PluginError indicates issues while resolving or registering a plugin.
// Plugin load failures are non-fatal: the loader logs them and continues
// with the remaining plugins.
type PluginError struct {
	Plugin  string
	Message string
	Err     error
}

// NewPluginError constructs a PluginError for the given plugin name.
func NewPluginError(plugin string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PluginError{Plugin: plugin, Message: message, Err: err}
}

func (e *PluginError) Error() string {
	if e == nil {
		return ""
	}
	if e.Plugin != "" {
		return fmt.Sprintf("plugin error [%s]: %s", e.Plugin, e.Message)
	}
	return fmt.Sprintf("plugin error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PluginError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TerminalError reports a failed terminal size query, typically because
// output is not attached to a tty.
type TerminalError struct {
	Err error
}

// NewTerminalError constructs a TerminalError.
func NewTerminalError(err error) error {
	return &TerminalError{Err: err}
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("terminal error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
