// Package errors provides custom error types for the gobytes library.
// These errors enable programmatic error checking across the messaging,
// logging, and configuration packages.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the gobytes library
var (
	// ErrEmptyMessage indicates a message was rendered with no text
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrUnknownColor indicates a color name not present in the palette
	ErrUnknownColor = errors.New("unknown color")

	// ErrUnknownLevel indicates an unrecognized log level name
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ColorError represents a reference to a color name that is not in the palette
type ColorError struct {
	Name string
}

// Error implements the error interface
func (e *ColorError) Error() string {
	return fmt.Sprintf("unknown color %q", e.Name)
}

// Is implements errors.Is support
func (e *ColorError) Is(target error) bool {
	return target == ErrUnknownColor
}

// NewColorError creates a new ColorError
func NewColorError(name string) *ColorError {
	return &ColorError{Name: name}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsEmptyMessage checks if an error is an empty message error
func IsEmptyMessage(err error) bool {
	return errors.Is(err, ErrEmptyMessage)
}

// IsUnknownColor checks if an error is an unknown color error
func IsUnknownColor(err error) bool {
	return errors.Is(err, ErrUnknownColor)
}

// IsUnknownLevel checks if an error is an unknown log level error
func IsUnknownLevel(err error) bool {
	return errors.Is(err, ErrUnknownLevel)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapConfig wraps an error as a ConfigError
func WrapConfig(component string, err error) error {
	if err == nil {
		return nil
	}
	return NewConfigError(component, err.Error(), err)
}
