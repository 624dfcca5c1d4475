// Package errors provides custom error types for the sourcelib system.
// It defines structured errors with context for model resolution, document
// parsing, validation, and I/O operations, supporting errors.Is/As patterns
// for error handling throughout the codebase.
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for general use
var (
	// ErrUnknownModel indicates a model type name that no registered
	// constructor can satisfy
	ErrUnknownModel = errors.New("unknown model type")

	// ErrInvalidDocument indicates a structurally invalid model document
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownModelError indicates a spectral or spatial type name that is not
// present in the model registry. TypeName preserves the unresolvable name
// verbatim and Source names the enclosing source when known.
type UnknownModelError struct {
	Category string // "spectral" or "spatial"
	TypeName string // the unresolvable XML type attribute
	Source   string // enclosing source name, empty when not yet known
}

// Error implements the error interface
func (e *UnknownModelError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("unknown %s model type %q in source %q", e.Category, e.TypeName, e.Source)
	}
	return fmt.Sprintf("unknown %s model type %q", e.Category, e.TypeName)
}

// Is implements errors.Is support
func (e *UnknownModelError) Is(target error) bool {
	return target == ErrUnknownModel
}

// ParseError indicates a document that could not be decoded into models.
// Element narrows the failure to a single XML or YAML element when possible.
type ParseError struct {
	Format  string // "xml" or "yaml"
	Path    string // file path, empty when parsing from memory
	Element string // offending element or attribute, empty for whole-document failures
	Message string
	Err     error // underlying error if any
}

// Error implements the error interface
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s", e.Format)
	if e.Path != "" {
		msg += fmt.Sprintf(" %s", e.Path)
	}
	if e.Element != "" {
		msg += fmt.Sprintf(": %s", e.Element)
	}
	msg += fmt.Sprintf(": %s", e.Message)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NotFoundError indicates a resource was not found
type NotFoundError struct {
	Resource string // type of resource: "source", "parameter", etc.
	Name     string // name that was looked up
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError indicates invalid model data
type ValidationError struct {
	Field   string // field that failed validation
	Value   any    // invalid value
	Message string // description of the problem
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed for %s: %s (value: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IOError indicates a file system operation failure
type IOError struct {
	Operation string // operation being performed: "read", "write", "create"
	Path      string // file path involved
	Err       error  // underlying error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewUnknownModelError creates a new UnknownModelError for an unresolvable
// type name in the given category
func NewUnknownModelError(category, typeName string) *UnknownModelError {
	return &UnknownModelError{
		Category: category,
		TypeName: typeName,
	}
}

// NewParseError creates a new ParseError without an underlying cause
func NewParseError(format, element, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Element: element,
		Message: message,
	}
}

// WrapParse wraps an error as a ParseError for the given format
func WrapParse(err error, format, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, name string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Name:     name,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// WrapIO wraps a file system error with operation context
func WrapIO(err error, operation, path string) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// Error checking helpers

// IsUnknownModel checks if an error indicates an unresolvable model type
func IsUnknownModel(err error) bool {
	return errors.Is(err, ErrUnknownModel)
}

// IsInvalidDocument checks if an error indicates a malformed document
func IsInvalidDocument(err error) bool {
	return errors.Is(err, ErrInvalidDocument)
}

// IsNotFound checks if an error indicates a resource was not found
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error indicates a validation failure
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
