// Package attnbench structured error types for better error handling
package attnbench

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Input source not parseable as a table at all
	ErrTypeMalformedInput ErrorType = iota
	// Required column absent from the table header
	ErrTypeMissingColumn
	// Invalid argument errors
	ErrTypeInvalidArg
	// Artifact write errors
	ErrTypeWrite
)

// AnalysisError represents a structured error with context
type AnalysisError struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context, e.g. a row number or column name
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("attnbench %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("attnbench %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeMalformedInput:
		return "MalformedInput"
	case ErrTypeMissingColumn:
		return "MissingColumn"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeWrite:
		return "Write"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewMalformedInputError creates a malformed input error
func NewMalformedInputError(op string, message string, err error) error {
	return &AnalysisError{
		Type:    ErrTypeMalformedInput,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewMissingColumnError creates a missing column error. The absent column
// name is carried in Context.
func NewMissingColumnError(op string, column string) error {
	return &AnalysisError{
		Type:    ErrTypeMissingColumn,
		Op:      op,
		Message: fmt.Sprintf("required column %q not found in header", column),
		Context: column,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &AnalysisError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewWriteError creates an artifact write error
func NewWriteError(op string, message string, err error) error {
	return &AnalysisError{
		Type:    ErrTypeWrite,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsMalformedInputError checks if an error is a malformed input error
func IsMalformedInputError(err error) bool {
	var e *AnalysisError
	if errors.As(err, &e) {
		return e.Type == ErrTypeMalformedInput
	}
	return false
}

// IsMissingColumnError checks if an error is a missing column error
func IsMissingColumnError(err error) bool {
	var e *AnalysisError
	if errors.As(err, &e) {
		return e.Type == ErrTypeMissingColumn
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	var e *AnalysisError
	if errors.As(err, &e) {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}
