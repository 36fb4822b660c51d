// Package errors provides centralized error definitions and error handling utilities
// for the factors codebase. It defines domain-specific errors, semantic error types,
// error constructors with context wrapping, and error classification helpers.
//
// # Error Types
//
// Domain-specific errors represent failures of the factor computation or of the
// program's surroundings:
//   - DivisionByZeroError: a zero candidate divisor met during a factor scan
//   - ConfigError: a configuration file that cannot be read or decoded
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid input or state
//   - UsageError: a command line that cannot be parsed
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewDivisionByZeroError(10, 3)
//	err := errors.NewValidationError("unknown zero policy").WithField("factor.zero_policy")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrDivisionByZero) { ... }
//
//	var dbz *errors.DivisionByZeroError
//	if errors.As(err, &dbz) { ... }
//
//	if errors.IsUserFacing(err) { ... }
//
// # Error Classification
//
// Errors can be classified by severity and behavior:
//   - UserFacing: errors safe to display to users (vs internal errors)
//   - Severity: Debug, Info, Warning, Error, Critical
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Computation sentinel errors
var (
	// ErrDivisionByZero indicates that a zero was used as a candidate divisor.
	ErrDivisionByZero = New("division by zero")
)

// Configuration sentinel errors
var (
	// ErrConfigUnreadable indicates that a config file exists but could not be read.
	ErrConfigUnreadable = New("config file unreadable")
	// ErrConfigExists indicates that a config file is already present.
	ErrConfigExists = New("config file already exists")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// FactorsError is the base interface for all errors defined in this package.
// It extends the standard error interface with additional methods for
// error handling and classification.
type FactorsError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// DivisionByZeroError reports a zero candidate divisor met while collecting
// the factors of Term. Index is the position of the zero in the subject list.
//
// Example:
//
//	err := errors.NewDivisionByZeroError(5, 0)
//	fmt.Println(err) // "division by zero [term=5, index=0]: candidate divisor is zero"
type DivisionByZeroError struct {
	baseError
	Term  int
	Index int
}

// NewDivisionByZeroError creates a new DivisionByZeroError.
func NewDivisionByZeroError(term, index int) *DivisionByZeroError {
	return &DivisionByZeroError{
		baseError: baseError{
			message:    "candidate divisor is zero",
			severity:   SeverityError,
			userFacing: true,
		},
		Term:  term,
		Index: index,
	}
}

// Error returns the formatted error message.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero [term=%d, index=%d]: %s", e.Term, e.Index, e.message)
}

// Is checks if this error matches the target.
func (e *DivisionByZeroError) Is(target error) bool {
	if _, ok := target.(*DivisionByZeroError); ok {
		return true
	}
	if target == ErrDivisionByZero {
		return true
	}
	return e.baseError.Is(target)
}

// ConfigError represents a failure to read or decode configuration.
//
// Example:
//
//	err := errors.NewConfigError("failed to read config", parseErr).WithPath("/etc/factors.yaml")
type ConfigError struct {
	baseError
	Path string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithPath adds the config file path to the error context.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	prefix := "config error"
	if e.Path != "" {
		prefix = fmt.Sprintf("config error [path=%s]", e.Path)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("unknown zero policy")
//	err = err.WithField("factor.zero_policy").WithValue("panic")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// UsageError reports a command line the program cannot act on, such as an
// unexpected argument or an unknown flag.
type UsageError struct {
	baseError
}

// NewUsageError wraps a command line parsing failure.
func NewUsageError(cause error) *UsageError {
	return &UsageError{
		baseError: baseError{
			message:    "invalid usage",
			cause:      cause,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// Is checks if this error matches the target.
func (e *UsageError) Is(target error) bool {
	if _, ok := target.(*UsageError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    fmt.Fprintln(os.Stderr, err)
//	} else {
//	    fmt.Fprintln(os.Stderr, "an internal error occurred")
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var fe FactorsError
	if As(err, &fe) {
		return fe.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement FactorsError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var fe FactorsError
	if As(err, &fe) {
		return fe.Severity()
	}

	// Default to Error severity for unknown errors
	return SeverityError
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// Unlike fmt.Errorf with %w, this returns nil for a nil error.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to compute factors")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
