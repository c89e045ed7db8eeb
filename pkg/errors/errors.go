// Package errors defines the application's error codes.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the application, one per spec.md §7 failure kind.
const (
	CodeUnknown        = "UNKNOWN_ERROR"
	CodeConfigError    = "CONFIG_ERROR"
	CodeIOError        = "IO_ERROR"
	CodeAllocError     = "ALLOC_ERROR"
	CodePrecisionError = "PRECISION_ERROR"
	CodeTopologyError  = "TOPOLOGY_ERROR"
	CodeThreadError    = "THREAD_ERROR"
)

// AppError represents an application error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error instances, one per spec.md §7 kind.
var (
	ErrConfigError    = New(CodeConfigError, "configuration error")
	ErrIOError        = New(CodeIOError, "i/o error")
	ErrAllocError     = New(CodeAllocError, "allocation error")
	ErrPrecisionError = New(CodePrecisionError, "precision error")
	ErrTopologyError  = New(CodeTopologyError, "topology error")
	ErrThreadError    = New(CodeThreadError, "thread error")
)

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool { return errors.Is(err, ErrConfigError) }

// IsPrecisionError reports whether err is a precision error.
func IsPrecisionError(err error) bool { return errors.Is(err, ErrPrecisionError) }

// IsTopologyError reports whether err is a topology error.
func IsTopologyError(err error) bool { return errors.Is(err, ErrTopologyError) }

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetErrorMessage extracts the error message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// ExitCode maps an error's code to a process exit status, the Go
// rendition of grant.c's exit(-1) calls scattered through every module:
// here each kind gets its own distinct nonzero code instead of a single
// flat failure value.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCode(err) {
	case CodeConfigError:
		return 2
	case CodeIOError:
		return 3
	case CodeAllocError:
		return 4
	case CodePrecisionError:
		return 5
	case CodeTopologyError:
		return 6
	case CodeThreadError:
		return 7
	default:
		return 1
	}
}
