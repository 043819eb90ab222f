package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Object model errors
	ErrTypeMismatch ErrorCode = "TYPE_MISMATCH"
	ErrCycle        ErrorCode = "CYCLE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Definition file errors
	ErrSheetFormat ErrorCode = "SHEET_FORMAT"
	ErrSheetParse  ErrorCode = "SHEET_PARSE"
	ErrSheetBuild  ErrorCode = "SHEET_BUILD"

	// FileSystem and output errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrRender    ErrorCode = "RENDER"
)

// LydioError represents a structured error with code and details
type LydioError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LydioError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LydioError) Unwrap() error {
	return e.Wrapped
}

// Is matches any LydioError carrying the same code
func (e *LydioError) Is(target error) bool {
	var targetErr *LydioError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LydioError with the given code and message
func New(code ErrorCode, message string) *LydioError {
	return &LydioError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LydioError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LydioError {
	return &LydioError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LydioError
func Wrap(err error, code ErrorCode, message string) *LydioError {
	if err == nil {
		return nil
	}
	return &LydioError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LydioError {
	if err == nil {
		return nil
	}
	return &LydioError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LydioError) WithDetail(key string, value interface{}) *LydioError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LydioError) WithDetails(details map[string]interface{}) *LydioError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lydioErr *LydioError
	if errors.As(err, &lydioErr) {
		return lydioErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LydioError
func GetErrorCode(err error) ErrorCode {
	var lydioErr *LydioError
	if errors.As(err, &lydioErr) {
		return lydioErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LydioError
func GetErrorDetails(err error) map[string]interface{} {
	var lydioErr *LydioError
	if errors.As(err, &lydioErr) {
		return lydioErr.Details
	}
	return nil
}
