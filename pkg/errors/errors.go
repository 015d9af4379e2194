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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Engine configuration errors
	ErrUnknownProperty          ErrorCode = "UNKNOWN_PROPERTY"
	ErrUnsupportedFrameworkKind ErrorCode = "UNSUPPORTED_FRAMEWORK_KIND"
	ErrInvalidPattern           ErrorCode = "INVALID_PATTERN"
	ErrRuntimeGraph             ErrorCode = "RUNTIME_GRAPH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Input/output errors
	ErrListingRead  ErrorCode = "LISTING_READ"
	ErrOutputFormat ErrorCode = "OUTPUT_FORMAT"
)

// AssetError represents a structured error with code and details
type AssetError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AssetError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AssetError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AssetError) Is(target error) bool {
	var targetErr *AssetError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AssetError with the given code and message
func New(code ErrorCode, message string) *AssetError {
	return &AssetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AssetError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AssetError {
	return &AssetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AssetError
func Wrap(err error, code ErrorCode, message string) *AssetError {
	if err == nil {
		return nil
	}
	return &AssetError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AssetError {
	if err == nil {
		return nil
	}
	return &AssetError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AssetError) WithDetail(key string, value interface{}) *AssetError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var assetErr *AssetError
	if errors.As(err, &assetErr) {
		return assetErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AssetError
func GetErrorCode(err error) ErrorCode {
	var assetErr *AssetError
	if errors.As(err, &assetErr) {
		return assetErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AssetError
func GetErrorDetails(err error) map[string]interface{} {
	var assetErr *AssetError
	if errors.As(err, &assetErr) {
		return assetErr.Details
	}
	return nil
}
