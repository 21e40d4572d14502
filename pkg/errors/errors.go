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

	// Pair errors
	ErrTagInvalid      ErrorCode = "TAG_INVALID"
	ErrIconInvalid     ErrorCode = "ICON_INVALID"
	ErrIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// Settings errors
	ErrSettingsLoad  ErrorCode = "SETTINGS_LOAD"
	ErrSettingsParse ErrorCode = "SETTINGS_PARSE"
	ErrSettingsSave  ErrorCode = "SETTINGS_SAVE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Vault errors
	ErrVaultNotFound ErrorCode = "VAULT_NOT_FOUND"

	// FileSystem errors
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrSnippetWrite ErrorCode = "SNIPPET_WRITE"
)

// TagiconsError represents a structured error with code and details
type TagiconsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TagiconsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TagiconsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TagiconsError) Is(target error) bool {
	var targetErr *TagiconsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TagiconsError with the given code and message
func New(code ErrorCode, message string) *TagiconsError {
	return &TagiconsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TagiconsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TagiconsError {
	return &TagiconsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TagiconsError
func Wrap(err error, code ErrorCode, message string) *TagiconsError {
	if err == nil {
		return nil
	}
	return &TagiconsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TagiconsError {
	if err == nil {
		return nil
	}
	return &TagiconsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TagiconsError) WithDetail(key string, value interface{}) *TagiconsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tagiconsErr *TagiconsError
	if errors.As(err, &tagiconsErr) {
		return tagiconsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TagiconsError
func GetErrorCode(err error) ErrorCode {
	var tagiconsErr *TagiconsError
	if errors.As(err, &tagiconsErr) {
		return tagiconsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TagiconsError
func GetErrorDetails(err error) map[string]interface{} {
	var tagiconsErr *TagiconsError
	if errors.As(err, &tagiconsErr) {
		return tagiconsErr.Details
	}
	return nil
}
