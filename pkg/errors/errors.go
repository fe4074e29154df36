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

	// Environment errors
	ErrEnvUserNotFound ErrorCode = "ENV_USER_NOT_FOUND"
	ErrEnvHomeNotFound ErrorCode = "ENV_HOME_NOT_FOUND"
	ErrEnvFile         ErrorCode = "ENV_FILE"

	// Configuration errors
	ErrReadConfigFile    ErrorCode = "READ_CONFIG_FILE"
	ErrParseConfig       ErrorCode = "PARSE_CONFIG"
	ErrNoCommandProvided ErrorCode = "NO_COMMAND_PROVIDED"
	ErrSettingsLoad      ErrorCode = "SETTINGS_LOAD"

	// Interactive errors
	ErrStandardInput ErrorCode = "STANDARD_INPUT"

	// Path resolution errors
	ErrCanonicalizePath ErrorCode = "CANONICALIZE_PATH"

	// FileSystem errors
	ErrCreateDirectory  ErrorCode = "CREATE_DIRECTORY"
	ErrCreateFile       ErrorCode = "CREATE_FILE"
	ErrCreateSymbolLink ErrorCode = "CREATE_SYMBOL_LINK"
	ErrCopyFile         ErrorCode = "COPY_FILE"
	ErrCopyDirectory    ErrorCode = "COPY_DIRECTORY"
	ErrRemoveFile       ErrorCode = "REMOVE_FILE"
	ErrRemoveDirectory  ErrorCode = "REMOVE_DIRECTORY"

	// Process errors
	ErrSpawnCommand ErrorCode = "SPAWN_COMMAND"
	ErrWaitCommand  ErrorCode = "WAIT_COMMAND"
)

// AxdotError represents a structured error with code and details
type AxdotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AxdotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AxdotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface; two errors match when their codes do.
func (e *AxdotError) Is(target error) bool {
	var targetErr *AxdotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AxdotError with the given code and message
func New(code ErrorCode, message string) *AxdotError {
	return &AxdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AxdotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AxdotError {
	return &AxdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AxdotError
func Wrap(err error, code ErrorCode, message string) *AxdotError {
	if err == nil {
		return nil
	}
	return &AxdotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AxdotError {
	if err == nil {
		return nil
	}
	return &AxdotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AxdotError) WithDetail(key string, value interface{}) *AxdotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var axErr *AxdotError
	if errors.As(err, &axErr) {
		return axErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AxdotError
func GetErrorCode(err error) ErrorCode {
	var axErr *AxdotError
	if errors.As(err, &axErr) {
		return axErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AxdotError
func GetErrorDetails(err error) map[string]interface{} {
	var axErr *AxdotError
	if errors.As(err, &axErr) {
		return axErr.Details
	}
	return nil
}
