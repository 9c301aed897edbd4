package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes different error types
type ErrorType string

const (
	// Network errors
	ErrorTypeNetwork ErrorType = "network"
	ErrorTypeTimeout ErrorType = "timeout"

	// Authentication errors
	ErrorTypeUnauthenticated ErrorType = "unauthenticated"

	// Client-side validation errors
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypeImageFormat  ErrorType = "image_format"
	ErrorTypeImageSize    ErrorType = "image_size"

	// Server-side errors
	ErrorTypeRequestFailed     ErrorType = "request_failed"
	ErrorTypeMalformedResponse ErrorType = "malformed_response"

	// Unknown errors
	ErrorTypeUnknown ErrorType = "unknown"
)

// CLIError represents a structured error with context
type CLIError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// WithSuggestion adds a helpful suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *CLIError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewCLIError creates a new CLI error
func NewCLIError(errorType ErrorType, message string, cause error) *CLIError {
	return &CLIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NetworkUnavailable creates a connectivity error, distinct from server failures
func NetworkUnavailable(cause error) *CLIError {
	err := NewCLIError(ErrorTypeNetwork, "Could not reach the server", cause)
	err.Suggestion = "Check your internet connection and try again."
	return err
}

// TimeoutError creates a timeout error
func TimeoutError() *CLIError {
	err := NewCLIError(ErrorTypeTimeout, "Request timed out", nil)
	err.Suggestion = "The server is taking too long to respond. Try again in a moment."
	return err
}

// Unauthenticated creates an error that routes the user to the login gate
func Unauthenticated() *CLIError {
	err := NewCLIError(ErrorTypeUnauthenticated, "Not authenticated", nil)
	err.StatusCode = 401
	err.Suggestion = "Run 'inhack-cli auth login' to sign in."
	return err
}

// ValidationFailed creates a client-side validation error; no request was sent
func ValidationFailed(field, reason string) *CLIError {
	message := fmt.Sprintf("Validation error: %s - %s", field, reason)
	return NewCLIError(ErrorTypeValidation, message, nil)
}

// RequestFailed creates an error for a non-2xx, non-401 response
func RequestFailed(status int, body string) *CLIError {
	err := NewCLIError(ErrorTypeRequestFailed,
		fmt.Sprintf("Server error: %d - %s", status, body), nil)
	err.StatusCode = status
	err.Body = body
	return err
}

// MalformedResponse creates an error for an unexpected response body shape
func MalformedResponse(cause error) *CLIError {
	err := NewCLIError(ErrorTypeMalformedResponse, "Invalid server response", cause)
	err.Suggestion = "The server returned something unexpected. Try again."
	return err
}

// FileNotFoundError creates a file not found error
func FileNotFoundError(path string) *CLIError {
	err := NewCLIError(ErrorTypeFileNotFound, fmt.Sprintf("File not found: %s", path), nil)
	err.Suggestion = "Check the file path and try again."
	return err
}

// ImageFormatError creates a receipt image format error
func ImageFormatError(format string) *CLIError {
	err := NewCLIError(ErrorTypeImageFormat,
		fmt.Sprintf("Unsupported image format: .%s", format),
		nil)
	err.Suggestion = "Supported formats: jpg, jpeg, png, gif, webp. Convert your image and try again."
	return err
}

// ImageSizeError creates a receipt image size error
func ImageSizeError(sizeMB float64, maxMB int) *CLIError {
	err := NewCLIError(ErrorTypeImageSize,
		fmt.Sprintf("File too large: %.1f MB (max: %d MB)", sizeMB, maxMB),
		nil)
	err.Suggestion = fmt.Sprintf("Compress the image to under %d MB and try again.", maxMB)
	return err
}

// IsUnauthenticated reports whether err is the 401 re-authentication signal
func IsUnauthenticated(err error) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Type == ErrorTypeUnauthenticated
	}
	return false
}

// IsValidation reports whether err is a client-side validation failure
func IsValidation(err error) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Type == ErrorTypeValidation
	}
	return false
}

// CategorizeError converts a standard error into a CLIError
func CategorizeError(err error) *CLIError {
	if err == nil {
		return nil
	}

	// Check if it's already a CLIError
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	// Categorize based on error message
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "connection refused"):
		return NetworkUnavailable(err)
	case strings.Contains(errMsg, "no such host"):
		return NetworkUnavailable(err)
	case strings.Contains(errMsg, "timeout"):
		return TimeoutError()
	case strings.Contains(errMsg, "context deadline exceeded"):
		return TimeoutError()
	case strings.Contains(errMsg, "401") || strings.Contains(errMsg, "unauthorized"):
		return Unauthenticated()
	default:
		return NewCLIError(ErrorTypeUnknown, errMsg, err)
	}
}

// FormatError returns a user-friendly error message
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	cliErr := CategorizeError(err)
	var sb strings.Builder

	sb.WriteString("Error")
	if cliErr.Type != ErrorTypeUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(cliErr.Type))
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(cliErr.Message)
	sb.WriteString("\n")

	if cliErr.HasSuggestion() {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(cliErr.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}
