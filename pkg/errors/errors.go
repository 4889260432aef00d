package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - input validation and lookups
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeAlreadyExists

	// Infrastructure errors - the weather provider and local storage
	ErrorTypeDatabase
	ErrorTypeExternalAPI
	ErrorTypeHTTP
	ErrorTypeAuthentication
	ErrorTypeNetwork
	ErrorTypeMalformedResponse

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAlreadyExists:
		return "ALREADY_EXISTS_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeHTTP:
		return "HTTP_ERROR"
	case ErrorTypeAuthentication:
		return "AUTHENTICATION_ERROR"
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeMalformedResponse:
		return "MALFORMED_RESPONSE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters and tests
const (
	ValidationError        = ErrorTypeValidation
	NotFoundError          = ErrorTypeNotFound
	AlreadyExistsError     = ErrorTypeAlreadyExists
	DatabaseError          = ErrorTypeDatabase
	ExternalAPIError       = ErrorTypeExternalAPI
	HTTPError              = ErrorTypeHTTP
	AuthenticationError    = ErrorTypeAuthentication
	NetworkError           = ErrorTypeNetwork
	MalformedResponseError = ErrorTypeMalformedResponse
	ConfigurationError     = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	// StatusCode is the provider HTTP status for HTTP, NotFound and Authentication errors.
	StatusCode int
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(AlreadyExistsError, message)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// NewHTTPError classifies a non-success provider status. 401/403 become
// authentication errors and 404 a not-found error; the status is kept either way.
func NewHTTPError(statusCode int, message string) *AppError {
	errType := HTTPError
	switch statusCode {
	case 401, 403:
		errType = AuthenticationError
	case 404:
		errType = NotFoundError
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NewNetworkError(message string, cause error) *AppError {
	return Wrap(NetworkError, message, cause)
}

func NewMalformedResponseError(message string, cause error) *AppError {
	return Wrap(MalformedResponseError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the ErrorType of the first AppError in the chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsAlreadyExistsError(err error) bool {
	return TypeOf(err) == AlreadyExistsError
}

func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsDatabaseError(err error) bool {
	return TypeOf(err) == DatabaseError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}

func IsNetworkError(err error) bool {
	return TypeOf(err) == NetworkError
}

func IsMalformedResponseError(err error) bool {
	return TypeOf(err) == MalformedResponseError
}

// IsHTTPError reports any provider rejection: plain HTTP, authentication or not-found.
func IsHTTPError(err error) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.StatusCode != 0
}

// StatusCodeOf returns the provider HTTP status carried by the error chain, or 0.
func StatusCodeOf(err error) int {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return 0
	}
	return appErr.StatusCode
}
