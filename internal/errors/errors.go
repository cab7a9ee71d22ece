package errors

import (
	"errors"
	"net/http"
)

// ValidationError is returned when a required field is missing or malformed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError is returned when a write would violate a uniqueness rule.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError is returned for bad credentials and bad, missing or expired tokens.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError is returned when a requested record does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewValidationError creates a ValidationError.
func NewValidationError(msg string) error { return &ValidationError{Message: msg} }

// NewConflictError creates a ConflictError.
func NewConflictError(msg string) error { return &ConflictError{Message: msg} }

// NewAuthError creates an AuthError.
func NewAuthError(msg string) error { return &AuthError{Message: msg} }

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(msg string) error { return &NotFoundError{Message: msg} }

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Msg  string `json:"msg"`
	Code string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Msg:  e.Message,
		Code: e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy becomes an opaque 500 so store details never reach the caller.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		authErr       *AuthError
		notFoundErr   *NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		return NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_ERROR")
	case errors.As(err, &conflictErr):
		return NewHTTPError(http.StatusConflict, conflictErr.Message, "CONFLICT")
	case errors.As(err, &authErr):
		return NewHTTPError(http.StatusUnauthorized, authErr.Message, "UNAUTHORIZED")
	case errors.As(err, &notFoundErr):
		return NewHTTPError(http.StatusNotFound, notFoundErr.Message, "NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
