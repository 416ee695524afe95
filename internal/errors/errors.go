package errors

import (
	"errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an error by whose fault it is and how callers see it.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// Error is a domain error with a caller-safe message.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause of an internal error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches sentinel errors by kind and code so wrapped copies still compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// New creates a domain error.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Validation reports a malformed or missing input.
func Validation(message string) *Error {
	return New(KindValidation, "VALIDATION_ERROR", message)
}

// Internal wraps a storage or hashing failure. The cause is kept for logs
// and never rendered to the caller.
func Internal(err error, message string) *Error {
	return &Error{
		Kind:    KindInternal,
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
		cause:   pkgerrors.Wrap(err, message),
	}
}

var (
	// ErrEmailTaken is returned when a user already owns the email.
	ErrEmailTaken = New(KindConflict, "EMAIL_ALREADY_REGISTERED", "email already registered")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = New(KindUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	// ErrCurrentPasswordIncorrect is returned when a password change fails re-verification.
	ErrCurrentPasswordIncorrect = New(KindUnauthorized, "CURRENT_PASSWORD_INCORRECT", "current password incorrect")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid, expired or revoked.
	ErrInvalidRefreshToken = New(KindUnauthorized, "INVALID_REFRESH_TOKEN", "invalid or expired refresh token")
	// ErrForbidden is returned when the caller may not act on the resource.
	ErrForbidden = New(KindForbidden, "FORBIDDEN", "not allowed to access this resource")
	// ErrAdminRegistration is returned when anyone but an admin registers an admin.
	ErrAdminRegistration = New(KindForbidden, "ADMIN_REGISTRATION_FORBIDDEN", "only an admin may register an admin")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = New(KindNotFound, "USER_NOT_FOUND", "user not found")
	// ErrPropertyNotFound is returned when a property id does not resolve.
	ErrPropertyNotFound = New(KindNotFound, "PROPERTY_NOT_FOUND", "property not found")
	// ErrBookingNotFound is returned when a booking id does not resolve.
	ErrBookingNotFound = New(KindNotFound, "BOOKING_NOT_FOUND", "booking not found")
)

// KindOf reports the kind of err. Errors that are not domain errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. A duplicate email is a
// 400 like any other rejected registration.
func MapErrorToHTTP(err error) *HTTPError {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}

	switch e.Kind {
	case KindValidation, KindConflict:
		return NewHTTPError(http.StatusBadRequest, e.Message, e.Code)
	case KindUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, e.Message, e.Code)
	case KindForbidden:
		return NewHTTPError(http.StatusForbidden, e.Message, e.Code)
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, e.Message, e.Code)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
