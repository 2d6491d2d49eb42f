package apperrors

import (
	"errors"
	"net/http"
)

// Error kinds. Domain errors wrap exactly one of these.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrBadRequest      = errors.New("bad request")
	ErrConflict        = errors.New("conflict")
	ErrNotImplemented  = errors.New("not implemented")
	ErrUnavailable     = errors.New("service unavailable")
)

// DomainError carries a client-safe message and the kind it belongs to.
type DomainError struct {
	kind    error
	message string
}

func (e *DomainError) Error() string { return e.message }

func (e *DomainError) Unwrap() error { return e.kind }

// New creates a domain error of the given kind.
func New(kind error, message string) error {
	return &DomainError{kind: kind, message: message}
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request fails schema validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Field + ": " + e.Fields[0].Message
	}
	return "Request validation failed"
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Code: code}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become a
// generic 500 so collaborator details never reach the client.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		he := NewHTTPError(http.StatusUnprocessableEntity, ve.Error(), "VALIDATION_ERROR")
		he.Fields = ve.Fields
		return he
	}

	switch {
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, message(err), "UNAUTHENTICATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, message(err), "FORBIDDEN")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, message(err), "NOT_FOUND")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusUnprocessableEntity, message(err), "VALIDATION_ERROR")
	case errors.Is(err, ErrBadRequest):
		return NewHTTPError(http.StatusBadRequest, message(err), "BAD_REQUEST")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusBadRequest, message(err), "CONFLICT")
	case errors.Is(err, ErrNotImplemented):
		return NewHTTPError(http.StatusNotImplemented, message(err), "NOT_IMPLEMENTED")
	case errors.Is(err, ErrUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, message(err), "UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR")
	}
}

// message returns the outermost domain message, never a wrapped cause.
func message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.message
	}
	return err.Error()
}
