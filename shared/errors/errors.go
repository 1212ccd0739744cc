package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds of failure a caller of the API can observe. Match them with errors.Is.
var (
	ErrNetwork    = errors.New("network error")
	ErrServer     = errors.New("server error")
	ErrAuth       = errors.New("not authorized")
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// APIError describes a failed call to the remote service.
// It unwraps to both its Kind and the underlying cause.
type APIError struct {
	Op         string
	StatusCode int // 0 for transport failures
	Message    string
	Kind       error
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Op, e.Kind, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindForStatus maps a non-success HTTP status to an error kind.
func KindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrServer
	}
}

// FromStatus builds an APIError for a non-success response.
func FromStatus(op string, status int, message string) *APIError {
	return &APIError{Op: op, StatusCode: status, Message: message, Kind: KindForStatus(status)}
}

// Network wraps a transport failure.
func Network(op string, err error) *APIError {
	return &APIError{Op: op, Kind: ErrNetwork, Err: err}
}

// Validation builds a ValidationError that never reached the network.
func Validation(op string, err error) *APIError {
	return &APIError{Op: op, Kind: ErrValidation, Err: err}
}

// StatusCode returns the HTTP status a handler should answer with for err.
func StatusCode(err error) int {
	var withStatus *ErrorWithStatusCode
	if errors.As(err, &withStatus) {
		return withStatus.StatusCode
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode
	}
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
