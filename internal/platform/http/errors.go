package http

import (
	"errors"
	"net/http"

	"blog/internal/platform/repository"
)

// Error carries the status and client-facing message of a failed request.
// Err stays server side and only reaches the logs.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewBadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NewConflict(message string, err error) *Error {
	return New(http.StatusConflict, message, err)
}

func NewServiceUnavailable(message string, err error) *Error {
	return New(http.StatusServiceUnavailable, message, err)
}

// FromStoreError maps repository failures to 409 and 503, naming subject in the
// message. Any other error yields nil so callers can fall through.
func FromStoreError(err error, subject string) *Error {
	switch {
	case errors.Is(err, repository.ErrConstraintViolation):
		return NewConflict(subject+" conflicts with stored data", err)
	case errors.Is(err, repository.ErrStoreUnavailable):
		return NewServiceUnavailable(subject+" storage is unavailable", err)
	default:
		return nil
	}
}
