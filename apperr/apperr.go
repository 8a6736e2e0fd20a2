package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Codes used to distinguish failure classes in responses and logs.
const (
	CodeValidation      = "validation_error"
	CodeNotFound        = "not_found"
	CodeUpstream        = "upstream_error"
	CodeUpstreamTimeout = "upstream_timeout"
	CodePersistence     = "persistence_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(format string, args ...any) *Error {
	return New(http.StatusBadRequest, CodeValidation, fmt.Errorf(format, args...))
}

func NotFound(format string, args ...any) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf(format, args...))
}

func Upstream(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstream, err)
}

// UpstreamTimeout is kept distinct from Upstream so callers can decide
// whether a retry is worth it.
func UpstreamTimeout(err error) *Error {
	return New(http.StatusGatewayTimeout, CodeUpstreamTimeout, err)
}

func Persistence(err error) *Error {
	return New(http.StatusInternalServerError, CodePersistence, err)
}

// Status returns the HTTP status for err, defaulting to 500 for anything
// that is not an *Error.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}
