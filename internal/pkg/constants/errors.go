package constants

import "net/http"

// CodedError carries the HTTP status code the API error handler should respond with.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

// NewValidationError wraps a user-input problem. These are surfaced to the user
// verbatim and never retried.
func NewValidationError(msg string) *CodedError {
	return NewCodedError(http.StatusBadRequest, msg)
}

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden         = NewCodedError(http.StatusForbidden, "forbidden")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrNotAFeed          = NewCodedError(http.StatusBadGateway, "menu source did not return an RSS/XML feed (check RSS URL)")
)
