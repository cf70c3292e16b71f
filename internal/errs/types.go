package errs

import (
	"net/http"
)

// statusCode derives the machine code from the status text:
// 404 -> "NOT_FOUND", 418 -> "IM_A_TEAPOT". Unknown statuses get "ERROR".
func statusCode(status int) string {
	code := MakeUpperCaseWithUnderscores(http.StatusText(status))
	if code == "" {
		return "ERROR"
	}
	return code
}

func newHTTPError(status int, message string, override bool, code *string) *HTTPError {
	e := &HTTPError{
		Code:     statusCode(status),
		Message:  message,
		Status:   status,
		Override: override,
	}

	// The caller's code is used verbatim.
	if code != nil {
		e.Code = *code
	}

	return e
}

// New creates an HTTPError for any status, with a message safe to show as-is.
func New(status int, message string) *HTTPError {
	return newHTTPError(status, message, true, nil)
}

// NewForbiddenError creates a 403.
func NewForbiddenError(message string, override bool) *HTTPError {
	return newHTTPError(http.StatusForbidden, message, override, nil)
}

// NewBadRequestError creates a 400.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional per-field errors, named by their wire names
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message, override, code)
	e.Errors = errors

	return e
}

// NewNotFoundError creates a 404. Store misses and unknown routes both end up here.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, override, code)
}

// NewInternalServerError creates a 500 whose message is the generic status
// text, never the underlying error.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false, nil)
}
