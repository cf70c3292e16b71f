package errs

import "strings"

// FieldError represents a field-level validation error.
// Field is the wire name the client sent (query key, header, JSON key).
//
//	{ "field": "limit", "error": "must not exceed 100" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error type every handler returns to the client.
//
// It is serialized directly to JSON by the global error handler.
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is safe to show as-is.
//   - Errors: per-field validation errors.
//   - Headers: extra response headers, never serialized.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors"`

	Headers map[string]string `json:"-"`
}

// Error returns the Message, so logging the error shows what the client saw.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is makes errors.Is match any *HTTPError, whatever its status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Headers:  e.Headers,
	}
}

// WithHeaders returns a copy carrying the given response headers,
// merged over any the error already had.
func (e *HTTPError) WithHeaders(headers map[string]string) *HTTPError {
	merged := make(map[string]string, len(e.Headers)+len(headers))
	for k, v := range e.Headers {
		merged[k] = v
	}
	for k, v := range headers {
		merged[k] = v
	}

	out := e.WithMessage(e.Message)
	out.Headers = merged

	return out
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
//	"Bad Request" -> "BAD_REQUEST"
//	"I'm a teapot" -> "IM_A_TEAPOT"
func MakeUpperCaseWithUnderscores(str string) string {
	str = strings.ReplaceAll(str, "'", "")
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
