package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
//   - Define a request struct with binding tags (`query:"q"`) and validator tags (`validate:"max=6"`)
//   - Implement Validate() error that runs validation.Struct(req)
//   - Return CustomValidationErrors for rules tags cannot express
type Validatable interface {
	Validate() error
}

// Defaulter is implemented by payloads with non-zero defaults.
// SetDefaults runs on a fresh payload before binding, so sent values win.
type Defaulter interface {
	SetDefaults()
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate fills payload from the request and validates it.
//
// Flow:
//  1. SetDefaults, when the payload has defaults.
//  2. Bind path, query, header, cookie and body values (see bind).
//  3. Reject undeclared keys when the payload is Strict.
//  4. payload.Validate().
//
// Every failure is a *errs.HTTPError: 400 for bad input, or whatever status
// the binder chose (415 for an unsupported body type).
func BindAndValidate(c echo.Context, payload Validatable) error {
	if d, ok := payload.(Defaulter); ok {
		d.SetDefaults()
	}

	if err := bind(c, payload); err != nil {
		return err
	}

	if s, ok := payload.(Strict); ok {
		if fieldErrors := extraInputs(c, payload, s.ForbidExtra()); len(fieldErrors) > 0 {
			return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors)
		}
	}

	return validateStruct(payload)
}

// validateStruct calls v.Validate() and converts the result into an HTTPError.
func validateStruct(v Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	// Payloads may return a ready-made HTTPError (e.g. a 404 for an unknown enum path).
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	// A non-struct passed to the validator is a programming error, not bad input.
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	msg, fieldErrors := extractValidationError(err)
	return errs.NewBadRequestError(msg, true, nil, fieldErrors)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed: " + err.Error(), nil
	}

	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fieldPath(err),
			Error: tagMessage(err),
		})
	}

	return "Validation failed", fieldErrors
}

// tagMessage converts a single validator failure into a client-facing message.
func tagMessage(err validator.FieldError) string {
	kind := err.Kind()
	if kind == reflect.Ptr {
		kind = err.Type().Elem().Kind()
	}

	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		// min means length for strings, size for collections, value for numbers.
		switch kind {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", err.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("must contain at least %s items", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		switch kind {
		case reflect.String:
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("must not contain more than %s items", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "len":
		return fmt.Sprintf("must be exactly %s characters", err.Param())

	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", err.Param())

	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	case "email":
		return "must be a valid email address"

	case "url", "http_url":
		return "must be a valid URL"

	case "uuid", "uuid4":
		return "must be a valid UUID"

	case "pattern":
		return fmt.Sprintf("must match pattern %s", err.Param())

	default:
		// Fallback for tags not explicitly handled above.
		if err.Param() != "" {
			return fmt.Sprintf("failed on %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed on %s", err.Tag())
	}
}

// uuidRegex matches standard UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidUUID checks whether a string matches UUID format.
//
// Note: This validates format only. It does not validate UUID version/variant semantics.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(uuid)
}
