package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Parallel()

	err := New(http.StatusTeapot, "Oops! yolo did something")

	assert.Equal(t, "IM_A_TEAPOT", err.Code)
	assert.Equal(t, http.StatusTeapot, err.Status)
	assert.True(t, err.Override)
	assert.Equal(t, "Oops! yolo did something", err.Error())
}

func TestNewUnknownStatus(t *testing.T) {
	t.Parallel()

	err := New(599, "odd")
	assert.Equal(t, "ERROR", err.Code)
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	t.Parallel()

	code := "EXTRA_FORBIDDEN"
	fields := []FieldError{{Field: "tool", Error: "extra inputs are not permitted"}}
	err := NewBadRequestError("Validation failed", true, &code, fields)

	assert.Equal(t, "EXTRA_FORBIDDEN", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, fields, err.Errors)
}

func TestNotFoundDefaultCode(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("Information not available", false, nil)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
}

func TestWithHeadersCopies(t *testing.T) {
	t.Parallel()

	base := NewNotFoundError("Item not found", true, nil)
	withHeader := base.WithHeaders(map[string]string{"X-Error": "There goes my error"})
	again := withHeader.WithHeaders(map[string]string{"X-Other": "1"})

	assert.Nil(t, base.Headers)
	assert.Equal(t, map[string]string{"X-Error": "There goes my error"}, withHeader.Headers)
	assert.Equal(t, "There goes my error", again.Headers["X-Error"])
	assert.Equal(t, "1", again.Headers["X-Other"])
	assert.Equal(t, base.Message, again.Message)
}

func TestIsMatchesAnyHTTPError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("lookup: %w", NewForbiddenError("nope", false))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))
}
