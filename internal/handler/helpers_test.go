package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *testutil.TestServer {
	t.Helper()
	return testutil.NewServer(t, nil)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

// requireJSON asserts the status and the exact JSON body.
func requireJSON(t *testing.T, rec *httptest.ResponseRecorder, status int, body string) {
	t.Helper()

	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	assert.JSONEq(t, body, rec.Body.String())
}

// requireFieldErrors asserts a 400 naming exactly the given fields.
func requireFieldErrors(t *testing.T, rec *httptest.ResponseRecorder, fields ...string) errs.HTTPError {
	t.Helper()

	require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", rec.Body.String())

	body := decode[errs.HTTPError](t, rec)
	got := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		got = append(got, e.Field)
	}
	assert.ElementsMatch(t, fields, got)

	return body
}

// requireBindError asserts a 400 raised while converting the named source.
func requireBindError(t *testing.T, rec *httptest.ResponseRecorder, source string) {
	t.Helper()

	require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", rec.Body.String())
	assert.Contains(t, decode[errs.HTTPError](t, rec).Message, "Invalid "+source)
}
