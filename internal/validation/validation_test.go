package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchRequest struct {
	ID    int     `param:"id"`
	Q     *string `query:"q" validate:"required,min=3"`
	Limit int     `query:"limit" validate:"gte=1,lte=100"`
	Token string  `header:"X-Token"`
	Theme *string `cookie:"theme"`
}

func (r *searchRequest) SetDefaults()    { r.Limit = 10 }
func (r *searchRequest) Validate() error { return Struct(r) }

type strictQuery struct {
	Limit int `query:"limit"`
}

func (r *strictQuery) ForbidExtra() Source { return SourceQuery }
func (r *strictQuery) Validate() error     { return nil }

type customRule struct {
	ID *string `query:"id"`
}

func (r *customRule) Validate() error {
	if r.ID != nil && !strings.HasPrefix(*r.ID, "isbn-") {
		return CustomValidationErrors{{Field: "id", Message: "Data is not in proper format"}}
	}
	return nil
}

func newContext(req *http.Request, names, values []string) echo.Context {
	e := echo.New()
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

func httpError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestBindAndValidateAllSources(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search/7?q=fixed&limit=5", nil)
	req.Header.Set("x-token", "secret")
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})

	var payload searchRequest
	err := BindAndValidate(newContext(req, []string{"id"}, []string{"7"}), &payload)
	require.NoError(t, err)

	assert.Equal(t, 7, payload.ID)
	assert.Equal(t, "fixed", *payload.Q)
	assert.Equal(t, 5, payload.Limit)
	assert.Equal(t, "secret", payload.Token)
	require.NotNil(t, payload.Theme)
	assert.Equal(t, "dark", *payload.Theme)
}

func TestBindAndValidateDefaults(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search/1?q=abc", nil)

	var payload searchRequest
	require.NoError(t, BindAndValidate(newContext(req, []string{"id"}, []string{"1"}), &payload))
	assert.Equal(t, 10, payload.Limit)
	assert.Nil(t, payload.Theme)
}

func TestBindAndValidateReportsWireNames(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search/1?q=ab&limit=500", nil)

	var payload searchRequest
	err := BindAndValidate(newContext(req, []string{"id"}, []string{"1"}), &payload)
	httpErr := httpError(t, err)

	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "q", Error: "must be at least 3 characters"},
		{Field: "limit", Error: "must be less than or equal to 100"},
	}, httpErr.Errors)
}

func TestBindAndValidateMissingRequired(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search/1", nil)

	var payload searchRequest
	httpErr := httpError(t, BindAndValidate(newContext(req, []string{"id"}, []string{"1"}), &payload))
	assert.Equal(t, []errs.FieldError{{Field: "q", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidateBadPathParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/search/seven?q=abc", nil)

	var payload searchRequest
	httpErr := httpError(t, BindAndValidate(newContext(req, []string{"id"}, []string{"seven"}), &payload))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestBindAndValidateBadCookie(t *testing.T) {
	t.Parallel()

	type cookiePayload struct {
		SessionID *int `cookie:"session_id" validate:"required"`
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "abc"})

	err := bind(newContext(req, nil, nil), &cookiePayload{})
	httpErr := httpError(t, err)

	assert.Equal(t, "Invalid cookie", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "session_id", Error: "must be an integer"}}, httpErr.Errors)
}

func TestForbidExtraQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?limit=1&tool=plumbus&zeta=1", nil)

	httpErr := httpError(t, BindAndValidate(newContext(req, nil, nil), &strictQuery{}))
	assert.Equal(t, []errs.FieldError{
		{Field: "tool", Error: extraForbidden},
		{Field: "zeta", Error: extraForbidden},
	}, httpErr.Errors)
}

func TestForbidExtraHeaderToleratesTransportHeaders(t *testing.T) {
	t.Parallel()

	type strictHeader struct {
		Tag string `header:"x-tag"`
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "test")
	req.Header.Set("X-Tag", "a")
	req.Header.Set("X-Extra", "b")

	extra := extraInputs(newContext(req, nil, nil), &strictHeader{}, SourceHeader)
	assert.Equal(t, []errs.FieldError{{Field: "x-extra", Error: extraForbidden}}, extra)
}

func TestForbidExtraForm(t *testing.T) {
	t.Parallel()

	type strictForm struct {
		Chip string `form:"chip"`
	}

	form := url.Values{"chip": {"m1"}, "tuner": {"analog"}}
	req := httptest.NewRequest(http.MethodPost, "/?ignored=1", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	extra := extraInputs(newContext(req, nil, nil), &strictForm{}, SourceForm)
	assert.Equal(t, []errs.FieldError{{Field: "tuner", Error: extraForbidden}}, extra)
}

func TestCustomValidationErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?id=imdb", nil)

	httpErr := httpError(t, BindAndValidate(newContext(req, nil, nil), &customRule{}))
	assert.Equal(t, []errs.FieldError{{Field: "id", Error: "Data is not in proper format"}}, httpErr.Errors)
}

func TestBindJSONBody(t *testing.T) {
	t.Parallel()

	type item struct {
		Name  string   `json:"name" validate:"required"`
		Price float64  `json:"price" validate:"gt=0"`
		Tags  []string `json:"tags"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Foo","price":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	var payload item
	require.NoError(t, bind(newContext(req, nil, nil), &payload))
	assert.Equal(t, "Foo", payload.Name)

	err := Struct(&payload)
	require.Error(t, err)
	_, fields := extractValidationError(err)
	assert.Equal(t, []errs.FieldError{{Field: "price", Error: "must be greater than 0"}}, fields)
}

func TestPatternTag(t *testing.T) {
	t.Parallel()

	type fixed struct {
		Q string `query:"q" validate:"pattern=^fixedquery$"`
	}

	assert.NoError(t, Struct(&fixed{Q: "fixedquery"}))

	err := Struct(&fixed{Q: "fixed"})
	require.Error(t, err)
	_, fields := extractValidationError(err)
	assert.Equal(t, []errs.FieldError{{Field: "q", Error: "must match pattern ^fixedquery$"}}, fields)
}

func TestEmbeddedFieldPath(t *testing.T) {
	t.Parallel()

	type image struct {
		URL string `json:"url" validate:"url"`
	}
	type base struct {
		Image *image `json:"image"`
	}
	type request struct {
		ID string `param:"id"`
		base
	}

	err := Struct(&request{base: base{Image: &image{URL: "not a url"}}})
	require.Error(t, err)
	_, fields := extractValidationError(err)
	assert.Equal(t, []errs.FieldError{{Field: "image.url", Error: "must be a valid URL"}}, fields)
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("0191d2a8-5c1e-7d5a-9b7e-1f2a3b4c5d6e"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}
