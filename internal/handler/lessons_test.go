package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexListsLessons(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	rec := ts.Request(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	lessons := decode[[]model.Lesson](t, rec)
	require.Len(t, lessons, 32)
	assert.Equal(t, "basics", lessons[0].Slug)
	assert.Equal(t, "/basics", lessons[0].Prefix)
}

func TestLessonHello(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodGet, "/basics", ""), http.StatusOK,
		`{"message":"Hello Basics Tutorials!"}`)
	requireJSON(t, ts.Request(http.MethodGet, "/path-params/", ""), http.StatusOK,
		`{"message":"Hello Path Parameters!"}`)
}

func TestPathParams(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"typed id", "/path-params/items/3", http.StatusOK, `{"item_id":3}`},
		{"static beats param", "/path-params/users/me", http.StatusOK, `{"user_id":"This is current item"}`},
		{"string id", "/path-params/users/42", http.StatusOK, `{"user_id":"42"}`},
		{"list", "/path-params/users", http.StatusOK, `["Ricky, Martin"]`},
		{"enum", "/path-params/models/ResNet", http.StatusOK, `{"model_name":"ResNet","message":"Residual Network"}`},
		{"catch-all", "/path-params/files/home/johndoe/myfile.txt", http.StatusOK, `{"file_path":"home/johndoe/myfile.txt"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireJSON(t, ts.Request(http.MethodGet, tt.path, ""), tt.status, tt.body)
		})
	}

	requireBindError(t, ts.Request(http.MethodGet, "/path-params/items/foo", ""), "path parameter")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/path-params/models/VGG", ""), "model_name")
}

func TestQueryParams(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodGet, "/query-params/items", ""), http.StatusOK,
		`[{"item_name":"Foo"},{"item_name":"Bar"},{"item_name":"Baz"}]`)
	requireJSON(t, ts.Request(http.MethodGet, "/query-params/items?skip=1&limit=1", ""), http.StatusOK,
		`[{"item_name":"Bar"}]`)

	requireJSON(t, ts.Request(http.MethodGet, "/query-params/numbers/5?q=hi", ""), http.StatusOK,
		`{"number_id":5,"q":"hi"}`)
	requireFieldErrors(t, ts.Request(http.MethodGet, "/query-params/numbers/5", ""), "q")

	requireJSON(t, ts.Request(http.MethodGet, "/query-params/students/1?stud_name=Ann&status=yes", ""), http.StatusOK,
		`{"student_id":1,"student_name":"Ann"}`)
	requireJSON(t, ts.Request(http.MethodGet, "/query-params/students/1", ""), http.StatusOK,
		`{"student_id":1,"description":"This is a lengthy description"}`)

	requireJSON(t, ts.Request(http.MethodGet, "/query-params/schools/1/area/2", ""), http.StatusOK,
		`{"school_no":1,"area_no":2}`)
	requireJSON(t, ts.Request(http.MethodGet, "/query-params/schools/1/area/2?school_name=KV&school_status=off", ""), http.StatusOK,
		`{"school_no":1,"area_no":2,"school":"KV","status":"Inactive"}`)
}

func TestPathNumericValidations(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodGet, "/path-numeric-validations/pathparams/4?q=abcd", ""), http.StatusOK,
		`{"item_id":4,"query":"abcd"}`)
	requireFieldErrors(t, ts.Request(http.MethodGet, "/path-numeric-validations/pathparams/4?q=ab", ""), "q")

	requireJSON(t, ts.Request(http.MethodGet, "/path-numeric-validations/numbers/5?size=3.5", ""), http.StatusOK,
		`{"item_id":5,"size":3.5}`)
	requireFieldErrors(t, ts.Request(http.MethodGet, "/path-numeric-validations/numbers/0", ""), "item_id")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/path-numeric-validations/numbers/1001", ""), "item_id")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/path-numeric-validations/numbers/5?size=10.5", ""), "size")
}

func TestStringValidations(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	const items = `[{"item_id":"Foo"},{"item_id":"Bar"}]`

	tests := []struct {
		name string
		path string
		body string
	}{
		{"max length", "/string-validations/maxlength?q=abc", `{"items":` + items + `,"query":"abc"}`},
		{"no query", "/string-validations/maxlength", `{"items":` + items + `}`},
		{"min length", "/string-validations/minlength?q=abcd", `{"items":` + items + `,"query":"abcd"}`},
		{"pattern", "/string-validations/regexpressions?q=fixedquery", `{"items":` + items + `,"query":"fixedquery"}`},
		{"required", "/string-validations/required?q=abc", `{"items":` + items + `,"query":"abc"}`},
		{"present but empty", "/string-validations/nonerequired?q=", `{"items":` + items + `}`},
		{"multiple values", "/string-validations/mulvalues?q=a&q=b", `{"items":` + items + `,"query":["a","b"]}`},
		{"default values", "/string-validations/defvalues", `{"items":` + items + `,"query":["Arun","Murugan"]}`},
		{"alias", "/string-validations/alias?item-query=x", `{"items":` + items + `,"query":"x"}`},
		{"hidden missing", "/string-validations/exparams", `{"hidden_parameters":"No data found"}`},
		{"hidden sent", "/string-validations/exparams?hidden_params=abc", `{"hidden_parameters":"abc"}`},
		{"custom known", "/string-validations/custvalidator?id=imdb-tt0371724", `{"id":"imdb-tt0371724","value":"The Hitchhiker's Guide to the Galaxy"}`},
		{"custom unknown", "/string-validations/custvalidator?id=isbn-0", `{"id":"isbn-0","value":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireJSON(t, ts.Request(http.MethodGet, tt.path, ""), http.StatusOK, tt.body)
		})
	}

	requireFieldErrors(t, ts.Request(http.MethodGet, "/string-validations/maxlength?q=toolongq", ""), "q")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/string-validations/minlength?q=ab", ""), "q")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/string-validations/regexpressions?q=nope", ""), "q")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/string-validations/required", ""), "q")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/string-validations/nonerequired", ""), "q")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/string-validations/nonerequired?q=ab", ""), "q")

	for _, path := range []string{
		"/string-validations/custvalidator?id=bad",
		"/string-validations/custvalidator?id=",
	} {
		body := requireFieldErrors(t, ts.Request(http.MethodGet, path, ""), "id")
		assert.Equal(t, "Data is not in proper format", body.Errors[0].Error, path)
	}
}

func TestStringValidationsRandomMedia(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	rec := ts.Request(http.MethodGet, "/string-validations/custvalidator", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]any](t, rec)
	assert.NotEmpty(t, got["id"])
	assert.NotEmpty(t, got["value"])
}

func TestDeprecatedRouteHeader(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	rec := ts.Request(http.MethodGet, "/string-validations/deprecated?item-query=x", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("Deprecation"))

	rec = ts.Request(http.MethodGet, "/string-validations/alias", "")
	assert.Empty(t, rec.Header().Get("Deprecation"))
}

func TestQueryParamModels(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodGet, "/query-param-models/items", ""), http.StatusOK,
		`{"limit":100,"offset":0,"order_by":"created_at","tags":[]}`)
	requireJSON(t, ts.Request(http.MethodGet, "/query-param-models/items?limit=5&order_by=updated_at&tags=a&tags=b", ""), http.StatusOK,
		`{"limit":5,"offset":0,"order_by":"updated_at","tags":["a","b"]}`)

	requireFieldErrors(t, ts.Request(http.MethodGet, "/query-param-models/items?limit=0", ""), "limit")
	requireFieldErrors(t, ts.Request(http.MethodGet, "/query-param-models/items?order_by=name", ""), "order_by")

	// Unknown keys are ignored by the lenient model and rejected by the strict one.
	assert.Equal(t, http.StatusOK, ts.Request(http.MethodGet, "/query-param-models/items?tool=plumbus", "").Code)

	body := requireFieldErrors(t, ts.Request(http.MethodGet, "/query-param-models/forbidextra?limit=5&tool=plumbus", ""), "tool")
	assert.Equal(t, "extra inputs are not permitted", body.Errors[0].Error)
}

func TestTrailingSlashIsIgnored(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	rec := ts.Do(httptest.NewRequest(http.MethodGet, "/path-params/items/3/", nil))
	requireJSON(t, rec, http.StatusOK, `{"item_id":3}`)
}
