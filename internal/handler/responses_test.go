package handler_test

import (
	"net/http"
	"testing"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseStatusCode(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodPost, "/response-status-code/status?name=Vel", ""), http.StatusCreated,
		`{"name":"Vel"}`)
	requireJSON(t, ts.Request(http.MethodPost, "/response-status-code/information?full_name=Vel%20Murugan", ""),
		http.StatusCreated, `{"details":"Vel Murugan"}`)
	requireFieldErrors(t, ts.Request(http.MethodPost, "/response-status-code/status", ""), "name")
}

func TestResponseModel(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodPost, "/response-model/response-type", `{"name":"Foo","price":1}`),
		http.StatusOK, `{"name":"Foo","price":1,"tags":[]}`)
	requireJSON(t, ts.Request(http.MethodPost, "/response-model/sockets", `{"name":"Foo","price":1,"tax":0.1,"tags":["a"]}`),
		http.StatusOK, `{"name":"Foo","price":1,"tax":0.1,"tags":["a"]}`)

	requireJSON(t, ts.Request(http.MethodPost, "/response-model/response-type", `{"name":"Free","price":0}`),
		http.StatusOK, `{"name":"Free","price":0,"tags":[]}`)
	requireFieldErrors(t, ts.Request(http.MethodPost, "/response-model/response-type", `{"name":"Foo"}`), "price")

	const anyModel = `{"name":"Ignored","price":0}`

	requireJSON(t, ts.Request(http.MethodPost, "/response-model/electricity", anyModel), http.StatusOK,
		`[{"name":"Senthilandavar","description":"Murugan Name","price":666666,"tax":666.666,
		   "tags":["ArunagiriNathar","Gugan","Dhandayudhani"]}]`)
	requireJSON(t, ts.Request(http.MethodPost, "/response-model/floors", anyModel), http.StatusOK,
		`[{"name":"Valliammai","description":"Murugan Wife Name","price":66.6666,"tax":6.66,
		   "tags":["Deivanai","IndranMagal","Iravadham"]}]`)
	requireFieldErrors(t, ts.Request(http.MethodPost, "/response-model/electricity", ""), "name", "price")
	requireFieldErrors(t, ts.Request(http.MethodPost, "/response-model/floors", `{"name":"Foo"}`), "price")

	const user = `{"username":"vel","email":"vel@example.com","password":"secret"}`

	requireJSON(t, ts.Request(http.MethodPost, "/response-model/emails", user), http.StatusOK, user)
	requireJSON(t, ts.Request(http.MethodPost, "/response-model/different-models", user), http.StatusOK,
		`{"username":"vel","email":"vel@example.com"}`)
	requireJSON(t, ts.Request(http.MethodPost, "/response-model/users", user), http.StatusOK,
		`{"username":"vel","email":"vel@example.com"}`)
}

func TestResponseModelRedirects(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	for _, path := range []string{"/response-model/laptops", "/response-model/nature", "/response-model/matches"} {
		rec := ts.Request(http.MethodGet, path, "")
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Location"), "fastapi.tiangolo.com", path)
	}

	requireJSON(t, ts.Request(http.MethodGet, "/response-model/laptops?model_detail=false", ""), http.StatusOK,
		`{"message":"This is just a JSON message"}`)
	requireJSON(t, ts.Request(http.MethodGet, "/response-model/matches?webindex=0", ""), http.StatusOK,
		`{"message":"This is an interdimensional portal"}`)
	requireBindError(t, ts.Request(http.MethodGet, "/response-model/laptops?model_detail=maybe", ""), "query parameter")
}

func TestPathOperationConfiguration(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodPost, "/path-operation-configuration/items", `{"name":"Foo","price":1,"tags":["a","a","b"]}`),
		http.StatusCreated, `{"name":"Foo","description":null,"price":1,"tax":null,"tags":["a","b"]}`)
	requireFieldErrors(t, ts.Request(http.MethodPost, "/path-operation-configuration/items", `{"name":"Foo"}`), "price")
	requireJSON(t, ts.Request(http.MethodPost, "/path-operation-configuration/tagitems", `{"name":"Foo","price":1}`),
		http.StatusOK, `{"name":"Foo","description":null,"price":1,"tax":null,"tags":[]}`)
	requireJSON(t, ts.Request(http.MethodGet, "/path-operation-configuration/users", ""), http.StatusOK,
		`{"username":"Senthil Andavar","details":"God of war"}`)
	requireJSON(t, ts.Request(http.MethodPost, "/path-operation-configuration/customers", ""), http.StatusOK,
		`{"network":"airtel","paints":"asian"}`)

	rec := ts.Request(http.MethodGet, "/path-operation-configuration/veggies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("Deprecation"))
	assert.Empty(t, ts.Request(http.MethodGet, "/path-operation-configuration/plants", "").Header().Get("Deprecation"))

	rec = ts.Request(http.MethodGet, "/path-operation-configuration/operations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	ops := decode[[]handler.Operation](t, rec)
	require.Len(t, ops, 13)

	byPath := make(map[string]handler.Operation, len(ops))
	for _, op := range ops {
		byPath[op.Path] = op
	}
	assert.Equal(t, http.StatusCreated, byPath["/items"].Status)
	assert.Equal(t, []string{"items"}, byPath["/tagitems"].Tags)
	assert.Equal(t, "This is the description for response model", byPath["/responses"].ResponseDescription)
	assert.True(t, byPath["/veggies"].Deprecated)
	assert.False(t, byPath["/plants"].Deprecated)
}

func TestHandlingErrors(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodGet, "/handling-errors/users/Foo", ""), http.StatusOK, `"It is an item in Foo"`)

	rec := ts.Request(http.MethodGet, "/handling-errors/users/Bar", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Information not available", decode[errs.HTTPError](t, rec).Message)

	requireJSON(t, ts.Request(http.MethodGet, "/handling-errors/items-header/Foo", ""), http.StatusOK,
		`{"item":"It is an item in Foo"}`)

	rec = ts.Request(http.MethodGet, "/handling-errors/items-header/Bar", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "There goes my error", rec.Header().Get("X-Error"))
	assert.Equal(t, "Item not found", decode[errs.HTTPError](t, rec).Message)

	requireJSON(t, ts.Request(http.MethodGet, "/handling-errors/unicorns/sparkle", ""), http.StatusOK,
		`{"unicorn_name":"sparkle"}`)

	rec = ts.Request(http.MethodGet, "/handling-errors/unicorns/yolo", "")
	require.Equal(t, http.StatusTeapot, rec.Code)
	body := decode[errs.HTTPError](t, rec)
	assert.Equal(t, "Oops! yolo did something. There goes a rainbow...", body.Message)
	assert.Equal(t, "IM_A_TEAPOT", body.Code)
}

func TestPythonTypes(t *testing.T) {
	t.Parallel()
	ts := newServer(t)

	requireJSON(t, ts.Request(http.MethodGet, "/python-types/full-name?first_name=john&last_name=doe", ""),
		http.StatusOK, `{"full_name":"John Doe"}`)
	requireFieldErrors(t, ts.Request(http.MethodGet, "/python-types/full-name?first_name=john", ""), "last_name")

	rec := ts.Request(http.MethodPost, "/python-types/describe", `{
		"name": "murugan",
		"age": 6,
		"weight": 66.6,
		"married": true,
		"data": "dmVs",
		"items": ["vel", "mayil"],
		"tuple": [1, "two", 3.5],
		"set": [3, 1, 3, 2],
		"ages": {"a": 1},
		"nick": "Kumaran",
		"person": {"name": "Valli"}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[map[string]any](t, rec)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, got["set"])
	assert.Equal(t, "dmVs", got["data"])
	assert.Equal(t, "Murugan, known as Kumaran", got["summary"])

	rec = ts.Request(http.MethodPost, "/python-types/describe", `{"name":"valli","age":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Valli, without a nickname", decode[map[string]any](t, rec)["summary"])

	requireFieldErrors(t, ts.Request(http.MethodPost, "/python-types/describe", `{"name":"x","tuple":[1,2]}`), "tuple")
	requireFieldErrors(t, ts.Request(http.MethodPost, "/python-types/describe", `{"name":"x","person":{}}`), "person.name")
}

func TestPythonTypesGreeting(t *testing.T) {
	ts := newServer(t)

	t.Setenv(handler.GreetingEnv, "")
	requireJSON(t, ts.Request(http.MethodGet, "/python-types/greeting", ""), http.StatusOK, `{"message":"Hello World!"}`)

	t.Setenv(handler.GreetingEnv, "Murugan")
	requireJSON(t, ts.Request(http.MethodGet, "/python-types/greeting", ""), http.StatusOK, `{"message":"Hello Murugan"}`)
}
