package handler

import (
	"os"
	"slices"
	"strings"

	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GreetingEnv is the environment variable GET /greeting reads.
const GreetingEnv = "MY_NAME"

// TypesHandler shows typed inputs: simple values, generic containers and
// optionals, plus a value read from the environment.
type TypesHandler struct {
	Handler
}

func NewTypesHandler(h Handler) *TypesHandler {
	return &TypesHandler{Handler: h}
}

// title needs a fresh Caser per call; a Caser keeps state.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

type FullNameQuery struct {
	FirstName string `query:"first_name" validate:"required"`
	LastName  string `query:"last_name" validate:"required"`
}

func (r *FullNameQuery) Validate() error { return validation.Struct(r) }

type FullNameResponse struct {
	FullName string `json:"full_name"`
}

func (h *TypesHandler) FullName(c echo.Context, req *FullNameQuery) (FullNameResponse, error) {
	return FullNameResponse{
		FullName: title(req.FirstName) + " " + title(req.LastName),
	}, nil
}

func (h *TypesHandler) Greeting(c echo.Context, _ *NoParams) (Message, error) {
	if name := os.Getenv(GreetingEnv); name != "" {
		return Message{Message: "Hello " + name}, nil
	}
	return Message{Message: "Hello World!"}, nil
}

// Person is a class used as a type.
type Person struct {
	Name string `json:"name" validate:"required"`
}

// TypedValues carries one field per kind of type. Data travels as base64.
type TypedValues struct {
	Name    string         `json:"name" validate:"required"`
	Age     int            `json:"age" validate:"gte=0"`
	Weight  float64        `json:"weight" validate:"gte=0"`
	Married bool           `json:"married"`
	Data    []byte         `json:"data"`
	Items   []string       `json:"items"`
	Tuple   []any          `json:"tuple" validate:"omitempty,len=3"`
	Set     []int          `json:"set"`
	Ages    map[string]int `json:"ages"`
	Nick    *string        `json:"nick"`
	Person  *Person        `json:"person" validate:"omitempty"`
}

func (r *TypedValues) Validate() error { return validation.Struct(r) }

type DescribeResponse struct {
	TypedValues
	Summary string `json:"summary"`
}

// Describe echoes the values, with the set deduplicated and sorted.
func (h *TypesHandler) Describe(c echo.Context, req *TypedValues) (DescribeResponse, error) {
	out := *req
	if out.Set != nil {
		out.Set = slices.Compact(slices.Sorted(slices.Values(out.Set)))
	}

	parts := []string{title(out.Name)}
	if out.Nick != nil && *out.Nick != "" {
		parts = append(parts, "known as "+*out.Nick)
	} else {
		parts = append(parts, "without a nickname")
	}

	return DescribeResponse{TypedValues: out, Summary: strings.Join(parts, ", ")}, nil
}
