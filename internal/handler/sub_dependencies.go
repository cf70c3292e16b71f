package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SubDependenciesHandler resolves a dependency that itself depends on
// another one.
type SubDependenciesHandler struct {
	Handler
}

func NewSubDependenciesHandler(h Handler) *SubDependenciesHandler {
	return &SubDependenciesHandler{Handler: h}
}

// LastQueryCookie remembers the previous search.
const LastQueryCookie = "last_query"

// queryExtractor returns q, or nil when it is absent or empty.
var queryExtractor = Depend("query_extractor", func(c echo.Context) (*string, error) {
	q := c.QueryParam("q")
	if q == "" {
		return nil, nil
	}
	return &q, nil
})

// queryOrCookie falls back to the last_query cookie when q is missing.
var queryOrCookie = Depend("query_or_cookie", func(c echo.Context) (*string, error) {
	q, err := queryExtractor.Resolve(c)
	if err != nil {
		return nil, err
	}
	if q != nil {
		return q, nil
	}

	cookie, err := c.Cookie(LastQueryCookie)
	if err != nil {
		return nil, nil
	}
	return &cookie.Value, nil
})

type QueryDetails struct {
	Details *string `json:"details"`
}

func (h *SubDependenciesHandler) ListItems(c echo.Context) error {
	q, err := queryOrCookie.Resolve(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, QueryDetails{Details: q})
}
