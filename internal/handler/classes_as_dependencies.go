package handler

import (
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/fixtures"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// ClassesAsDependenciesHandler uses a struct, rather than a map, as the
// dependency's value.
type ClassesAsDependenciesHandler struct {
	Handler
}

func NewClassesAsDependenciesHandler(h Handler) *ClassesAsDependenciesHandler {
	return &ClassesAsDependenciesHandler{Handler: h}
}

// CommonQueryParams is both what the dependency binds and what it returns.
type CommonQueryParams struct {
	Q     *string `query:"q"`
	Skip  int     `query:"skip" validate:"gte=0"`
	Limit int     `query:"limit" validate:"gte=0"`
}

func (p *CommonQueryParams) SetDefaults() { p.Limit = 100 }
func (p *CommonQueryParams) Validate() error { return validation.Struct(p) }

var commonQueryParams = Depend("common_query_params", func(c echo.Context) (*CommonQueryParams, error) {
	p := &CommonQueryParams{}
	if err := validation.BindAndValidate(c, p); err != nil {
		return nil, err
	}
	return p, nil
})

type PagedItems struct {
	Q     string                  `json:"q,omitempty"`
	Items []fixtures.CatalogEntry `json:"items"`
}

func (h *ClassesAsDependenciesHandler) ListItems(c echo.Context) error {
	commons, err := commonQueryParams.Resolve(c)
	if err != nil {
		return err
	}

	resp := PagedItems{Items: h.services.Catalog.Page(commons.Skip, commons.Limit)}
	if commons.Q != nil {
		resp.Q = *commons.Q
	}
	return c.JSON(http.StatusOK, resp)
}
