package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// QueryParamModelsHandler binds a whole struct from the query string.
type QueryParamModelsHandler struct {
	Handler
}

func NewQueryParamModelsHandler(h Handler) *QueryParamModelsHandler {
	return &QueryParamModelsHandler{Handler: h}
}

// FilterParams pages and orders a listing.
type FilterParams struct {
	Limit   int      `query:"limit" json:"limit" validate:"gt=0,lte=100"`
	Offset  int      `query:"offset" json:"offset" validate:"gte=0"`
	OrderBy string   `query:"order_by" json:"order_by" validate:"oneof=created_at updated_at"`
	Tags    []string `query:"tags" json:"tags"`
}

func (p *FilterParams) SetDefaults() {
	p.Limit = 100
	p.OrderBy = "created_at"
	p.Tags = []string{}
}

func (p *FilterParams) Validate() error {
	return validation.Struct(p)
}

// StrictFilterParams is FilterParams that rejects undeclared query keys.
type StrictFilterParams struct {
	FilterParams
}

func (p *StrictFilterParams) ForbidExtra() validation.Source {
	return validation.SourceQuery
}

func (h *QueryParamModelsHandler) ListItems(c echo.Context, req *FilterParams) (FilterParams, error) {
	return *req, nil
}

func (h *QueryParamModelsHandler) ForbidExtra(c echo.Context, req *StrictFilterParams) (FilterParams, error) {
	return req.FilterParams, nil
}
