package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// DependencyInjectionHandler shares one dependable between three routes.
type DependencyInjectionHandler struct {
	Handler
}

func NewDependencyInjectionHandler(h Handler) *DependencyInjectionHandler {
	return &DependencyInjectionHandler{Handler: h}
}

// CommonParams are the query values the common dependency reads.
type CommonParams struct {
	Q     *string `query:"q" validate:"required"`
	Price int     `query:"price"`
	Tax   float64 `query:"tax"`
}

func (p *CommonParams) SetDefaults() {
	p.Price = 20
	p.Tax = 66.6666
}

func (p *CommonParams) Validate() error { return validation.Struct(p) }

type CommonDetails struct {
	Quantity   string  `json:"quantity"`
	PriceValue int     `json:"price_value"`
	TaxValue   float64 `json:"tax_value"`
}

// commonDetails runs once per request however many handlers or other
// dependencies ask for it.
var commonDetails = Depend("common_details", func(c echo.Context) (CommonDetails, error) {
	var p CommonParams
	if err := validation.BindAndValidate(c, &p); err != nil {
		return CommonDetails{}, err
	}
	return CommonDetails{Quantity: *p.Q, PriceValue: p.Price, TaxValue: p.Tax}, nil
})

func (h *DependencyInjectionHandler) GetItems(c echo.Context) error {
	return respondWith(c, commonDetails)
}

func (h *DependencyInjectionHandler) GetTotal(c echo.Context) error {
	return respondWith(c, commonDetails)
}

func (h *DependencyInjectionHandler) GetStores(c echo.Context) error {
	return respondWith(c, commonDetails)
}
