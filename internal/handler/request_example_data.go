package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// RequestExampleDataHandler echoes a model that carries a documented example.
type RequestExampleDataHandler struct {
	Handler
}

func NewRequestExampleDataHandler(h Handler) *RequestExampleDataHandler {
	return &RequestExampleDataHandler{Handler: h}
}

type DeclareExtraData struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax,omitempty"`
}

// ExampleExtraData is the payload documented for PUT /extras/{extra_id}.
func ExampleExtraData() DeclareExtraData {
	description := "Yaamiruka Bayam Yen"
	price, tax := 666.66, 66.6
	return DeclareExtraData{
		Name:        "Murugan",
		Description: &description,
		Price:       &price,
		Tax:         &tax,
	}
}

type ExtraRequest struct {
	ExtraID int `param:"extra_id" json:"-"`
	DeclareExtraData
}

func (r *ExtraRequest) Validate() error { return validation.Struct(r) }

type ExtraResponse struct {
	ExtraDetails int              `json:"extra_details"`
	ExtraData    DeclareExtraData `json:"extra_data"`
}

func (h *RequestExampleDataHandler) PutExtra(c echo.Context, req *ExtraRequest) (ExtraResponse, error) {
	return ExtraResponse{ExtraDetails: req.ExtraID, ExtraData: req.DeclareExtraData}, nil
}

func (h *RequestExampleDataHandler) Example(c echo.Context, _ *NoParams) (DeclareExtraData, error) {
	return ExampleExtraData(), nil
}
