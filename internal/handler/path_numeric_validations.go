package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// PathNumericValidationsHandler shows range checks on path and query values.
type PathNumericValidationsHandler struct {
	Handler
}

func NewPathNumericValidationsHandler(h Handler) *PathNumericValidationsHandler {
	return &PathNumericValidationsHandler{Handler: h}
}

type PathParamRequest struct {
	ItemID int     `param:"item_id"`
	Q      *string `query:"q" validate:"omitempty,min=3,max=7"`
}

func (r *PathParamRequest) Validate() error {
	return validation.Struct(r)
}

type PathParamResponse struct {
	ItemID int    `json:"item_id"`
	Query  string `json:"query,omitempty"`
}

func (h *PathNumericValidationsHandler) GetPathParam(c echo.Context, req *PathParamRequest) (PathParamResponse, error) {
	resp := PathParamResponse{ItemID: req.ItemID}
	if req.Q != nil {
		resp.Query = *req.Q
	}
	return resp, nil
}

type NumericRequest struct {
	ItemID int      `param:"item_id" validate:"gte=1,lte=1000"`
	Size   *float64 `query:"size" validate:"omitempty,gt=0,lt=10.5"`
}

func (r *NumericRequest) Validate() error {
	return validation.Struct(r)
}

type NumericResponse struct {
	ItemID int      `json:"item_id"`
	Size   *float64 `json:"size,omitempty"`
}

// GetNumber accepts item_id in [1, 1000] and an optional size in (0, 10.5).
func (h *PathNumericValidationsHandler) GetNumber(c echo.Context, req *NumericRequest) (NumericResponse, error) {
	return NumericResponse{ItemID: req.ItemID, Size: req.Size}, nil
}
