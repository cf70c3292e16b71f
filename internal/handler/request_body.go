package handler

import (
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// RequestBodyHandler shows JSON bodies, alone and mixed with path and query
// parameters, and files tax returns into the benefits store.
type RequestBodyHandler struct {
	Handler
}

func NewRequestBodyHandler(h Handler) *RequestBodyHandler {
	return &RequestBodyHandler{Handler: h}
}

type BodyItem struct {
	ID          *int    `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (r *BodyItem) Validate() error { return validation.Struct(r) }

func (h *RequestBodyHandler) CreateItem(c echo.Context, req *BodyItem) (BodyItem, error) {
	return *req, nil
}

type FileBenefitRequest struct {
	BenefitID *int `query:"benefit_id" json:"-" validate:"required"`
	model.Returns
}

func (r *FileBenefitRequest) Validate() error { return validation.Struct(r) }

type TotalResponse struct {
	BenefitID  int     `json:"benefit_id,omitempty"`
	TotalPrice float64 `json:"total_price"`
}

// FileBenefit stores price+tax under benefit_id.
func (h *RequestBodyHandler) FileBenefit(c echo.Context, req *FileBenefitRequest) (TotalResponse, error) {
	total, err := h.services.Benefits.File(c.Request().Context(), *req.BenefitID, req.Returns)
	if err != nil {
		return TotalResponse{}, err
	}
	return TotalResponse{TotalPrice: total}, nil
}

type UpdateBenefitRequest struct {
	BenefitID int `param:"benefit_id" json:"-"`
	model.Returns
}

func (r *UpdateBenefitRequest) Validate() error { return validation.Struct(r) }

type BenefitResponse struct {
	BenefitID int `json:"benefit_id"`
	model.Returns
}

// UpdateBenefit echoes the id with the model; it does not touch the store.
func (h *RequestBodyHandler) UpdateBenefit(c echo.Context, req *UpdateBenefitRequest) (BenefitResponse, error) {
	return BenefitResponse{BenefitID: req.BenefitID, Returns: req.Returns}, nil
}

type BenefitIDRequest struct {
	BenefitID int `param:"benefit_id"`
}

func (r *BenefitIDRequest) Validate() error { return nil }

func (h *RequestBodyHandler) GetBenefit(c echo.Context, req *BenefitIDRequest) (TotalResponse, error) {
	total, err := h.services.Benefits.Total(c.Request().Context(), req.BenefitID)
	if err != nil {
		return TotalResponse{}, err
	}
	return TotalResponse{BenefitID: req.BenefitID, TotalPrice: total}, nil
}

type ShopRequest struct {
	ShopID int     `param:"shop_id" json:"-"`
	Qry    *string `query:"qry" json:"-"`
	model.Returns
}

func (r *ShopRequest) Validate() error { return validation.Struct(r) }

type ShopResponse struct {
	ShopID int `json:"shop_id"`
	model.Returns
	Query string `json:"query,omitempty"`
}

// GetShop reads a JSON body on a GET, which echo allows.
func (h *RequestBodyHandler) GetShop(c echo.Context, req *ShopRequest) (ShopResponse, error) {
	resp := ShopResponse{ShopID: req.ShopID, Returns: req.Returns}
	if req.Qry != nil {
		resp.Query = *req.Qry
	}
	return resp, nil
}
