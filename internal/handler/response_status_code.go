package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// ResponseStatusCodeHandler answers 201 instead of 200.
type ResponseStatusCodeHandler struct {
	Handler
}

func NewResponseStatusCodeHandler(h Handler) *ResponseStatusCodeHandler {
	return &ResponseStatusCodeHandler{Handler: h}
}

type NameRequest struct {
	Name *string `query:"name" validate:"required"`
}

func (r *NameRequest) Validate() error { return validation.Struct(r) }

type NameResponse struct {
	Name string `json:"name"`
}

func (h *ResponseStatusCodeHandler) CreateStatus(c echo.Context, req *NameRequest) (NameResponse, error) {
	return NameResponse{Name: *req.Name}, nil
}

type FullNameRequest struct {
	FullName *string `query:"full_name" validate:"required"`
}

func (r *FullNameRequest) Validate() error { return validation.Struct(r) }

type DetailsResponse struct {
	Details string `json:"details"`
}

func (h *ResponseStatusCodeHandler) CreateInformation(c echo.Context, req *FullNameRequest) (DetailsResponse, error) {
	return DetailsResponse{Details: *req.FullName}, nil
}
