package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// FormModelsHandler binds urlencoded or multipart form fields into models.
type FormModelsHandler struct {
	Handler
}

func NewFormModelsHandler(h Handler) *FormModelsHandler {
	return &FormModelsHandler{Handler: h}
}

type Bicycles struct {
	Name        string  `form:"name" json:"name" validate:"required"`
	Description *string `form:"description" json:"description,omitempty"`
}

func (b *Bicycles) Validate() error { return validation.Struct(b) }

type BicyclesResponse struct {
	Message Bicycles `json:"message"`
}

func (h *FormModelsHandler) CreateCycle(c echo.Context, req *Bicycles) (BicyclesResponse, error) {
	return BicyclesResponse{Message: *req}, nil
}

// Televisions rejects form fields it does not declare.
type Televisions struct {
	Chip        string `form:"chip" json:"chip" validate:"required"`
	CathodeTube string `form:"cathode_tube" json:"cathode_tube" validate:"required"`
	Model       string `form:"model" json:"model" validate:"required"`
}

func (t *Televisions) ForbidExtra() validation.Source {
	return validation.SourceForm
}

func (t *Televisions) Validate() error { return validation.Struct(t) }

func (h *FormModelsHandler) CreateChannel(c echo.Context, req *Televisions) (Televisions, error) {
	return *req, nil
}
