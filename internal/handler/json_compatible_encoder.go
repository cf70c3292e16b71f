package handler

import (
	"time"

	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// JSONCompatibleEncoderHandler stores a model in the form a JSON document
// would hold it, not as the Go struct.
type JSONCompatibleEncoderHandler struct {
	Handler
}

func NewJSONCompatibleEncoderHandler(h Handler) *JSONCompatibleEncoderHandler {
	return &JSONCompatibleEncoderHandler{Handler: h}
}

type EncoderItem struct {
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description"`
	JoiningDate time.Time `json:"joining_date" validate:"required"`
}

type EncoderItemRequest struct {
	ID string `param:"id" json:"-"`
	EncoderItem
}

func (r *EncoderItemRequest) Validate() error { return validation.Struct(r) }

// PutUser returns what was stored: joining_date as an RFC 3339 string and
// description as null when it was not sent.
func (h *JSONCompatibleEncoderHandler) PutUser(c echo.Context, req *EncoderItemRequest) (map[string]any, error) {
	return h.services.Profiles.Save(c.Request().Context(), req.ID, req.EncoderItem)
}

type ProfileRequest struct {
	ID string `param:"id"`
}

func (r *ProfileRequest) Validate() error { return nil }

func (h *JSONCompatibleEncoderHandler) GetUser(c echo.Context, req *ProfileRequest) (map[string]any, error) {
	return h.services.Profiles.Get(c.Request().Context(), req.ID)
}
