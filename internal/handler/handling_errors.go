package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/labstack/echo/v4"
)

// HandlingErrorsHandler raises client errors: plain 404s, 404s with extra
// headers, and a custom status.
type HandlingErrorsHandler struct {
	Handler
}

func NewHandlingErrorsHandler(h Handler) *HandlingErrorsHandler {
	return &HandlingErrorsHandler{Handler: h}
}

type ErrorUserRequest struct {
	UserID string `param:"user_id"`
}

func (r *ErrorUserRequest) Validate() error { return nil }

func (h *HandlingErrorsHandler) GetUser(c echo.Context, req *ErrorUserRequest) (string, error) {
	return h.services.Catalog.ErrorItem(req.UserID)
}

type ErrorItemRequest struct {
	ItemID string `param:"item_id"`
}

func (r *ErrorItemRequest) Validate() error { return nil }

type ItemResponse struct {
	Item string `json:"item"`
}

// GetItemHeader fails like GetUser but tells the client why in a header.
func (h *HandlingErrorsHandler) GetItemHeader(c echo.Context, req *ErrorItemRequest) (ItemResponse, error) {
	item, err := h.services.Catalog.ErrorItem(req.ItemID)
	if err != nil {
		return ItemResponse{}, errs.NewNotFoundError("Item not found", true, nil).
			WithHeaders(map[string]string{"X-Error": "There goes my error"})
	}
	return ItemResponse{Item: item}, nil
}

type UnicornRequest struct {
	Name string `param:"name"`
}

func (r *UnicornRequest) Validate() error { return nil }

type UnicornResponse struct {
	UnicornName string `json:"unicorn_name"`
}

func (h *HandlingErrorsHandler) GetUnicorn(c echo.Context, req *UnicornRequest) (UnicornResponse, error) {
	if req.Name == "yolo" {
		return UnicornResponse{}, errs.New(http.StatusTeapot,
			fmt.Sprintf("Oops! %s did something. There goes a rainbow...", req.Name))
	}
	return UnicornResponse{UnicornName: req.Name}, nil
}
