package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// CookieParamsHandler reads single cookies and whole cookie models.
type CookieParamsHandler struct {
	Handler
}

func NewCookieParamsHandler(h Handler) *CookieParamsHandler {
	return &CookieParamsHandler{Handler: h}
}

type AdsRequest struct {
	AdsID *string `cookie:"ads_id"`
}

func (r *AdsRequest) Validate() error { return nil }

type AdsResponse struct {
	Message *string `json:"message"`
}

func (h *CookieParamsHandler) GetCookieData(c echo.Context, req *AdsRequest) (AdsResponse, error) {
	return AdsResponse{Message: req.AdsID}, nil
}

// CookieData is bound from three cookies; session_id is required.
type CookieData struct {
	SessionID       *int    `cookie:"session_id" json:"session_id" validate:"required"`
	FatebookTracker *string `cookie:"fatebook_tracker" json:"fatebook_tracker"`
	GootleTracker   *string `cookie:"gootle_tracker" json:"gootle_tracker"`
}

func (r *CookieData) Validate() error { return validation.Struct(r) }

func (h *CookieParamsHandler) GetItems(c echo.Context, req *CookieData) (CookieData, error) {
	return *req, nil
}

// ClassCookies rejects cookies it does not declare.
type ClassCookies struct {
	ClassID     *int    `cookie:"class_id" json:"class_id" validate:"required"`
	Name        *string `cookie:"name" json:"name"`
	Description *string `cookie:"description" json:"description"`
}

func (r *ClassCookies) ForbidExtra() validation.Source { return validation.SourceCookie }
func (r *ClassCookies) Validate() error { return validation.Struct(r) }

func (h *CookieParamsHandler) GetForbidData(c echo.Context, req *ClassCookies) (ClassCookies, error) {
	return *req, nil
}
