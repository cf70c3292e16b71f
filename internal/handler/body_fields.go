package handler

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// BodyFieldsHandler shows per-field constraints and aliases inside a body.
type BodyFieldsHandler struct {
	Handler
}

func NewBodyFieldsHandler(h Handler) *BodyFieldsHandler {
	return &BodyFieldsHandler{Handler: h}
}

// Materials is a final-year syllabus. Subject travels as "sub".
type Materials struct {
	Subject    *string `json:"sub,omitempty"`
	Syllabus   string  `json:"syllabus" validate:"required,min=5,max=50"`
	Department *int    `json:"department" validate:"required,gt=5,lte=20"`
}

type BookRequest struct {
	BookID int `param:"book_id" json:"-"`
	Materials
}

func (r *BookRequest) Validate() error { return validation.Struct(r) }

type BookResponse struct {
	Books       int       `json:"books"`
	BookDetails Materials `json:"book_details"`
}

func (h *BodyFieldsHandler) PutBook(c echo.Context, req *BookRequest) (BookResponse, error) {
	return BookResponse{Books: req.BookID, BookDetails: req.Materials}, nil
}
