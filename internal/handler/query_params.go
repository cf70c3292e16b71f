package handler

import (
	"github.com/deppfellow/echo-lessons/internal/fixtures"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// QueryParamsHandler shows optional, required and boolean query parameters
// next to path parameters.
type QueryParamsHandler struct {
	Handler
}

func NewQueryParamsHandler(h Handler) *QueryParamsHandler {
	return &QueryParamsHandler{Handler: h}
}

type PageRequest struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0"`
}

func (r *PageRequest) SetDefaults() {
	r.Limit = 10
}

func (r *PageRequest) Validate() error {
	return validation.Struct(r)
}

func (h *QueryParamsHandler) ListItems(c echo.Context, req *PageRequest) ([]fixtures.CatalogEntry, error) {
	return h.services.Catalog.Page(req.Skip, req.Limit), nil
}

type NumberRequest struct {
	NumID int `param:"num_id"`

	// Q has no default, so it must be sent; it may be empty.
	Q *string `query:"q" validate:"required"`
}

func (r *NumberRequest) Validate() error {
	return validation.Struct(r)
}

type NumberResponse struct {
	NumberID int    `json:"number_id"`
	Q        string `json:"q,omitempty"`
}

func (h *QueryParamsHandler) GetNumber(c echo.Context, req *NumberRequest) (NumberResponse, error) {
	return NumberResponse{NumberID: req.NumID, Q: *req.Q}, nil
}

type StudentRequest struct {
	StudID   int        `param:"stud_id"`
	StudName *string    `query:"stud_name"`
	Status   model.Flag `query:"status"`
}

func (r *StudentRequest) Validate() error { return nil }

type StudentResponse struct {
	StudentID   int     `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (h *QueryParamsHandler) GetStudent(c echo.Context, req *StudentRequest) (StudentResponse, error) {
	resp := StudentResponse{
		StudentID:   req.StudID,
		StudentName: req.StudName,
	}
	if !req.Status.Bool() {
		resp.Description = "This is a lengthy description"
	}
	return resp, nil
}

type SchoolRequest struct {
	SchoolID     int        `param:"school_id"`
	AreaID       int        `param:"area_id"`
	SchoolName   *string    `query:"school_name"`
	SchoolStatus model.Flag `query:"school_status"`
}

func (r *SchoolRequest) SetDefaults() {
	r.SchoolStatus = true
}

func (r *SchoolRequest) Validate() error { return nil }

type SchoolResponse struct {
	SchoolNo int     `json:"school_no"`
	AreaNo   int     `json:"area_no"`
	School   *string `json:"school,omitempty"`
	Status   string  `json:"status,omitempty"`
}

func (h *QueryParamsHandler) GetSchool(c echo.Context, req *SchoolRequest) (SchoolResponse, error) {
	resp := SchoolResponse{
		SchoolNo: req.SchoolID,
		AreaNo:   req.AreaID,
		School:   req.SchoolName,
	}
	if !req.SchoolStatus.Bool() {
		resp.Status = "Inactive"
	}
	return resp, nil
}
