package handler

import (
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// HeaderParamsHandler reads single headers, repeated headers and whole
// header models.
type HeaderParamsHandler struct {
	Handler
}

func NewHeaderParamsHandler(h Handler) *HeaderParamsHandler {
	return &HeaderParamsHandler{Handler: h}
}

type UserAgentRequest struct {
	UserAgent *string `header:"User-Agent"`
}

func (r *UserAgentRequest) Validate() error { return nil }

type HeaderDetails struct {
	HeaderDetails *string `json:"header_details"`
}

func (h *HeaderParamsHandler) GetUserAgent(c echo.Context, req *UserAgentRequest) (HeaderDetails, error) {
	return HeaderDetails{HeaderDetails: req.UserAgent}, nil
}

// StrangeHeaderRequest keeps the underscore: the header is literally
// "strange_header", not "strange-header".
type StrangeHeaderRequest struct {
	StrangeHeader *string `header:"strange_header"`
}

func (r *StrangeHeaderRequest) Validate() error { return nil }

type StrangeHeaders struct {
	StrangeHeaders *string `json:"strange_headers"`
}

func (h *HeaderParamsHandler) GetStrangeHeader(c echo.Context, req *StrangeHeaderRequest) (StrangeHeaders, error) {
	return StrangeHeaders{StrangeHeaders: req.StrangeHeader}, nil
}

type ManyHeadersRequest struct {
	ManyHeaders []string `header:"many-headers"`
}

func (r *ManyHeadersRequest) Validate() error { return nil }

type DuplicateHeaders struct {
	DuplicateHeaders []string `json:"duplicate_headers"`
}

// GetDuplicateHeaders returns every value of a repeated header, in order.
func (h *HeaderParamsHandler) GetDuplicateHeaders(c echo.Context, req *ManyHeadersRequest) (DuplicateHeaders, error) {
	return DuplicateHeaders{DuplicateHeaders: req.ManyHeaders}, nil
}

// CustomHeader is bound from request headers. Host comes from the request
// line when the client did not send the header itself.
type CustomHeader struct {
	Host            string      `header:"host" json:"host" validate:"required"`
	SaveData        *model.Flag `header:"save-data" json:"save_data" validate:"required"`
	IfModifiedSince *string     `header:"if-modified-since" json:"if_modified_since"`
	Traceparent     *string     `header:"traceparent" json:"traceparent"`
	XTag            []string    `header:"x-tag" json:"x_tag"`
}

func (r *CustomHeader) SetDefaults() { r.XTag = []string{} }
func (r *CustomHeader) Validate() error { return validation.Struct(r) }

// OptionalHeader is CustomHeader with save-data optional.
type OptionalHeader struct {
	Host            string      `header:"host" json:"host" validate:"required"`
	SaveData        *model.Flag `header:"save-data" json:"save_data"`
	IfModifiedSince *string     `header:"if-modified-since" json:"if_modified_since"`
	Traceparent     *string     `header:"traceparent" json:"traceparent"`
	XTag            []string    `header:"x-tag" json:"x_tag"`
}

func (r *OptionalHeader) SetDefaults() { r.XTag = []string{} }
func (r *OptionalHeader) Validate() error { return validation.Struct(r) }

// StrictHeader rejects headers OptionalHeader does not declare. Headers every
// client or proxy sends (Accept, User-Agent, Connection, ...) are tolerated.
type StrictHeader struct {
	OptionalHeader
}

func (r *StrictHeader) ForbidExtra() validation.Source { return validation.SourceHeader }

func (h *HeaderParamsHandler) CreateHeaders(c echo.Context, req *CustomHeader) (CustomHeader, error) {
	return *req, nil
}

func (h *HeaderParamsHandler) ForbidHeaders(c echo.Context, req *StrictHeader) (OptionalHeader, error) {
	return req.OptionalHeader, nil
}

// Underscore binds the same model without rejecting extras.
func (h *HeaderParamsHandler) Underscore(c echo.Context, req *OptionalHeader) (OptionalHeader, error) {
	return *req, nil
}
