package handler

import (
	"strings"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// StringValidationsHandler shows length, pattern, required, repeated, aliased
// and custom-validated query strings. Every route answers with the same two
// items plus whatever query it received.
type StringValidationsHandler struct {
	Handler
}

func NewStringValidationsHandler(h Handler) *StringValidationsHandler {
	return &StringValidationsHandler{Handler: h}
}

type ItemRef struct {
	ItemID string `json:"item_id"`
}

type QueryResults struct {
	Items []ItemRef `json:"items"`
	Query any       `json:"query,omitempty"`
}

func newQueryResults(query any) QueryResults {
	return QueryResults{
		Items: []ItemRef{{ItemID: "Foo"}, {ItemID: "Bar"}},
		Query: query,
	}
}

// optionalQuery is the response value for an optional string; empty and
// absent both omit "query".
func optionalQuery(q *string) any {
	if q == nil || *q == "" {
		return nil
	}
	return *q
}

type MaxLengthRequest struct {
	Q *string `query:"q" validate:"omitempty,max=6"`
}

func (r *MaxLengthRequest) Validate() error { return validation.Struct(r) }

func (h *StringValidationsHandler) MaxLength(c echo.Context, req *MaxLengthRequest) (QueryResults, error) {
	return newQueryResults(optionalQuery(req.Q)), nil
}

type MinLengthRequest struct {
	Q *string `query:"q" validate:"omitempty,min=3,max=6"`
}

func (r *MinLengthRequest) Validate() error { return validation.Struct(r) }

func (h *StringValidationsHandler) MinLength(c echo.Context, req *MinLengthRequest) (QueryResults, error) {
	return newQueryResults(optionalQuery(req.Q)), nil
}

type PatternRequest struct {
	Q *string `query:"q" validate:"omitempty,pattern=^fixedquery$"`
}

func (r *PatternRequest) Validate() error { return validation.Struct(r) }

func (h *StringValidationsHandler) RegularExpression(c echo.Context, req *PatternRequest) (QueryResults, error) {
	return newQueryResults(optionalQuery(req.Q)), nil
}

type RequiredRequest struct {
	Q string `query:"q" validate:"required,min=3"`
}

func (r *RequiredRequest) Validate() error { return validation.Struct(r) }

func (h *StringValidationsHandler) Required(c echo.Context, req *RequiredRequest) (QueryResults, error) {
	return newQueryResults(req.Q), nil
}

// NoneRequiredRequest: q must be present, but an empty value is accepted.
// A non-empty value needs at least three characters.
type NoneRequiredRequest struct {
	Q *string `query:"q" validate:"required"`
}

func (r *NoneRequiredRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if *r.Q != "" && len([]rune(*r.Q)) < 3 {
		return validation.CustomValidationErrors{{Field: "q", Message: "must be at least 3 characters"}}
	}
	return nil
}

func (h *StringValidationsHandler) NoneRequired(c echo.Context, req *NoneRequiredRequest) (QueryResults, error) {
	return newQueryResults(optionalQuery(req.Q)), nil
}

type MultiValueRequest struct {
	Q []string `query:"q"`
}

func (r *MultiValueRequest) Validate() error { return nil }

func (h *StringValidationsHandler) MultipleValues(c echo.Context, req *MultiValueRequest) (QueryResults, error) {
	if len(req.Q) == 0 {
		return newQueryResults(nil), nil
	}
	return newQueryResults(req.Q), nil
}

type DefaultValuesRequest struct {
	Q []string `query:"q"`
}

func (r *DefaultValuesRequest) SetDefaults() {
	r.Q = []string{"Arun", "Murugan"}
}

func (r *DefaultValuesRequest) Validate() error { return nil }

func (h *StringValidationsHandler) DefaultValues(c echo.Context, req *DefaultValuesRequest) (QueryResults, error) {
	return newQueryResults(req.Q), nil
}

// MetadataRequest documents q in openapi.json only; binding is unchanged.
type MetadataRequest struct {
	Q *string `query:"q"`
}

func (r *MetadataRequest) Validate() error { return nil }

func (h *StringValidationsHandler) Metadata(c echo.Context, req *MetadataRequest) (QueryResults, error) {
	return newQueryResults(optionalQuery(req.Q)), nil
}

// AliasRequest binds q from "item-query", which is not a valid Go identifier.
type AliasRequest struct {
	Q *string `query:"item-query"`
}

func (r *AliasRequest) Validate() error { return nil }

func (h *StringValidationsHandler) Alias(c echo.Context, req *AliasRequest) (QueryResults, error) {
	return newQueryResults(optionalQuery(req.Q)), nil
}

// HiddenRequest's parameter is left out of openapi.json on purpose.
type HiddenRequest struct {
	HiddenParams *string `query:"hidden_params"`
}

func (r *HiddenRequest) Validate() error { return nil }

type HiddenResponse struct {
	HiddenParameters string `json:"hidden_parameters"`
}

func (h *StringValidationsHandler) HiddenParams(c echo.Context, req *HiddenRequest) (HiddenResponse, error) {
	if req.HiddenParams == nil || *req.HiddenParams == "" {
		return HiddenResponse{HiddenParameters: "No data found"}, nil
	}
	return HiddenResponse{HiddenParameters: *req.HiddenParams}, nil
}

// MediaRequest carries a media id that must look like an ISBN or IMDB key.
type MediaRequest struct {
	ID *string `query:"id"`
}

func (r *MediaRequest) Validate() error {
	if r.ID == nil || *r.ID == "" {
		return nil
	}
	if !mediaID(*r.ID) {
		return validation.CustomValidationErrors{{Field: "id", Message: "Data is not in proper format"}}
	}
	return nil
}

func mediaID(id string) bool {
	return strings.HasPrefix(id, "isbn-") || strings.HasPrefix(id, "imdb")
}

func errMediaFormat() error {
	return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
		Field: "id",
		Error: "Data is not in proper format",
	}})
}

type MediaResponse struct {
	ID    string  `json:"id"`
	Value *string `json:"value"`
}

// CustomValidator returns the title for id (null when unknown), or a random
// known entry when no id was sent.
func (h *StringValidationsHandler) CustomValidator(c echo.Context, req *MediaRequest) (MediaResponse, error) {
	if !c.QueryParams().Has("id") {
		id, title := h.services.Catalog.RandomMedia()
		return MediaResponse{ID: id, Value: &title}, nil
	}
	// An empty id is still a sent id.
	if req.ID == nil || !mediaID(*req.ID) {
		return MediaResponse{}, errMediaFormat()
	}

	title, ok := h.services.Catalog.Media(*req.ID)
	if !ok {
		return MediaResponse{ID: *req.ID}, nil
	}
	return MediaResponse{ID: *req.ID, Value: &title}, nil
}
