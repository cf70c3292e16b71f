package handler

import (
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// BodyNestedModelsHandler shows lists, sets, nested objects and lists of
// objects inside bodies.
type BodyNestedModelsHandler struct {
	Handler
}

func NewBodyNestedModelsHandler(h Handler) *BodyNestedModelsHandler {
	return &BodyNestedModelsHandler{Handler: h}
}

// Table carries an untyped list: any JSON values are kept as sent.
type Table struct {
	Design    *int     `json:"design"`
	Size      *float64 `json:"size" validate:"required"`
	Structure []any    `json:"structure"`
}

// TypedTable only accepts strings in its list.
type TypedTable struct {
	Design    *int     `json:"design"`
	Size      *float64 `json:"size" validate:"required"`
	Structure []string `json:"structure"`
}

// SetTable drops duplicate strings from its list.
type SetTable struct {
	Design    *int            `json:"design"`
	Size      *float64        `json:"size" validate:"required"`
	Structure model.StringSet `json:"structure"`
}

type ChairResponse[T any] struct {
	ChairDetails int `json:"chair_details"`
	TableDetails T   `json:"table_details"`
}

type TableRequest struct {
	ChairID int `param:"chair_id" json:"-"`
	Table
}

func (r *TableRequest) SetDefaults() { r.Structure = []any{} }
func (r *TableRequest) Validate() error { return validation.Struct(r) }

type TypedTableRequest struct {
	ChairID int `param:"chair_id" json:"-"`
	TypedTable
}

func (r *TypedTableRequest) SetDefaults() { r.Structure = []string{} }
func (r *TypedTableRequest) Validate() error { return validation.Struct(r) }

type SetTableRequest struct {
	ChairID int `param:"chair_id" json:"-"`
	SetTable
}

func (r *SetTableRequest) SetDefaults() { r.Structure = model.StringSet{} }
func (r *SetTableRequest) Validate() error { return validation.Struct(r) }

func (h *BodyNestedModelsHandler) PutChair(c echo.Context, req *TableRequest) (ChairResponse[Table], error) {
	return ChairResponse[Table]{ChairDetails: req.ChairID, TableDetails: req.Table}, nil
}

func (h *BodyNestedModelsHandler) PutTypedTable(c echo.Context, req *TypedTableRequest) (ChairResponse[TypedTable], error) {
	return ChairResponse[TypedTable]{ChairDetails: req.ChairID, TableDetails: req.TypedTable}, nil
}

func (h *BodyNestedModelsHandler) PutSetTable(c echo.Context, req *SetTableRequest) (ChairResponse[SetTable], error) {
	return ChairResponse[SetTable]{ChairDetails: req.ChairID, TableDetails: req.SetTable}, nil
}

// NestedItem has a set of tags and an optional image.
type NestedItem struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description,omitempty"`
	Price       *float64        `json:"price" validate:"required"`
	Tax         *float64        `json:"tax" validate:"required"`
	Tags        model.StringSet `json:"tags"`
	Image       *model.Image    `json:"image,omitempty"`
}

type NestedItemRequest struct {
	ItemID string `param:"item_id" json:"-"`
	NestedItem
}

func (r *NestedItemRequest) SetDefaults() { r.Tags = model.StringSet{} }
func (r *NestedItemRequest) Validate() error { return validation.Struct(r) }

type NestedItemResponse struct {
	ItemID      string     `json:"item_id"`
	ItemDetails NestedItem `json:"item_details"`
}

func (h *BodyNestedModelsHandler) PutItem(c echo.Context, req *NestedItemRequest) (NestedItemResponse, error) {
	return NestedItemResponse{ItemID: req.ItemID, ItemDetails: req.NestedItem}, nil
}

// Images is a body that is a JSON array of images.
type Images []model.Image

func (r *Images) Validate() error {
	return validation.Validator().Var(*r, "required,dive")
}

func (h *BodyNestedModelsHandler) CreateImages(c echo.Context, req *Images) (Images, error) {
	return *req, nil
}

// IndexWeights is a body that is a JSON object with integer keys.
type IndexWeights map[int]float64

func (r *IndexWeights) Validate() error { return nil }

func (h *BodyNestedModelsHandler) CreateIndexWeights(c echo.Context, req *IndexWeights) (IndexWeights, error) {
	return *req, nil
}
