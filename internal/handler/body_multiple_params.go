package handler

import (
	"bytes"
	"encoding/json"

	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// BodyMultipleParamsHandler mixes path, query and several named body objects.
type BodyMultipleParamsHandler struct {
	Handler
}

func NewBodyMultipleParamsHandler(h Handler) *BodyMultipleParamsHandler {
	return &BodyMultipleParamsHandler{Handler: h}
}

type ParamsItem struct {
	ItemID   *int    `json:"item_id" validate:"required"`
	ItemName *string `json:"item_name,omitempty"`
}

type UserDetails struct {
	EmpID *int    `json:"emp_id" validate:"required"`
	Name  *string `json:"name,omitempty"`
}

// MultiParamsRequest takes its whole body as an optional ParamsItem.
type MultiParamsRequest struct {
	ParamsID string  `param:"params_id" validate:"min=3,max=6"`
	Q        *string `query:"q"`

	Body *ParamsItem `json:"-"`
}

// UnmarshalJSON reads the whole body as the item, not as an object holding
// one. A null body leaves Body nil.
func (r *MultiParamsRequest) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var item ParamsItem
	if err := json.Unmarshal(data, &item); err != nil {
		return err
	}
	r.Body = &item
	return nil
}

func (r *MultiParamsRequest) Validate() error { return validation.Struct(r) }

type MultiParamsResponse struct {
	ParamsID    string      `json:"params_id"`
	Query       string      `json:"query_parameters,omitempty"`
	RequestBody *ParamsItem `json:"request_body,omitempty"`
}

func (h *BodyMultipleParamsHandler) PutMultiParams(c echo.Context, req *MultiParamsRequest) (MultiParamsResponse, error) {
	resp := MultiParamsResponse{ParamsID: req.ParamsID}
	if req.Q != nil {
		resp.Query = *req.Q
	}
	resp.RequestBody = req.Body
	return resp, nil
}

type UserItemRequest struct {
	UserID int         `param:"user_id" json:"-"`
	Item   ParamsItem  `json:"item"`
	User   UserDetails `json:"user"`
}

func (r *UserItemRequest) Validate() error { return validation.Struct(r) }

type UserItemResponse struct {
	UserID      int         `json:"user_id"`
	ItemDetails ParamsItem  `json:"item_details"`
	Users       UserDetails `json:"users"`
}

func (h *BodyMultipleParamsHandler) PutUser(c echo.Context, req *UserItemRequest) (UserItemResponse, error) {
	return UserItemResponse{
		UserID:      req.UserID,
		ItemDetails: req.Item,
		Users:       req.User,
	}, nil
}

// AlbumRequest adds a singular body value next to the two objects.
type AlbumRequest struct {
	AlbumID    int         `param:"album_id" json:"-"`
	Item       ParamsItem  `json:"item"`
	User       UserDetails `json:"user"`
	Importance *string     `json:"importance" validate:"required"`
}

func (r *AlbumRequest) Validate() error { return validation.Struct(r) }

type AlbumResponse struct {
	AlbumDetails int         `json:"album_details"`
	ItemDetails  ParamsItem  `json:"item_details"`
	UserDetails  UserDetails `json:"user_details"`
	Importance   string      `json:"importance"`
}

func (h *BodyMultipleParamsHandler) PutAlbum(c echo.Context, req *AlbumRequest) (AlbumResponse, error) {
	return AlbumResponse{
		AlbumDetails: req.AlbumID,
		ItemDetails:  req.Item,
		UserDetails:  req.User,
		Importance:   *req.Importance,
	}, nil
}
