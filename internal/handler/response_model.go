package handler

import (
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

const responseModelDocs = "https://fastapi.tiangolo.com/tutorial/response-model/#return-a-response-directly"

// ResponseModelHandler shapes what leaves the server: echoed models, fixed
// lists, password-filtered users and plain redirects.
type ResponseModelHandler struct {
	Handler
}

func NewResponseModelHandler(h Handler) *ResponseModelHandler {
	return &ResponseModelHandler{Handler: h}
}

type ResponseModel struct {
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price" validate:"required"`
	Tax         *float64 `json:"tax,omitempty"`
	Tags        []string `json:"tags"`
}

type ResponseModelRequest struct {
	ResponseModel
}

func (r *ResponseModelRequest) SetDefaults() {
	r.Tags = []string{}
}

func (r *ResponseModelRequest) Validate() error { return validation.Struct(r) }

func (h *ResponseModelHandler) ResponseType(c echo.Context, req *ResponseModelRequest) (ResponseModel, error) {
	return req.ResponseModel, nil
}

func (h *ResponseModelHandler) Sockets(c echo.Context, req *ResponseModelRequest) (ResponseModel, error) {
	return req.ResponseModel, nil
}

// Electricity validates the body it is sent, then answers with a fixed list.
func (h *ResponseModelHandler) Electricity(c echo.Context, _ *ResponseModelRequest) ([]ResponseModel, error) {
	return []ResponseModel{fixedModel(
		"Senthilandavar", "Murugan Name", 666666, 666.666,
		"ArunagiriNathar", "Gugan", "Dhandayudhani",
	)}, nil
}

func (h *ResponseModelHandler) Floors(c echo.Context, _ *ResponseModelRequest) ([]ResponseModel, error) {
	return []ResponseModel{fixedModel(
		"Valliammai", "Murugan Wife Name", 66.6666, 6.66,
		"Deivanai", "IndranMagal", "Iravadham",
	)}, nil
}

func fixedModel(name, description string, price, tax float64, tags ...string) ResponseModel {
	return ResponseModel{
		Name:        name,
		Description: &description,
		Price:       &price,
		Tax:         &tax,
		Tags:        tags,
	}
}

// Emails answers with the input model as-is, password included.
func (h *ResponseModelHandler) Emails(c echo.Context, req *UserInRequest) (model.UserIn, error) {
	return req.UserIn, nil
}

// OutputModel is the public half of a user.
type OutputModel struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name,omitempty"`
}

func (h *ResponseModelHandler) DifferentModels(c echo.Context, req *UserInRequest) (OutputModel, error) {
	return OutputModel{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}, nil
}

func (h *ResponseModelHandler) CreateUser(c echo.Context, req *UserInRequest) (model.UserOut, error) {
	return model.UserOut{UserBase: req.UserBase}, nil
}

type LaptopsRequest struct {
	ModelDetail model.Flag `query:"model_detail"`
}

func (r *LaptopsRequest) SetDefaults() {
	r.ModelDetail = true
}

func (r *LaptopsRequest) Validate() error { return nil }

func (h *ResponseModelHandler) Laptops(c echo.Context, req *LaptopsRequest) (Redirect, error) {
	if req.ModelDetail.Bool() {
		return Redirect{URL: responseModelDocs}, nil
	}
	return Redirect{Body: Message{Message: "This is just a JSON message"}}, nil
}

func (h *ResponseModelHandler) Nature(c echo.Context, _ *NoParams) (Redirect, error) {
	return Redirect{URL: responseModelDocs}, nil
}

type MatchesRequest struct {
	WebIndex model.Flag `query:"webindex"`
}

func (r *MatchesRequest) SetDefaults() {
	r.WebIndex = true
}

func (r *MatchesRequest) Validate() error { return nil }

func (h *ResponseModelHandler) Matches(c echo.Context, req *MatchesRequest) (Redirect, error) {
	if req.WebIndex.Bool() {
		return Redirect{URL: responseModelDocs}, nil
	}
	return Redirect{Body: Message{Message: "This is an interdimensional portal"}}, nil
}
