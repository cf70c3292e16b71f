package handler

import (
	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// PathParamsHandler shows typed path parameters, static-vs-param priority,
// enum parameters and catch-all paths.
type PathParamsHandler struct {
	Handler
}

func NewPathParamsHandler(h Handler) *PathParamsHandler {
	return &PathParamsHandler{Handler: h}
}

type ItemIDRequest struct {
	ItemID int `param:"item_id"`
}

func (r *ItemIDRequest) Validate() error { return nil }

type ItemIDResponse struct {
	ItemID int `json:"item_id"`
}

// GetItem fails with 400 when item_id is not an integer.
func (h *PathParamsHandler) GetItem(c echo.Context, req *ItemIDRequest) (ItemIDResponse, error) {
	return ItemIDResponse{ItemID: req.ItemID}, nil
}

type UserIDResponse struct {
	UserID string `json:"user_id"`
}

// GetMe is registered on /users/me; echo matches static segments before
// :user_id whatever the registration order.
func (h *PathParamsHandler) GetMe(c echo.Context, _ *NoParams) (UserIDResponse, error) {
	return UserIDResponse{UserID: "This is current item"}, nil
}

type UserIDRequest struct {
	UserID string `param:"user_id"`
}

func (r *UserIDRequest) Validate() error { return nil }

func (h *PathParamsHandler) GetUser(c echo.Context, req *UserIDRequest) (UserIDResponse, error) {
	return UserIDResponse{UserID: req.UserID}, nil
}

func (h *PathParamsHandler) ListUsers(c echo.Context, _ *NoParams) ([]string, error) {
	return []string{"Ricky, Martin"}, nil
}

// ModelName is a closed set of network architectures.
type ModelName string

const (
	ModelAlexNet ModelName = "AlexNet"
	ModelResNet  ModelName = "ResNet"
	ModelLeNet   ModelName = "LeNet"
)

var modelMessages = map[ModelName]string{
	ModelAlexNet: "Best CV model",
	ModelResNet:  "Residual Network",
	ModelLeNet:   "Developed by Yann LeCun",
}

type ModelRequest struct {
	ModelName ModelName `param:"model_name" validate:"required,oneof=AlexNet ResNet LeNet"`
}

func (r *ModelRequest) Validate() error {
	return validation.Struct(r)
}

type ModelResponse struct {
	ModelName ModelName `json:"model_name"`
	Message   string    `json:"message"`
}

func (h *PathParamsHandler) GetModel(c echo.Context, req *ModelRequest) (ModelResponse, error) {
	msg, ok := modelMessages[req.ModelName]
	if !ok {
		return ModelResponse{}, errs.NewInternalServerError()
	}
	return ModelResponse{ModelName: req.ModelName, Message: msg}, nil
}

type FilePathRequest struct {
	FilePath string `param:"*"`
}

func (r *FilePathRequest) Validate() error { return nil }

type FilePathResponse struct {
	FilePath string `json:"file_path"`
}

// GetFile receives everything after /files/, slashes included.
func (h *PathParamsHandler) GetFile(c echo.Context, req *FilePathRequest) (FilePathResponse, error) {
	return FilePathResponse{FilePath: req.FilePath}, nil
}
