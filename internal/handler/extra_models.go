package handler

import (
	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
)

// ExtraModelsHandler shows input, output and storage shapes of one user,
// union responses, and list and map response models.
type ExtraModelsHandler struct {
	Handler
}

func NewExtraModelsHandler(h Handler) *ExtraModelsHandler {
	return &ExtraModelsHandler{Handler: h}
}

type UserInRequest struct {
	model.UserIn
}

func (r *UserInRequest) Validate() error { return validation.Struct(r) }

// SaveUserDetails stores the user and answers without any password.
func (h *ExtraModelsHandler) SaveUserDetails(c echo.Context, req *UserInRequest) (model.UserOut, error) {
	return h.services.Users.Register(c.Request().Context(), req.UserIn, false)
}

// CreateUser is SaveUserDetails plus a welcome email when jobs are enabled.
func (h *ExtraModelsHandler) CreateUser(c echo.Context, req *UserInRequest) (model.UserOut, error) {
	return h.services.Users.Register(c.Request().Context(), req.UserIn, true)
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error { return validation.Struct(r) }

type LoginResponse struct {
	Username string `json:"username"`
}

// Login checks the password against the hash SaveUserDetails stored.
func (h *ExtraModelsHandler) Login(c echo.Context, req *LoginRequest) (LoginResponse, error) {
	ok, err := h.services.Users.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return LoginResponse{}, err
	}
	if !ok {
		return LoginResponse{}, errs.NewBadRequestError("Incorrect username or password", true, nil, nil)
	}
	return LoginResponse{Username: req.Username}, nil
}

type VehicleRequest struct {
	VehicleID string `param:"vehicle_id"`
}

func (r *VehicleRequest) Validate() error { return nil }

// GetVehicle answers with a car or a plane; only planes carry a size.
func (h *ExtraModelsHandler) GetVehicle(c echo.Context, req *VehicleRequest) (model.Vehicle, error) {
	return h.services.Catalog.Vehicle(req.VehicleID)
}

func (h *ExtraModelsHandler) ListItems(c echo.Context, _ *NoParams) ([]model.ListedItem, error) {
	return h.services.Catalog.ListedItems(), nil
}

func (h *ExtraModelsHandler) KeywordWeights(c echo.Context, _ *NoParams) (map[string]float64, error) {
	return h.services.Catalog.KeywordWeights(), nil
}
