package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GuardedHandler serves routes whose dependencies only guard access: the
// X-Token and X-Key checks run first and their values are thrown away.
// The decorator lesson attaches them per route, the global lesson to the
// whole group; the handlers are the same.
type GuardedHandler struct {
	Handler
}

func NewGuardedHandler(h Handler) *GuardedHandler {
	return &GuardedHandler{Handler: h}
}

type GuardedItem struct {
	Item string `json:"item"`
}

type GuardedUser struct {
	Username string `json:"username"`
}

func (h *GuardedHandler) ListItems(c echo.Context) error {
	return c.JSON(http.StatusOK, []GuardedItem{{Item: "Foo"}, {Item: "Bar"}})
}

func (h *GuardedHandler) ListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, []GuardedUser{{Username: "Rick"}, {Username: "Morty"}})
}
