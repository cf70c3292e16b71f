package handler

import (
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/labstack/echo/v4"
)

// Message is the {"message": ...} body many lessons answer with.
type Message struct {
	Message string `json:"message"`
}

// LessonsHandler serves the root catalog and each lesson's greeting.
type LessonsHandler struct {
	Handler
}

func NewLessonsHandler(h Handler) *LessonsHandler {
	return &LessonsHandler{Handler: h}
}

// Index lists every mounted lesson.
func (h *LessonsHandler) Index(lessons []model.Lesson) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, lessons)
	}
}

// Hello answers a lesson's root with "Hello <title>!".
func (h *LessonsHandler) Hello(title string) echo.HandlerFunc {
	body := Message{Message: "Hello " + title + "!"}
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, body)
	}
}
