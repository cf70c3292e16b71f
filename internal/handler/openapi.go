package handler

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API docs UI and the static OpenAPI document it loads.
type OpenAPIHandler struct {
	Handler
	files fs.FS
}

func NewOpenAPIHandler(h Handler) *OpenAPIHandler {
	return &OpenAPIHandler{Handler: h, files: static.Files}
}

// ServeOpenAPIUI serves openapi.html.
//
// Cache-Control is set to "no-cache" so clients do not reuse an old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := fs.ReadFile(h.files, "openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}

// Files exposes the embedded static files for the /static route.
func (h *OpenAPIHandler) Files() fs.FS {
	return h.files
}
