package router

import (
	"github.com/deppfellow/echo-lessons/internal/handler"
	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not lessons:
// health, metrics, the docs UI and the static files it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", m.Metrics.Handler())

	// openapi.json and openapi.html, embedded in the binary.
	r.StaticFS("/static", h.OpenAPI.Files())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
