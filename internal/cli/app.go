package cli

import (
	"fmt"

	"github.com/deppfellow/echo-lessons/internal/handler"
	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/deppfellow/echo-lessons/internal/router"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/deppfellow/echo-lessons/internal/service"
	"github.com/labstack/echo/v4"
)

// newRouter assembles stores, services, handlers and middlewares around s.
func newRouter(s *server.Server) (*echo.Echo, error) {
	repos, err := repository.NewRepositories(s)
	if err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	services, err := service.NewService(s, repos)
	if err != nil {
		return nil, fmt.Errorf("failed to create services: %w", err)
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	return router.NewRouter(s, handlers, middlewares), nil
}
