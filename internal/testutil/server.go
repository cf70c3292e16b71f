// Package testutil builds a complete, offline lesson server for tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/echo-lessons/internal/config"
	"github.com/deppfellow/echo-lessons/internal/handler"
	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/deppfellow/echo-lessons/internal/repository"
	"github.com/deppfellow/echo-lessons/internal/router"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/deppfellow/echo-lessons/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestServer is the real router over memory stores.
type TestServer struct {
	Server   *server.Server
	Services *service.Services
	Router   *echo.Echo
}

// Config returns the default config with the rate limiter off.
func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Server.RateLimit = 0
	require.NoError(t, cfg.Finalize())

	return cfg
}

// NewServer builds a TestServer from cfg, or from Config(t) when cfg is nil.
func NewServer(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()

	if cfg == nil {
		cfg = Config(t)
	}

	log := zerolog.Nop()
	s, err := server.New(cfg, &log, nil)
	require.NoError(t, err)

	repos, err := repository.NewRepositories(s)
	require.NoError(t, err)

	services, err := service.NewService(s, repos)
	require.NoError(t, err)

	r := router.NewRouter(s, handler.NewHandlers(s, services), middleware.NewMiddlewares(s))

	return &TestServer{Server: s, Services: services, Router: r}
}

// Do serves req and returns the recorded response.
func (ts *TestServer) Do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)
	return rec
}

// Request serves method path with an optional JSON body.
func (ts *TestServer) Request(method, path, jsonBody string) *httptest.ResponseRecorder {
	var body io.Reader
	if jsonBody != "" {
		body = strings.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, body)
	if jsonBody != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return ts.Do(req)
}
