package middleware

import (
	"context"

	"github.com/deppfellow/echo-lessons/internal/logger"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// loggerCtxKey keys the request logger in context.Context.
type loggerCtxKey struct{}

const (
	// LoggerKey is used as the key for storing the request-scoped logger in echo.Context.
	LoggerKey = "logger"
)

// ContextEnhancer builds a request-scoped logger (request_id, method, route,
// ip, trace ids) and stores it on both the echo context and the request's
// context.Context.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an Echo middleware.
//
// It must run after RequestID and the New Relic middleware, so the id and
// transaction it reads already exist.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // Echo route template (e.g. "/users/:id"), not raw URL
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			c.Set(LoggerKey, &contextLogger)

			// Code that only sees a context.Context (services, stores) can
			// still reach the request logger through LoggerFromContext.
			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// GetPrincipal returns who the auth middleware let in, or "".
func GetPrincipal(c echo.Context) string {
	if p, ok := c.Get(PrincipalKey).(string); ok {
		return p
	}
	return ""
}

// GetLogger retrieves the request-scoped logger from Echo context.
//
// If EnhanceContext middleware didn't run, it returns a no-op logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}

// LoggerFromContext is GetLogger for code that only has a context.Context.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
