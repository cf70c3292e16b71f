package middleware

import (
	"net/http"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware every route runs through, plus the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware configured by server.cors_allowed_origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// BodyLimit rejects request bodies above server.body_limit with 413.
func (global *GlobalMiddlewares) BodyLimit() echo.MiddlewareFunc {
	return middleware.BodyLimit(global.server.Config.Server.BodyLimit)
}

// statusFromError returns the status the client will receive.
//
// When a handler returns an error, Echo has not written the final status yet;
// GlobalErrorHandler does that later. Derive it from the error instead of
// reporting 200 for a failed request.
// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
func statusFromError(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	case c.Response().Committed:
		return c.Response().Status
	default:
		return http.StatusInternalServerError
	}
}

// RequestLogger emits one "API" line per request, levelled by status:
// Error for 5xx, Warn for 4xx and for requests slower than
// observability.logging.slow_request_threshold, Info otherwise.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	slow := global.server.Config.Observability.Logging.SlowRequestThreshold

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := statusFromError(c, v.Error)

			// ContextEnhancer already attached request_id, route and trace ids.
			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			case slow > 0 && v.Latency > slow:
				e = logger.Warn().Bool("slow", true)
			default:
				e = logger.Info()
			}

			if principal := GetPrincipal(c); principal != "" {
				e = e.Str("principal", principal)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into 500 responses.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds the standard security headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
// Every error a handler or middleware returns ends up here and is written
// in the errs.HTTPError shape.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	// Logs keep the real error even when the client sees a sanitized one.
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusNotFound:
				httpErr = errs.NewNotFoundError("Route not found", false, nil)
			default:
				msg, ok := echoErr.Message.(string)
				if !ok || msg == "" {
					msg = http.StatusText(echoErr.Code)
				}
				httpErr = errs.New(echoErr.Code, msg)
			}
		} else {
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := *GetLogger(c)

	event := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	}

	event.
		Err(originalErr).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	for name, value := range httpErr.Headers {
		c.Response().Header().Set(name, value)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr)
}
