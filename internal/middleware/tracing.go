package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/echo-lessons/internal/server"
)

// TracingMiddleware owns the New Relic middleware. nrApp is nil when the
// agent is off, and then both middlewares pass requests straight through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts one transaction per request and stores it in the
// request context, where newrelic.FromContext finds it.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// lessonOf returns the lesson slug of a route path: "/request-files/files" -> "request-files".
func lessonOf(route string) string {
	route = strings.TrimPrefix(route, "/")
	if i := strings.IndexByte(route, '/'); i >= 0 {
		route = route[:i]
	}
	return route
}

// EnhanceTracing tags the transaction with the client, the request id, the
// lesson, the principal and the final status, and notices returned errors.
// It must run after NewRelicMiddleware.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			// User agent is high-cardinality; fine as an attribute, never as a metric label.
			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			err := next(c)

			// Route matching happens inside next, so c.Path is only set now.
			if lesson := lessonOf(c.Path()); lesson != "" {
				txn.AddAttribute("lesson", lesson)
			}

			if principal := GetPrincipal(c); principal != "" {
				txn.AddAttribute("auth.principal", principal)
			}

			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			// The error handler has not written the response yet when err != nil.
			txn.AddAttribute("http.status_code", statusFromError(c, err))

			return err
		}
	}
}
