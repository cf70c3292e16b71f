// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares, the system routes and one route group per
// lesson, mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/echo-lessons/internal/handler"
	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/labstack/echo/v4"

	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the Echo instance that serves every lesson.
//
// Middleware order matters:
//   - RequestID first, so everything after it can log the id
//   - New Relic next, so the transaction spans the whole request
//   - ContextEnhancer before RequestLogger, which reads the request logger
//   - Recover inside the logger, so panics are logged as 500s
//   - RateLimit and Metrics last, so they see route paths
func NewRouter(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// "/items/" and "/items" hit the same route.
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
		m.Global.Secure(),
		m.Global.CORS(),
		m.Global.BodyLimit(),
		m.RateLimit.Limit(),
		m.Metrics.Collect(),
	)

	registerSystemRoutes(router, h, m)

	lessons := Lessons()
	router.GET("/", h.Lessons.Index(lessons))

	guardDeps := guards(m)
	for _, l := range lessonTable {
		var group *echo.Group
		if l.global {
			group = router.Group(l.Prefix(), handler.Depends(guardDeps...))
		} else {
			group = router.Group(l.Prefix())
		}

		group.GET("", h.Lessons.Hello(l.title))
		l.register(group, h, guardDeps)
	}

	return router
}

// guards are the X-Token and X-Key checks, as dependencies whose values
// nobody reads.
func guards(m *middleware.Middlewares) []handler.Runner {
	return []handler.Runner{
		handler.Depend("verify_token", m.Auth.VerifyToken),
		handler.Depend("verify_key", m.Auth.VerifyKey),
	}
}
