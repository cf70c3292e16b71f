package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/deppfellow/echo-lessons/internal/server"
	"github.com/deppfellow/echo-lessons/internal/service"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// Lesson handlers embed it so they can reach config, logger and the
// business layer.
type Handler struct {
	server   *server.Server
	services *service.Services
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value: both fields are pointers, so copies share
// the same Server and Services.
func NewHandler(s *server.Server, services *service.Services) Handler {
	return Handler{server: s, services: services}
}

// --- Generic typed handler plumbing -----------------------------------------

// Payload constrains the request type parameter: PReq is a pointer to Req
// that knows how to validate itself. The pipeline allocates a fresh Req for
// every request, so nothing bound for one request is visible to the next.
type Payload[Req any] interface {
	*Req
	validation.Validatable
}

// HandlerFunc represents a typed endpoint function that:
//
// - receives a bound, validated request payload (PReq)
// - returns a response (Res) or an error
type HandlerFunc[PReq validation.Validatable, Res any] func(c echo.Context, req PReq) (Res, error)

// HandlerFuncNoContent is a typed endpoint function for routes that return no response body.
type HandlerFuncNoContent[PReq validation.Validatable] func(c echo.Context, req PReq) error

// ResponseHandler defines how a successful handler result is written to the
// HTTP response, and which observability attributes go with it.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on response type and/or result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// NoContentResponseHandler writes responses with no body (typically 204).
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
}

// RedirectResponseHandler answers with a redirect when the handler returns a
// non-empty Redirect, and with JSON otherwise.
type RedirectResponseHandler struct {
	status int
}

// Redirect is returned by handlers that may send the client elsewhere.
// An empty URL means "no redirect, write Body as JSON".
type Redirect struct {
	URL  string
	Body any
}

func (h RedirectResponseHandler) Handle(c echo.Context, result interface{}) error {
	r := result.(Redirect)
	if r.URL != "" {
		return c.Redirect(h.status, r.URL)
	}
	return c.JSON(http.StatusOK, r.Body)
}

func (h RedirectResponseHandler) GetOperation() string {
	return "handler_redirect"
}

func (h RedirectResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn == nil {
		return
	}
	if r, ok := result.(Redirect); ok && r.URL != "" {
		txn.AddAttribute("redirect.location", r.URL)
	}
}

// recordPhase tags txn with the outcome and duration of one pipeline phase
// ("validation" or "handler").
func recordPhase(txn *newrelic.Transaction, phase string, d time.Duration, err error) {
	if txn == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failed"
		txn.NoticeError(nrpkgerrors.Wrap(err))
	}

	txn.AddAttribute(phase+".status", status)
	txn.AddAttribute(phase+".duration_ms", d.Milliseconds())
}

// handleRequest is the pipeline every typed handler runs through:
// allocate a fresh payload, bind and validate it, run the handler, write
// the result. Each phase is timed, logged with the request logger and
// recorded on the New Relic transaction. Errors are returned untouched for
// the global error handler to render.
func handleRequest[Req any, PReq Payload[Req]](
	c echo.Context,
	handler func(c echo.Context, req PReq) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()
	req := PReq(new(Req))

	// Set by the nrecho middleware; nil when New Relic is off.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	// Already carries request_id, method, path, ip and trace ids.
	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	validationStart := time.Now()
	err := validation.BindAndValidate(c, req)
	validationDuration := time.Since(validationStart)
	recordPhase(txn, "validation", validationDuration, err)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")
		return err
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)
	recordPhase(txn, "handler", handlerDuration, err)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	if txn != nil {
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Msg("request handled")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, logging and
// tracing, and writes its result as JSON with the given status.
//
// Usage:
//
//	g.POST("/items", Handle(h.createItem, http.StatusCreated))
func Handle[Req any, PReq Payload[Req], Res any](
	handler HandlerFunc[PReq, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PReq](c, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent is Handle for endpoints that answer without a body.
func HandleNoContent[Req any, PReq Payload[Req]](
	handler HandlerFuncNoContent[PReq],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PReq](c, func(c echo.Context, req PReq) (interface{}, error) {
			return nil, handler(c, req)
		}, NoContentResponseHandler{status: status})
	}
}

// HandleRedirect is Handle for endpoints that either redirect with status or
// answer 200 with JSON.
func HandleRedirect[Req any, PReq Payload[Req]](
	handler HandlerFunc[PReq, Redirect],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PReq](c, func(c echo.Context, req PReq) (interface{}, error) {
			return handler(c, req)
		}, RedirectResponseHandler{status: status})
	}
}

// NoParams is the payload of routes that read nothing from the request.
type NoParams struct{}

func (NoParams) Validate() error { return nil }
