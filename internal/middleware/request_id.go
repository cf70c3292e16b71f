package middleware

import (
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey holds the id on the echo context.
	RequestIDKey = "request_id"
)

// RequestID gives every request an id, echoed in the X-Request-ID response
// header. A client-sent id is kept only when it parses as a UUID, so log
// lines cannot be forged through the header. New ids are version 7 and
// sort by time.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)

			if !validation.IsValidUUID(requestID) {
				requestID = newRequestID()
			}

			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			return next(c)
		}
	}
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// GetRequestID returns the request's id, or "" outside the middleware.
func GetRequestID(c echo.Context) string {
	requestID, _ := c.Get(RequestIDKey).(string)
	return requestID
}
