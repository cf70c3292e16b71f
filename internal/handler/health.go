package handler

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/echo-lessons/internal/middleware"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the service and its optional Redis are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(h Handler) *HealthHandler {
	return &HealthHandler{Handler: h}
}

// CheckHealth returns system health status and dependency checks.
//
// It returns:
//   - 200 OK if all checks pass
//   - 503 Service Unavailable if any check fails
//
// Redis is checked when it is configured and listed in
// observability.health_checks.checks.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	cfg := h.server.Config
	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": cfg.Primary.Env,
		"store":       cfg.Store.Backend,
		"jobs":        h.server.Job != nil,
		"checks":      checks,
	}

	isHealthy := true
	hc := cfg.Observability.HealthChecks

	if h.server.Redis != nil && hc.Enabled && slices.Contains(hc.Checks, "redis") {
		ctx, cancel := context.WithTimeout(c.Request().Context(), hc.Timeout)
		defer cancel()

		redisStart := time.Now()

		if err := h.server.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(redisStart).String(),
				"error":         err.Error(),
			}

			// A configured Redis is a required dependency.
			isHealthy = false

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check failed")

			h.recordFailure(map[string]interface{}{
				"check_type":       "redis",
				"operation":        "health_check",
				"error_type":       "redis_unhealthy",
				"response_time_ms": time.Since(redisStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			checks["redis"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(redisStart).String(),
			}

			logger.Info().
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check passed")
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		h.recordFailure(map[string]interface{}{
			"check_type":    "response",
			"operation":     "health_check",
			"error_type":    "json_response_error",
			"error_message": err.Error(),
		})

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// recordFailure sends a HealthCheckError custom event when New Relic is on.
func (h *HealthHandler) recordFailure(attrs map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}
