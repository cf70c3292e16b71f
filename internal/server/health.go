package server

import (
	"context"
	"slices"
	"time"
)

// MonitorHealth pings Redis every observability.health_checks.interval until
// ctx is done, logging state changes. GET /status runs the same check on demand.
func (s *Server) MonitorHealth(ctx context.Context) {
	hc := s.Config.Observability.HealthChecks
	if !hc.Enabled || s.Redis == nil || !slices.Contains(hc.Checks, "redis") {
		return
	}

	ticker := time.NewTicker(hc.Interval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, hc.Timeout)
		err := s.Redis.Ping(pingCtx).Err()
		cancel()

		switch {
		case err != nil && healthy:
			s.Logger.Error().Err(err).Str("check_type", "redis").Msg("dependency became unhealthy")
			s.recordHealthEvent("redis", err)
		case err == nil && !healthy:
			s.Logger.Info().Str("check_type", "redis").Msg("dependency recovered")
		}
		healthy = err == nil
	}
}

func (s *Server) recordHealthEvent(check string, err error) {
	if s.LoggerService == nil || s.LoggerService.GetApplication() == nil {
		return
	}
	s.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]interface{}{
		"check_type":    check,
		"operation":     "health_monitor",
		"error_message": err.Error(),
	})
}
