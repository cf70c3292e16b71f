package config

import (
	"fmt"
	"slices"
	"time"
)

// ObservabilityConfig is the optional observability block: logging, the New
// Relic agent and dependency health checks. LoadConfig fills it with
// DefaultObservabilityConfig when the environment sets none of it.
type ObservabilityConfig struct {
	// ServiceName and Environment label every log line and trace.
	// Both are overwritten from the root config in Config.finalize.
	ServiceName string `koanf:"service_name" validate:"required"`
	Environment string `koanf:"environment" validate:"required"`

	Logging      LoggingConfig      `koanf:"logging" validate:"required"`
	NewRelic     NewRelicConfig     `koanf:"new_relic" validate:"required"`
	HealthChecks HealthChecksConfig `koanf:"health_checks" validate:"required"`
}

// LoggingConfig controls the root zerolog logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level" validate:"required"`

	// Format is "json" or "console". Production always writes JSON.
	Format string `koanf:"format" validate:"required"`

	// SlowRequestThreshold makes successful requests slower than this log at
	// warn. Env values are duration strings ("250ms", "1s").
	SlowRequestThreshold time.Duration `koanf:"slow_request_threshold"`
}

// NewRelicConfig configures the APM agent. An empty LicenseKey keeps the
// agent off and every New Relic middleware becomes a pass-through.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`

	// DebugLogging prints agent internals to stdout, interleaved with app logs.
	DebugLogging bool `koanf:"debug_logging"`
}

// HealthChecksConfig drives GET /status and the background monitor.
type HealthChecksConfig struct {
	Enabled bool `koanf:"enabled"`

	// Interval is how often the background monitor runs the checks.
	Interval time.Duration `koanf:"interval" validate:"min=1s"`

	// Timeout bounds a single check.
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`

	// Checks names the dependencies to check. Only "redis" is known; it is
	// skipped when no Redis address is configured.
	Checks []string `koanf:"checks"`
}

// knownChecks are the values HealthChecksConfig.Checks accepts.
var knownChecks = []string{"redis"}

// DefaultObservabilityConfig is used when Config.Observability is nil.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "echo-lessons",
		Environment: "development",
		Logging: LoggingConfig{
			Level:                "info",
			Format:               "json",
			SlowRequestThreshold: 500 * time.Millisecond,
		},
		NewRelic: NewRelicConfig{
			AppLogForwardingEnabled:   true,
			DistributedTracingEnabled: true,
		},
		HealthChecks: HealthChecksConfig{
			Enabled:  true,
			Interval: 30 * time.Second,
			Timeout:  5 * time.Second,
			Checks:   []string{"redis"},
		},
	}
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks what struct tags cannot. It runs after tag validation in
// Config.finalize and returns the first failure.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if !slices.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if c.Logging.SlowRequestThreshold < 0 {
		return fmt.Errorf("logging slow_request_threshold must be non-negative")
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging format: %s (must be json or console)", c.Logging.Format)
	}

	for _, check := range c.HealthChecks.Checks {
		if !slices.Contains(knownChecks, check) {
			return fmt.Errorf("unknown health check: %s", check)
		}
	}

	if c.HealthChecks.Timeout > c.HealthChecks.Interval {
		return fmt.Errorf("health_checks timeout must not exceed interval")
	}

	return nil
}

// GetLogLevel returns the configured level, falling back to info in
// production and debug in development when none is set.
func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}

	switch c.Environment {
	case "production":
		return "info"
	case "development", "local":
		return "debug"
	}

	return "info"
}

// IsProduction switches the logger to plain JSON without stack traces.
func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}
