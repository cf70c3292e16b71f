// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types (struct), and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Start from DefaultConfig() so a bare checkout boots a local server.
//   - Overlay env vars (optionally loaded from a `.env` file).
//   - Validate required values so the app fails fast on bad config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into the process env
	// *before* any code reads env vars. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	`koanf` reads a config source (env, yaml, json, ...) and unmarshals the
	flat key/value store it builds into our structs.

	Key idea in this file:
	- Env vars are read using a prefix: TUTORIALS_
	- Keys are lowercased and the prefix removed
	- A double underscore is the nesting delimiter, single underscores stay:
	    TUTORIALS_SERVER__PORT          -> server.port
	    TUTORIALS_SERVER__READ_TIMEOUT  -> server.read_timeout
	    TUTORIALS_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// EnvPrefix is the prefix every configuration env var carries.
const EnvPrefix = "TUTORIALS_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer so hand-built configs may leave it out;
// finalize injects the defaults when it is nil.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Store         StoreConfig          `koanf:"store" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Jobs          JobsConfig           `koanf:"jobs"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as whole seconds and converted in server.SetupHTTPServer.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit uses echo's size notation ("4M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`

	// RateLimit is requests per second per client IP. Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=0"`
}

// RedisConfig contains Redis connection details.
// An empty Address means "no Redis": stores fall back to memory and jobs stay off.
type RedisConfig struct {
	Address  string `koanf:"address"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db" validate:"min=0"`
}

// StoreConfig selects where the lessons' toy databases live.
type StoreConfig struct {
	Backend   string `koanf:"backend" validate:"required,oneof=memory redis"`
	KeyPrefix string `koanf:"key_prefix" validate:"required"`
}

// AuthConfig stores the shared secrets checked by the header dependencies
// (X-Token / X-Key) in the dependency lessons.
//
// These are demo secrets. Override them in any environment someone else can reach.
type AuthConfig struct {
	Token     string `koanf:"token" validate:"required"`
	SecretKey string `koanf:"secret_key" validate:"required"`
}

// JobsConfig toggles the asynq worker. It needs Redis.
type JobsConfig struct {
	Enabled     bool `koanf:"enabled"`
	Concurrency int  `koanf:"concurrency" validate:"min=0"`
}

// IntegrationConfig holds third-party API credentials.
// An empty ResendAPIKey makes the email client log instead of sending.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// DefaultConfig returns a configuration that boots a local, self-contained server:
// memory stores, no Redis, no jobs, no New Relic.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "local"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "8M",
			RateLimit:          20,
			RateBurst:          40,
		},
		Store: StoreConfig{
			Backend:   "memory",
			KeyPrefix: "lessons",
		},
		Auth: AuthConfig{
			Token:     "fake-super-secret-token",
			SecretKey: "fake-super-secret-key",
		},
		Jobs: JobsConfig{
			Enabled:     false,
			Concurrency: 5,
		},
		Integration: IntegrationConfig{
			EmailFrom: "Lessons <onboarding@resend.dev>",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey maps a raw env var name onto a koanf key path.
//
// Example:
//
//	TUTORIALS_SERVER__CORS_ALLOWED_ORIGINS -> server.cors_allowed_origins
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// listKeys are the list-typed keys. Only their values are split on commas;
// a comma in a token, password or sender name stays part of the string.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":       true,
	"observability.health_checks.checks": true,
}

// envValue splits comma-separated values for list-typed keys so
// TUTORIALS_SERVER__CORS_ALLOWED_ORIGINS=a,b becomes []string{"a", "b"}.
func envValue(key, value string) (string, interface{}) {
	k := envKey(key)
	if listKeys[k] {
		return k, strings.Split(value, ",")
	}
	return k, value
}

// LoadConfig builds the configuration from defaults + environment, validates it,
// and fills the observability block.
//
// Behavior summary:
//   - Starts from DefaultConfig()
//   - Loads env vars with prefix TUTORIALS_ ("__" nests keys)
//   - Unmarshals over the defaults (keys that are absent keep their default)
//   - Validates the struct tags
//   - Injects default observability if missing, then forces service name + env
//   - Validates observability with its own rules
func LoadConfig() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Unmarshal "" means "everything from the root". mapstructure only touches
	// keys that exist, so defaults survive for anything the env does not set.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.finalize(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// finalize validates the config and derives the observability block.
// Split from LoadConfig so tests can validate hand-built configs.
func (c *Config) finalize() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Store.Backend == "redis" && c.Redis.Address == "" {
		return fmt.Errorf("store backend redis requires redis.address")
	}

	if c.Jobs.Enabled && c.Redis.Address == "" {
		return fmt.Errorf("jobs require redis.address")
	}

	// Observability is a pointer: nil means "not provided".
	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment follows primary.env so logs and
	// traces always agree with the runtime.
	c.Observability.ServiceName = "echo-lessons"
	c.Observability.Environment = c.Primary.Env

	if err := validate.Struct(c.Observability); err != nil {
		return fmt.Errorf("observability validation failed: %w", err)
	}

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}

// Finalize exposes finalize for callers that assemble a Config by hand
// (tests, the CLI's route listing).
func (c *Config) Finalize() error {
	return c.finalize()
}
