// Package config loads and validates the application configuration.
//
// Values are layered, later sources overriding earlier ones:
//  1. built-in defaults
//  2. an optional YAML file (passed with --config)
//  3. environment variables prefixed with TODO_ (a `.env` file is
//     loaded into the environment first, if present)
//
// Nested keys are separated by a double underscore in environment variables:
//
//	TODO_SERVER__PORT=8080               -> server.port
//	TODO_REPOSITORY__BACKEND=memory      -> repository.backend
//	TODO_SERVER__CORS_ALLOWED_ORIGINS=a,b -> server.cors_allowed_origins
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment, if present.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix every configuration environment variable carries.
	EnvPrefix = "TODO_"

	// ServiceName tags logs and traces emitted by this service.
	ServiceName = "go-todo"

	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config is the root configuration object for the application.
//
// Database is validated only when the postgres backend is selected, so the
// memory backend can run with no database settings at all.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Repository    RepositoryConfig     `koanf:"repository" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"-"`
	Observability *ObservabilityConfig `koanf:"observability" validate:"-"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required,min=1"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig configures the per-IP request limiter.
// A zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"min=0"`
	Burst             int     `koanf:"burst" validate:"min=0"`
}

// RepositoryConfig selects the storage backend.
type RepositoryConfig struct {
	Backend string `koanf:"backend" validate:"required,oneof=postgres memory"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=0"`
}

func defaults() map[string]any {
	return map[string]any{
		"primary.env":                 "local",
		"server.port":                 "3000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.cors_allowed_origins": []string{"http://localhost:3001"},
		"repository.backend":          BackendPostgres,
		"database.host":               "localhost",
		"database.port":               5432,
		"database.user":               "postgres",
		"database.name":               "todos",
		"database.ssl_mode":           "disable",
		"database.max_open_conns":     10,
		"database.max_idle_conns":     2,
		"database.conn_max_lifetime":  3600,
		"database.conn_max_idle_time": 300,

		"observability.logging.level":                         "info",
		"observability.logging.format":                        "console",
		"observability.logging.slow_query_threshold":          100 * time.Millisecond,
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.health_checks.enabled":                 true,
		"observability.health_checks.timeout":                 5 * time.Second,
		"observability.health_checks.checks":                  []string{"database"},
	}
}

// listKeys are the settings whose environment values are comma-separated.
var listKeys = map[string]bool{
	"server.cors_allowed_origins":         true,
	"observability.health_checks.checks": true,
}

// envKey maps TODO_SERVER__CORS_ALLOWED_ORIGINS to server.cors_allowed_origins.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// envKeyValue is envKey plus splitting of list values, so
// TODO_SERVER__CORS_ALLOWED_ORIGINS=http://a,http://b yields two origins.
func envKeyValue(key, value string) (string, any) {
	key = envKey(key)
	if !listKeys[key] {
		return key, value
	}

	items := make([]string, 0, strings.Count(value, ",")+1)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// at path (skipped when path is empty) and the environment, then validates it.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags, then the database block when the postgres
// backend is selected, then the observability block. A missing observability
// block is replaced with DefaultObservabilityConfig.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Repository.Backend == BackendPostgres {
		if err := validate.Struct(c.Database); err != nil {
			return fmt.Errorf("database config validation failed: %w", err)
		}
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := validate.Struct(c.Observability); err != nil {
		return fmt.Errorf("observability config validation failed: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	return nil
}
