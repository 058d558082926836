package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env     string `envconfig:"APP_ENV" default:"development"`
	Port    int    `envconfig:"APP_PORT" default:"8080"`
	Store   StoreConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Limiter RateLimiterConfig
	CORS    CORSConfig
	JWT     JWTConfig
	Intake  IntakeConfig
}

// record store backend
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

// database configuration
type DBConfig struct {
	DSN             string        `envconfig:"DATABASE_URL"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// redis configuration, shared by the session pointer and the rate limiter
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// session pointer backend
type SessionConfig struct {
	Driver string `envconfig:"SESSION_DRIVER" default:"redis"`
	Key    string `envconfig:"SESSION_KEY" default:"cf_auth"`
}

// rate limiting configuration for the public form
type RateLimiterConfig struct {
	RPS     float64       `envconfig:"RATE_LIMIT_RPS" default:"1"`
	Burst   int           `envconfig:"RATE_LIMIT_BURST" default:"5"`
	Window  time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	Enabled bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// JWT configuration
type JWTConfig struct {
	Secret         string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"12h"`
}

// public form and export settings
type IntakeConfig struct {
	PublicBaseURL    string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
	ExportTimezone   string `envconfig:"EXPORT_TIMEZONE" default:"America/Mexico_City"`
	MaxDocumentBytes int    `envconfig:"MAX_DOCUMENT_BYTES" default:"5242880"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	switch c.Store.Driver {
	case "postgres":
		if c.DB.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
		if c.DB.MaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
	case "memory":
	default:
		return fmt.Errorf("invalid STORE_DRIVER: %s (must be postgres or memory)", c.Store.Driver)
	}
	switch c.Session.Driver {
	case "redis", "memory":
	default:
		return fmt.Errorf("invalid SESSION_DRIVER: %s (must be redis or memory)", c.Session.Driver)
	}
	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}
	if _, err := time.LoadLocation(c.Intake.ExportTimezone); err != nil {
		return fmt.Errorf("invalid EXPORT_TIMEZONE %q: %w", c.Intake.ExportTimezone, err)
	}
	if c.Intake.MaxDocumentBytes < 1 {
		return fmt.Errorf("MAX_DOCUMENT_BYTES must be at least 1")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) UsesRedis() bool {
	return c.Session.Driver == "redis"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// ExportLocation is the time zone export dates are rendered in.
func (c *Config) ExportLocation() *time.Location {
	loc, err := time.LoadLocation(c.Intake.ExportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Store=%s, DB.MaxConns=%d, Session=%s, "+
		"Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, CORS.Origins=%d, "+
		"JWT.AccessTokenTTL=%s, Export.TZ=%s}",
		c.Env, c.Port, c.Store.Driver, c.DB.MaxConns, c.Session.Driver,
		c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled, len(c.CORS.TrustedOrigins),
		c.JWT.AccessTokenTTL, c.Intake.ExportTimezone)
}
