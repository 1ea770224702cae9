// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	AppEnv     string `env:"APP_ENV" envDefault:"development"`
	ServerPort string `env:"SERVER_PORT"`

	// Database (PostgreSQL)
	DatabaseURL        string        `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns         int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns         int32         `env:"DB_MIN_CONNS" envDefault:"2"`
	DBMaxConnIdleTime  time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	ApplySchemaOnStart bool          `env:"APPLY_SCHEMA_ON_START" envDefault:"true"`

	// Development seed data
	SeedData  bool `env:"SEED_DATA" envDefault:"false"`
	SeedCount int  `env:"SEED_COUNT" envDefault:"99"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Comma-separated; empty means any origin.
	CORSAllowedOrigins   string `env:"CORS_ALLOWED_ORIGINS"`
	CORSAllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	TLS TLSSettings
}

// TLSSettings holds environment-driven TLS configuration.
type TLSSettings struct {
	EnableTLS       bool   `env:"ENABLE_TLS" envDefault:"false"`
	CertPath        string `env:"TLS_CERT_PATH"`
	KeyPath         string `env:"TLS_KEY_PATH"`
	CertPEM         string `env:"TLS_CERT"`
	KeyPEM          string `env:"TLS_KEY"`
	AllowSelfSigned bool   `env:"TLS_SELF_SIGNED" envDefault:"false"`
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Port returns SERVER_PORT, or 8443/8080 depending on whether TLS is on.
func (c *Config) Port() string {
	if c.ServerPort != "" {
		return c.ServerPort
	}
	if c.TLS.EnableTLS {
		return "8443"
	}
	return "8080"
}

// AllowedOrigins parses CORS_ALLOWED_ORIGINS, falling back to "*".
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0)
	for _, p := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Validate rejects settings that are unsafe for the selected environment.
func (c *Config) Validate() error {
	if c.SeedCount < 0 {
		return errors.New("SEED_COUNT must not be negative")
	}
	if c.IsProduction() {
		if !c.TLS.EnableTLS {
			return errors.New("TLS must be enabled in production")
		}
		if c.TLS.CertPath == "" || c.TLS.KeyPath == "" {
			return errors.New("TLS_CERT_PATH and TLS_KEY_PATH are required in production")
		}
	}
	return nil
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	if cfg.IsProduction() {
		cfg.TLS.EnableTLS = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
