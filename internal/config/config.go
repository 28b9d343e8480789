// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used by the server and
// the seed script.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Store drivers selected by the scheme of MONGO_API_KEY.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Document store
	StoreURI     string        `env:"MONGO_API_KEY" validate:"required"`
	StoreDB      string        `env:"MONGO_DB" envDefault:"contenthub" validate:"required"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// Server settings
	Host string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"APP_PORT" envDefault:"5000" validate:"required,numeric"`
	Env  string `env:"APP_ENV" envDefault:"development" validate:"oneof=development production testing"`

	// Valkey (Redis-compatible) for sessions and the seed lock
	ValkeyURL string `env:"VALKEY_URL"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile  string `env:"LOG_FILE"`

	SeedLockTTL    time.Duration `env:"SEED_LOCK_TTL" envDefault:"2m" validate:"gt=0"`
	LoginRateLimit int           `env:"LOGIN_RATE_LIMIT" envDefault:"10" validate:"gte=1"`
}

// ConfigurationError reports a missing or malformed setting. Field is the
// environment variable name.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their environment variable name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		return name
	})
	return v
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigurationError{Field: ".env", Reason: err.Error()}
	}
	return FromEnv()
}

// FromEnv parses and validates the configuration from environment variables
// alone. It never touches the network.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, parseError(err)
	}

	if strings.TrimSpace(cfg.StoreURI) == "" {
		return nil, &ConfigurationError{
			Field:  "MONGO_API_KEY",
			Reason: "must be set to the document store connection URI",
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, validationError(err)
	}

	driver, err := cfg.Driver()
	if err != nil {
		return nil, err
	}
	if cfg.IsProduction() && driver == DriverMemory {
		return nil, &ConfigurationError{
			Field:  "MONGO_API_KEY",
			Reason: "memory:// is not allowed in production",
		}
	}

	return cfg, nil
}

// Driver returns the store driver named by the scheme of StoreURI.
func (c *Config) Driver() (string, error) {
	scheme, _, ok := strings.Cut(c.StoreURI, "://")
	if !ok {
		return "", &ConfigurationError{Field: "MONGO_API_KEY", Reason: "must be a URI with a scheme"}
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "memory":
		return DriverMemory, nil
	}
	return "", &ConfigurationError{
		Field:  "MONGO_API_KEY",
		Reason: fmt.Sprintf("has unsupported scheme %q", scheme),
	}
}

// RedactedStoreURI returns StoreURI with any password masked, for logging.
func (c *Config) RedactedStoreURI() string {
	u, err := url.Parse(c.StoreURI)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}

// RequireSessionStore returns an error unless VALKEY_URL is set. The HTTP
// server cannot keep sessions without it; the seed script does not need it.
func (c *Config) RequireSessionStore() error {
	if c.ValkeyURL == "" {
		return &ConfigurationError{Field: "VALKEY_URL", Reason: "must be set to run the server"}
	}
	return nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func parseError(err error) error {
	var agg env.AggregateError
	if errors.As(err, &agg) && len(agg.Errors) > 0 {
		err = agg.Errors[0]
	}
	var pe env.ParseError
	if errors.As(err, &pe) {
		return &ConfigurationError{Field: envName(pe.Name), Reason: "is malformed: " + pe.Err.Error()}
	}
	return &ConfigurationError{Field: "environment", Reason: err.Error()}
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ConfigurationError{Field: "environment", Reason: err.Error()}
	}
	fe := verrs[0]
	reason := "is invalid"
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "oneof":
		reason = fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "numeric":
		reason = fmt.Sprintf("must be numeric, got %q", fe.Value())
	case "gt", "gte":
		reason = fmt.Sprintf("must be %s %s", map[string]string{"gt": ">", "gte": ">="}[fe.Tag()], fe.Param())
	}
	return &ConfigurationError{Field: fe.Field(), Reason: reason}
}

// envName maps a Config field name to its environment variable name.
func envName(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
	return name
}
