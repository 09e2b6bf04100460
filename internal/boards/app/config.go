package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/boards/pkg/jwtx"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseFile string `env:"BOARDS_DATABASE_FILE" envDefault:"boards.db"` // SQLite database file

	// JWTSecret signs tokens when set. Otherwise the secret lives in
	// JWTSecretFile, generated on first start.
	JWTSecret     string        `env:"BOARDS_JWT_SECRET"`
	JWTSecretFile string        `env:"BOARDS_JWT_SECRET_FILE" envDefault:"jwt-secret"`
	TokenTTL      time.Duration `env:"BOARDS_TOKEN_TTL"       envDefault:"168h"`
	Issuer        string        `env:"BOARDS_ISSUER"          envDefault:"bartab-boards"`
	PepperFile    string        `env:"BOARDS_PEPPER_FILE"     envDefault:"pepper"` // password pepper, generated on first start

	Env                 string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	// OTELEndpoint is an OTLP/HTTP collector URL. Tracing is off when empty.
	OTELEndpoint string `env:"OTEL_ENDPOINT"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service can't start with.
func (c Config) Validate() error {
	var errs []error
	if c.DatabaseFile == "" {
		errs = append(errs, errors.New("BOARDS_DATABASE_FILE must not be empty"))
	}
	if c.JWTSecret == "" && c.JWTSecretFile == "" {
		errs = append(errs, errors.New("one of BOARDS_JWT_SECRET or BOARDS_JWT_SECRET_FILE is required"))
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("BOARDS_JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("BOARDS_TOKEN_TTL must be positive"))
	}
	if c.PepperFile == "" {
		errs = append(errs, errors.New("BOARDS_PEPPER_FILE must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	return errors.Join(errs...)
}
