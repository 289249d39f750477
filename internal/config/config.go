// Package config loads the service settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the user service.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath          string        `env:"DB_PATH" envDefault:"./master.db"`
	RedisAddr       string        `env:"REDIS_CONNSTRING" envDefault:"localhost:6379"`
	JWTSecret       string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"debug"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelStdout      bool          `env:"OTEL_STDOUT" envDefault:"false"`
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"user-auth"`
	ServiceVersion  string        `env:"SERVICE_VERSION" envDefault:"v0.1.0"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return &cfg, nil
}
