package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config centralises every runtime setting so the rest of the codebase can remain deterministic
// and easy to test. All fields can be overridden using environment variables.
type Config struct {
	AppName  string        `env:"APP_NAME" envDefault:"devops-info-service"`
	Env      string        `env:"APP_ENV" envDefault:"production"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	Host     string        `env:"HOST" envDefault:"0.0.0.0" validate:"required,ip|hostname_rfc1123"`
	Port     int           `env:"PORT" envDefault:"5000" validate:"min=1,max=65535"`
	Debug    DebugFlag     `env:"DEBUG" envDefault:"false"`
	HTTP     HTTPConfig    `envPrefix:"HTTP_"`
	Metrics  MetricsConfig `envPrefix:"METRICS_"`
	CORS     CORSConfig    `envPrefix:"CORS_"`
}

// HTTPConfig controls the HTTP server behaviour.
type HTTPConfig struct {
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s" validate:"gte=0"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s" validate:"gte=0"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s" validate:"gte=0"`
}

type MetricsConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// DebugFlag is true only for the literal "true", compared case-insensitively.
// Any other value, including "1" or "yes", leaves debug off.
type DebugFlag bool

func (d *DebugFlag) UnmarshalText(text []byte) error {
	*d = DebugFlag(strings.EqualFold(strings.TrimSpace(string(text)), "true"))
	return nil
}

// Addr is the listen address for net/http.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads configuration from the environment, applying defaults defined above.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
