package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mesa-kpi/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Mock sizes the generated demo data. Environment variables prefixed
	// with MOCK_ will populate this struct.
	Mock configs.Mock `envPrefix:"MOCK_"`

	// Metrics configures the Prometheus endpoint. Environment variables
	// prefixed with METRICS_ will populate this struct.
	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config.
// Variables found in the given dotenv files (".env" when none is given)
// are applied first without overriding the real environment; missing
// files are skipped. All fields are loaded with their specified defaults
// when no environment variable is provided.
func Load(dotenvFiles ...string) (Config, error) {
	var cfg Config
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", f, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that parse but cannot be served.
func (c Config) Validate() error {
	if c.Mock.DashboardDays <= 0 {
		return fmt.Errorf("MOCK_DASHBOARD_DAYS must be positive, got %d", c.Mock.DashboardDays)
	}
	if c.Mock.OperationDays <= 0 {
		return fmt.Errorf("MOCK_OPERATION_DAYS must be positive, got %d", c.Mock.OperationDays)
	}
	return nil
}
