package config

import (
	"fmt"
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the configuration for dp-tm1-tools
type Config struct {
	TM1Address              string        `envconfig:"TM1_ADDRESS"`
	TM1Port                 string        `envconfig:"TM1_PORT"`
	TM1SSL                  bool          `envconfig:"TM1_SSL"`
	TM1BaseURL              string        `envconfig:"TM1_BASE_URL"`
	TM1User                 string        `envconfig:"TM1_USER"`
	TM1Password             string        `envconfig:"TM1_PASSWORD"              json:"-"`
	TM1Namespace            string        `envconfig:"TM1_NAMESPACE"`
	DefaultRequestTimeout   time.Duration `envconfig:"DEFAULT_REQUEST_TIMEOUT"`
	GracefulShutdownTimeout time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	SweepPatterns           []string      `envconfig:"SWEEP_PATTERNS"`
}

var cfg *Config

// Get returns the default config with any modifications through environment
// variables
func Get() (*Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		TM1Address:              "localhost",
		TM1Port:                 "5000",
		TM1SSL:                  true,
		TM1BaseURL:              "",
		TM1User:                 "admin",
		TM1Password:             "",
		TM1Namespace:            "",
		DefaultRequestTimeout:   10 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
		SweepPatterns:           []string{"^temp_*", "^test*", "^TM1py*"},
	}

	if err := envconfig.Process("", cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.DefaultRequestTimeout <= 0 {
		return fmt.Errorf("DEFAULT_REQUEST_TIMEOUT must be positive, got %s", c.DefaultRequestTimeout)
	}
	if c.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("GRACEFUL_SHUTDOWN_TIMEOUT must be positive, got %s", c.GracefulShutdownTimeout)
	}
	return nil
}

// TM1URL returns the root URL of the TM1 REST API, without the /api/v1 suffix.
// TM1BaseURL takes precedence over address, port and ssl.
func (c *Config) TM1URL() string {
	if c.TM1BaseURL != "" {
		return c.TM1BaseURL
	}
	scheme := "http"
	if c.TM1SSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, net.JoinHostPort(c.TM1Address, c.TM1Port))
}
