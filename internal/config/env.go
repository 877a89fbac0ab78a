package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig configures the HTTP calculation service.
type ServerConfig struct {
	Addr               string        `env:"WEALTHCALC_ADDR"`
	ReadTimeout        time.Duration `env:"WEALTHCALC_READ_TIMEOUT"         envDefault:"10s"`
	WriteTimeout       time.Duration `env:"WEALTHCALC_WRITE_TIMEOUT"        envDefault:"30s"`
	MaxRequestBodySize int           `env:"WEALTHCALC_MAX_BODY_BYTES"       envDefault:"1048576"`
	Concurrency        int           `env:"WEALTHCALC_CONCURRENCY"          envDefault:"256"`
	MonteCarloWorkers  int           `env:"WEALTHCALC_MONTE_CARLO_WORKERS"`
	Debug              bool          `env:"WEALTHCALC_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment, falling back to
// the settings file address when WEALTHCALC_ADDR is unset.
func LoadServerConfig(s Settings) (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Addr == "" {
		cfg.Addr = s.Server.Addr
	}
	return cfg, nil
}
