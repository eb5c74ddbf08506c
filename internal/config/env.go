// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type AppConfig struct {
	SelectorEnvConfig
	ServerEnvConfig
	ClientEnvConfig
	Environment string `env:"ENVIRONMENT, default=prod"`
}

// SelectorEnvConfig holds the threshold search defaults.
type SelectorEnvConfig struct {
	Strategy    string  `env:"SELECT_STRATEGY, default=all"`
	GridStart   float64 `env:"GRID_START, default=0"`
	GridStop    float64 `env:"GRID_STOP, default=1"`
	GridStep    float64 `env:"GRID_STEP, default=0.001"`
	GridWorkers int     `env:"GRID_WORKERS, default=1"`
}

// ServerEnvConfig configures the HTTP API.
type ServerEnvConfig struct {
	Host      string `env:"SERVER_HOST, default=0.0.0.0"`
	Port      int    `env:"SERVER_PORT, default=8890"`
	BodyLimit int    `env:"SERVER_BODY_LIMIT, default=4194304"`
}

// ClientEnvConfig configures the HTTP client.
type ClientEnvConfig struct {
	ClientTimeout time.Duration `env:"CLIENT_TIMEOUT, default=30s"`
	RetryMax      int           `env:"CLIENT_RETRY_MAX, default=3"`
	RetryWait     time.Duration `env:"CLIENT_RETRY_WAIT, default=500ms"`
}

// Address returns host:port for the listener.
func (s ServerEnvConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig reads the configuration from the process environment.
func LoadConfig(ctx context.Context) (*AppConfig, error) {
	return LoadConfigWith(ctx, envconfig.OsLookuper())
}

// LoadConfigWith reads the configuration through the given lookuper.
func LoadConfigWith(ctx context.Context, lookuper envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.GridWorkers < 1 {
		cfg.GridWorkers = 1
	}
	return cfg, nil
}
