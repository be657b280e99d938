package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the client configuration, read from the environment.
// Command-line flags in cmd/client override individual fields.
type Config struct {
	ServerURL       string        `env:"KUNSTHAUS_SERVER,   default=http://localhost:5000"`
	DBPath          string        `env:"KUNSTHAUS_DB,       default=canvasbid.db"`
	LogLevel        string        `env:"KUNSTHAUS_LOG_LEVEL, default=info"`
	RefreshInterval time.Duration `env:"KUNSTHAUS_REFRESH_INTERVAL, default=30s"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", cfg.RefreshInterval)
	}

	return &cfg, nil
}
