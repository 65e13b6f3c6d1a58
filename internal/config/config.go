// ABOUTME: Environment-driven configuration for the skillserve CLI
// ABOUTME: Flags override env vars, env vars override defaults

package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/skillserve/marketplace-cli/internal/storage"
)

// Config carries everything the CLI and TUI need at startup.
type Config struct {
	// APIURL is the marketplace backend base URL.
	APIURL string `env:"SKILLSERVE_API_URL, default=http://localhost:8000"`
	// Timeout bounds each API request.
	Timeout time.Duration `env:"SKILLSERVE_TIMEOUT, default=30s"`
	// ConfigDir overrides where session state and logs are kept.
	ConfigDir string `env:"SKILLSERVE_CONFIG_DIR"`
	// Debug enables the debug log file.
	Debug bool `env:"SKILLSERVE_DEBUG, default=false"`
	// LogLevel is the minimum debug log level: debug, info, warn, error.
	LogLevel string `env:"SKILLSERVE_LOG_LEVEL, default=info"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = storage.DefaultConfigDir()
	}
	return &cfg, nil
}
