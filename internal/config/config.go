// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBootTimeout bounds the initial session check so a dead network
// cannot block startup indefinitely.
const DefaultBootTimeout = 6 * time.Second

// Config holds all configuration for the application.
type Config struct {
	DatabaseURL  string
	GeminiAPIKey string
	LogLevel     string
	BootTimeout  time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		BootTimeout:  DefaultBootTimeout,
	}

	if secStr := os.Getenv("BOOT_TIMEOUT_SECONDS"); secStr != "" {
		if sec, err := strconv.Atoi(secStr); err == nil && sec > 0 {
			cfg.BootTimeout = time.Duration(sec) * time.Second
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// AdvisorEnabled reports whether the Gemini-backed studio advisor can run.
func (c *Config) AdvisorEnabled() bool {
	return c.GeminiAPIKey != ""
}
