package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads all config from env", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("GEMINI_API_KEY", "test-gemini-key")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
		require.Equal(t, "test-gemini-key", cfg.GeminiAPIKey)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("fails without DATABASE_URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "DATABASE_URL is required")
	})

	t.Run("defaults boot timeout", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("BOOT_TIMEOUT_SECONDS", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultBootTimeout, cfg.BootTimeout)
	})

	t.Run("parses boot timeout seconds", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("BOOT_TIMEOUT_SECONDS", "10")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 10*time.Second, cfg.BootTimeout)
	})

	t.Run("ignores invalid boot timeout", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("BOOT_TIMEOUT_SECONDS", "not-a-number")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultBootTimeout, cfg.BootTimeout)
	})
}

func TestAdvisorEnabled(t *testing.T) {
	t.Parallel()

	require.False(t, (&Config{}).AdvisorEnabled())
	require.True(t, (&Config{GeminiAPIKey: "key"}).AdvisorEnabled())
}
