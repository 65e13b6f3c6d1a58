// ABOUTME: Tests for environment-driven configuration
// ABOUTME: Defaults, overrides, and config-dir fallback

package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", cfg.APIURL)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.False(t, cfg.Debug)
	require.Equal(t, "info", cfg.LogLevel)
	require.NotEmpty(t, cfg.ConfigDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SKILLSERVE_API_URL", "https://api.example.com")
	t.Setenv("SKILLSERVE_TIMEOUT", "5s")
	t.Setenv("SKILLSERVE_CONFIG_DIR", "/tmp/skillserve-test")
	t.Setenv("SKILLSERVE_DEBUG", "true")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com", cfg.APIURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "/tmp/skillserve-test", cfg.ConfigDir)
	require.True(t, cfg.Debug)
}

func TestLoad_ConfigDirFollowsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/tmp/xdg/skillserve", cfg.ConfigDir)
}
