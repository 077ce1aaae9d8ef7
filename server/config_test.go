package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, ":8080", cfg.Listen)
	require.Equal(t, "badger", cfg.Store.Backend)
	require.Equal(t, "./data/bellman", cfg.Store.Path)
	require.Empty(t, cfg.Store.PostgresURL)
	require.Equal(t, 168, cfg.Store.TTLHours)
	require.Equal(t, 168*time.Hour, cfg.TTL())
}

func TestTTL_ZeroMeansForever(t *testing.T) {
	cfg := Config{}
	require.Equal(t, time.Duration(0), cfg.TTL())
}

func TestLoadConfig_FirstRunWritesDefault(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "conf", "bellman.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, defaultYAML, string(written))

	// The commented file must parse back to the exact same config.
	again, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bellman.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen: \":9000\"\nstore:\n  backend: postgres\n  postgres_url: postgres://db/bellman\n  ttl_hours: 24\n",
	), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Listen)
	require.Equal(t, "postgres", cfg.Store.Backend)
	require.Equal(t, "postgres://db/bellman", cfg.Store.PostgresURL)
	require.Equal(t, 24*time.Hour, cfg.TTL())
	// Fields the file omits keep their defaults.
	require.Equal(t, "./data/bellman", cfg.Store.Path)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bellman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9000\"\n"), 0o644))

	t.Setenv("BELLMAN_LISTEN", ":7777")
	t.Setenv("BELLMAN_STORE_BACKEND", "memory")
	t.Setenv("BELLMAN_TTL_HOURS", "12")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":7777", cfg.Listen)
	require.Equal(t, "memory", cfg.Store.Backend)
	require.Equal(t, 12, cfg.Store.TTLHours)
}

func TestLoadConfig_BadTTLEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bellman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9000\"\n"), 0o644))

	t.Setenv("BELLMAN_TTL_HOURS", "next-week")
	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "BELLMAN_TTL_HOURS")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bellman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestConfigPath(t *testing.T) {
	clearEnv(t)
	require.Equal(t, "./bellman.yaml", configPath())

	t.Setenv("BELLMAN_CONFIG", "/etc/bellman/conf.yaml")
	require.Equal(t, "/etc/bellman/conf.yaml", configPath())
}

// clearEnv blanks every BELLMAN_* variable so ambient shell state cannot
// leak into assertions. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BELLMAN_CONFIG", "BELLMAN_LISTEN", "BELLMAN_STORE_BACKEND",
		"BELLMAN_STORE_PATH", "BELLMAN_POSTGRES_URL", "BELLMAN_TTL_HOURS",
	} {
		t.Setenv(key, "")
	}
}
