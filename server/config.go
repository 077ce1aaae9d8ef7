package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultYAML is written verbatim on first run so the deployment has a
// commented file to edit instead of a blank slate. It must parse back to
// DefaultConfig exactly.
const defaultYAML = `# Bellman server configuration.
# Environment variables override this file: BELLMAN_LISTEN,
# BELLMAN_STORE_BACKEND, BELLMAN_STORE_PATH, BELLMAN_POSTGRES_URL,
# BELLMAN_TTL_HOURS. BELLMAN_CONFIG relocates the file itself.
listen: ":8080"
store:
  backend: badger          # badger | postgres | memory
  path: ./data/bellman     # badger only
  postgres_url: ""         # postgres only
  ttl_hours: 168           # 0 keeps records forever
`

// Config drives the server: listen address, backing store, expiry policy.
type Config struct {
	// Listen is the address handed to Fiber, e.g. ":8080".
	Listen string `yaml:"listen"`

	Store StoreConfig `yaml:"store"`
}

// StoreConfig selects and parameterizes the snapshot store backend.
type StoreConfig struct {
	// Backend is one of "badger", "postgres", "memory".
	Backend string `yaml:"backend"`

	// Path is the Badger data directory. Ignored by the other backends.
	Path string `yaml:"path"`

	// PostgresURL is the pgx connection URL. Ignored by the other backends.
	PostgresURL string `yaml:"postgres_url"`

	// TTLHours is the record expiry threshold; 0 keeps records forever.
	TTLHours int `yaml:"ttl_hours"`
}

// DefaultConfig returns the configuration the server runs with when no file
// and no environment overrides exist.
func DefaultConfig() Config {
	return Config{
		Listen: ":8080",
		Store: StoreConfig{
			Backend:  "badger",
			Path:     "./data/bellman",
			TTLHours: 168,
		},
	}
}

// TTL converts the configured hour count to a duration for the stores.
func (c Config) TTL() time.Duration {
	return time.Duration(c.Store.TTLHours) * time.Hour
}

// configPath resolves where the YAML file lives: BELLMAN_CONFIG wins,
// otherwise ./bellman.yaml next to the binary's working directory.
func configPath() string {
	if p := os.Getenv("BELLMAN_CONFIG"); p != "" {
		return p
	}

	return "./bellman.yaml"
}

// LoadConfig reads the YAML file at path, creating it with commented
// defaults when it does not exist yet, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := writeDefault(path); err != nil {
			return cfg, err
		}
	case err != nil:
		return cfg, fmt.Errorf("server: read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("server: parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// writeDefault materializes defaultYAML at path, creating parent
// directories as needed.
func writeDefault(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("server: create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultYAML), 0o644); err != nil {
		return fmt.Errorf("server: write default config: %w", err)
	}

	return nil
}

// applyEnv layers the BELLMAN_* environment variables over cfg. An empty
// variable leaves the file value alone.
func applyEnv(cfg *Config) error {
	cfg.Listen = getEnvOr("BELLMAN_LISTEN", cfg.Listen)
	cfg.Store.Backend = getEnvOr("BELLMAN_STORE_BACKEND", cfg.Store.Backend)
	cfg.Store.Path = getEnvOr("BELLMAN_STORE_PATH", cfg.Store.Path)
	cfg.Store.PostgresURL = getEnvOr("BELLMAN_POSTGRES_URL", cfg.Store.PostgresURL)

	if v := os.Getenv("BELLMAN_TTL_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("server: parse BELLMAN_TTL_HOURS: %w", err)
		}
		cfg.Store.TTLHours = n
	}

	return nil
}

// getEnvOr returns the environment variable value or the fallback.
func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
