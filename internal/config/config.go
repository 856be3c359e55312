// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept in the file; secrets such as the token
// signing key and the keyring password come from the environment only.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"washclub/cli/internal/xdg"
)

// Store kinds accepted by StoreConfig.Kind.
const (
	StoreKeychain = "keychain"
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreSQL      = "sql"
)

// Config holds CLI settings.
type Config struct {
	LogLevel string        `json:"log_level" env:"WASHCLUB_LOG_LEVEL"`
	Store    StoreConfig   `json:"store"`
	Backend  BackendConfig `json:"backend"`
	// MinLoading is how long loading stays visible, as a Go duration string.
	MinLoading string `json:"min_loading" env:"WASHCLUB_MIN_LOADING"`
}

// StoreConfig selects where session credentials are kept.
type StoreConfig struct {
	Kind string `json:"kind" env:"WASHCLUB_STORE"`
	// DSN addresses the sql store (postgres:// or sqlite://) and may also
	// carry a redis:// URL.
	DSN       string `json:"dsn" env:"WASHCLUB_STORE_DSN"`
	RedisAddr string `json:"redis_addr" env:"WASHCLUB_REDIS_ADDR"`
	// KeyringBackend narrows the keychain store to one OS backend.
	KeyringBackend  string `json:"keyring_backend" env:"WASHCLUB_KEYRING_BACKEND"`
	KeyringPassword string `json:"-" env:"WASHCLUB_KEYRING_PASSWORD"`
}

// BackendConfig selects the auth backend.
type BackendConfig struct {
	Kind       string `json:"kind" env:"WASHCLUB_BACKEND"`
	URL        string `json:"url" env:"WASHCLUB_BACKEND_URL"`
	SigningKey string `json:"-" env:"WASHCLUB_SIGNING_KEY"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:   "warn",
		Store:      StoreConfig{Kind: StoreKeychain},
		Backend:    BackendConfig{Kind: "mock"},
		MinLoading: "2s",
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return c, err
	default:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", p, err)
		}
	}

	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Save writes configuration with 0600 permissions. Env-only fields are
// never written.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Validate checks the store kind and the loading duration.
func (c Config) Validate() error {
	switch strings.ToLower(c.Store.Kind) {
	case StoreKeychain, StoreFile, StoreMemory, StoreRedis, StoreSQL:
	default:
		return fmt.Errorf("unknown store %q (want keychain, file, memory, redis or sql)", c.Store.Kind)
	}
	if _, err := c.MinLoadingDuration(); err != nil {
		return err
	}
	return nil
}

// MinLoadingFloor is the shortest loading time a configuration can ask for.
const MinLoadingFloor = 2 * time.Second

// MinLoadingDuration parses MinLoading. An empty value means MinLoadingFloor,
// and shorter values are raised to it.
func (c Config) MinLoadingDuration() (time.Duration, error) {
	if c.MinLoading == "" {
		return MinLoadingFloor, nil
	}
	d, err := time.ParseDuration(c.MinLoading)
	if err != nil {
		return 0, fmt.Errorf("invalid min_loading %q: %w", c.MinLoading, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid min_loading %q: negative", c.MinLoading)
	}
	return max(d, MinLoadingFloor), nil
}
