package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{
		"WASHCLUB_LOG_LEVEL", "WASHCLUB_STORE", "WASHCLUB_STORE_DSN", "WASHCLUB_REDIS_ADDR",
		"WASHCLUB_KEYRING_BACKEND", "WASHCLUB_KEYRING_PASSWORD", "WASHCLUB_BACKEND",
		"WASHCLUB_BACKEND_URL", "WASHCLUB_SIGNING_KEY", "WASHCLUB_MIN_LOADING",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	d, err := c.MinLoadingDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}

func TestSaveAndLoad(t *testing.T) {
	dir := isolate(t)

	c := Default()
	c.Store = StoreConfig{Kind: StoreSQL, DSN: "sqlite:///tmp/session.db", KeyringPassword: "hunter2"}
	c.MinLoading = "500ms"
	require.NoError(t, Save(c))

	info, err := os.Stat(filepath.Join(dir, "washclub", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreSQL, got.Store.Kind)
	assert.Equal(t, "sqlite:///tmp/session.db", got.Store.DSN)
	assert.Empty(t, got.Store.KeyringPassword)
	assert.Equal(t, "500ms", got.MinLoading)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	require.NoError(t, Save(Default()))

	t.Setenv("WASHCLUB_STORE", "redis")
	t.Setenv("WASHCLUB_REDIS_ADDR", "localhost:6379")
	t.Setenv("WASHCLUB_BACKEND", "signed")
	t.Setenv("WASHCLUB_SIGNING_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("WASHCLUB_MIN_LOADING", "0s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, c.Store.Kind)
	assert.Equal(t, "localhost:6379", c.Store.RedisAddr)
	assert.Equal(t, "signed", c.Backend.Kind)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", c.Backend.SigningKey)
	assert.Equal(t, "warn", c.LogLevel)

	d, err := c.MinLoadingDuration()
	require.NoError(t, err)
	assert.Equal(t, MinLoadingFloor, d)
}

func TestMinLoadingDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "", want: MinLoadingFloor},
		{in: "0s", want: MinLoadingFloor},
		{in: "500ms", want: MinLoadingFloor},
		{in: "2s", want: 2 * time.Second},
		{in: "3500ms", want: 3500 * time.Millisecond},
	}
	for _, tt := range tests {
		c := Default()
		c.MinLoading = tt.in
		d, err := c.MinLoadingDuration()
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, d, tt.in)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "unknown store", mutate: func(c *Config) { c.Store.Kind = "floppy" }, wantErr: true},
		{name: "bad duration", mutate: func(c *Config) { c.MinLoading = "soon" }, wantErr: true},
		{name: "negative duration", mutate: func(c *Config) { c.MinLoading = "-1s" }, wantErr: true},
		{name: "empty duration", mutate: func(c *Config) { c.MinLoading = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
