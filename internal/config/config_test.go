package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, BackendMemory, c.Storage.Backend)
	assert.Equal(t, 24*time.Hour, c.Auth.TokenTTL)
	assert.Equal(t, "admin@example.com", c.Auth.AdminEmail)
	assert.Equal(t, 1500*time.Millisecond, c.CheckoutLatency)
	assert.Equal(t, 1500*time.Millisecond, c.Auth.ResetLatency)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
checkout_latency: 10ms
storage:
  backend: sqlite
  sqlite_path: /tmp/shop.db
rate_limit:
  rps: 2
  burst: 4
`), 0o600))

	t.Setenv("STOREFRONT_ADDR", ":7070")
	t.Setenv("STOREFRONT_AUTH_JWT_SECRET", "from-env")

	c, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", c.Addr, "env wins over file")
	assert.Equal(t, "from-env", c.Auth.JWTSecret)
	assert.Equal(t, BackendSQLite, c.Storage.Backend)
	assert.Equal(t, "/tmp/shop.db", c.Storage.SQLitePath)
	assert.Equal(t, 10*time.Millisecond, c.CheckoutLatency)
	assert.Equal(t, 4, c.RateLimit.Burst)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := Load(New(), "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "floppy" }},
		{"postgres without url", func(c *Config) { c.Storage.Backend = BackendPostgres }},
		{"empty secret", func(c *Config) { c.Auth.JWTSecret = "" }},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
