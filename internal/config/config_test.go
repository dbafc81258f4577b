package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Hanya secret yang wajib, sisanya memakai nilai bawaan
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_PORT", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("STORAGE_BASE_URL", "")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "")
	t.Setenv("SEED_ON_EMPTY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "123", cfg.Admin.Password)
	assert.Equal(t, StoreBackendFile, cfg.Store.Backend)
	assert.True(t, cfg.Store.SeedOnEmpty)
	assert.Equal(t, 8*time.Hour, cfg.JWT.AccessExpiration)
	assert.Equal(t, "http://localhost:8080/uploads", cfg.Storage.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORE_BACKEND", "POSTGRES")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("ADMIN_USERNAME", "ops")
	t.Setenv("ADMIN_PASSWORD", "rahasia")
	t.Setenv("STORAGE_BASE_URL", "https://cdn.example.com/uploads/")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "30m")
	t.Setenv("SEED_ON_EMPTY", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, StoreBackendPostgres, cfg.Store.Backend)
	assert.Equal(t, "ops", cfg.Admin.Username)
	assert.False(t, cfg.Store.SeedOnEmpty)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiration)
	assert.Equal(t, "https://cdn.example.com/uploads", cfg.Storage.BaseURL)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")

	t.Setenv("APP_PORT", "abc")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("APP_PORT", "8080")
	t.Setenv("JWT_ACCESS_EXPIRATION_TIME", "sebentar")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWT:     JWTConfig{Secret: "secret", AccessExpiration: time.Hour},
			Admin:   AdminConfig{Username: "admin", Password: "123"},
			Store:   StoreConfig{Backend: StoreBackendFile, Dir: "./data"},
			Storage: StorageConfig{BasePath: "./uploads"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid file backend", mutate: func(c *Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: true},
		{name: "unknown backend", mutate: func(c *Config) { c.Store.Backend = "redis" }, wantErr: true},
		{name: "postgres without password", mutate: func(c *Config) { c.Store.Backend = StoreBackendPostgres }, wantErr: true},
		{name: "postgres with password", mutate: func(c *Config) {
			c.Store.Backend = StoreBackendPostgres
			c.Database.Password = "pw"
		}},
		{name: "empty admin password", mutate: func(c *Config) { c.Admin.Password = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := &Config{App: AppConfig{LogLevel: "debug"}}
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.App.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
