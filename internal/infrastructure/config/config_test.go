package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "intake/internal/shared/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INTAKE_AUTH_ADMIN_PASSWORD", "secret")
	path := writeConfig(t, "logger:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Server.GetAddr())
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./data/intakes.db", cfg.Database.GetDSN())
	assert.Equal(t, sharedConfig.MigrationGoose, cfg.Database.MigrationStrategy)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, "secret", cfg.Auth.AdminPassword)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerWindow)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
auth:
  admin_password: from-file
`)
	t.Setenv("INTAKE_SERVER_PORT", "9090")
	t.Setenv("INTAKE_DATABASE_PATH", ":memory:")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "from-file", cfg.Auth.AdminPassword)
}

func TestLoad_MissingPassword(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 3000\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin_password")
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	t.Setenv("INTAKE_AUTH_ADMIN_PASSWORD", "secret")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    sharedConfig.ServerConfig{Mode: "release"},
			Database:  sharedConfig.DatabaseConfig{Driver: "sqlite", Path: "x.db", MigrationStrategy: "goose"},
			Auth:      sharedConfig.AuthConfig{AdminUsername: "admin", AdminPassword: "pw"},
			RateLimit: sharedConfig.RateLimitConfig{RequestsPerWindow: 1, WindowSeconds: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"mysql with golang-migrate", func(c *Config) {
			c.Database.Driver = "mysql"
			c.Database.MigrationStrategy = "golang-migrate"
		}, ""},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }, "database.driver"},
		{"unknown strategy", func(c *Config) { c.Database.MigrationStrategy = "flyway" }, "migration_strategy"},
		{"golang-migrate on sqlite", func(c *Config) { c.Database.MigrationStrategy = "golang-migrate" }, "requires the mysql driver"},
		{"empty sqlite path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"unknown mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"no password", func(c *Config) { c.Auth.AdminPassword = "" }, "admin_password"},
		{"zero window", func(c *Config) { c.RateLimit.WindowSeconds = 0 }, "ratelimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
