package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "database.json", cfg.Storage.Path)
	assert.Equal(t, "admin123", cfg.Auth.AdminPassword)
	assert.Equal(t, "principal123", cfg.Auth.PrincipalPassword)
	assert.Equal(t, "student123", cfg.Auth.DefaultStudentPassword)
	assert.Equal(t, 12*time.Hour, cfg.TokenExpiration())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
  mode: production
storage:
  path: /tmp/records.json
auth:
  admin_password: supersecret
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "/tmp/records.json", cfg.Storage.Path)
	assert.Equal(t, "supersecret", cfg.Auth.AdminPassword)
	// Unset fields keep their defaults.
	assert.Equal(t, "principal123", cfg.Auth.PrincipalPassword)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("AUTH_ADMIN_PASSWORD", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.Auth.AdminPassword)
}

func TestLoadConfigInvalidExpiration(t *testing.T) {
	t.Setenv("JWT_TOKEN_EXPIRATION", "not-a-duration")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
