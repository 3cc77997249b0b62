package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
backend:
  http:
    host: 0.0.0.0
    port: 8088
  db:
    driver: sqlite
    path: portal.db
  jwt:
    secret: s3cret
    exp_min: 15
  storage:
    path: /tmp/uploads
  seed:
    admin_email: root@corp.example
    admin_password: hunter2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, 8088, cfg.HTTP.Port)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.Equal(t, "portal.db", cfg.DB.Path)
	require.Equal(t, "s3cret", cfg.JWT.Secret)
	require.Equal(t, 15, cfg.JWT.ExpMin)
	require.Equal(t, "/tmp/uploads", cfg.Storage.Path)
	require.Equal(t, "root@corp.example", cfg.Seed.AdminEmail)
	require.Equal(t, "hunter2", cfg.Seed.AdminPassword)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "backend: {}\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, 9400, cfg.HTTP.Port)
	require.Equal(t, "mysql", cfg.DB.Driver)
	require.Equal(t, "ztna-portal", cfg.JWT.Issuer)
	require.Equal(t, 30, cfg.JWT.ExpMin)
	require.Empty(t, cfg.JWT.Secret)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Empty(t, cfg.Seed.AdminPassword)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
