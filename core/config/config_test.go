package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "data", cfg.Reconcile.DataDir)
	assert.Equal(t, "file", cfg.Reconcile.Backend)
	assert.Equal(t, "first_last", cfg.Reconcile.NameFormat)
	assert.Equal(t, 30, cfg.Reconcile.CacheTTLSeconds)
	assert.Equal(t, "ucrm-xero", cfg.Storage.Bucket)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := t.TempDir()

	// Registered so the values written by the .env file are restored afterwards.
	t.Setenv("RECONCILE_BACKEND", "")
	t.Setenv("DATABASE_ENABLED", "")
	t.Setenv("RECONCILE_NAME_FORMAT", "last_first")
	t.Setenv("SERVER_PORT", "9999")

	env := "RECONCILE_BACKEND=s3\nDATABASE_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "s3", cfg.Reconcile.Backend)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "last_first", cfg.Reconcile.NameFormat)
	assert.Equal(t, "9999", cfg.Server.Port)
}
