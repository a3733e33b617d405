package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "config/categories.yaml", cfg.Categories.File)
	assert.Equal(t, "config/overrides.yaml", cfg.Overrides.File)
	assert.Equal(t, "out", cfg.Export.Directory)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STMT_LOG_LEVEL", "debug")
	t.Setenv("STMT_EXPORT_DIRECTORY", "/tmp/exports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/exports", cfg.Export.Directory)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("STMT_LOG_LEVEL", "shouting")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidLogFormat(t *testing.T) {
	t.Setenv("STMT_LOG_FORMAT", "xml")

	_, err := Load()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg.NewLogger())
}
