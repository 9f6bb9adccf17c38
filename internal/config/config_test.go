package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultTool, cfg.Tool)
	assert.True(t, cfg.FixEnabled())
}

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()
	fix := false

	err := Save(root, &Config{
		Tool:          "golangci-lint",
		Fix:           &fix,
		ProjectDirEnv: "MY_PROJECT_DIR",
	})
	require.NoError(t, err)

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "golangci-lint", cfg.Tool)
	assert.False(t, cfg.FixEnabled())
	assert.Equal(t, "MY_PROJECT_DIR", cfg.ProjectDirEnv)
}

func TestLoad_InvalidJSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, Dir), 0755))
	require.NoError(t, os.WriteFile(Path(root), []byte("{not json"), 0644))

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config file")
}

func TestLoad_EmptyToolDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, Save(root, &Config{}))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, DefaultTool, cfg.Tool)
}

func TestFixEnabled_Default(t *testing.T) {
	cfg := &Config{}
	assert.True(t, cfg.FixEnabled())

	enabled := true
	cfg.Fix = &enabled
	assert.True(t, cfg.FixEnabled())

	disabled := false
	cfg.Fix = &disabled
	assert.False(t, cfg.FixEnabled())
}
