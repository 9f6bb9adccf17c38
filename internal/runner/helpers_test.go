package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultToolsDir(t *testing.T) {
	dir := DefaultToolsDir()
	assert.Contains(t, dir, ".lintgate")
	assert.Contains(t, dir, "tools")
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFindTool_LocalWins(t *testing.T) {
	local := filepath.Join(t.TempDir(), "mytool")
	require.NoError(t, os.WriteFile(local, []byte("#!/bin/sh\n"), 0755))

	assert.Equal(t, local, FindTool(local, "sh"))
}

func TestFindTool_GlobalFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping PATH lookup test on Windows")
	}

	missing := filepath.Join(t.TempDir(), "nope")
	path := FindTool(missing, "sh")
	assert.NotEmpty(t, path)
}

func TestFindTool_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	assert.Empty(t, FindTool(missing, "definitely-not-a-real-binary-xyz"))
}
