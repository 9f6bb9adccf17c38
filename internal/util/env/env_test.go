package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRoot_FromEnv(t *testing.T) {
	t.Setenv(ProjectRootVar, "/some/project")

	assert.Equal(t, "/some/project", ProjectRoot())
}

func TestProjectRoot_Fallback(t *testing.T) {
	t.Setenv(ProjectRootVar, "")

	// Run from a directory without a .lintgate/.env file
	t.Chdir(t.TempDir())

	assert.Equal(t, ".", ProjectRoot())
}

func TestGet_EnvWins(t *testing.T) {
	t.Setenv("LINTGATE_TEST_KEY", "from-env")

	assert.Equal(t, "from-env", Get("LINTGATE_TEST_KEY"))
}

func TestLoadKeyFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment\n\nFOO=bar\nLINTGATE_PROJECT_DIR=/from/file\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0600))

	assert.Equal(t, "bar", LoadKeyFromEnvFile(envPath, "FOO"))
	assert.Equal(t, "/from/file", LoadKeyFromEnvFile(envPath, "LINTGATE_PROJECT_DIR"))
	assert.Empty(t, LoadKeyFromEnvFile(envPath, "MISSING"))
}

func TestLoadKeyFromEnvFile_MissingFile(t *testing.T) {
	assert.Empty(t, LoadKeyFromEnvFile(filepath.Join(t.TempDir(), "nope.env"), "FOO"))
}

func TestLoadKeyFromEnvFile_SkipsComments(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "#FOO=commented\nFOO=real\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0600))

	assert.Equal(t, "real", LoadKeyFromEnvFile(envPath, "FOO"))
}
