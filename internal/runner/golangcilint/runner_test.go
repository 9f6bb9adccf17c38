package golangcilint

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintgate/lintgate/internal/runner"
)

func TestNew(t *testing.T) {
	r := New("/custom/tools")
	assert.NotNil(t, r)
	assert.Equal(t, "/custom/tools", r.ToolsDir)
	assert.NotNil(t, r.executor)
}

func TestNew_DefaultToolsDir(t *testing.T) {
	r := New("")
	assert.NotNil(t, r)
	assert.Contains(t, r.ToolsDir, ".lintgate")
}

func TestName(t *testing.T) {
	r := New("")
	assert.Equal(t, "golangci-lint", r.Name())
}

func TestCapabilities(t *testing.T) {
	r := New("")
	caps := r.Capabilities()

	assert.Equal(t, "golangci-lint", caps.Name)
	assert.Equal(t, "*.go", caps.FilePattern)
	assert.Equal(t, []string{"go"}, caps.SupportedLanguages)
	assert.True(t, caps.CanFix)
	assert.Equal(t, DefaultVersion, caps.Version)
}

func TestGetBinaryPath(t *testing.T) {
	r := New("/test/tools")

	path := r.getBinaryPath()

	expectedDir := filepath.Join("/test/tools", "golangci-lint-"+DefaultVersion)
	expectedBin := "golangci-lint"
	if runtime.GOOS == "windows" {
		expectedBin = "golangci-lint.exe"
	}

	assert.Equal(t, filepath.Join(expectedDir, expectedBin), path)
}

func TestGetBinaryPath_CustomPath(t *testing.T) {
	r := New("/test/tools")
	r.BinaryPath = "/custom/path/golangci-lint"

	assert.Equal(t, "/custom/path/golangci-lint", r.getBinaryPath())
}

func TestRun_RelativeRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping shell test on Windows")
	}

	// Fake golangci-lint that reports its working directory
	dir := t.TempDir()
	fake := filepath.Join(dir, "golangci-lint")
	script := "#!/bin/sh\npwd\nexit 0\n"
	require.NoError(t, os.WriteFile(fake, []byte(script), 0755))

	parent := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(parent, "proj"), 0755))
	t.Chdir(parent)

	r := New("")
	r.BinaryPath = fake

	output, err := r.Run(context.Background(), runner.RunOptions{Root: "proj", Fix: true})

	require.NoError(t, err)
	assert.Equal(t, 0, output.ExitCode)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(output.Stdout), "/proj"),
		"expected cwd ending in /proj, got %q", output.Stdout)
	// The shared executor is untouched by the call
	assert.Empty(t, r.executor.WorkDir)
}

func TestGetDownloadURL(t *testing.T) {
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "arm64" {
		t.Skip("Skipping on unsupported architecture")
	}

	r := New("")
	url, ext, err := r.getDownloadURL("2.7.2")

	require.NoError(t, err)
	assert.Contains(t, url, GitHubReleaseURL)
	assert.Contains(t, url, "v2.7.2")
	assert.Contains(t, url, runtime.GOARCH)
	if runtime.GOOS == "windows" {
		assert.Equal(t, "zip", ext)
	} else {
		assert.Equal(t, "tar.gz", ext)
	}
}
