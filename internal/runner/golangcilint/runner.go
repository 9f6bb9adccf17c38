package golangcilint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lintgate/lintgate/internal/runner"
)

// Compile-time interface check
var _ runner.Runner = (*Runner)(nil)

const (
	// DefaultVersion is the default golangci-lint version.
	DefaultVersion = "2.7.2"

	// GitHubReleaseURL is the GitHub releases base URL.
	GitHubReleaseURL = "https://github.com/golangci/golangci-lint/releases/download"
)

// Runner wraps golangci-lint for Go linting.
//
// golangci-lint is a meta-linter that runs 50+ Go linters in parallel.
// Exit status convention matches ruff: 0 = clean, 1 = issues found,
// anything else = abnormal termination.
//
// Note: Runner is goroutine-safe and stateless. WorkDir is determined
// by the run options, not stored in the runner.
type Runner struct {
	// ToolsDir is where golangci-lint is installed.
	// Default: ~/.lintgate/tools
	ToolsDir string

	// BinaryPath is the path to the golangci-lint executable.
	// Empty = use default location
	BinaryPath string

	// executor runs subprocess
	executor *runner.SubprocessExecutor
}

// New creates a new golangci-lint runner.
func New(toolsDir string) *Runner {
	if toolsDir == "" {
		toolsDir = runner.DefaultToolsDir()
	}

	return &Runner{
		ToolsDir: toolsDir,
		executor: runner.NewSubprocessExecutor(),
	}
}

// Name returns the tool name.
func (r *Runner) Name() string {
	return "golangci-lint"
}

// Capabilities returns the golangci-lint runner capabilities.
func (r *Runner) Capabilities() runner.Capabilities {
	return runner.Capabilities{
		Name:               "golangci-lint",
		FilePattern:        "*.go",
		SupportedLanguages: []string{"go"},
		CanFix:             true,
		Version:            DefaultVersion,
		DocsURL:            "https://golangci-lint.run/",
	}
}

// CheckAvailability checks if golangci-lint is available.
func (r *Runner) CheckAvailability(ctx context.Context) error {
	binaryPath := r.getBinaryPath()

	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		// Fall back to global PATH
		if _, lookErr := exec.LookPath("golangci-lint"); lookErr == nil {
			return nil
		}
		return fmt.Errorf("golangci-lint not found at %s: run install first", binaryPath)
	}

	cmd := exec.CommandContext(ctx, binaryPath, "version")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("golangci-lint execution failed: %w", err)
	}

	return nil
}

// Install downloads and extracts golangci-lint from GitHub releases.
func (r *Runner) Install(ctx context.Context, config runner.InstallConfig) error {
	if err := runner.EnsureDir(r.ToolsDir); err != nil {
		return fmt.Errorf("failed to create tools dir: %w", err)
	}

	version := config.Version
	if version == "" {
		version = DefaultVersion
	}

	url, ext, err := r.getDownloadURL(version)
	if err != nil {
		return err
	}

	archiveName := filepath.Base(url)
	archivePath := filepath.Join(r.ToolsDir, archiveName)
	installDir := filepath.Join(r.ToolsDir, fmt.Sprintf("golangci-lint-%s", version))

	if !config.Force {
		if _, err := os.Stat(installDir); err == nil {
			return nil // Already installed
		}
	}

	if err := r.downloadFile(ctx, url, archivePath); err != nil {
		return fmt.Errorf("failed to download golangci-lint: %w", err)
	}
	defer func() { _ = os.Remove(archivePath) }()

	if err := r.extractArchive(ctx, archivePath, ext, installDir); err != nil {
		return fmt.Errorf("failed to extract golangci-lint: %w", err)
	}

	// Make the binary executable (Unix only)
	if runtime.GOOS != "windows" {
		if err := os.Chmod(r.getBinaryPath(), 0755); err != nil {
			return fmt.Errorf("failed to make golangci-lint executable: %w", err)
		}
	}

	return nil
}

// Run executes golangci-lint against the given options.
func (r *Runner) Run(ctx context.Context, opts runner.RunOptions) (*runner.ToolOutput, error) {
	return r.run(ctx, opts)
}

// ParseOutput converts golangci-lint text output to diagnostics.
func (r *Runner) ParseOutput(output *runner.ToolOutput) ([]runner.Diagnostic, error) {
	return parseOutput(output)
}

// getBinaryPath returns the path to the golangci-lint binary.
func (r *Runner) getBinaryPath() string {
	if r.BinaryPath != "" {
		return r.BinaryPath
	}

	installDir := filepath.Join(r.ToolsDir, fmt.Sprintf("golangci-lint-%s", DefaultVersion))

	binName := "golangci-lint"
	if runtime.GOOS == "windows" {
		binName = "golangci-lint.exe"
	}

	return filepath.Join(installDir, binName)
}

// getDownloadURL constructs the download URL based on OS and architecture.
func (r *Runner) getDownloadURL(version string) (string, string, error) {
	goos := runtime.GOOS
	goarch := runtime.GOARCH

	var osName, archName, ext string
	switch goos {
	case "linux":
		osName = "linux"
		ext = "tar.gz"
	case "darwin":
		osName = "darwin"
		ext = "tar.gz"
	case "windows":
		osName = "windows"
		ext = "zip"
	default:
		return "", "", fmt.Errorf("unsupported OS: %s", goos)
	}

	switch goarch {
	case "amd64":
		archName = "amd64"
	case "arm64":
		archName = "arm64"
	default:
		return "", "", fmt.Errorf("unsupported architecture: %s", goarch)
	}

	fileName := fmt.Sprintf("golangci-lint-%s-%s-%s.%s", version, osName, archName, ext)
	url := fmt.Sprintf("%s/v%s/%s", GitHubReleaseURL, version, fileName)

	return url, ext, nil
}

// extractArchive extracts the downloaded archive into installDir.
func (r *Runner) extractArchive(ctx context.Context, archivePath, ext, installDir string) error {
	tempDir := filepath.Join(r.ToolsDir, ".tmp-extract")
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tempDir) }()

	var cmd *exec.Cmd
	if ext == "tar.gz" {
		cmd = exec.CommandContext(ctx, "tar", "-xzf", archivePath, "-C", tempDir)
	} else {
		cmd = exec.CommandContext(ctx, "unzip", "-q", "-o", archivePath, "-d", tempDir)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("extraction failed: %w (ensure tar/unzip is installed)", err)
	}

	// Find the extracted directory (format: golangci-lint-{version}-{os}-{arch})
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return fmt.Errorf("failed to read temp dir: %w", err)
	}

	var extractedDir string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "golangci-lint-") {
			extractedDir = filepath.Join(tempDir, entry.Name())
			break
		}
	}

	if extractedDir == "" {
		return fmt.Errorf("extracted directory not found in %s", tempDir)
	}

	if err := os.RemoveAll(installDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove old installation: %w", err)
	}

	if err := os.Rename(extractedDir, installDir); err != nil {
		return fmt.Errorf("failed to move to installation dir: %w", err)
	}

	return nil
}

// downloadFile downloads a file from URL to destPath.
func (r *Runner) downloadFile(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d for URL %s", resp.StatusCode, url)
	}

	tempFile := destPath + ".tmp"
	out, err := os.Create(tempFile)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = os.Remove(tempFile)
		return err
	}

	if err := os.Rename(tempFile, destPath); err != nil {
		_ = os.Remove(tempFile)
		return err
	}

	return nil
}
