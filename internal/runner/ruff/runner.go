package ruff

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lintgate/lintgate/internal/runner"
)

// Compile-time interface check
var _ runner.Runner = (*Runner)(nil)

// Runner wraps ruff for Python linting.
//
// ruff is a fast Python linter and formatter. Exit status convention:
// - 0: no violations, or all violations auto-fixed
// - 1: violations remain that could not be fixed
// - 2: abnormal termination (bad config, internal error)
//
// Note: Runner is goroutine-safe and stateless. WorkDir is determined
// by the run options, not stored in the runner.
type Runner struct {
	// ToolsDir is where the ruff virtualenv is installed.
	// Default: ~/.lintgate/tools
	ToolsDir string

	// RuffPath is the path to the ruff executable (optional override).
	RuffPath string

	// executor runs the ruff subprocess
	executor *runner.SubprocessExecutor
}

// New creates a new ruff runner.
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
	return "ruff"
}

// Capabilities returns the ruff runner capabilities.
func (r *Runner) Capabilities() runner.Capabilities {
	return runner.Capabilities{
		Name:               "ruff",
		FilePattern:        "*.py",
		SupportedLanguages: []string{"python", "py"},
		CanFix:             true,
		Version:            ">=0.6.0",
		DocsURL:            "https://docs.astral.sh/ruff/",
	}
}

// CheckAvailability checks if ruff is installed.
func (r *Runner) CheckAvailability(ctx context.Context) error {
	// Try local installation first (virtualenv)
	ruffPath := r.getRuffPath()
	if _, err := os.Stat(ruffPath); err == nil {
		return nil // Found in tools dir
	}

	// Try global installation
	cmd := exec.CommandContext(ctx, "ruff", "--version")
	if err := cmd.Run(); err == nil {
		return nil // Found globally
	}

	return fmt.Errorf("ruff not found (checked: %s and global PATH)", ruffPath)
}

// Install installs ruff via pip in a virtualenv.
func (r *Runner) Install(ctx context.Context, config runner.InstallConfig) error {
	if err := runner.EnsureDir(r.ToolsDir); err != nil {
		return fmt.Errorf("failed to create tools dir: %w", err)
	}

	pythonCmd := r.getPythonCommand()
	if _, err := exec.LookPath(pythonCmd); err != nil {
		return fmt.Errorf("python not found: please install Python 3.8+ first")
	}

	venvPath := r.getVenvPath()
	pipPath := r.getPipPath()
	ruffPath := r.getRuffPath()

	// Remove incomplete venv (missing pip or missing ruff)
	if _, err := os.Stat(venvPath); err == nil {
		_, pipErr := os.Stat(pipPath)
		_, ruffErr := os.Stat(ruffPath)
		if os.IsNotExist(pipErr) || os.IsNotExist(ruffErr) {
			if err := os.RemoveAll(venvPath); err != nil {
				return fmt.Errorf("failed to remove incomplete venv: %w", err)
			}
		} else if !config.Force {
			return nil // Already installed
		}
	}

	// Create virtualenv if it doesn't exist
	if _, err := os.Stat(venvPath); os.IsNotExist(err) {
		output, err := r.executor.Execute(ctx, pythonCmd, "-m", "venv", venvPath)
		if err != nil {
			return fmt.Errorf("failed to create virtualenv: %w", err)
		}
		if output.ExitCode != 0 {
			errMsg := output.Stderr
			if errMsg == "" {
				errMsg = output.Stdout
			}
			if strings.Contains(errMsg, "ensurepip") || strings.Contains(errMsg, "python3-venv") {
				return fmt.Errorf("failed to create virtualenv: python3-venv package not installed. " +
					"On Debian/Ubuntu, run: sudo apt install python3-venv")
			}
			return fmt.Errorf("failed to create virtualenv: %s", errMsg)
		}
	}

	// Some Linux distros don't include pip in venv by default
	if _, err := os.Stat(pipPath); os.IsNotExist(err) {
		pythonInVenv := r.getPythonInVenv()
		output, err := r.executor.Execute(ctx, pythonInVenv, "-m", "ensurepip", "--upgrade")
		if err != nil {
			return fmt.Errorf("failed to install pip via ensurepip: %w", err)
		}
		if output.ExitCode != 0 {
			return fmt.Errorf("failed to install pip via ensurepip: %s", output.Stderr)
		}
	}

	version := config.Version
	if version == "" {
		version = ">=0.6.0"
	}

	output, err := r.executor.Execute(ctx, pipPath, "install", fmt.Sprintf("ruff%s", version))
	if err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}
	if output.ExitCode != 0 {
		return fmt.Errorf("pip install failed: %s", output.Stderr)
	}

	return nil
}

// Run executes ruff against the given options.
func (r *Runner) Run(ctx context.Context, opts runner.RunOptions) (*runner.ToolOutput, error) {
	return r.run(ctx, opts)
}

// ParseOutput converts ruff concise output to diagnostics.
func (r *Runner) ParseOutput(output *runner.ToolOutput) ([]runner.Diagnostic, error) {
	return parseOutput(output)
}

// getVenvPath returns the path to the ruff virtualenv.
func (r *Runner) getVenvPath() string {
	return filepath.Join(r.ToolsDir, "ruff-venv")
}

// getRuffPath returns the path to the local ruff binary.
func (r *Runner) getRuffPath() string {
	if r.RuffPath != "" {
		return r.RuffPath
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(r.getVenvPath(), "Scripts", "ruff.exe")
	}
	return filepath.Join(r.getVenvPath(), "bin", "ruff")
}

// getPipPath returns the path to pip inside the virtualenv.
func (r *Runner) getPipPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(r.getVenvPath(), "Scripts", "pip.exe")
	}
	return filepath.Join(r.getVenvPath(), "bin", "pip")
}

// getPythonInVenv returns the path to python inside the virtualenv.
func (r *Runner) getPythonInVenv() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(r.getVenvPath(), "Scripts", "python.exe")
	}
	return filepath.Join(r.getVenvPath(), "bin", "python")
}

// getPythonCommand returns the system python command name.
func (r *Runner) getPythonCommand() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}
