package runner

import (
	"context"
)

// Runner wraps external lint tools (ruff, golangci-lint, etc.) for use
// by the gate and the CLI commands.
//
// Design:
// - Runners handle tool installation, argument construction, execution
// - The gate delegates to runners and only looks at the exit status
// - One runner per tool
type Runner interface {
	// Name returns the tool name (e.g., "ruff", "golangci-lint").
	Name() string

	// Capabilities returns the runner's capabilities.
	// This includes the file pattern, supported languages, and version info.
	Capabilities() Capabilities

	// CheckAvailability checks if the tool is installed and usable.
	// Returns nil if available, error with details if not.
	CheckAvailability(ctx context.Context) error

	// Install installs the tool if not available.
	// Returns error if installation fails.
	Install(ctx context.Context, config InstallConfig) error

	// Run executes the tool against opts.Root (or opts.Files when set).
	// Returns raw tool output; a non-nil error means the tool could not
	// be launched at all.
	Run(ctx context.Context, opts RunOptions) (*ToolOutput, error)

	// ParseOutput converts tool output to standard diagnostics.
	ParseOutput(output *ToolOutput) ([]Diagnostic, error)
}

// Capabilities describes what a runner can do.
type Capabilities struct {
	// Name is the tool identifier (e.g., "ruff", "golangci-lint").
	Name string

	// FilePattern is the extension pattern the tool is restricted to
	// (e.g., "*.py", "*.go").
	FilePattern string

	// SupportedLanguages lists languages this tool can lint.
	SupportedLanguages []string

	// CanFix reports whether the tool supports auto-fix mode.
	CanFix bool

	// Version is the tool version the runner targets.
	Version string

	// DocsURL points at the tool's documentation.
	DocsURL string
}

// InstallConfig holds tool installation settings.
type InstallConfig struct {
	// ToolsDir is where to install the tool.
	// Default: ~/.lintgate/tools
	ToolsDir string

	// Version is the tool version to install.
	// Empty = default pinned version
	Version string

	// Force reinstalls even if already installed.
	Force bool
}

// RunOptions controls a single tool invocation.
type RunOptions struct {
	// Root is the project root directory to scan.
	Root string

	// Files restricts the run to specific files. Empty means the whole
	// root, filtered by the tool's file pattern.
	Files []string

	// Fix enables the tool's auto-fix mode.
	Fix bool
}

// ToolOutput is the raw output from a tool execution.
type ToolOutput struct {
	// Stdout is the standard output.
	Stdout string

	// Stderr is the error output.
	Stderr string

	// ExitCode is the process exit code.
	ExitCode int

	// Duration is how long the tool took to run.
	Duration string
}

// Combined returns stdout followed by stderr, for verbatim forwarding.
func (o *ToolOutput) Combined() string {
	if o.Stderr == "" {
		return o.Stdout
	}
	if o.Stdout == "" {
		return o.Stderr
	}
	return o.Stdout + o.Stderr
}

// Diagnostic represents a single finding reported by a tool.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	Message  string
	Severity string // "error", "warning", "info"
	RuleID   string
	Fixed    bool
}
