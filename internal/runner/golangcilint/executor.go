package golangcilint

import (
	"context"

	"github.com/lintgate/lintgate/internal/runner"
)

// run executes golangci-lint run against the root or explicit files.
func (r *Runner) run(ctx context.Context, opts runner.RunOptions) (*runner.ToolOutput, error) {
	args := []string{"run"}
	if opts.Fix {
		args = append(args, "--fix")
	}

	if len(opts.Files) > 0 {
		args = append(args, opts.Files...)
	} else {
		args = append(args, "./...")
	}

	// golangci-lint resolves packages relative to the working
	// directory. Per-call copy: the shared executor is never mutated.
	executor := *r.executor
	executor.WorkDir = opts.Root
	return executor.Execute(ctx, r.getCommand(), args...)
}

// getCommand returns the golangci-lint command to use.
func (r *Runner) getCommand() string {
	if path := runner.FindTool(r.getBinaryPath(), "golangci-lint"); path != "" {
		return path
	}

	// Let the executor surface the launch failure
	return "golangci-lint"
}
