package ruff

import (
	"context"

	"github.com/lintgate/lintgate/internal/runner"
)

// run executes ruff check against the root or explicit files.
func (r *Runner) run(ctx context.Context, opts runner.RunOptions) (*runner.ToolOutput, error) {
	ruffCmd := r.getRuffCommand()
	args := r.runArgs(opts)

	// Per-call copy: the shared executor is never mutated, and the
	// root is applied exactly once, as the working directory.
	executor := *r.executor
	executor.WorkDir = opts.Root
	return executor.Execute(ctx, ruffCmd, args...)
}

// runArgs returns the arguments for a ruff check invocation.
// The root becomes the working directory, so the scan target is always
// "."; passing the root here as well would double-apply a relative
// path. ruff restricts itself to *.py files; the extension filter is
// the tool's own, not re-implemented here.
func (r *Runner) runArgs(opts runner.RunOptions) []string {
	args := []string{"check"}
	if opts.Fix {
		args = append(args, "--fix")
	}

	if len(opts.Files) > 0 {
		args = append(args, opts.Files...)
		return args
	}

	args = append(args, ".")
	return args
}

// getRuffCommand returns the ruff command to use.
func (r *Runner) getRuffCommand() string {
	// Local venv install wins over global PATH
	if path := runner.FindTool(r.getRuffPath(), "ruff"); path != "" {
		return path
	}

	// Let the executor surface the launch failure
	return "ruff"
}
