// Package gate implements the lint gate: one synchronous tool
// invocation whose outcome is collapsed into a caller-facing exit code.
package gate

import (
	"context"
	"fmt"
	"io"

	"github.com/lintgate/lintgate/internal/runner"
	"github.com/lintgate/lintgate/pkg/exitcode"
)

// Outcome is the three-way result of a gated lint run.
type Outcome int

const (
	// OutcomeClean means the tool found no issues, or fixed all of them.
	OutcomeClean Outcome = iota

	// OutcomeViolations means the tool left violations it could not fix.
	OutcomeViolations

	// OutcomeFailure means the tool terminated abnormally or could not
	// be launched at all.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeViolations:
		return "violations"
	default:
		return "failure"
	}
}

// ExitCode maps the outcome onto the gate's own exit-code contract.
// Violations and failures are deliberately not distinguished: hook
// callers only need pass/block.
func (o Outcome) ExitCode() int {
	if o == OutcomeClean {
		return exitcode.Clean
	}
	return exitcode.Blocked
}

// OutcomeFromTool maps a lint tool's exit status onto an Outcome.
// Convention shared by ruff and golangci-lint: 0 = clean or all fixed,
// 1 = violations remain, anything else = abnormal termination.
func OutcomeFromTool(exitCode int) Outcome {
	switch exitCode {
	case 0:
		return OutcomeClean
	case 1:
		return OutcomeViolations
	default:
		return OutcomeFailure
	}
}

// Options controls a single gated run.
type Options struct {
	// Tool is the registered runner name to invoke.
	Tool string

	// Root is the project root directory to scan.
	Root string

	// Fix enables the tool's auto-fix mode.
	Fix bool
}

// Gate runs one tool invocation and reports its outcome.
type Gate struct {
	registry Registry
	out      io.Writer
}

// Registry is the subset of runner.Registry the gate needs.
// Narrowed for testability.
type Registry interface {
	GetRunner(toolName string) (runner.Runner, error)
}

// New creates a gate that forwards tool output to out.
func New(reg Registry, out io.Writer) *Gate {
	return &Gate{registry: reg, out: out}
}

// Run invokes the tool once, forwards its captured output verbatim to
// the gate's writer, and returns the outcome. Output forwarding always
// happens before the status decision; it is never suppressed on
// failure. Launch errors (tool missing, unexecutable) collapse into
// OutcomeFailure after any captured text has been forwarded.
func (g *Gate) Run(ctx context.Context, opts Options) (Outcome, error) {
	run, err := g.registry.GetRunner(opts.Tool)
	if err != nil {
		return OutcomeFailure, err
	}

	output, err := run.Run(ctx, runner.RunOptions{
		Root: opts.Root,
		Fix:  opts.Fix,
	})
	if output != nil {
		fmt.Fprint(g.out, output.Combined())
	}
	if err != nil {
		return OutcomeFailure, err
	}

	return OutcomeFromTool(output.ExitCode), nil
}
