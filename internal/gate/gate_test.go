package gate

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintgate/lintgate/internal/runner"
)

// stubRunner returns a canned output or launch error.
type stubRunner struct {
	output  *runner.ToolOutput
	err     error
	lastRun runner.RunOptions
	calls   int
}

func (s *stubRunner) Name() string { return "stub" }

func (s *stubRunner) Capabilities() runner.Capabilities {
	return runner.Capabilities{Name: "stub", FilePattern: "*.py"}
}

func (s *stubRunner) CheckAvailability(ctx context.Context) error { return nil }

func (s *stubRunner) Install(ctx context.Context, config runner.InstallConfig) error { return nil }

func (s *stubRunner) Run(ctx context.Context, opts runner.RunOptions) (*runner.ToolOutput, error) {
	s.calls++
	s.lastRun = opts
	return s.output, s.err
}

func (s *stubRunner) ParseOutput(output *runner.ToolOutput) ([]runner.Diagnostic, error) {
	return nil, nil
}

// stubRegistry resolves a single runner.
type stubRegistry struct {
	runner runner.Runner
	err    error
}

func (s *stubRegistry) GetRunner(toolName string) (runner.Runner, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.runner, nil
}

func TestOutcomeFromTool(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		want     Outcome
	}{
		{"clean", 0, OutcomeClean},
		{"violations remain", 1, OutcomeViolations},
		{"abnormal termination", 2, OutcomeFailure},
		{"command not found", 127, OutcomeFailure},
		{"negative (killed)", -1, OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutcomeFromTool(tt.exitCode))
		})
	}
}

func TestOutcome_ExitCode(t *testing.T) {
	assert.Equal(t, 0, OutcomeClean.ExitCode())
	assert.Equal(t, 2, OutcomeViolations.ExitCode())
	assert.Equal(t, 2, OutcomeFailure.ExitCode())
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "clean", OutcomeClean.String())
	assert.Equal(t, "violations", OutcomeViolations.String())
	assert.Equal(t, "failure", OutcomeFailure.String())
}

func TestGate_Run_Clean(t *testing.T) {
	stub := &stubRunner{
		output: &runner.ToolOutput{Stdout: "All checks passed.\n", ExitCode: 0},
	}
	var out bytes.Buffer
	g := New(&stubRegistry{runner: stub}, &out)

	outcome, err := g.Run(context.Background(), Options{Tool: "stub", Root: "/proj", Fix: true})

	require.NoError(t, err)
	assert.Equal(t, OutcomeClean, outcome)
	assert.Equal(t, 0, outcome.ExitCode())
	assert.Equal(t, "All checks passed.\n", out.String())
	assert.Equal(t, "/proj", stub.lastRun.Root)
	assert.True(t, stub.lastRun.Fix)
}

func TestGate_Run_ViolationsRemain(t *testing.T) {
	stub := &stubRunner{
		output: &runner.ToolOutput{Stdout: "3 errors remain.\n", ExitCode: 1},
	}
	var out bytes.Buffer
	g := New(&stubRegistry{runner: stub}, &out)

	outcome, err := g.Run(context.Background(), Options{Tool: "stub"})

	require.NoError(t, err)
	assert.Equal(t, OutcomeViolations, outcome)
	assert.Equal(t, 2, outcome.ExitCode())
	// Output is forwarded even though the run is blocked
	assert.Equal(t, "3 errors remain.\n", out.String())
}

func TestGate_Run_AbnormalTermination(t *testing.T) {
	stub := &stubRunner{
		output: &runner.ToolOutput{Stderr: "panic: bad config\n", ExitCode: 2},
	}
	var out bytes.Buffer
	g := New(&stubRegistry{runner: stub}, &out)

	outcome, err := g.Run(context.Background(), Options{Tool: "stub"})

	require.NoError(t, err)
	assert.Equal(t, OutcomeFailure, outcome)
	assert.Equal(t, 2, outcome.ExitCode())
	// stderr text still forwarded
	assert.Equal(t, "panic: bad config\n", out.String())
}

func TestGate_Run_LaunchFailure(t *testing.T) {
	stub := &stubRunner{
		err: fmt.Errorf("failed to execute ruff: executable file not found in $PATH"),
	}
	var out bytes.Buffer
	g := New(&stubRegistry{runner: stub}, &out)

	outcome, err := g.Run(context.Background(), Options{Tool: "stub"})

	require.Error(t, err)
	// Tool missing is not distinguished from remaining violations
	assert.Equal(t, OutcomeFailure, outcome)
	assert.Equal(t, 2, outcome.ExitCode())
}

func TestGate_Run_LaunchFailureWithPartialOutput(t *testing.T) {
	stub := &stubRunner{
		output: &runner.ToolOutput{Stderr: "ruff: not found\n"},
		err:    fmt.Errorf("failed to execute ruff"),
	}
	var out bytes.Buffer
	g := New(&stubRegistry{runner: stub}, &out)

	outcome, err := g.Run(context.Background(), Options{Tool: "stub"})

	require.Error(t, err)
	assert.Equal(t, OutcomeFailure, outcome)
	// Captured text is forwarded before the status decision
	assert.Equal(t, "ruff: not found\n", out.String())
}

func TestGate_Run_UnknownTool(t *testing.T) {
	var out bytes.Buffer
	g := New(&stubRegistry{err: fmt.Errorf("runner not found: nope")}, &out)

	outcome, err := g.Run(context.Background(), Options{Tool: "nope"})

	require.Error(t, err)
	assert.Equal(t, OutcomeFailure, outcome)
	assert.Equal(t, 2, outcome.ExitCode())
}

func TestGate_Run_IdempotentOnCleanTree(t *testing.T) {
	stub := &stubRunner{
		output: &runner.ToolOutput{Stdout: "All checks passed.\n", ExitCode: 0},
	}
	var out bytes.Buffer
	g := New(&stubRegistry{runner: stub}, &out)

	for i := 0; i < 2; i++ {
		outcome, err := g.Run(context.Background(), Options{Tool: "stub", Fix: true})
		require.NoError(t, err)
		assert.Equal(t, OutcomeClean, outcome)
	}
	assert.Equal(t, 2, stub.calls)
}
