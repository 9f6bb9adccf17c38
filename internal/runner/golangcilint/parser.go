package golangcilint

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lintgate/lintgate/internal/runner"
)

// issueLine matches golangci-lint's default text output, e.g.
//
//	pkg/foo/bar.go:12:6: ineffectual assignment to err (ineffassign)
var issueLine = regexp.MustCompile(`^(.+?\.go):(\d+):(\d+): (.+) \(([a-zA-Z0-9_-]+)\)$`)

// parseOutput converts golangci-lint text output to diagnostics.
func parseOutput(output *runner.ToolOutput) ([]runner.Diagnostic, error) {
	if output == nil {
		return nil, fmt.Errorf("output is nil")
	}

	// Abnormal termination (bad config, compile errors in the target)
	if output.ExitCode > 1 {
		msg := strings.TrimSpace(output.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(output.Stdout)
		}
		return nil, fmt.Errorf("golangci-lint error (exit %d): %s", output.ExitCode, msg)
	}

	diagnostics := []runner.Diagnostic{}
	for _, line := range strings.Split(output.Stdout, "\n") {
		m := issueLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}

		lineNo, _ := strconv.Atoi(m[2])
		colNo, _ := strconv.Atoi(m[3])

		diagnostics = append(diagnostics, runner.Diagnostic{
			File:     m[1],
			Line:     lineNo,
			Column:   colNo,
			Message:  m[4],
			RuleID:   m[5],
			Severity: "error",
		})
	}

	return diagnostics, nil
}
