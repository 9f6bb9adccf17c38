package ruff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lintgate/lintgate/internal/runner"
)

// conciseLine matches ruff's default concise output, e.g.
//
//	app/main.py:3:8: F401 [*] `os` imported but unused
//
// The optional [*] marker flags a violation ruff could fix.
var conciseLine = regexp.MustCompile(`^(.+?):(\d+):(\d+): ([A-Z]+[0-9]+)( \[\*\])? (.+)$`)

// parseOutput converts ruff concise output to diagnostics.
// Summary lines ("Found 3 errors.", "All checks passed!") and anything
// else that is not a violation line are skipped.
func parseOutput(output *runner.ToolOutput) ([]runner.Diagnostic, error) {
	if output == nil {
		return nil, fmt.Errorf("output is nil")
	}

	// Abnormal termination: ruff reports the failure on stderr
	if output.ExitCode > 1 {
		msg := strings.TrimSpace(output.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(output.Stdout)
		}
		return nil, fmt.Errorf("ruff error (exit %d): %s", output.ExitCode, msg)
	}

	diagnostics := []runner.Diagnostic{}
	for _, line := range strings.Split(output.Stdout, "\n") {
		m := conciseLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}

		lineNo, _ := strconv.Atoi(m[2])
		colNo, _ := strconv.Atoi(m[3])

		diagnostics = append(diagnostics, runner.Diagnostic{
			File:     m[1],
			Line:     lineNo,
			Column:   colNo,
			RuleID:   m[4],
			Fixed:    m[5] != "",
			Message:  m[6],
			Severity: severityForCode(m[4]),
		})
	}

	return diagnostics, nil
}

// severityForCode maps ruff rule codes to standard severity.
// W-prefixed rules (pycodestyle warnings) are warnings, the rest errors.
func severityForCode(code string) string {
	if strings.HasPrefix(code, "W") {
		return "warning"
	}
	return "error"
}
