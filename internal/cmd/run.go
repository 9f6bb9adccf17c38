package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintgate/lintgate/internal/config"
	"github.com/lintgate/lintgate/internal/gate"
	"github.com/lintgate/lintgate/internal/runner"
	"github.com/lintgate/lintgate/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Run a lint tool against a path and report diagnostics",
	Long: `Run a lint tool against the given path (default: current directory).
Unlike 'hook', this command parses the tool output into diagnostics and
can render them as text or JSON. The exit code follows the same gate
contract: 0 clean, 2 blocked.`,
	Example: `  lintgate run
  lintgate run ./src --tool ruff --fix
  lintgate run --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		cfg, err := config.Load(root)
		if err != nil {
			return err
		}

		tool, _ := cmd.Flags().GetString("tool")
		if tool == "" {
			tool = cfg.Tool
		}
		fix, _ := cmd.Flags().GetBool("fix")
		format, _ := cmd.Flags().GetString("format")

		run, err := runner.Global().GetRunner(tool)
		if err != nil {
			return err
		}

		output, err := run.Run(context.Background(), runner.RunOptions{
			Root: root,
			Fix:  fix,
		})
		if err != nil {
			return err
		}

		outcome := gate.OutcomeFromTool(output.ExitCode)

		switch format {
		case "json":
			if err := printJSON(run, output, outcome); err != nil {
				return err
			}
		default:
			printText(output, outcome, tool)
		}

		os.Exit(outcome.ExitCode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("tool", "", "tool to run (default: from .lintgate/config.json)")
	runCmd.Flags().Bool("fix", false, "automatically fix violations when possible")
	runCmd.Flags().StringP("format", "f", "text", "output format (text|json)")
}

// runReport is the JSON shape of a run.
type runReport struct {
	Tool        string              `json:"tool"`
	Outcome     string              `json:"outcome"`
	ExitCode    int                 `json:"exit_code"`
	Diagnostics []runner.Diagnostic `json:"diagnostics"`
	Duration    string              `json:"duration"`
}

func printJSON(run runner.Runner, output *runner.ToolOutput, outcome gate.Outcome) error {
	diagnostics, err := run.ParseOutput(output)
	if err != nil {
		return err
	}

	report := runReport{
		Tool:        run.Name(),
		Outcome:     outcome.String(),
		ExitCode:    outcome.ExitCode(),
		Diagnostics: diagnostics,
		Duration:    output.Duration,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func printText(output *runner.ToolOutput, outcome gate.Outcome, tool string) {
	fmt.Print(output.Combined())

	switch outcome {
	case gate.OutcomeClean:
		fmt.Println(ui.OK(fmt.Sprintf("%s: clean", tool)))
	case gate.OutcomeViolations:
		fmt.Println(ui.Error(fmt.Sprintf("%s: violations remain", tool)))
	default:
		fmt.Println(ui.Error(fmt.Sprintf("%s: terminated abnormally (exit %d)", tool, output.ExitCode)))
	}
}
