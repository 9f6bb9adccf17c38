package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintgate/lintgate/internal/config"
	"github.com/lintgate/lintgate/internal/gate"
	"github.com/lintgate/lintgate/internal/runner"
	"github.com/lintgate/lintgate/internal/util/env"
	"github.com/lintgate/lintgate/pkg/exitcode"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run the configured lint tool as a gate (for hooks)",
	Long: `Run the configured lint tool in check+auto-fix mode against the
project root from LINTGATE_PROJECT_DIR and exit with the gate contract:
0 when the tree is clean (or fully fixed), 2 otherwise.

Tool output is forwarded verbatim before the exit status is decided.`,
	Example: `  LINTGATE_PROJECT_DIR=/path/to/project lintgate hook
  lintgate hook --tool ruff`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runHook(cmd))
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)

	hookCmd.Flags().String("tool", "", "tool to run (default: from .lintgate/config.json)")
}

// runHook performs one gated run and returns the process exit code.
// All failure causes (violations, tool crash, tool missing) collapse
// into exitcode.Blocked; the hook caller only needs pass/block.
func runHook(cmd *cobra.Command) int {
	root := env.ProjectRoot()

	cfg, err := config.Load(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitcode.Blocked
	}
	if cfg.ProjectDirEnv != "" && cfg.ProjectDirEnv != env.ProjectRootVar {
		if custom := env.Get(cfg.ProjectDirEnv); custom != "" {
			root = custom
		}
	}

	tool, _ := cmd.Flags().GetString("tool")
	if tool == "" {
		tool = cfg.Tool
	}

	g := gate.New(runner.Global(), os.Stdout)
	outcome, err := g.Run(context.Background(), gate.Options{
		Tool: tool,
		Root: root,
		Fix:  cfg.FixEnabled(),
	})
	if err != nil {
		// Launch failures are reported but not distinguished from
		// remaining violations in the exit code
		fmt.Fprintln(os.Stderr, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "lintgate: tool=%s root=%s outcome=%s\n", tool, root, outcome)
	}

	return outcome.ExitCode()
}
