package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintgate/lintgate/internal/runner"
	"github.com/lintgate/lintgate/internal/ui"
)

var installCmd = &cobra.Command{
	Use:   "install <tool>",
	Short: "Install a lint tool into the tools directory",
	Example: `  lintgate install ruff
  lintgate install golangci-lint --version 2.7.2 --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		run, err := runner.Global().GetRunner(name)
		if err != nil {
			return err
		}

		version, _ := cmd.Flags().GetString("version")
		force, _ := cmd.Flags().GetBool("force")

		ctx := context.Background()

		if !force {
			if err := run.CheckAvailability(ctx); err == nil {
				fmt.Println(ui.OK(fmt.Sprintf("%s is already available", name)))
				return nil
			}
		}

		fmt.Println(ui.Info(fmt.Sprintf("Installing %s...", name)))
		if err := run.Install(ctx, runner.InstallConfig{
			ToolsDir: runner.DefaultToolsDir(),
			Version:  version,
			Force:    force,
		}); err != nil {
			return fmt.Errorf("failed to install %s: %w", name, err)
		}

		fmt.Println(ui.OK(fmt.Sprintf("%s installed", name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)

	installCmd.Flags().String("version", "", "tool version to install (default: pinned version)")
	installCmd.Flags().Bool("force", false, "reinstall even if already installed")
}
