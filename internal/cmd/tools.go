package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/lintgate/lintgate/internal/runner"
	"github.com/lintgate/lintgate/internal/ui"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Inspect registered lint tools",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered tools and their availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := runner.Global()

		for _, name := range reg.GetAllToolNames() {
			run, err := reg.GetRunner(name)
			if err != nil {
				return err
			}
			caps := run.Capabilities()

			status := ui.OK("available")
			if err := run.CheckAvailability(context.Background()); err != nil {
				status = ui.Warn("not installed")
				if verbose {
					status = ui.Warn(err.Error())
				}
			}

			fmt.Printf("%-15s %-8s %s\n", caps.Name, caps.FilePattern, status)
		}

		return nil
	},
}

var toolsDocsCmd = &cobra.Command{
	Use:   "docs <tool>",
	Short: "Open a tool's documentation in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		run, err := runner.Global().GetRunner(args[0])
		if err != nil {
			return err
		}

		url := run.Capabilities().DocsURL
		if url == "" {
			return fmt.Errorf("no documentation URL for %s", args[0])
		}

		fmt.Println(ui.Info(fmt.Sprintf("Opening %s", url)))
		return browser.OpenURL(url)
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsListCmd)
	toolsCmd.AddCommand(toolsDocsCmd)
}
