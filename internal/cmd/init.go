package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/lintgate/lintgate/internal/config"
	"github.com/lintgate/lintgate/internal/runner"
	"github.com/lintgate/lintgate/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up lintgate for the current project",
	Long: `Interactively choose the default lint tool and write
.lintgate/config.json. Run once per project, then wire 'lintgate hook'
into your pre-commit or editor hook.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := runner.Global()
		names := reg.GetAllToolNames()

		// Show availability alongside each tool
		var items []string
		for _, name := range names {
			run, err := reg.GetRunner(name)
			if err != nil {
				return err
			}
			status := "✓ available"
			if err := run.CheckAvailability(context.Background()); err != nil {
				status = "✗ not installed"
			}
			items = append(items, fmt.Sprintf("%s (%s)", name, status))
		}

		templates := &promptui.SelectTemplates{
			Label:    "{{ . }}?",
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . }}",
			Selected: "✓ {{ . | green }}",
		}

		selectPrompt := promptui.Select{
			Label:     "Select default lint tool",
			Items:     items,
			Templates: templates,
			Size:      len(items),
		}

		index, _, err := selectPrompt.Run()
		if err != nil {
			fmt.Println("\nSetup cancelled")
			return nil
		}

		fixPrompt := promptui.Prompt{
			Label:     "Enable auto-fix for hook runs",
			IsConfirm: true,
			Default:   "y",
		}
		result, err := fixPrompt.Run()
		fix := err == nil && (result == "" || strings.ToLower(result) == "y")

		cfg := &config.Config{
			Tool: names[index],
			Fix:  &fix,
		}
		if err := config.Save(".", cfg); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Println(ui.OK(fmt.Sprintf("Wrote %s (tool=%s, fix=%t)", config.Path("."), cfg.Tool, fix)))
		fmt.Println(ui.Info("Add 'lintgate hook' to your pre-commit or editor hook"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
