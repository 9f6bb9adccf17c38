package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// verbose is a global flag for verbose output
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lintgate",
	Short: "lintgate - lint gate for hooks and CI",
	Long: `lintgate runs external lint tools in check+auto-fix mode against a
project root and gates its own exit status on the tool's outcome.

Exit codes:
  0  tool found no issues, or fixed all issues automatically
  2  tool left unfixable violations, or terminated abnormally

The project root is read from LINTGATE_PROJECT_DIR (falling back to the
working directory), which makes the gate usable as an editor or
pre-commit hook with no arguments.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}
