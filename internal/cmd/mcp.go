package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lintgate/lintgate/internal/mcp"
	"github.com/lintgate/lintgate/internal/util/env"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based coding tools can run lint gates and list tools through stdio.

Tools provided by the MCP server:
- run_lint: run a lint tool against a path and return the outcome
- list_tools: list registered lint tools and their availability

Communicates via stdio for integration with Claude Desktop, Claude Code,
Cursor, and other MCP clients.`,
	Example: `  lintgate mcp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcp.NewServer(env.ProjectRoot()).Start()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
