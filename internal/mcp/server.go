// Package mcp exposes the lint gate over the Model Context Protocol so
// AI coding tools can lint their own edits before presenting them.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/lintgate/lintgate/internal/gate"
	"github.com/lintgate/lintgate/internal/runner"
)

// Server is a MCP (Model Context Protocol) server.
// It communicates via JSON-RPC over stdio.
type Server struct {
	defaultRoot string
	registry    *runner.Registry
}

// NewServer creates a new MCP server instance.
// defaultRoot is used when a tool call does not name a path.
func NewServer(defaultRoot string) *Server {
	return &Server{
		defaultRoot: defaultRoot,
		registry:    runner.Global(),
	}
}

// RunLintInput represents the input schema for the run_lint tool.
type RunLintInput struct {
	Tool string `json:"tool,omitempty" jsonschema:"Lint tool to run (e.g. ruff, golangci-lint). Defaults to ruff."`
	Path string `json:"path,omitempty" jsonschema:"Project root to lint. Defaults to the server's project root."`
	Fix  bool   `json:"fix,omitempty" jsonschema:"Enable the tool's auto-fix mode."`
}

// ListToolsInput represents the input schema for the list_tools tool.
type ListToolsInput struct {
	// No parameters - returns all registered tools
}

// Start runs a spec-compliant MCP server over stdio using the official go-sdk.
func (s *Server) Start() error {
	return s.run(context.Background())
}

func (s *Server) run(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "lintgate",
		Version: "1.0.0",
	}, nil)

	// Tool: run_lint
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "run_lint",
		Description: "Run a lint tool in check (optionally auto-fix) mode against a project root. Returns the outcome (clean/violations/failure), the gate exit code, and the tool's raw output.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input RunLintInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleRunLint(ctx, input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	// Tool: list_tools
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tools",
		Description: "List registered lint tools with their file patterns and availability.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListToolsInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		return nil, s.handleListTools(ctx), nil
	})

	// Run the server over stdio until the client disconnects
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

// handleRunLint runs one gated lint invocation.
func (s *Server) handleRunLint(ctx context.Context, input RunLintInput) (map[string]any, error) {
	tool := input.Tool
	if tool == "" {
		tool = "ruff"
	}
	root := input.Path
	if root == "" {
		root = s.defaultRoot
	}

	run, err := s.registry.GetRunner(tool)
	if err != nil {
		return nil, err
	}

	output, err := run.Run(ctx, runner.RunOptions{
		Root: root,
		Fix:  input.Fix,
	})
	if err != nil {
		// Tool could not be launched; report as a gate failure rather
		// than an RPC error so clients see the contract exit code
		return map[string]any{
			"outcome":   gate.OutcomeFailure.String(),
			"exit_code": gate.OutcomeFailure.ExitCode(),
			"output":    fmt.Sprintf("%v", err),
		}, nil
	}

	outcome := gate.OutcomeFromTool(output.ExitCode)

	result := map[string]any{
		"outcome":   outcome.String(),
		"exit_code": outcome.ExitCode(),
		"output":    output.Combined(),
		"duration":  output.Duration,
	}

	// Attach parsed diagnostics when the output is parseable
	if diagnostics, err := run.ParseOutput(output); err == nil {
		result["diagnostics"] = diagnostics
	}

	return result, nil
}

// handleListTools lists registered tools and their availability.
func (s *Server) handleListTools(ctx context.Context) map[string]any {
	var tools []map[string]any
	for _, name := range s.registry.GetAllToolNames() {
		run, err := s.registry.GetRunner(name)
		if err != nil {
			continue
		}
		caps := run.Capabilities()

		available := run.CheckAvailability(ctx) == nil
		tools = append(tools, map[string]any{
			"name":         caps.Name,
			"file_pattern": caps.FilePattern,
			"languages":    caps.SupportedLanguages,
			"can_fix":      caps.CanFix,
			"available":    available,
		})
	}

	return map[string]any{"tools": tools}
}
