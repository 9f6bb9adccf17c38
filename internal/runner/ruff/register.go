package ruff

import (
	"github.com/lintgate/lintgate/internal/runner"
)

func init() {
	// Register ruff runner with its config file
	_ = runner.Global().RegisterTool(
		New(runner.DefaultToolsDir()),
		"ruff.toml",
	)
}
