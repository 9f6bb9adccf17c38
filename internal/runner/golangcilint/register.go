package golangcilint

import (
	"github.com/lintgate/lintgate/internal/runner"
)

func init() {
	// Register golangci-lint runner with its config file
	_ = runner.Global().RegisterTool(
		New(runner.DefaultToolsDir()),
		".golangci.yml",
	)
}
