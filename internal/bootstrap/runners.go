package bootstrap

import (
	// Import runners for registration side-effects.
	// Each runner's register.go file contains an init() function
	// that registers the runner with the global registry.
	_ "github.com/lintgate/lintgate/internal/runner/golangcilint"
	_ "github.com/lintgate/lintgate/internal/runner/ruff"
)

// This package only imports runner packages for their init() side-effects.
// Import this package from main.go to ensure all runners are registered.
