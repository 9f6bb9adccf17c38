package main

import (
	"github.com/lintgate/lintgate/internal/cmd"

	// Bootstrap: register all runners
	_ "github.com/lintgate/lintgate/internal/bootstrap"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version command
	cmd.SetVersion(Version)

	cmd.Execute()
}
