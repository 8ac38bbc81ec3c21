// Package main provides the entry point for the Launchpad launcher binary.
//
// Launchpad starts a bundled desktop application with its packaged runtime.
// On first run it derives a device identifier from hardware information and
// performs one-time runtime setup; both are remembered in files beside the
// launcher so later runs go straight to the application.
//
// INITIALIZATION FLOW:
// 1. Command structure setup (launch flow plus diagnostic subcommands)
// 2. Flag registration over built-in defaults
// 3. Config file merge and validation in the shared pre-run pipeline
// 4. Command execution with exit code propagation to the shell
//
// The process exit code distinguishes launcher failures (bad configuration,
// missing runtime assets, failed one-time setup) from the launched
// application's own exit code, which is passed through verbatim.
package main

import (
	"os"

	"github.com/auditworks/launchpad/cmd/launchpad/commands"
)

func main() {
	commands.SetupCommands()
	os.Exit(commands.Execute())
}
