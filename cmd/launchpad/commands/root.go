// Package commands provides the complete CLI command structure for the
// Launchpad launcher.
//
// This package implements the root command and command hierarchy for
// launchpad, the desktop application launcher. It manages the CLI interface
// for the launch flow, device identifier inspection, preflight diagnostics,
// and persisted-state resets through a flag system and validation pipeline.
//
// COMMAND ARCHITECTURE:
//   - Root Command: The canonical launch flow (identifier gate, asset
//     preflight, one-time setup gate, application launch)
//   - device-id:    Resolve and print the device identifier
//   - doctor:       Itemized preflight checks without launching
//   - reset:        Remove persisted launcher state to force regeneration
//
// The root command propagates the launched application's exit code verbatim,
// while launcher-specific failures map to their own exit codes so wrapping
// scripts can tell a broken installation from a failing application.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/auditworks/launchpad/cmd/launchpad/config"
	"github.com/auditworks/launchpad/cmd/launchpad/utils"
	"github.com/auditworks/launchpad/internal/deviceid"
	"github.com/auditworks/launchpad/internal/firstrun"
	"github.com/auditworks/launchpad/internal/launcher"
	"github.com/auditworks/launchpad/internal/logging"
	"github.com/auditworks/launchpad/internal/version"
	"github.com/spf13/cobra"
)

// exitCode is the process exit code established by command execution.
// The launch flow sets it to the child's code or a launcher-specific code;
// Execute returns it to main.
var exitCode = launcher.ExitSuccess

// logFileHandle tracks the open log file for cleanup at exit.
var logFileHandle *os.File

// Root command for the Launchpad launcher
var RootCmd = &cobra.Command{
	Use:   "launchpad [-- app-args...]",
	Short: "Launcher for the bundled desktop application",
	Long: `Launchpad starts the bundled desktop application with its packaged runtime.

On first run it derives a device identifier from hardware information and
performs one-time runtime setup; both are remembered in files beside the
launcher so later runs go straight to the application.

Arguments after "--" are passed through to the application.`,
	Version:      version.LaunchpadVersion,
	SilenceUsage: true, // Don't show usage on errors
	Args:         cobra.ArbitraryArgs,
	Example: `  # Launch the application
  launchpad

  # Launch with arguments passed to the application
  launchpad -- --profile reviewer

  # Launch a relocated installation with verbose logging
  launchpad --app-dir=/opt/datareview --log-level=DEBUG`,
	PersistentPreRunE: setupRun,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer cleanupLogFile()

		utils.DisplayBanner(config.Global.AppName, version.LaunchpadVersion)

		code, err := runLaunch(cmd, args)
		exitCode = code
		if err != nil {
			logging.Error("%v", err)
		}

		// The original launcher is double-clicked from a file manager, so
		// keep the console open for the operator to read the outcome.
		pauseForOperator()
		return nil
	},
}

// setupRun is the shared pre-run pipeline: application directory resolution,
// config file merge, log redirection, and validation. Runs for the root
// command and every subcommand.
func setupRun(cmd *cobra.Command, args []string) error {
	if err := config.ResolveAppDir(); err != nil {
		return err
	}

	// Merge launchpad.yaml, skipping fields the operator set via flags
	flags := cmd.Root().PersistentFlags()
	if err := config.MergeFile(config.ConfigFilePath(), flags.Changed); err != nil {
		return err
	}

	// Setup log file redirection if configured
	if config.Global.LogFile != "" {
		logDir := filepath.Dir(config.Global.LogFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}

		var err error
		logFileHandle, err = os.OpenFile(config.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", config.Global.LogFile, err)
		}
		logging.SetOutput(logFileHandle)
	}

	// Configure logging level immediately so later pipeline stages log at
	// the requested verbosity, then re-apply after env overrides.
	logging.SetLevel(config.Global.LogLevel)
	config.InitializeConfig()
	logging.SetLevel(config.Global.LogLevel)

	if err := config.ValidateConfig(); err != nil {
		cleanupLogFile()
		exitCode = launcher.ExitConfigError
		return err
	}
	return nil
}

// cleanupLogFile closes the log file handle if one was opened.
func cleanupLogFile() {
	if logFileHandle != nil {
		if err := logFileHandle.Close(); err != nil {
			// Log to stderr directly since the log file is being closed
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
		logFileHandle = nil
	}
}

// runLaunch executes the launch flow and returns the exit code the process
// should terminate with.
func runLaunch(cmd *cobra.Command, args []string) (int, error) {
	l := launcher.New(buildLayout(), buildResolver(), buildGate(), args)
	return l.Run(cmd.Context())
}

// buildLayout assembles the runtime layout from validated configuration.
func buildLayout() launcher.Layout {
	return launcher.Layout{
		AppDir:        config.Global.AppDir,
		RuntimeDir:    config.Global.RuntimeDir,
		Interpreter:   config.Global.Interpreter,
		Entry:         config.Global.Entry,
		PathFixScript: config.Global.PathFixScript,
		PathFixArgs:   config.Global.PathFixArgs,
		SiteArchive:   config.Global.SiteArchive,
	}
}

// buildResolver assembles the identifier resolver over the persisted store.
func buildResolver() *deviceid.Resolver {
	store := deviceid.NewStore(filepath.Join(config.Global.AppDir, config.Global.DeviceIDFile))
	return deviceid.NewResolver(store)
}

// buildGate assembles the one-time setup gate over the marker file.
func buildGate() *firstrun.Gate {
	marker := firstrun.NewMarker(filepath.Join(config.Global.AppDir, config.Global.SetupMarkerFile))
	return firstrun.NewGate(marker, "runtime setup")
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	config.ApplyDefaults()
	SetupFlags(RootCmd)

	RootCmd.AddCommand(deviceIDCmd)
	RootCmd.AddCommand(doctorCmd)
	RootCmd.AddCommand(resetCmd)
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		if exitCode == launcher.ExitSuccess {
			exitCode = launcher.ExitConfigError
		}
	}
	return exitCode
}
