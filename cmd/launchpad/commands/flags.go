// Package commands contains Cobra CLI command definitions for launchpad.
package commands

import (
	"github.com/auditworks/launchpad/cmd/launchpad/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the launcher. Flags are
// persistent so the diagnostic subcommands see the same layout the launch
// flow uses. Defaults come from config.ApplyDefaults, which must run first.
func SetupFlags(cmd *cobra.Command) {
	// Installation flags
	cmd.PersistentFlags().StringVar(&config.Global.AppDir, "app-dir", "",
		"Application directory (defaults to the directory containing the launcher)")
	cmd.PersistentFlags().StringVar(&config.Global.ConfigFile, "config", "",
		"Path to the launcher config file (defaults to launchpad.yaml in the application directory)")

	// Runtime layout flags
	cmd.PersistentFlags().StringVar(&config.Global.RuntimeDir, "runtime-dir", config.Global.RuntimeDir,
		"Bundled runtime directory, relative to the application directory")
	cmd.PersistentFlags().StringVar(&config.Global.Interpreter, "interpreter", config.Global.Interpreter,
		"Runtime entry executable, relative to the application directory\n"+
			"Defaults to the platform convention inside the runtime directory")
	cmd.PersistentFlags().StringVar(&config.Global.Entry, "entry", config.Global.Entry,
		"Application entry script handed to the interpreter")
	cmd.PersistentFlags().StringVar(&config.Global.PathFixScript, "path-fix", config.Global.PathFixScript,
		"One-time runtime path-fix script (empty disables the path-fix step)")
	cmd.PersistentFlags().StringVar(&config.Global.SiteArchive, "site-archive", config.Global.SiteArchive,
		"Optional site asset archive extracted during one-time setup")

	// State file flags
	cmd.PersistentFlags().StringVar(&config.Global.DeviceIDFile, "device-id-file", config.Global.DeviceIDFile,
		"Device identifier file, relative to the application directory")
	cmd.PersistentFlags().StringVar(&config.Global.SetupMarkerFile, "setup-marker", config.Global.SetupMarkerFile,
		"One-time setup marker file, relative to the application directory")

	// Operational flags
	cmd.PersistentFlags().StringVar(&config.Global.AppName, "app-name", config.Global.AppName,
		"Display name for the application in the banner and logs")
	cmd.PersistentFlags().StringVar(&config.Global.LogLevel, "log-level", config.Global.LogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.PersistentFlags().StringVar(&config.Global.LogFile, "log-file", config.Global.LogFile,
		"Redirect all logs to this file instead of the console")
	cmd.PersistentFlags().BoolVar(&config.Global.NoPause, "no-pause", config.Global.NoPause,
		"Do not wait for operator acknowledgment before the console closes")
}
