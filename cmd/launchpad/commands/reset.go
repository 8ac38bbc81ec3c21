// Package commands provides the state reset command for launchpad.
//
// This file implements the reset command that removes persisted launcher
// state. Deleting the device identifier file forces re-derivation on the
// next run; deleting the setup marker forces the one-time runtime setup to
// run again. Both are the supported manual recovery paths for a corrupted
// installation, replacing "delete the file by hand" folklore with an
// explicit command.

package commands

import (
	"path/filepath"

	"github.com/auditworks/launchpad/cmd/launchpad/config"
	"github.com/auditworks/launchpad/internal/deviceid"
	"github.com/auditworks/launchpad/internal/firstrun"
	"github.com/auditworks/launchpad/internal/launcher"
	"github.com/auditworks/launchpad/internal/logging"
	"github.com/spf13/cobra"
)

// Reset command flag state
var (
	resetDeviceID bool
	resetSetup    bool
)

// Reset command (persisted state removal)
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove persisted launcher state",
	Long: `Remove persisted launcher state so the next run regenerates it.

With no flags both the device identifier and the setup marker are removed.
Use --device-id or --setup to remove just one.`,
	Example: `  # Remove all persisted state
  launchpad reset

  # Force only the one-time setup to run again
  launchpad reset --setup`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer cleanupLogFile()

		// No selection means reset everything
		all := !resetDeviceID && !resetSetup

		if resetDeviceID || all {
			store := deviceid.NewStore(filepath.Join(config.Global.AppDir, config.Global.DeviceIDFile))
			if err := store.Remove(); err != nil {
				exitCode = launcher.ExitConfigError
				return err
			}
			logging.Success("Device identifier removed; next run will re-derive it")
		}

		if resetSetup || all {
			marker := firstrun.NewMarker(filepath.Join(config.Global.AppDir, config.Global.SetupMarkerFile))
			if err := marker.Remove(); err != nil {
				exitCode = launcher.ExitConfigError
				return err
			}
			logging.Success("Setup marker removed; next run will repeat one-time setup")
		}

		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetDeviceID, "device-id", false,
		"Remove the device identifier file")
	resetCmd.Flags().BoolVar(&resetSetup, "setup", false,
		"Remove the one-time setup marker")
}
