// Package commands provides the device identifier command for launchpad.
//
// This file implements the device-id command that resolves (or reads back)
// the persisted device identifier and prints it to standard output for
// operator visibility and support diagnostics.
//
// DEVICE-ID COMMAND:
//   - device-id:            Resolve and print the identifier (persisting it on first use)
//   - device-id --refresh:  Re-derive from hardware and overwrite the persisted value

package commands

import (
	"fmt"

	"github.com/auditworks/launchpad/internal/launcher"
	"github.com/spf13/cobra"
)

// refreshDeviceID forces re-derivation, overwriting the persisted identifier.
var refreshDeviceID bool

// Device identifier command
var deviceIDCmd = &cobra.Command{
	Use:   "device-id",
	Short: "Print the device identifier for this installation",
	Long: `Print the device identifier derived from hardware information.

The identifier is persisted beside the launcher on first use and reused
unchanged afterwards. Use --refresh to re-derive it from hardware, replacing
the persisted value.`,
	Example: `  # Print the identifier (resolving it on first use)
  launchpad device-id

  # Re-derive the identifier from hardware
  launchpad device-id --refresh`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer cleanupLogFile()

		resolver := buildResolver()

		var id string
		var err error
		if refreshDeviceID {
			id, err = resolver.Refresh(cmd.Context())
		} else {
			id, err = resolver.Resolve(cmd.Context())
		}
		if err != nil {
			exitCode = launcher.ExitConfigError
			return err
		}

		// Bare value on stdout so scripts can capture it directly
		fmt.Println(id)
		return nil
	},
}

func init() {
	deviceIDCmd.Flags().BoolVar(&refreshDeviceID, "refresh", false,
		"Re-derive the identifier from hardware, overwriting the persisted value")
}
