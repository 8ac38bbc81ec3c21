// Package commands provides the preflight diagnostics command for launchpad.
//
// This file implements the doctor command that runs the same checks the
// launch flow performs, reporting each one individually instead of stopping
// at the first failure. Operators use it to verify an installation after
// extracting the runtime archive or relocating the application directory,
// without actually starting the application.

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/auditworks/launchpad/cmd/launchpad/config"
	"github.com/auditworks/launchpad/internal/deviceid"
	"github.com/auditworks/launchpad/internal/firstrun"
	"github.com/auditworks/launchpad/internal/launcher"
	"github.com/auditworks/launchpad/internal/logging"
	"github.com/auditworks/launchpad/internal/validate"
	"github.com/spf13/cobra"
)

// Doctor command (installation diagnostics)
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the installation without launching the application",
	Long: `Check the installation: bundled runtime assets, persisted device
identifier, and one-time setup state. Reports every check individually so a
broken installation shows all problems at once.

Exits non-zero when any required asset is missing.`,
	Example: `  # Check the installation next to the launcher
  launchpad doctor

  # Check a relocated installation
  launchpad doctor --app-dir=/opt/datareview`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer cleanupLogFile()

		layout := buildLayout()
		marker := firstrun.NewMarker(filepath.Join(config.Global.AppDir, config.Global.SetupMarkerFile))
		store := deviceid.NewStore(filepath.Join(config.Global.AppDir, config.Global.DeviceIDFile))

		failures := 0
		check := func(name string, err error) {
			if err != nil {
				logging.Error("%s: %v", name, err)
				failures++
				return
			}
			logging.Success("%s: OK", name)
		}

		check("application directory", validate.ExistingDir(layout.AppDir, "application directory"))
		check("runtime directory", validate.ExistingDir(layout.RuntimeDirPath(), "runtime directory"))
		check("runtime interpreter", validate.ExistingFile(layout.InterpreterPath(), "runtime interpreter"))
		check("application entry script", validate.ExistingFile(layout.EntryPath(), "application entry script"))

		if fix := layout.PathFixPath(); fix != "" {
			check("path-fix script", validate.ExistingFile(fix, "path-fix script"))
		}
		if archive := layout.SiteArchivePath(); archive != "" {
			if _, err := os.Stat(archive); err == nil {
				logging.Info("site archive present (will be extracted during one-time setup)")
			} else {
				logging.Info("site archive absent (assets assumed pre-extracted)")
			}
		}

		// Persisted state is informational: absence just means first-run
		// work is still pending.
		if id, err := store.Load(); err != nil {
			logging.Error("device identifier file: %v", err)
			failures++
		} else if id != "" {
			logging.Info("device identifier: %s", logging.FormatDeviceID(id))
		} else {
			logging.Info("device identifier: not yet resolved")
		}

		state := firstrun.Inspect(store.Path(), marker)
		logging.Info("initialization state: %s", state)

		if failures > 0 {
			exitCode = launcher.ExitMissingAsset
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}
