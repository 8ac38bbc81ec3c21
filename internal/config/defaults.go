// Package config provides common default configuration values shared across
// Launchpad components (identifier resolver, first-run gate, launcher). This
// centralizes file naming and path conventions so every component agrees on
// where persisted launcher state lives.
package config

const (
	// DefaultDeviceIDFile is the file holding the resolved device identifier.
	// Lives in the application directory next to the launcher executable and
	// contains a single line that is reused verbatim on every later run.
	DefaultDeviceIDFile = "device_id.txt"

	// DefaultSetupMarkerFile is the presence-only sentinel created after the
	// one-time runtime setup completes. Content is irrelevant; existence alone
	// means "setup already done". Creation is always the last setup step so a
	// crash mid-setup leaves it absent and setup is retried on the next run.
	DefaultSetupMarkerFile = ".setup-complete"

	// DefaultConfigFile is the optional YAML configuration file read from the
	// application directory at startup. Flags take precedence over its values.
	DefaultConfigFile = "launchpad.yaml"

	// DefaultRuntimeDir is the directory of the bundled runtime, relative to
	// the application directory.
	DefaultRuntimeDir = "runtime"

	// DefaultEntryScript is the application entry point handed to the bundled
	// interpreter, relative to the application directory.
	DefaultEntryScript = "app/main.py"

	// DefaultSiteArchive is the optional compressed archive of runtime site
	// assets extracted during one-time setup, relative to the application
	// directory. A missing archive is not an error.
	DefaultSiteArchive = "runtime/site.tar.zst"

	// DefaultLogLevel is the default log level for all components
	// INFO provides good balance of visibility without verbose debug output
	DefaultLogLevel = "INFO"
)
