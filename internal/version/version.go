// Package version provides centralized version information for Launchpad.
// The launcher binary is versioned independently from the desktop application
// it starts, so updating the launcher never implies an application update.
// All versions follow semantic versioning (semver) conventions.

package version

// LaunchpadVersion holds the current launchpad binary version.
// Format: major.minor.patch[-prerelease][+build]
const LaunchpadVersion = "0.1.0-dev"
