package firstrun

import "os"

// State is the launcher's initialization state, computed once at startup from
// the presence of the persisted files rather than re-stat'd ad hoc throughout
// the flow.
//
// The states form a simple progression: a fresh installation needs an
// identifier, an installation with an identifier but no setup marker needs
// one-time setup, and anything else is ready to launch.
type State int

const (
	// NeedsIdentifier means the device identifier file is absent and must be
	// resolved before anything else.
	NeedsIdentifier State = iota

	// NeedsSetup means the identifier exists but one-time runtime setup has
	// not completed (marker absent).
	NeedsSetup

	// Ready means both the identifier and the setup marker are present.
	Ready
)

// String returns a human-readable state name for logs and doctor output.
func (s State) String() string {
	switch s {
	case NeedsIdentifier:
		return "needs-identifier"
	case NeedsSetup:
		return "needs-setup"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Inspect determines the initialization state from the identifier file and
// setup marker paths.
func Inspect(identifierPath string, marker *Marker) State {
	if _, err := os.Stat(identifierPath); err != nil {
		return NeedsIdentifier
	}
	if !marker.Exists() {
		return NeedsSetup
	}
	return Ready
}
