package firstrun

import (
	"errors"
	"fmt"

	"github.com/auditworks/launchpad/internal/logging"
)

// ErrSetupFailed wraps a failed one-time setup step. The marker is left
// absent so the step is re-attempted on the next invocation; callers treat
// this as fatal for the current run only.
var ErrSetupFailed = errors.New("one-time setup step failed")

// Step is a one-time setup action guarded by the gate.
type Step func() error

// Gate runs a setup step at most once per installation, using a marker file
// to remember completion across runs.
type Gate struct {
	marker *Marker
	name   string
}

// NewGate creates a gate over the given marker. The name identifies the
// guarded action in logs.
func NewGate(marker *Marker, name string) *Gate {
	return &Gate{marker: marker, name: name}
}

// RunOnce executes the step unless the marker already exists. The marker is
// created only after the step returns nil; a failing step leaves it absent
// so the next invocation retries.
func (g *Gate) RunOnce(step Step) error {
	if g.marker.Exists() {
		logging.Debug("Skipping %s: marker %s already present", g.name, g.marker.Path())
		return nil
	}

	logging.Info("Running one-time %s", g.name)
	if err := step(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSetupFailed, g.name, err)
	}

	// Marker creation is deliberately the last action so a crash between the
	// step and this point retries the (idempotent) step rather than silently
	// skipping it forever.
	if err := g.marker.Create(); err != nil {
		return err
	}

	logging.Success("Completed one-time %s", g.name)
	return nil
}
