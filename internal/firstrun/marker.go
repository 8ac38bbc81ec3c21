// Package firstrun implements the idempotent first-run initialization gate:
// one-time setup actions guarded by a presence-only marker file.
//
// The marker encodes a single boolean: "setup already completed". It is
// created only after the guarded step succeeds, so a crash or failure
// mid-setup leaves the marker absent and the step is retried on the next run
// (at-least-once semantics, never exactly-once). Content of the marker file
// is irrelevant; only its existence matters.
//
// GATE BEHAVIOR:
//   - Marker present: the step is not invoked at all, even if it would fail
//   - Marker absent:  the step runs; success creates the marker, failure does not
//
// Marker creation uses exclusive-create semantics so the gate stays correct
// if two launcher instances are ever started at once, even though the normal
// deployment is a single operator running one instance.
package firstrun

import (
	"fmt"
	"os"
	"time"
)

// Marker is a sentinel file whose existence signals a completed one-time
// action.
type Marker struct {
	path string
}

// NewMarker creates a marker handle for the given path. The file itself is
// not touched until Create is called.
func NewMarker(path string) *Marker {
	return &Marker{path: path}
}

// Path returns the marker file location.
func (m *Marker) Path() string {
	return m.path
}

// Exists reports whether the marker file is present.
func (m *Marker) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Create writes the marker file with exclusive-create semantics. A marker
// that already exists counts as success since the encoded state ("done") is
// already true. The timestamp content is informational only.
func (m *Marker) Create() error {
	f, err := os.OpenFile(m.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("failed to create marker file %s: %w", m.path, err)
	}
	defer f.Close()

	// Content is irrelevant to the gate; a timestamp helps operators tell
	// when setup ran.
	fmt.Fprintln(f, time.Now().UTC().Format(time.RFC3339))
	return nil
}

// Remove deletes the marker so the guarded step runs again on the next
// invocation. Removing an absent marker is not an error.
func (m *Marker) Remove() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove marker file %s: %w", m.path, err)
	}
	return nil
}
