// Package deviceid derives a locally-unique device identifier from hardware
// information and persists it beside the launcher for reuse on every later run.
//
// Implements an explicit provider chain over the OS-level hardware identity
// sources, queried in documented priority order:
//
//  1. System product UUID (SMBIOS)
//  2. BIOS serial number
//  3. First usable network interface MAC address
//
// Each provider is a purely local query that may legitimately come up empty
// (virtual machines, locked-down hosts, stripped firmware), in which case the
// chain falls through to the next tier. When every tier is empty the resolver
// generates a random UUID rather than persisting an empty identifier, and
// says so loudly in the logs.
//
// PROVIDER CONTRACT:
// Probe returns the raw value or an error; both an error and an empty value
// count as a miss and advance the chain. Raw values are sanitized centrally
// (whitespace trimmed, quote characters stripped, vendor placeholder values
// rejected) so individual providers stay thin wrappers over their OS query.
package deviceid

import (
	"context"
	"strings"
)

// Provider is a single hardware identity source. Implementations wrap one
// OS-level query and degrade to an empty value instead of failing hard when
// the underlying source is unavailable.
type Provider interface {
	// Name identifies the provider in logs and doctor output.
	Name() string

	// Probe queries the underlying identity source. An empty string with a
	// nil error is a valid "source has nothing" result.
	Probe(ctx context.Context) (string, error)
}

// providerFunc adapts a plain function to the Provider interface, keeping
// platform provider files free of one-method struct boilerplate.
type providerFunc struct {
	name string
	fn   func(ctx context.Context) (string, error)
}

func (p providerFunc) Name() string { return p.name }

func (p providerFunc) Probe(ctx context.Context) (string, error) { return p.fn(ctx) }

// NewProvider wraps a probe function as a named Provider. Exported so tests
// and callers can assemble custom chains without depending on the platform
// providers.
func NewProvider(name string, fn func(ctx context.Context) (string, error)) Provider {
	return providerFunc{name: name, fn: fn}
}

// placeholderValues are vendor strings that look like identifiers but carry
// no identity. Compared case-insensitively after sanitization.
var placeholderValues = map[string]bool{
	"to be filled by o.e.m.":               true,
	"default string":                       true,
	"none":                                 true,
	"00000000-0000-0000-0000-000000000000": true,
	"ffffffff-ffff-ffff-ffff-ffffffffffff": true,
}

// sanitize normalizes a raw provider value: trims surrounding whitespace,
// strips all quote characters (the MAC enumeration reports quoted values on
// some systems), and rejects known vendor placeholders by returning "".
func sanitize(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.ReplaceAll(value, `"`, "")
	value = strings.TrimSpace(value)

	if placeholderValues[strings.ToLower(value)] {
		return ""
	}
	return value
}

// firstDataRow extracts the first non-empty data row from tabular command
// output, skipping the leading header row. Shared by the platform providers
// that shell out to tools reporting "Header\nvalue" shaped output.
func firstDataRow(output string) string {
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		if i == 0 {
			continue // header row
		}
		if value := strings.TrimSpace(line); value != "" {
			return value
		}
	}
	return ""
}
