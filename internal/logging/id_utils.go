// Package logging provides ID formatting utilities for consistent identifier
// display across all logging contexts in the Launchpad launcher.
//
// Implements intelligent ID truncation that preserves full identifiers in
// debug contexts while providing user-friendly short IDs in info/warning
// contexts, improving log readability without sacrificing traceability when
// detailed debugging is needed.
//
// ID FORMATTING STRATEGY:
//   - Debug logs: Full identifiers for complete traceability
//   - Info/Warn/Error/Success logs: Truncated 12-character IDs for readability
//
// USAGE PATTERNS:
//   - FormatDeviceID: Format device identifiers for logging with context-aware truncation
//   - FormatSessionID: Format launch session IDs for logging with context-aware truncation
//   - FormatID: Generic ID formatting for any launcher resource
package logging

import (
	"github.com/auditworks/launchpad/internal/utils"
)

// FormatID formats an ID for logging based on the current log level context.
// Returns the full identifier for debug logging to ensure complete
// traceability during troubleshooting, while returning a truncated
// 12-character ID for other log levels to improve readability.
func FormatID(id string) string {
	// If debug level is enabled, show full IDs for complete traceability
	if DebugEnabled() {
		return id
	}

	// For info/warn/error contexts, use truncated IDs for readability
	return utils.TruncateIDSafe(id)
}

// FormatDeviceID formats a device identifier for logging with context-aware
// truncation. Provides a semantic wrapper around FormatID specifically for
// device identifiers, which may be full hardware UUIDs.
//
// Usage: logging.Info("Resolved device identifier %s", logging.FormatDeviceID(id))
func FormatDeviceID(id string) string {
	return FormatID(id)
}

// FormatSessionID formats a launch session ID for logging with context-aware
// truncation. Provides a semantic wrapper around FormatID specifically for
// per-launch session identifiers.
//
// Usage: logging.Info("Starting launch session %s", logging.FormatSessionID(sessionID))
func FormatSessionID(id string) string {
	return FormatID(id)
}
