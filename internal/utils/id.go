// Package utils provides common utility functions for the Launchpad launcher.
//
// This file implements unified ID generation functionality used across the
// launcher for creating unique identifiers. Provides consistent ID formats for
// launch sessions while eliminating code duplication.
//
// ID GENERATION STRATEGY:
// Uses crypto/rand for high-quality random data generation to ensure
// uniqueness and prevent collisions. All IDs follow the same 12-character
// hexadecimal format for consistency and readability.
//
// USAGE PATTERNS:
// - Session IDs: Unique per-launch identification for log correlation
// - Future extensions for other launcher resources
//
// Note the device identifier is NOT generated here: it is derived from
// hardware by the deviceid package and only falls back to a random UUID when
// every hardware provider comes up empty.

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateID creates a unique 12-character hex identifier for launcher resources.
// Uses crypto/rand to ensure uniqueness and prevent collisions.
//
// Essential for log correlation where each launch needs to be uniquely
// referenced. The 12-character format balances uniqueness with human
// readability in logs and interfaces.
//
// Returns format: "a1b2c3d4e5f6" (12 hex characters, similar to Docker short IDs)
func GenerateID() (string, error) {
	// Generate 6 bytes of random data (12 hex characters)
	bytes := make([]byte, 6)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// TruncateIDSafe shortens an identifier to 12 characters for log readability.
// Returns the identifier unchanged when it is already 12 characters or less,
// so short and empty values pass through safely.
func TruncateIDSafe(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12]
}
