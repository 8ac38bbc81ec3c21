package utils

import (
	"regexp"
	"testing"
)

// TestGenerateID verifies generated identifiers are well-formed hex strings
func TestGenerateID(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		if err != nil {
			t.Fatalf("GenerateID() returned error: %v", err)
		}
		if !hexPattern.MatchString(id) {
			t.Fatalf("GenerateID() = %q, expected 12 lowercase hex characters", id)
		}
		if seen[id] {
			t.Fatalf("GenerateID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

// TestTruncateIDSafe tests defensive ID truncation for display
func TestTruncateIDSafe(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "shorter than limit",
			input:    "abc123",
			expected: "abc123",
		},
		{
			name:     "exactly at limit",
			input:    "abcdef123456",
			expected: "abcdef123456",
		},
		{
			name:     "longer than limit",
			input:    "4C4C4544-0042-3510-8054-B4C04F525332",
			expected: "4C4C4544-004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateIDSafe(tt.input); got != tt.expected {
				t.Errorf("TruncateIDSafe(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
