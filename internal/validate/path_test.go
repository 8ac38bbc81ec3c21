package validate

import (
	"os"
	"path/filepath"
	"testing"
)

// TestRelativePathFormat tests RelativePathFormat function
func TestRelativePathFormat(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		description string
	}{
		// Valid paths
		{
			name:        "simple file name",
			input:       "device_id.txt",
			expectError: false,
			description: "bare file name should be valid",
		},
		{
			name:        "nested relative path",
			input:       "runtime/python/python.exe",
			expectError: false,
			description: "nested relative path should be valid",
		},
		{
			name:        "dot-prefixed file",
			input:       ".setup-complete",
			expectError: false,
			description: "hidden marker file name should be valid",
		},
		{
			name:        "internal parent segment that stays inside",
			input:       "runtime/../app/main.py",
			expectError: false,
			description: "parent segment that normalizes inside the app dir should be valid",
		},

		// Invalid paths
		{
			name:        "empty path",
			input:       "",
			expectError: true,
			description: "empty path should be invalid",
		},
		{
			name:        "escaping parent path",
			input:       "../outside.txt",
			expectError: true,
			description: "path escaping the application directory should be invalid",
		},
		{
			name:        "deeply escaping path",
			input:       "runtime/../../outside.txt",
			expectError: true,
			description: "path that normalizes outside the application directory should be invalid",
		},
		{
			name:        "bare parent",
			input:       "..",
			expectError: true,
			description: "bare parent reference should be invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RelativePathFormat(tt.input, "test path")
			if tt.expectError && err == nil {
				t.Errorf("expected error for %s, got nil (%s)", tt.input, tt.description)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for %s: %v (%s)", tt.input, err, tt.description)
			}
		})
	}
}

// TestRelativePathFormatAbsolute tests absolute path rejection separately
// since absolute path syntax differs between platforms.
func TestRelativePathFormatAbsolute(t *testing.T) {
	abs, err := filepath.Abs("somewhere")
	if err != nil {
		t.Fatalf("failed to build absolute path: %v", err)
	}
	if err := RelativePathFormat(abs, "test path"); err == nil {
		t.Errorf("expected error for absolute path %s, got nil", abs)
	}
}

// TestExistingFile tests ExistingFile function
func TestExistingFile(t *testing.T) {
	dir := t.TempDir()

	filePath := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name        string
		input       string
		expectError bool
		description string
	}{
		{
			name:        "existing file",
			input:       filePath,
			expectError: false,
			description: "regular file should pass",
		},
		{
			name:        "missing file",
			input:       filepath.Join(dir, "absent.txt"),
			expectError: true,
			description: "missing file should fail",
		},
		{
			name:        "directory instead of file",
			input:       dir,
			expectError: true,
			description: "directory should fail the file check",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ExistingFile(tt.input, "test asset")
			if tt.expectError && err == nil {
				t.Errorf("expected error for %s, got nil (%s)", tt.input, tt.description)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error for %s: %v (%s)", tt.input, err, tt.description)
			}
		})
	}
}

// TestExistingDir tests ExistingDir function
func TestExistingDir(t *testing.T) {
	dir := t.TempDir()

	filePath := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if err := ExistingDir(dir, "test dir"); err != nil {
		t.Errorf("unexpected error for existing directory: %v", err)
	}
	if err := ExistingDir(filepath.Join(dir, "missing"), "test dir"); err == nil {
		t.Errorf("expected error for missing directory, got nil")
	}
	if err := ExistingDir(filePath, "test dir"); err == nil {
		t.Errorf("expected error for file passed as directory, got nil")
	}
}
