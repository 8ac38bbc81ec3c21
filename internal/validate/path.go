// Package validate provides input validation utilities for Launchpad,
// ensuring configuration integrity before the launch flow runs.
//
// Implements validation rules for the relative asset paths the launcher is
// configured with. Prevents malformed paths from silently escaping the
// application directory or pointing at nothing.
//
// VALIDATION COVERAGE:
//   - Relative Paths: Format validation for runtime/entry/archive paths
//   - Existing Files: Presence checks for assets that must already be on disk
//
// Used by configuration validation and the doctor command so all entry points
// apply the same rules.

package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RelativePathFormat validates paths configured relative to the application
// directory. Rejects empty and absolute paths, and paths that climb out of
// the application directory with "..".
//
// Necessary because every persisted launcher file and bundled runtime asset
// is addressed relative to the directory the launcher executable lives in;
// a path escaping that directory indicates a misconfigured launchpad.yaml.
func RelativePathFormat(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}

	if filepath.IsAbs(path) {
		return fmt.Errorf("%s must be relative to the application directory, got absolute path '%s'", fieldName, path)
	}

	// Normalize before checking so "a/../../b" is caught as an escape
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%s '%s' escapes the application directory", fieldName, path)
	}

	return nil
}

// ExistingFile validates that a path exists and refers to a regular file.
// Returns a descriptive error distinguishing "missing" from "is a directory"
// so fatal asset errors tell the operator exactly what to fix.
func ExistingFile(path, fieldName string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found at '%s'", fieldName, path)
		}
		return fmt.Errorf("cannot access %s at '%s': %w", fieldName, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s at '%s' is a directory, expected a file", fieldName, path)
	}
	return nil
}

// ExistingDir validates that a path exists and refers to a directory.
// Used for the application and runtime directories during preflight checks.
func ExistingDir(path, fieldName string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found at '%s'", fieldName, path)
		}
		return fmt.Errorf("cannot access %s at '%s': %w", fieldName, path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s at '%s' is not a directory", fieldName, path)
	}
	return nil
}
