// Package config handles configuration validation for the Launchpad launcher.
//
// This package provides validation logic for all launcher configuration
// parameters before the launch flow starts. Validation ensures a predictable
// run by:
//   - Normalizing the application directory (defaults to the executable's dir)
//   - Enforcing that all asset and state paths stay inside the application directory
//   - Validating the log level against the canonical level set
//
// The validation process transforms raw flag/file values into validated,
// normalized forms ready for the launch flow. This surfaces misconfiguration
// as a clear startup error instead of a confusing mid-launch failure.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/auditworks/launchpad/internal/logging"
	"github.com/auditworks/launchpad/internal/validate"
)

// InitializeConfig initializes configuration from environment variables.
// This runs after flags and config file merging so the environment acts as a
// final development-time override.
func InitializeConfig() {
	// DEBUG environment variable override for development
	if os.Getenv("DEBUG") == "true" {
		Global.LogLevel = "DEBUG"
		logging.Info("DEBUG environment variable detected, setting log level to DEBUG")
	}
}

// ResolveAppDir defaults the application directory to the directory holding
// the launcher executable: persisted launcher state lives beside the
// launcher. Already-set values (the --app-dir flag) are left alone, so this
// is safe to call more than once.
func ResolveAppDir() error {
	if Global.AppDir != "" {
		return nil
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate launcher executable: %w", err)
	}
	Global.AppDir = filepath.Dir(exe)
	return nil
}

// ConfigFilePath returns the effective YAML config file path: the --config
// flag when given, otherwise the default file in the application directory.
func ConfigFilePath() string {
	if Global.ConfigFile != "" {
		return Global.ConfigFile
	}
	return filepath.Join(Global.AppDir, defaultConfigFile)
}

// ValidateConfig performs validation and normalization of all launcher
// configuration parameters before the launch flow starts.
//
// This function orchestrates the complete validation workflow:
//   - Application directory resolution and existence check
//   - Log level validation against the canonical level set
//   - Relative-path validation for every asset and state file path
//
// Returns error for any validation failure with descriptive context to aid
// the operator in fixing launchpad.yaml or the flags.
func ValidateConfig() error {
	if err := ResolveAppDir(); err != nil {
		return err
	}
	if err := validate.ExistingDir(Global.AppDir, "application directory"); err != nil {
		logging.Error("Invalid application directory: %v", err)
		return err
	}

	// Normalize and validate the log level
	Global.LogLevel = strings.ToUpper(Global.LogLevel)
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s' (must be DEBUG, INFO, WARN, or ERROR)", Global.LogLevel)
		return err
	}

	// Required relative paths
	required := []struct {
		value string
		name  string
	}{
		{Global.RuntimeDir, "runtime directory"},
		{Global.Entry, "entry script"},
		{Global.DeviceIDFile, "device identifier file"},
		{Global.SetupMarkerFile, "setup marker file"},
	}
	for _, field := range required {
		if err := validate.ValidateRequiredString(field.value, field.name); err != nil {
			logging.Error("Configuration error: %v", err)
			return err
		}
		if err := validate.RelativePathFormat(field.value, field.name); err != nil {
			logging.Error("Configuration error: %v", err)
			return err
		}
	}

	// Optional relative paths, validated only when set
	optional := []struct {
		value string
		name  string
	}{
		{Global.Interpreter, "interpreter"},
		{Global.PathFixScript, "path-fix script"},
		{Global.SiteArchive, "site archive"},
	}
	for _, field := range optional {
		if field.value == "" {
			continue
		}
		if err := validate.RelativePathFormat(field.value, field.name); err != nil {
			logging.Error("Configuration error: %v", err)
			return err
		}
	}

	return nil
}
