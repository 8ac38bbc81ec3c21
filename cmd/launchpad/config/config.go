// Package config provides configuration management for the Launchpad launcher.
//
// This package implements the complete configuration system for the launchpad
// binary including the application directory, bundled runtime layout, persisted
// state file naming, and logging options. It provides centralized configuration
// state read once at startup and passed explicitly to the launch flow, rather
// than files and environment re-read ad hoc throughout the run.
//
// CONFIGURATION SOURCES, in precedence order:
//
//   - Command line flags: explicit operator overrides, always win
//   - launchpad.yaml: optional per-installation file beside the executable
//   - Built-in defaults: the conventional bundled-app directory layout
//
// The YAML file is merged only into fields the operator did not set via flags,
// mirroring the explicit-override tracking used for flag/env layering in other
// tools: user intent beats installation defaults beats built-ins.
//
// LAYOUT MODEL:
// Every asset and state file path is relative to the application directory
// (by default the directory containing the launcher executable). This keeps
// installations relocatable: moving the directory moves the identifier file,
// setup marker, runtime, and application together.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	defaults "github.com/auditworks/launchpad/internal/config"
)

// Config holds all launcher configuration values. YAML tags cover the fields
// an installation may pin in launchpad.yaml; purely operational fields
// (AppDir, ConfigFile) are flag-only.
type Config struct {
	AppDir     string `yaml:"-"`        // Application directory (flag only, defaults to executable dir)
	ConfigFile string `yaml:"-"`        // Path of the YAML config file (flag only)
	AppName    string `yaml:"app_name"` // Display name used in logs and the banner

	RuntimeDir    string   `yaml:"runtime_dir"`     // Bundled runtime directory, relative to AppDir
	Interpreter   string   `yaml:"interpreter"`     // Runtime entry executable ("" = platform default)
	Entry         string   `yaml:"entry"`           // Application entry script
	PathFixScript string   `yaml:"path_fix_script"` // One-time path-fix utility ("" = disabled)
	PathFixArgs   []string `yaml:"path_fix_args"`   // Extra arguments for the path-fix utility
	SiteArchive   string   `yaml:"site_archive"`    // Optional site asset archive ("" = disabled)

	DeviceIDFile    string `yaml:"device_id_file"`    // Device identifier file name
	SetupMarkerFile string `yaml:"setup_marker_file"` // One-time setup marker file name

	LogLevel string `yaml:"log_level"` // Log level: DEBUG, INFO, WARN, ERROR
	LogFile  string `yaml:"log_file"`  // Redirect all logs to this file ("" = console)
	NoPause  bool   `yaml:"no_pause"`  // Skip the operator acknowledgment pause
}

// defaultConfigFile is the per-installation YAML file name looked up in the
// application directory when --config is not given.
const defaultConfigFile = defaults.DefaultConfigFile

// Global configuration instance
var Global Config

// ApplyDefaults fills Global with the built-in defaults. Called before flag
// registration so flag default values and config defaults stay in one place.
func ApplyDefaults() {
	Global = Config{
		AppName:         "application",
		RuntimeDir:      defaults.DefaultRuntimeDir,
		Entry:           defaults.DefaultEntryScript,
		SiteArchive:     defaults.DefaultSiteArchive,
		DeviceIDFile:    defaults.DefaultDeviceIDFile,
		SetupMarkerFile: defaults.DefaultSetupMarkerFile,
		LogLevel:        defaults.DefaultLogLevel,
	}
}

// MergeFile loads the YAML config file at path and merges it into Global,
// skipping any field the operator explicitly set via flags (reported by
// flagChanged, keyed by flag name). A missing file is not an error since the
// file is optional.
func MergeFile(path string, flagChanged func(name string) bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	mergeString := func(flag string, dst *string, src string) {
		if src != "" && !flagChanged(flag) {
			*dst = src
		}
	}

	mergeString("app-name", &Global.AppName, file.AppName)
	mergeString("runtime-dir", &Global.RuntimeDir, file.RuntimeDir)
	mergeString("interpreter", &Global.Interpreter, file.Interpreter)
	mergeString("entry", &Global.Entry, file.Entry)
	mergeString("path-fix", &Global.PathFixScript, file.PathFixScript)
	mergeString("site-archive", &Global.SiteArchive, file.SiteArchive)
	mergeString("device-id-file", &Global.DeviceIDFile, file.DeviceIDFile)
	mergeString("setup-marker", &Global.SetupMarkerFile, file.SetupMarkerFile)
	mergeString("log-level", &Global.LogLevel, file.LogLevel)
	mergeString("log-file", &Global.LogFile, file.LogFile)

	if len(file.PathFixArgs) > 0 && len(Global.PathFixArgs) == 0 {
		Global.PathFixArgs = file.PathFixArgs
	}
	if file.NoPause && !flagChanged("no-pause") {
		Global.NoPause = true
	}

	return nil
}
