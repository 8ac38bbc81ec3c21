// Package launcher ties the device identifier gate, the one-time setup gate,
// and the child process launch into the single order-sensitive flow the
// operator sees as "starting the application".
//
// LAUNCH FLOW:
//  1. Asset preflight: the bundled interpreter and entry script must exist
//  2. Identifier gate: resolve the device identifier if not yet persisted
//  3. Setup gate: one-time site archive extraction and runtime path fixing
//  4. Launch: run the entry script with the bundled interpreter, stream its
//     output through the logging layer, and propagate its exit code
//
// A missing asset is fatal and operator-correctable (extract the runtime
// archive first); a failed setup step is fatal for this run but retried on
// the next one; a non-zero child exit is propagated distinctly and is not a
// launcher failure.
package launcher

import (
	"path/filepath"
	"runtime"
)

// Layout describes where the launcher's assets live. All paths except AppDir
// are relative to AppDir; the zero value of a path field means "feature not
// configured" where the field is optional.
type Layout struct {
	// AppDir is the application directory, normally the directory holding
	// the launcher executable.
	AppDir string

	// RuntimeDir is the bundled runtime's directory.
	RuntimeDir string

	// Interpreter is the runtime's entry executable. Empty selects the
	// platform default under RuntimeDir.
	Interpreter string

	// Entry is the application entry script handed to the interpreter.
	Entry string

	// PathFixScript is the runtime's path-fixing utility, run once by the
	// setup gate. Empty disables the path-fix step.
	PathFixScript string

	// PathFixArgs are extra arguments for the path-fix utility.
	PathFixArgs []string

	// SiteArchive is the optional compressed site asset archive extracted
	// once by the setup gate. Empty disables extraction.
	SiteArchive string
}

// DefaultInterpreter returns the conventional relative interpreter path for
// the current platform inside the given runtime directory. Bundled Python
// runtimes place the executable at the runtime root on Windows and under
// bin/ elsewhere.
func DefaultInterpreter(runtimeDir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(runtimeDir, "python.exe")
	}
	return filepath.Join(runtimeDir, "bin", "python3")
}

// InterpreterPath returns the absolute interpreter path, applying the
// platform default when none is configured.
func (l Layout) InterpreterPath() string {
	interp := l.Interpreter
	if interp == "" {
		interp = DefaultInterpreter(l.RuntimeDir)
	}
	return filepath.Join(l.AppDir, interp)
}

// EntryPath returns the absolute entry script path.
func (l Layout) EntryPath() string {
	return filepath.Join(l.AppDir, l.Entry)
}

// RuntimeDirPath returns the absolute runtime directory path.
func (l Layout) RuntimeDirPath() string {
	return filepath.Join(l.AppDir, l.RuntimeDir)
}

// PathFixPath returns the absolute path-fix script path, or "" when the
// path-fix step is not configured.
func (l Layout) PathFixPath() string {
	if l.PathFixScript == "" {
		return ""
	}
	return filepath.Join(l.AppDir, l.PathFixScript)
}

// SiteArchivePath returns the absolute site archive path, or "" when archive
// extraction is not configured.
func (l Layout) SiteArchivePath() string {
	if l.SiteArchive == "" {
		return ""
	}
	return filepath.Join(l.AppDir, l.SiteArchive)
}
