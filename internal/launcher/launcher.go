package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/auditworks/launchpad/internal/deviceid"
	"github.com/auditworks/launchpad/internal/firstrun"
	"github.com/auditworks/launchpad/internal/logging"
	"github.com/auditworks/launchpad/internal/utils"
	"github.com/auditworks/launchpad/internal/validate"
)

// ErrMissingAsset marks a fatal, operator-correctable condition: the bundled
// runtime or entry script is not where the configuration says it should be.
// Distinct from retryable setup failures since no amount of re-running fixes
// an absent runtime; the operator must extract or install the assets first.
var ErrMissingAsset = errors.New("required runtime asset missing")

// Launcher exit codes. The child's own exit code is propagated verbatim and
// therefore shares the numeric space; the launcher-specific codes below are
// chosen to stay out of the way of common application codes.
const (
	ExitSuccess      = 0
	ExitConfigError  = 2
	ExitMissingAsset = 3
	ExitSetupFailed  = 4
)

// SpawnFunc runs the interpreter with the given arguments in dir and returns
// the child's exit code. Injected so tests can observe launch decisions
// without executing real processes.
type SpawnFunc func(ctx context.Context, interpreter string, args []string, dir string) (int, error)

// Launcher owns the end-to-end launch flow for one invocation.
type Launcher struct {
	layout   Layout
	resolver *deviceid.Resolver
	gate     *firstrun.Gate
	appArgs  []string
	spawn    SpawnFunc
}

// New creates a launcher over the given layout and collaborators. appArgs are
// passed through to the application entry script after the entry path.
func New(layout Layout, resolver *deviceid.Resolver, gate *firstrun.Gate, appArgs []string) *Launcher {
	return &Launcher{
		layout:   layout,
		resolver: resolver,
		gate:     gate,
		appArgs:  appArgs,
		spawn:    spawnProcess,
	}
}

// SetSpawn replaces the process spawner. Test hook.
func (l *Launcher) SetSpawn(spawn SpawnFunc) {
	l.spawn = spawn
}

// Run executes the launch flow and returns the process exit code the
// launcher should terminate with. The error, when non-nil, has already been
// classified into the returned exit code; callers log it and exit.
//
// Steps are order-sensitive: the asset preflight runs BEFORE the identifier
// and setup gates so a missing runtime halts with no new side effects, and
// the setup gate runs before the launch so the application never starts
// against an unprepared runtime.
func (l *Launcher) Run(ctx context.Context) (int, error) {
	sessionID, err := utils.GenerateID()
	if err != nil {
		return ExitConfigError, err
	}
	logging.Info("Starting launch session %s", logging.FormatSessionID(sessionID))

	// Step 1: asset preflight. Runs before the identifier and setup gates so
	// a missing runtime halts with no new side effects at all.
	if err := l.Preflight(); err != nil {
		return ExitMissingAsset, err
	}

	// Step 2: device identifier gate. Resolve persists on first run and
	// short-circuits on every later one.
	id, err := l.resolver.Resolve(ctx)
	if err != nil {
		return ExitConfigError, fmt.Errorf("failed to resolve device identifier: %w", err)
	}
	logging.Debug("Launch session %s on device %s", sessionID, logging.FormatDeviceID(id))

	// Step 3: one-time setup gate.
	if err := l.gate.RunOnce(l.setupStep(ctx)); err != nil {
		if errors.Is(err, firstrun.ErrSetupFailed) {
			return ExitSetupFailed, err
		}
		return ExitConfigError, err
	}

	// Step 4: launch and propagate the child's exit code.
	args := append([]string{l.layout.EntryPath()}, l.appArgs...)
	code, err := l.spawn(ctx, l.layout.InterpreterPath(), args, l.layout.AppDir)
	if err != nil {
		return ExitConfigError, fmt.Errorf("failed to start application: %w", err)
	}
	if code != ExitSuccess {
		// The application failing is not a launcher failure; report it and
		// pass the code through unchanged.
		logging.Warn("Application exited with code %d", code)
		return code, nil
	}

	logging.Success("Application exited normally (session %s)", logging.FormatSessionID(sessionID))
	return ExitSuccess, nil
}

// Preflight verifies the bundled runtime's entry executable and the
// application entry script exist at their configured paths. Returns an error
// wrapping ErrMissingAsset when either is absent.
func (l *Launcher) Preflight() error {
	if err := validate.ExistingFile(l.layout.InterpreterPath(), "runtime interpreter"); err != nil {
		return fmt.Errorf("%w: %v (extract or install the bundled runtime first)", ErrMissingAsset, err)
	}
	if err := validate.ExistingFile(l.layout.EntryPath(), "application entry script"); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingAsset, err)
	}
	return nil
}

// setupStep builds the one-time setup action for the gate: optional site
// archive extraction followed by the runtime's path-fix utility. Both parts
// are idempotent so the at-least-once retry semantics of the gate are safe.
func (l *Launcher) setupStep(ctx context.Context) firstrun.Step {
	return func() error {
		if archive := l.layout.SiteArchivePath(); archive != "" {
			if _, err := firstrun.ExtractSiteArchive(archive, l.layout.RuntimeDirPath()); err != nil {
				return err
			}
		}

		fix := l.layout.PathFixPath()
		if fix == "" {
			logging.Debug("No path-fix script configured, skipping")
			return nil
		}

		logging.Info("Fixing runtime paths with %s", fix)
		args := append([]string{fix}, l.layout.PathFixArgs...)
		cmd := exec.CommandContext(ctx, l.layout.InterpreterPath(), args...)
		cmd.Dir = l.layout.AppDir
		cmd.Stdout = logging.NewLevelWriter("INFO", "(setup)")
		cmd.Stderr = logging.NewLevelWriter("WARN", "(setup)")
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("path-fix tool failed: %w", err)
		}
		return nil
	}
}

// spawnProcess is the real SpawnFunc: runs the interpreter as a child
// process with the operator's stdin attached and both output streams routed
// through the unified logging pipeline.
//
// A child that started and exited non-zero is reported via the exit code
// with a nil error; an error return means the process could not be started
// at all.
func spawnProcess(ctx context.Context, interpreter string, args []string, dir string) (int, error) {
	cmd := exec.CommandContext(ctx, interpreter, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = logging.NewLevelWriter("INFO", "(app)")
	cmd.Stderr = logging.NewLevelWriter("WARN", "(app)")

	logging.Info("Launching %s %s", interpreter, args[0])
	err := cmd.Run()
	if err == nil {
		return ExitSuccess, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return ExitConfigError, err
}
