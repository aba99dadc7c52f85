// Package app wires the adapters, catalog, and run engine into the rigup
// application.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/rigup/rigup/internal/adapters/command"
	"github.com/rigup/rigup/internal/adapters/filesystem"
	"github.com/rigup/rigup/internal/adapters/logging"
	"github.com/rigup/rigup/internal/catalog"
	"github.com/rigup/rigup/internal/domain/preflight"
	"github.com/rigup/rigup/internal/domain/run"
	"github.com/rigup/rigup/internal/platform"
	"github.com/rigup/rigup/internal/ports"
)

// Options select what one invocation runs and how.
type Options struct {
	DryRun      bool
	Verify      bool
	Minimal     bool
	Skip        []string
	CatalogPath string
	LogPath     string
	Verbose     bool
	Color       bool
}

// Rigup is the application root: it owns the collaborators every step
// needs and drives one provisioning run end to end.
type Rigup struct {
	out      io.Writer
	runner   ports.CommandRunner
	fs       ports.FileSystem
	platform *platform.Platform
}

// New creates a Rigup against the real machine.
func New(out io.Writer) *Rigup {
	return &Rigup{
		out:      out,
		runner:   command.NewRealRunner(),
		fs:       filesystem.NewRealFileSystem(),
		platform: platform.Detect(),
	}
}

// WithRunner returns a copy using the given command runner.
func (r *Rigup) WithRunner(runner ports.CommandRunner) *Rigup {
	copied := *r
	copied.runner = runner
	return &copied
}

// WithFileSystem returns a copy using the given file system.
func (r *Rigup) WithFileSystem(fs ports.FileSystem) *Rigup {
	copied := *r
	copied.fs = fs
	return &copied
}

// WithPlatform returns a copy targeting the given platform.
func (r *Rigup) WithPlatform(p *platform.Platform) *Rigup {
	copied := *r
	copied.platform = p
	return &copied
}

// Preflight returns the fatal pre-run checks for this platform, in the
// order they are evaluated.
func (r *Rigup) Preflight() []preflight.Check {
	checks := []preflight.Check{
		preflight.NotRoot(),
		preflight.SupportedOS(string(r.platform.OS())),
		preflight.WritableHome(),
	}
	if r.platform.IsMacOS() {
		checks = append(checks, preflight.CommandOnPath("brew"))
	} else {
		checks = append(checks, preflight.CommandOnPath("apt-get"))
	}
	return checks
}

// Catalog resolves the step catalog: the user's file when given,
// otherwise the built-in catalog for the detected platform.
func (r *Rigup) Catalog(opts Options) (*catalog.Catalog, error) {
	if opts.CatalogPath != "" {
		return catalog.LoadFile(opts.CatalogPath, r.runner, r.fs)
	}
	if r.platform.IsMacOS() {
		return catalog.BuiltinDarwin(r.runner, r.fs), nil
	}
	return catalog.BuiltinLinux(r.runner, r.fs), nil
}

// Run performs one full provisioning run: pre-flight, then every selected
// step in order, then the summary. Step failures are reported, not
// returned; the only error returned is a pre-flight or setup failure.
func (r *Rigup) Run(ctx context.Context, opts Options) (*run.Report, []run.StepResult, error) {
	if err := preflight.RunAll(ctx, r.Preflight()); err != nil {
		return nil, nil, err
	}

	cat, err := r.Catalog(opts)
	if err != nil {
		return nil, nil, err
	}

	steps := cat.Steps(catalog.Selection{Minimal: opts.Minimal, Skip: opts.Skip})

	logPath := opts.LogPath
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}

	level := ports.LevelInfo
	if opts.Verbose {
		level = ports.LevelDebug
	}

	runID := uuid.NewString()
	logger := logging.NewTeeLogger(
		logging.NewConsoleLogger(logging.WithOutput(r.out), logging.WithLevel(level)),
		logging.NewFileLogger(ports.ExpandPath(logPath)),
	).With(ports.F("run", runID))

	logger.Info(ctx, "starting run",
		ports.F("platform", r.platform.String()),
		ports.F("selection", DescribeSelection(opts)),
		ports.F("steps", len(steps)),
		ports.F("dry_run", opts.DryRun))

	runner := run.NewRunner().
		WithDryRun(opts.DryRun).
		WithVerify(opts.Verify).
		WithLogger(logger)

	report, results := runner.Execute(ctx, steps)

	logger.Info(ctx, "run finished",
		ports.F("attempted", len(report.Attempted())),
		ports.F("warnings", len(report.Warnings())),
		ports.F("errors", len(report.Errors())))

	r.printSummary(report, results, opts)
	return report, results, nil
}

func (r *Rigup) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
