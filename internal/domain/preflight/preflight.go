// Package preflight holds the fatal pre-run validations. Unlike step
// failures, a pre-flight failure aborts the whole run before any step's
// check or apply is invoked.
package preflight

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Check is a single pre-flight validation.
type Check struct {
	// Name identifies the check in error output.
	Name string
	// Probe returns nil when the precondition holds.
	Probe func(ctx context.Context) error
}

// Error is the fatal error produced when a pre-flight check fails.
// It carries the check name so the CLI can report which precondition
// was violated.
type Error struct {
	Check string
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pre-flight check %q failed: %v", e.Check, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// RunAll evaluates checks in order and returns an *Error for the first
// failure. All checks pass when it returns nil.
func RunAll(ctx context.Context, checks []Check) error {
	for _, c := range checks {
		if err := c.Probe(ctx); err != nil {
			return &Error{Check: c.Name, Err: err}
		}
	}
	return nil
}

// NotRoot fails when the process runs as a privileged account. Provisioning
// escalates per command via sudo; running the whole tool as root would
// scatter root-owned files through the user's home directory.
func NotRoot() Check {
	return NotRootFrom(os.Geteuid)
}

// NotRootFrom is NotRoot with an injectable euid source for tests.
func NotRootFrom(euid func() int) Check {
	return Check{
		Name: "not-root",
		Probe: func(_ context.Context) error {
			if euid() == 0 {
				return fmt.Errorf("must not run as root")
			}
			return nil
		},
	}
}

// SupportedOS fails unless goos is one of the supported operating systems.
func SupportedOS(goos string) Check {
	return Check{
		Name: "supported-os",
		Probe: func(_ context.Context) error {
			switch goos {
			case "linux", "darwin":
				return nil
			}
			return fmt.Errorf("unsupported operating system %q", goos)
		},
	}
}

// CommandOnPath fails unless the named command resolves on PATH. Used for
// the required package manager (apt-get on Linux, brew on macOS).
func CommandOnPath(name string) Check {
	return CommandOnPathFrom(name, exec.LookPath)
}

// CommandOnPathFrom is CommandOnPath with an injectable lookup for tests.
func CommandOnPathFrom(name string, lookPath func(string) (string, error)) Check {
	return Check{
		Name: "command-" + name,
		Probe: func(_ context.Context) error {
			if _, err := lookPath(name); err != nil {
				return fmt.Errorf("required command %q not found on PATH", name)
			}
			return nil
		},
	}
}

// WritableHome fails when the invoking user's home directory cannot be
// resolved or written. The run log and every dotfile edit land there.
func WritableHome() Check {
	return Check{
		Name: "writable-home",
		Probe: func(_ context.Context) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("cannot resolve home directory: %w", err)
			}
			probe, err := os.CreateTemp(home, ".rigup-preflight-*")
			if err != nil {
				return fmt.Errorf("home directory %s is not writable: %w", home, err)
			}
			name := probe.Name()
			_ = probe.Close()
			_ = os.Remove(name)
			return nil
		},
	}
}
