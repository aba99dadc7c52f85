// Package ports defines the interfaces rigup uses to talk to the machine.
// Adapters provide real implementations; tests substitute doubles.
package ports

import (
	"context"
	"strings"
)

// CommandResult captures the observable outcome of one command invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with code 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandCall records a single command invocation for inspection in tests.
type CommandCall struct {
	Command string
	Args    []string
}

// String renders the call the way it would appear on a shell prompt.
func (c CommandCall) String() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Args, " ")
}

// CommandRunner executes external commands. Every package-manager query and
// install in rigup goes through this interface, so a run can be replayed
// against a fake without touching the machine.
type CommandRunner interface {
	Run(ctx context.Context, command string, args ...string) (CommandResult, error)
}
