// Package command provides the real command execution adapter.
package command

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/rigup/rigup/internal/ports"
)

// RealRunner executes commands on the host through os/exec.
type RealRunner struct{}

// NewRealRunner creates a RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr. A non-zero exit is
// reported through the result's ExitCode, not as an error; errors are
// reserved for failures to start the command at all (missing binary,
// cancelled context).
func (r *RealRunner) Run(ctx context.Context, command string, args ...string) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, runErr
	}

	return result, nil
}

var _ ports.CommandRunner = (*RealRunner)(nil)
