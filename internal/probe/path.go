package probe

import (
	"context"

	"github.com/rigup/rigup/internal/ports"
)

// PathProbe checks for a binary on PATH. It is the check behind
// curl-pipe-to-shell installers, which leave no package-manager record.
type PathProbe struct {
	runner ports.CommandRunner
}

// NewPathProbe creates a PathProbe.
func NewPathProbe(runner ports.CommandRunner) *PathProbe {
	return &PathProbe{runner: runner}
}

// Installed reports whether the named binary resolves on PATH.
// `command -v` is a shell builtin, so the lookup runs through sh. The name
// is passed as a positional parameter, never spliced into the script, so
// catalog-supplied names cannot carry shell syntax into the check.
func (p *PathProbe) Installed(ctx context.Context, name string) (bool, error) {
	result, err := p.runner.Run(ctx, "sh", "-c", `command -v "$1"`, "sh", name)
	if err != nil {
		return false, err
	}
	return result.Success(), nil
}

var _ Probe = (*PathProbe)(nil)
