package probe

import (
	"context"

	"github.com/rigup/rigup/internal/ports"
)

// NpmProbe checks globally installed npm packages.
type NpmProbe struct {
	runner ports.CommandRunner
}

// NewNpmProbe creates an NpmProbe.
func NewNpmProbe(runner ports.CommandRunner) *NpmProbe {
	return &NpmProbe{runner: runner}
}

// Installed reports whether the package is installed globally. `npm ls -g`
// exits non-zero when the package is absent.
func (p *NpmProbe) Installed(ctx context.Context, name string) (bool, error) {
	result, err := p.runner.Run(ctx, "npm", "ls", "-g", "--depth=0", name)
	if err != nil {
		return false, err
	}
	return result.Success(), nil
}

var _ Probe = (*NpmProbe)(nil)
