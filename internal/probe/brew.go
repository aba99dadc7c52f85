package probe

import (
	"context"

	"github.com/rigup/rigup/internal/ports"
)

// BrewProbe checks Homebrew formula state via `brew list`.
type BrewProbe struct {
	runner ports.CommandRunner
	cask   bool
}

// NewBrewProbe creates a probe for formulae.
func NewBrewProbe(runner ports.CommandRunner) *BrewProbe {
	return &BrewProbe{runner: runner}
}

// NewBrewCaskProbe creates a probe for casks.
func NewBrewCaskProbe(runner ports.CommandRunner) *BrewProbe {
	return &BrewProbe{runner: runner, cask: true}
}

// Installed reports whether the formula or cask is installed. A non-zero
// exit from `brew list <name>` means not installed.
func (p *BrewProbe) Installed(ctx context.Context, name string) (bool, error) {
	args := []string{"list"}
	if p.cask {
		args = append(args, "--cask")
	}
	args = append(args, name)

	result, err := p.runner.Run(ctx, "brew", args...)
	if err != nil {
		return false, err
	}
	return result.Success(), nil
}

var _ Probe = (*BrewProbe)(nil)
