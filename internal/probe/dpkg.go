package probe

import (
	"context"
	"strings"

	"github.com/rigup/rigup/internal/ports"
)

// DpkgProbe checks Debian package state via dpkg-query.
type DpkgProbe struct {
	runner ports.CommandRunner
}

// NewDpkgProbe creates a DpkgProbe.
func NewDpkgProbe(runner ports.CommandRunner) *DpkgProbe {
	return &DpkgProbe{runner: runner}
}

// Installed reports whether the package is fully installed. dpkg-query
// exits non-zero for unknown packages; that is "not installed", not an
// error.
func (p *DpkgProbe) Installed(ctx context.Context, name string) (bool, error) {
	result, err := p.runner.Run(ctx, "dpkg-query", "-W", "-f=${db:Status-Status}", name)
	if err != nil {
		return false, err
	}
	if !result.Success() {
		return false, nil
	}
	return strings.TrimSpace(result.Stdout) == "installed", nil
}

var _ Probe = (*DpkgProbe)(nil)
