// Package script provides the curl-pipe-to-shell installer step: download
// an official install script over https and run it, guarded by a
// binary-on-PATH check so reruns skip the download entirely.
package script

import (
	"fmt"
	"strings"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/probe"
	"github.com/rigup/rigup/internal/validation"
)

// InstallerStep runs a vendor install script when its binary is missing.
type InstallerStep struct {
	binary   string
	url      string
	id       step.ID
	severity step.Severity
	probe    probe.Probe
	runner   ports.CommandRunner
}

// NewInstallerStep creates a step that installs binary by piping the
// script at url into sh.
func NewInstallerStep(binary, url string, runner ports.CommandRunner) *InstallerStep {
	return &InstallerStep{
		binary:   binary,
		url:      url,
		id:       step.MustNewID("script:installer:" + binary),
		severity: step.SeverityRequired,
		probe:    probe.NewPathProbe(runner),
		runner:   runner,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *InstallerStep) WithSeverity(severity step.Severity) *InstallerStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *InstallerStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *InstallerStep) Severity() step.Severity {
	return s.severity
}

// Check looks for the binary on PATH.
func (s *InstallerStep) Check(ctx step.RunContext) (step.Status, error) {
	installed, err := s.probe.Installed(ctx.Context(), s.binary)
	if err != nil {
		return step.StatusUnknown, err
	}
	if installed {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply downloads and runs the install script.
func (s *InstallerStep) Apply(ctx step.RunContext) error {
	if err := validation.InstallerURL(s.url); err != nil {
		return err
	}

	pipeline := fmt.Sprintf("curl -fsSL %s | sh", s.url)
	result, err := s.runner.Run(ctx.Context(), "sh", "-c", pipeline)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("installer for %s failed: %s", s.binary, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *InstallerStep) Describe() string {
	return fmt.Sprintf("install %s from %s", s.binary, s.url)
}

var _ step.Step = (*InstallerStep)(nil)
