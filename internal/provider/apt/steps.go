// Package apt provides provisioning steps for Debian-based systems.
package apt

import (
	"fmt"
	"strings"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/probe"
	"github.com/rigup/rigup/internal/validation"
)

// PackageStep installs one apt package.
type PackageStep struct {
	name     string
	id       step.ID
	severity step.Severity
	probe    probe.Probe
	runner   ports.CommandRunner
}

// NewPackageStep creates a step that installs name via apt-get.
func NewPackageStep(name string, runner ports.CommandRunner) *PackageStep {
	return &PackageStep{
		name:     name,
		id:       step.MustNewID("apt:package:" + name),
		severity: step.SeverityRequired,
		probe:    probe.NewDpkgProbe(runner),
		runner:   runner,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *PackageStep) WithSeverity(severity step.Severity) *PackageStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *PackageStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *PackageStep) Severity() step.Severity {
	return s.severity
}

// Check queries dpkg for the package's install state.
func (s *PackageStep) Check(ctx step.RunContext) (step.Status, error) {
	installed, err := s.probe.Installed(ctx.Context(), s.name)
	if err != nil {
		return step.StatusUnknown, err
	}
	if installed {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply installs the package with apt-get.
func (s *PackageStep) Apply(ctx step.RunContext) error {
	if err := validation.PackageName(s.name); err != nil {
		return err
	}

	result, err := s.runner.Run(ctx.Context(), "sudo", "apt-get", "install", "-y", s.name)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("apt-get install %s failed: %s", s.name, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *PackageStep) Describe() string {
	return "install apt package " + s.name
}

var _ step.Step = (*PackageStep)(nil)

// PPAStep adds a Personal Package Archive to the apt sources.
type PPAStep struct {
	ppa      string
	id       step.ID
	severity step.Severity
	runner   ports.CommandRunner
}

// NewPPAStep creates a step that registers the given ppa:owner/name source.
func NewPPAStep(ppa string, runner ports.CommandRunner) *PPAStep {
	sanitized := strings.ReplaceAll(ppa, ":", "-")
	return &PPAStep{
		ppa:      ppa,
		id:       step.MustNewID("apt:ppa:" + sanitized),
		severity: step.SeverityRequired,
		runner:   runner,
	}
}

// ID returns the step identifier.
func (s *PPAStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *PPAStep) Severity() step.Severity {
	return s.severity
}

// Check looks for the PPA in the apt policy output.
func (s *PPAStep) Check(ctx step.RunContext) (step.Status, error) {
	result, err := s.runner.Run(ctx.Context(), "apt-cache", "policy")
	if err != nil {
		return step.StatusUnknown, err
	}

	ppaPath := strings.TrimPrefix(s.ppa, "ppa:")
	if strings.Contains(result.Stdout, ppaPath) {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply registers the PPA.
func (s *PPAStep) Apply(ctx step.RunContext) error {
	if err := validation.PPA(s.ppa); err != nil {
		return err
	}

	result, err := s.runner.Run(ctx.Context(), "sudo", "add-apt-repository", "-y", s.ppa)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("add-apt-repository %s failed: %s", s.ppa, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *PPAStep) Describe() string {
	return "add apt source " + s.ppa
}

var _ step.Step = (*PPAStep)(nil)
