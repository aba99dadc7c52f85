// Package npm provides provisioning steps for global npm packages,
// including the AI CLI tools installed on both machines.
package npm

import (
	"fmt"
	"strings"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/probe"
	"github.com/rigup/rigup/internal/validation"
)

// GlobalPackageStep installs one npm package globally.
type GlobalPackageStep struct {
	name     string
	id       step.ID
	severity step.Severity
	probe    probe.Probe
	runner   ports.CommandRunner
}

// NewGlobalPackageStep creates a step that installs name with npm -g.
func NewGlobalPackageStep(name string, runner ports.CommandRunner) *GlobalPackageStep {
	// Scoped package names contain a slash; keep the ID readable.
	sanitized := strings.ReplaceAll(name, "/", "-")
	return &GlobalPackageStep{
		name:     name,
		id:       step.MustNewID("npm:global:" + sanitized),
		severity: step.SeverityRequired,
		probe:    probe.NewNpmProbe(runner),
		runner:   runner,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *GlobalPackageStep) WithSeverity(severity step.Severity) *GlobalPackageStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *GlobalPackageStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *GlobalPackageStep) Severity() step.Severity {
	return s.severity
}

// Check queries the global npm tree for the package.
func (s *GlobalPackageStep) Check(ctx step.RunContext) (step.Status, error) {
	installed, err := s.probe.Installed(ctx.Context(), s.name)
	if err != nil {
		return step.StatusUnknown, err
	}
	if installed {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply installs the package globally.
func (s *GlobalPackageStep) Apply(ctx step.RunContext) error {
	if err := validation.PackageName(s.name); err != nil {
		return err
	}

	result, err := s.runner.Run(ctx.Context(), "npm", "install", "-g", s.name)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("npm install -g %s failed: %s", s.name, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *GlobalPackageStep) Describe() string {
	return "install npm package " + s.name + " globally"
}

var _ step.Step = (*GlobalPackageStep)(nil)
