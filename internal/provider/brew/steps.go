// Package brew provides provisioning steps for Homebrew on macOS.
package brew

import (
	"fmt"
	"strings"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/probe"
	"github.com/rigup/rigup/internal/validation"
)

// FormulaStep installs a Homebrew formula.
type FormulaStep struct {
	name     string
	id       step.ID
	severity step.Severity
	probe    probe.Probe
	runner   ports.CommandRunner
}

// NewFormulaStep creates a step that installs the formula.
func NewFormulaStep(name string, runner ports.CommandRunner) *FormulaStep {
	return &FormulaStep{
		name:     name,
		id:       step.MustNewID("brew:formula:" + name),
		severity: step.SeverityRequired,
		probe:    probe.NewBrewProbe(runner),
		runner:   runner,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *FormulaStep) WithSeverity(severity step.Severity) *FormulaStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *FormulaStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *FormulaStep) Severity() step.Severity {
	return s.severity
}

// Check queries brew for the formula.
func (s *FormulaStep) Check(ctx step.RunContext) (step.Status, error) {
	installed, err := s.probe.Installed(ctx.Context(), s.name)
	if err != nil {
		return step.StatusUnknown, err
	}
	if installed {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply installs the formula.
func (s *FormulaStep) Apply(ctx step.RunContext) error {
	if err := validation.PackageName(s.name); err != nil {
		return err
	}

	result, err := s.runner.Run(ctx.Context(), "brew", "install", s.name)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("brew install %s failed: %s", s.name, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *FormulaStep) Describe() string {
	return "install brew formula " + s.name
}

var _ step.Step = (*FormulaStep)(nil)

// CaskStep installs a Homebrew cask (GUI application).
type CaskStep struct {
	name     string
	id       step.ID
	severity step.Severity
	probe    probe.Probe
	runner   ports.CommandRunner
}

// NewCaskStep creates a step that installs the cask.
func NewCaskStep(name string, runner ports.CommandRunner) *CaskStep {
	return &CaskStep{
		name:     name,
		id:       step.MustNewID("brew:cask:" + name),
		severity: step.SeverityRequired,
		probe:    probe.NewBrewCaskProbe(runner),
		runner:   runner,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *CaskStep) WithSeverity(severity step.Severity) *CaskStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *CaskStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *CaskStep) Severity() step.Severity {
	return s.severity
}

// Check queries brew for the cask.
func (s *CaskStep) Check(ctx step.RunContext) (step.Status, error) {
	installed, err := s.probe.Installed(ctx.Context(), s.name)
	if err != nil {
		return step.StatusUnknown, err
	}
	if installed {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply installs the cask.
func (s *CaskStep) Apply(ctx step.RunContext) error {
	if err := validation.PackageName(s.name); err != nil {
		return err
	}

	result, err := s.runner.Run(ctx.Context(), "brew", "install", "--cask", s.name)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("brew install --cask %s failed: %s", s.name, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *CaskStep) Describe() string {
	return "install brew cask " + s.name
}

var _ step.Step = (*CaskStep)(nil)

// TapStep registers a Homebrew tap.
type TapStep struct {
	tap      string
	id       step.ID
	severity step.Severity
	runner   ports.CommandRunner
}

// NewTapStep creates a step that taps the given repository.
func NewTapStep(tap string, runner ports.CommandRunner) *TapStep {
	return &TapStep{
		tap:      tap,
		id:       step.MustNewID("brew:tap:" + tap),
		severity: step.SeverityRequired,
		runner:   runner,
	}
}

// ID returns the step identifier.
func (s *TapStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *TapStep) Severity() step.Severity {
	return s.severity
}

// Check lists current taps.
func (s *TapStep) Check(ctx step.RunContext) (step.Status, error) {
	result, err := s.runner.Run(ctx.Context(), "brew", "tap")
	if err != nil {
		return step.StatusUnknown, err
	}
	for _, line := range strings.Split(result.Stdout, "\n") {
		if strings.TrimSpace(line) == s.tap {
			return step.StatusSatisfied, nil
		}
	}
	return step.StatusNeedsApply, nil
}

// Apply taps the repository.
func (s *TapStep) Apply(ctx step.RunContext) error {
	if err := validation.PackageName(s.tap); err != nil {
		return err
	}

	result, err := s.runner.Run(ctx.Context(), "brew", "tap", s.tap)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("brew tap %s failed: %s", s.tap, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *TapStep) Describe() string {
	return "add brew tap " + s.tap
}

var _ step.Step = (*TapStep)(nil)
