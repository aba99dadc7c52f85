// Package runtime provides version-floor checks for language runtimes the
// later steps depend on (e.g. node for the npm group).
package runtime

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
)

var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)*`)

// MinVersionStep verifies an installed runtime meets a minimum version.
// It cannot upgrade anything itself; when the floor is not met its apply
// fails with an instruction, which the run records per the step's
// severity. The default severity is optional, so an old runtime surfaces
// as a warning and the run continues.
type MinVersionStep struct {
	binary   string
	minimum  string
	id       step.ID
	severity step.Severity
	runner   ports.CommandRunner
}

// NewMinVersionStep creates a step requiring `binary --version` to report
// at least minimum (e.g. "18.0.0").
func NewMinVersionStep(binary, minimum string, runner ports.CommandRunner) *MinVersionStep {
	return &MinVersionStep{
		binary:   binary,
		minimum:  minimum,
		id:       step.MustNewID("runtime:minversion:" + binary),
		severity: step.SeverityOptional,
		runner:   runner,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *MinVersionStep) WithSeverity(severity step.Severity) *MinVersionStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *MinVersionStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *MinVersionStep) Severity() step.Severity {
	return s.severity
}

// Check runs `binary --version` and compares against the floor. An
// unreadable version is StatusUnknown, which the run reports as a warning
// and skips.
func (s *MinVersionStep) Check(ctx step.RunContext) (step.Status, error) {
	result, err := s.runner.Run(ctx.Context(), s.binary, "--version")
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("could not read %s version: %w", s.binary, err)
	}
	if !result.Success() {
		return step.StatusUnknown, fmt.Errorf("%s --version exited %d", s.binary, result.ExitCode)
	}

	version := versionPattern.FindString(result.Stdout)
	if version == "" {
		version = versionPattern.FindString(result.Stderr)
	}
	if version == "" {
		return step.StatusUnknown, fmt.Errorf("no version in %s --version output", s.binary)
	}

	if semver.Compare(canonical(version), canonical(s.minimum)) >= 0 {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply cannot upgrade a runtime; it reports what the operator must do.
func (s *MinVersionStep) Apply(_ step.RunContext) error {
	return fmt.Errorf("%s is older than %s, upgrade it manually", s.binary, s.minimum)
}

// Describe returns the action summary.
func (s *MinVersionStep) Describe() string {
	return fmt.Sprintf("require %s >= %s", s.binary, s.minimum)
}

// canonical converts a dotted version into the v-prefixed form semver
// expects, padding to at least major.minor.patch.
func canonical(version string) string {
	v := "v" + strings.TrimPrefix(version, "v")
	for strings.Count(v, ".") < 2 {
		v += ".0"
	}
	return v
}

var _ step.Step = (*MinVersionStep)(nil)
