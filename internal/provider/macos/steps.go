// Package macos provides steps for macOS user defaults (system settings).
package macos

import (
	"fmt"
	"strings"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
)

// DefaultsType is the value type passed to `defaults write`.
type DefaultsType string

const (
	// TypeBool is a boolean default.
	TypeBool DefaultsType = "bool"
	// TypeInt is an integer default.
	TypeInt DefaultsType = "int"
	// TypeString is a string default.
	TypeString DefaultsType = "string"
)

// DefaultsStep pins one macOS defaults key to a value.
type DefaultsStep struct {
	domain   string
	key      string
	value    string
	typ      DefaultsType
	id       step.ID
	severity step.Severity
	runner   ports.CommandRunner
}

// NewDefaultsStep creates a step ensuring `defaults read domain key`
// reports value.
func NewDefaultsStep(domain, key, value string, typ DefaultsType, runner ports.CommandRunner) *DefaultsStep {
	return &DefaultsStep{
		domain:   domain,
		key:      key,
		value:    value,
		typ:      typ,
		id:       step.MustNewID("macos:defaults:" + domain + ":" + key),
		severity: step.SeverityOptional,
		runner:   runner,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *DefaultsStep) WithSeverity(severity step.Severity) *DefaultsStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *DefaultsStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *DefaultsStep) Severity() step.Severity {
	return s.severity
}

// Check reads the current default. A missing key needs apply; booleans
// compare against defaults' 0/1 output.
func (s *DefaultsStep) Check(ctx step.RunContext) (step.Status, error) {
	result, err := s.runner.Run(ctx.Context(), "defaults", "read", s.domain, s.key)
	if err != nil {
		return step.StatusUnknown, err
	}
	if !result.Success() {
		// defaults exits non-zero when the key does not exist yet.
		return step.StatusNeedsApply, nil
	}

	current := strings.TrimSpace(result.Stdout)
	if current == s.normalizedValue() {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply writes the default.
func (s *DefaultsStep) Apply(ctx step.RunContext) error {
	result, err := s.runner.Run(ctx.Context(), "defaults", "write", s.domain, s.key, "-"+string(s.typ), s.value)
	if err != nil {
		return err
	}
	if !result.Success() {
		return fmt.Errorf("defaults write %s %s failed: %s", s.domain, s.key, strings.TrimSpace(result.Stderr))
	}
	return nil
}

// Describe returns the action summary.
func (s *DefaultsStep) Describe() string {
	return fmt.Sprintf("set defaults %s %s = %s", s.domain, s.key, s.value)
}

// normalizedValue maps the configured value onto the representation
// `defaults read` prints.
func (s *DefaultsStep) normalizedValue() string {
	if s.typ != TypeBool {
		return s.value
	}
	switch strings.ToLower(s.value) {
	case "true", "yes", "1":
		return "1"
	default:
		return "0"
	}
}

var _ step.Step = (*DefaultsStep)(nil)
