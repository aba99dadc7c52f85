// Package gitcfg provides steps that pin keys in the user's ~/.gitconfig.
package gitcfg

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
)

// DefaultConfigPath is the global git configuration file.
const DefaultConfigPath = "~/.gitconfig"

// ConfigStep ensures one key in the global git config holds a value,
// e.g. "init.defaultBranch" = "main".
type ConfigStep struct {
	path     string
	key      string
	value    string
	id       step.ID
	severity step.Severity
	fs       ports.FileSystem
}

// NewConfigStep creates a step pinning key (section.name form) to value
// in ~/.gitconfig.
func NewConfigStep(key, value string, fs ports.FileSystem) *ConfigStep {
	return &ConfigStep{
		path:     DefaultConfigPath,
		key:      key,
		value:    value,
		id:       step.MustNewID("git:config:" + key),
		severity: step.SeverityRequired,
		fs:       fs,
	}
}

// WithPath returns a copy targeting a different config file.
func (s *ConfigStep) WithPath(path string) *ConfigStep {
	copied := *s
	copied.path = path
	return &copied
}

// WithSeverity returns a copy with the given severity.
func (s *ConfigStep) WithSeverity(severity step.Severity) *ConfigStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *ConfigStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *ConfigStep) Severity() step.Severity {
	return s.severity
}

// splitKey separates "section.name" into its section and key parts.
// Subsection keys like "url.x.insteadOf" keep everything up to the last
// dot as the section.
func (s *ConfigStep) splitKey() (section, key string, err error) {
	idx := strings.LastIndex(s.key, ".")
	if idx <= 0 || idx == len(s.key)-1 {
		return "", "", fmt.Errorf("git config key %q must have section.name form", s.key)
	}
	return s.key[:idx], s.key[idx+1:], nil
}

// Check parses the config file and compares the key's current value.
func (s *ConfigStep) Check(_ step.RunContext) (step.Status, error) {
	section, key, err := s.splitKey()
	if err != nil {
		return step.StatusUnknown, err
	}

	path := ports.ExpandPath(s.path)
	if !s.fs.Exists(path) {
		return step.StatusNeedsApply, nil
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return step.StatusUnknown, err
	}

	cfg, err := ini.Load(content)
	if err != nil {
		return step.StatusUnknown, fmt.Errorf("parse %s: %w", s.path, err)
	}

	if cfg.Section(section).Key(key).String() == s.value {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply rewrites the config file with the key set, preserving every other
// section and key.
func (s *ConfigStep) Apply(_ step.RunContext) error {
	section, key, err := s.splitKey()
	if err != nil {
		return err
	}

	path := ports.ExpandPath(s.path)

	var cfg *ini.File
	if s.fs.Exists(path) {
		content, err := s.fs.ReadFile(path)
		if err != nil {
			return err
		}
		cfg, err = ini.Load(content)
		if err != nil {
			return fmt.Errorf("parse %s: %w", s.path, err)
		}
	} else {
		cfg = ini.Empty()
	}

	cfg.Section(section).Key(key).SetValue(s.value)

	var out strings.Builder
	if _, err := cfg.WriteTo(&out); err != nil {
		return fmt.Errorf("render %s: %w", s.path, err)
	}
	if err := s.fs.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Describe returns the action summary.
func (s *ConfigStep) Describe() string {
	return fmt.Sprintf("set git config %s = %s", s.key, s.value)
}

var _ step.Step = (*ConfigStep)(nil)
