// Package files provides idempotent dotfile edit steps: ensure a line is
// present, or ensure a marker-delimited block matches its desired content.
package files

import (
	"fmt"
	"os"
	"strings"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
)

// LineInFileStep appends a line to a file unless it is already present.
type LineInFileStep struct {
	path     string
	line     string
	id       step.ID
	severity step.Severity
	fs       ports.FileSystem
}

// NewLineInFileStep creates a step ensuring line exists in the file at
// path. The path may start with "~/". The id name distinguishes multiple
// edits to the same file.
func NewLineInFileStep(name, path, line string, fs ports.FileSystem) *LineInFileStep {
	return &LineInFileStep{
		path:     path,
		line:     line,
		id:       step.MustNewID("files:line:" + name),
		severity: step.SeverityRequired,
		fs:       fs,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *LineInFileStep) WithSeverity(severity step.Severity) *LineInFileStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *LineInFileStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *LineInFileStep) Severity() step.Severity {
	return s.severity
}

// Check reads the file and looks for the exact line. A missing file means
// the line is missing, not an error.
func (s *LineInFileStep) Check(_ step.RunContext) (step.Status, error) {
	path := ports.ExpandPath(s.path)
	if !s.fs.Exists(path) {
		return step.StatusNeedsApply, nil
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return step.StatusUnknown, err
	}

	for _, existing := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(existing) == strings.TrimSpace(s.line) {
			return step.StatusSatisfied, nil
		}
	}
	return step.StatusNeedsApply, nil
}

// Apply appends the line, preceded by a newline when the file does not end
// with one.
func (s *LineInFileStep) Apply(_ step.RunContext) error {
	path := ports.ExpandPath(s.path)

	data := s.line
	if !strings.HasSuffix(data, "\n") {
		data += "\n"
	}

	if s.fs.Exists(path) {
		content, err := s.fs.ReadFile(path)
		if err != nil {
			return err
		}
		if len(content) > 0 && content[len(content)-1] != '\n' {
			data = "\n" + data
		}
	}

	if err := s.fs.AppendFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("append to %s: %w", s.path, err)
	}
	return nil
}

// Describe returns the action summary.
func (s *LineInFileStep) Describe() string {
	return fmt.Sprintf("ensure line %q in %s", s.line, s.path)
}

var _ step.Step = (*LineInFileStep)(nil)

// ManagedBlockStep keeps a marker-delimited configuration block in a file
// in sync with its desired content. Reruns rewrite the block only when it
// drifted.
type ManagedBlockStep struct {
	path     string
	section  string
	block    string
	id       step.ID
	severity step.Severity
	fs       ports.FileSystem
}

// NewManagedBlockStep creates a step ensuring the section's block in path
// equals block.
func NewManagedBlockStep(section, path, block string, fs ports.FileSystem) *ManagedBlockStep {
	return &ManagedBlockStep{
		path:     path,
		section:  section,
		block:    block,
		id:       step.MustNewID("files:block:" + section),
		severity: step.SeverityRequired,
		fs:       fs,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *ManagedBlockStep) WithSeverity(severity step.Severity) *ManagedBlockStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// ID returns the step identifier.
func (s *ManagedBlockStep) ID() step.ID {
	return s.id
}

// Severity returns the step severity.
func (s *ManagedBlockStep) Severity() step.Severity {
	return s.severity
}

// Check compares the current block content with the desired content.
func (s *ManagedBlockStep) Check(_ step.RunContext) (step.Status, error) {
	path := ports.ExpandPath(s.path)
	if !s.fs.Exists(path) {
		return step.StatusNeedsApply, nil
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return step.StatusUnknown, err
	}

	current := readManagedBlock(string(content), s.section)
	if strings.TrimRight(current, "\n") == strings.TrimRight(s.block, "\n") && current != "" {
		return step.StatusSatisfied, nil
	}
	return step.StatusNeedsApply, nil
}

// Apply rewrites the file with the block replaced or appended.
func (s *ManagedBlockStep) Apply(_ step.RunContext) error {
	path := ports.ExpandPath(s.path)

	var content string
	if s.fs.Exists(path) {
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return err
		}
		content = string(data)
	}

	updated := writeManagedBlock(content, s.section, s.block)
	if err := s.fs.WriteFile(path, []byte(updated), os.FileMode(0o644)); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Describe returns the action summary.
func (s *ManagedBlockStep) Describe() string {
	return fmt.Sprintf("ensure %s block in %s", s.section, s.path)
}

var _ step.Step = (*ManagedBlockStep)(nil)
