package run

import (
	"time"

	"github.com/rigup/rigup/internal/domain/step"
)

// StepResult captures the outcome of executing a single step.
type StepResult struct {
	stepID      step.ID
	outcome     Outcome
	err         error
	duration    time.Duration
	description string
}

// NewStepResult creates a StepResult.
func NewStepResult(stepID step.ID, outcome Outcome, err error) StepResult {
	return StepResult{
		stepID:  stepID,
		outcome: outcome,
		err:     err,
	}
}

// StepID returns the ID of the executed step.
func (r StepResult) StepID() step.ID {
	return r.stepID
}

// Outcome returns the terminal outcome.
func (r StepResult) Outcome() Outcome {
	return r.outcome
}

// Error returns the apply error, if any.
func (r StepResult) Error() error {
	return r.err
}

// Duration returns how long apply took. Zero for skipped and dry-run steps.
func (r StepResult) Duration() time.Duration {
	return r.duration
}

// Description returns the step's one-line action summary.
func (r StepResult) Description() string {
	return r.description
}

// Failed reports whether the step's apply failed.
func (r StepResult) Failed() bool {
	return r.outcome == OutcomeFailed
}

// WithDuration returns a copy with the duration set.
func (r StepResult) WithDuration(d time.Duration) StepResult {
	r.duration = d
	return r
}

// WithDescription returns a copy with the description set.
func (r StepResult) WithDescription(desc string) StepResult {
	r.description = desc
	return r
}
