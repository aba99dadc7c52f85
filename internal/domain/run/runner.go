package run

import (
	"context"
	"fmt"
	"time"

	"github.com/rigup/rigup/internal/adapters/logging"
	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
)

// Runner executes steps strictly in declaration order, one at a time.
// A failing step is recorded and the run moves on; only context
// cancellation stops the loop early.
type Runner struct {
	dryRun bool
	verify bool
	logger ports.Logger
}

// NewRunner creates a Runner with verification disabled and a nop logger.
func NewRunner() *Runner {
	return &Runner{logger: logging.NewNopLogger()}
}

// WithDryRun returns a Runner that evaluates checks but never applies.
func (r *Runner) WithDryRun(dryRun bool) *Runner {
	copied := *r
	copied.dryRun = dryRun
	return &copied
}

// WithVerify returns a Runner that re-checks each step after a successful
// apply and reports OutcomeUnverified when the state still does not hold.
func (r *Runner) WithVerify(verify bool) *Runner {
	copied := *r
	copied.verify = verify
	return &copied
}

// WithLogger returns a Runner that logs step progress to the given logger.
func (r *Runner) WithLogger(logger ports.Logger) *Runner {
	copied := *r
	copied.logger = logger
	return &copied
}

// Execute runs all steps and returns the accumulated report plus one
// result per step that was evaluated before cancellation.
func (r *Runner) Execute(ctx context.Context, steps []step.Step) (*Report, []StepResult) {
	report := NewReport()
	results := make([]StepResult, 0, len(steps))

	runCtx := step.NewRunContext(ctx).WithDryRun(r.dryRun)

	for _, s := range steps {
		select {
		case <-ctx.Done():
			return report, results
		default:
		}

		results = append(results, r.executeStep(runCtx, s, report))
	}

	return report, results
}

// executeStep applies the check-and-apply policy to a single step.
func (r *Runner) executeStep(runCtx step.RunContext, s step.Step, report *Report) StepResult {
	ctx := runCtx.Context()
	id := s.ID()

	status, err := s.Check(runCtx)
	if err != nil {
		// Never apply to a machine whose state could not be determined.
		report.AddWarning(id, fmt.Sprintf("check failed: %v, skipping", err))
		r.logger.Warn(ctx, "check failed, skipping step",
			ports.F("step", id.String()), ports.F("error", err.Error()))
		return NewStepResult(id, OutcomeSkipped, nil).WithDescription(s.Describe())
	}

	if status == step.StatusUnknown {
		report.AddWarning(id, "state unknown, skipping")
		r.logger.Warn(ctx, "state unknown, skipping step", ports.F("step", id.String()))
		return NewStepResult(id, OutcomeSkipped, nil).WithDescription(s.Describe())
	}

	if status == step.StatusSatisfied {
		r.logger.Debug(ctx, "already satisfied", ports.F("step", id.String()))
		return NewStepResult(id, OutcomeSkipped, nil).WithDescription(s.Describe())
	}

	if runCtx.DryRun() {
		report.RecordAttempt(id)
		r.logger.Info(ctx, "would apply",
			ports.F("step", id.String()), ports.F("action", s.Describe()))
		return NewStepResult(id, OutcomeWouldApply, nil).WithDescription(s.Describe())
	}

	report.RecordAttempt(id)
	r.logger.Info(ctx, "applying", ports.F("step", id.String()))

	start := time.Now()
	applyErr := s.Apply(runCtx)
	duration := time.Since(start)

	if applyErr != nil {
		switch s.Severity() {
		case step.SeverityOptional:
			report.AddWarning(id, applyErr.Error())
		default:
			report.AddError(id, applyErr.Error())
		}
		r.logger.Error(ctx, "apply failed",
			ports.F("step", id.String()), ports.F("error", applyErr.Error()))
		return NewStepResult(id, OutcomeFailed, applyErr).
			WithDuration(duration).
			WithDescription(s.Describe())
	}

	if r.verify {
		verified, verifyErr := s.Check(runCtx)
		if verifyErr != nil || verified != step.StatusSatisfied {
			report.AddWarning(id, "applied but verification failed")
			r.logger.Warn(ctx, "applied but verification failed", ports.F("step", id.String()))
			return NewStepResult(id, OutcomeUnverified, nil).
				WithDuration(duration).
				WithDescription(s.Describe())
		}
	}

	r.logger.Info(ctx, "applied",
		ports.F("step", id.String()), ports.F("duration", duration.String()))
	return NewStepResult(id, OutcomeApplied, nil).
		WithDuration(duration).
		WithDescription(s.Describe())
}
