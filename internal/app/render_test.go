package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rigup/rigup/internal/domain/run"
	"github.com/rigup/rigup/internal/domain/step"
)

func summaryOutput(t *testing.T, report *run.Report, results []run.StepResult, opts Options) string {
	t.Helper()

	var buf bytes.Buffer
	New(&buf).printSummary(report, results, opts)
	return buf.String()
}

func TestPrintSummary_Counts(t *testing.T) {
	report := run.NewReport()
	report.AddError(step.MustNewID("apt:package:broken"), "install failed")

	results := []run.StepResult{
		run.NewStepResult(step.MustNewID("apt:package:git"), run.OutcomeApplied, nil),
		run.NewStepResult(step.MustNewID("apt:package:curl"), run.OutcomeSkipped, nil),
		run.NewStepResult(step.MustNewID("apt:package:broken"), run.OutcomeFailed, errors.New("install failed")),
	}

	out := summaryOutput(t, report, results, Options{})

	if !strings.Contains(out, "1 applied, 1 skipped, 1 failed") {
		t.Errorf("summary counts missing:\n%s", out)
	}
	if !strings.Contains(out, "Errors") || !strings.Contains(out, "apt:package:broken: install failed") {
		t.Errorf("error section missing:\n%s", out)
	}
	if !strings.Contains(out, "safe to retry") {
		t.Errorf("retry hint missing:\n%s", out)
	}
}

func TestPrintSummary_DryRun(t *testing.T) {
	results := []run.StepResult{
		run.NewStepResult(step.MustNewID("brew:formula:jq"), run.OutcomeWouldApply, nil).
			WithDescription("install brew formula jq"),
		run.NewStepResult(step.MustNewID("brew:formula:git"), run.OutcomeSkipped, nil),
	}

	out := summaryOutput(t, run.NewReport(), results, Options{DryRun: true})

	if !strings.Contains(out, "1 would change, 1 already satisfied") {
		t.Errorf("dry-run counts missing:\n%s", out)
	}
	if !strings.Contains(out, "install brew formula jq") {
		t.Errorf("would-apply description missing:\n%s", out)
	}
	if strings.Contains(out, "applied,") {
		t.Errorf("dry-run summary must not use the normal footer:\n%s", out)
	}
}

func TestPrintSummary_Warnings(t *testing.T) {
	report := run.NewReport()
	report.AddWarning(step.MustNewID("runtime:minversion:node"), "state unknown, skipping")

	out := summaryOutput(t, report, nil, Options{})

	if !strings.Contains(out, "Warnings") {
		t.Errorf("warning section missing:\n%s", out)
	}
	if !strings.Contains(out, "runtime:minversion:node: state unknown, skipping") {
		t.Errorf("warning entry missing:\n%s", out)
	}
}

func TestPrintSummary_Unverified(t *testing.T) {
	results := []run.StepResult{
		run.NewStepResult(step.MustNewID("files:line:starship-init"), run.OutcomeUnverified, nil),
	}

	out := summaryOutput(t, run.NewReport(), results, Options{})

	if !strings.Contains(out, "1 unverified") {
		t.Errorf("unverified count missing:\n%s", out)
	}
}

func TestDescribeSelection(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{name: "full", opts: Options{}, want: "full"},
		{name: "minimal", opts: Options{Minimal: true}, want: "minimal"},
		{name: "skip", opts: Options{Skip: []string{"git"}}, want: "skipping [git]"},
		{name: "both", opts: Options{Minimal: true, Skip: []string{"git"}}, want: "minimal, skipping [git]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeSelection(tt.opts); got != tt.want {
				t.Errorf("DescribeSelection() = %q, want %q", got, tt.want)
			}
		})
	}
}
