package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rigup/rigup/internal/domain/run"
)

// Summary styling. Colors follow the usual provisioning-tool conventions:
// green applied, yellow pending/warned, red failed, muted skipped.
var (
	styleApplied  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"})
	styleFailed   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}).Bold(true)
	styleWould    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"})
	styleSkipped  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#6c7086"})
	styleHeading  = lipgloss.NewStyle().Bold(true)
	styleWarnHead = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}).Bold(true)
)

// printSummary renders the per-step outcomes and the warning and error
// lists accumulated over the run.
func (r *Rigup) printSummary(report *run.Report, results []run.StepResult, opts Options) {
	render := func(style lipgloss.Style, s string) string {
		if !opts.Color {
			return s
		}
		return style.Render(s)
	}

	r.printf("\n%s\n\n", render(styleHeading, "Run summary"))

	var applied, wouldApply, skipped, failed, unverified int
	for _, result := range results {
		switch result.Outcome() {
		case run.OutcomeApplied:
			applied++
			r.printf("  %s %s\n", render(styleApplied, "✓"), result.StepID())
		case run.OutcomeWouldApply:
			wouldApply++
			r.printf("  %s %s (%s)\n", render(styleWould, "+"), result.StepID(), result.Description())
		case run.OutcomeSkipped:
			skipped++
			r.printf("  %s %s\n", render(styleSkipped, "-"), result.StepID())
		case run.OutcomeFailed:
			failed++
			r.printf("  %s %s: %v\n", render(styleFailed, "✗"), result.StepID(), result.Error())
		case run.OutcomeUnverified:
			unverified++
			r.printf("  %s %s (applied but verification failed)\n", render(styleWould, "?"), result.StepID())
		}
	}

	if opts.DryRun {
		r.printf("\n%d would change, %d already satisfied\n", wouldApply, skipped)
	} else {
		r.printf("\n%d applied, %d skipped, %d failed", applied, skipped, failed)
		if unverified > 0 {
			r.printf(", %d unverified", unverified)
		}
		r.printf("\n")
	}

	if report.HasWarnings() {
		r.printf("\n%s\n", render(styleWarnHead, "Warnings"))
		for _, w := range report.Warnings() {
			r.printf("  %s: %s\n", w.StepID, w.Message)
		}
	}

	if report.HasErrors() {
		r.printf("\n%s\n", render(styleFailed, "Errors"))
		for _, e := range report.Errors() {
			r.printf("  %s: %s\n", e.StepID, e.Message)
		}
		r.printf("\nFailed steps are safe to retry: rerun the same command.\n")
	}
}

// DescribeSelection formats the active selection for run output.
func DescribeSelection(opts Options) string {
	switch {
	case opts.Minimal && len(opts.Skip) > 0:
		return fmt.Sprintf("minimal, skipping %v", opts.Skip)
	case opts.Minimal:
		return "minimal"
	case len(opts.Skip) > 0:
		return fmt.Sprintf("skipping %v", opts.Skip)
	default:
		return "full"
	}
}
