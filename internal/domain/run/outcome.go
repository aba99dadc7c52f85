// Package run executes provisioning steps sequentially and accumulates the
// run report. One step failing never stops the steps after it.
package run

// Outcome is the terminal result of executing one step.
type Outcome string

const (
	// OutcomeSkipped means the check was already satisfied; apply never ran.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeApplied means apply ran and completed without error.
	OutcomeApplied Outcome = "applied"
	// OutcomeWouldApply means the check was unsatisfied during a dry run;
	// apply was replaced with a description-only record.
	OutcomeWouldApply Outcome = "would-apply"
	// OutcomeFailed means apply returned an error.
	OutcomeFailed Outcome = "failed"
	// OutcomeUnverified means apply reported success but a follow-up check
	// still found the desired state missing. Only produced when post-apply
	// verification is enabled.
	OutcomeUnverified Outcome = "unverified"
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// Changed reports whether the machine state was (or would be) mutated.
func (o Outcome) Changed() bool {
	switch o {
	case OutcomeApplied, OutcomeUnverified, OutcomeWouldApply:
		return true
	case OutcomeSkipped, OutcomeFailed:
		return false
	}
	return false
}
