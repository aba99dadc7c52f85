package step

// Status is the result of a step's Check: whether the desired state
// already holds on this machine.
type Status string

const (
	// StatusSatisfied indicates the desired state already holds.
	StatusSatisfied Status = "satisfied"
	// StatusNeedsApply indicates the desired state is missing.
	StatusNeedsApply Status = "needs-apply"
	// StatusUnknown indicates the check could not determine the state.
	StatusUnknown Status = "unknown"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// NeedsApply reports whether the step's Apply should run.
func (s Status) NeedsApply() bool {
	return s == StatusNeedsApply
}
