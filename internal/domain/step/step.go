// Package step defines the idempotent provisioning step, the unit of work
// every rigup run is built from.
package step

// Step is one unit of desired machine state: a side-effect-free check plus
// the action that establishes the state when the check says it is missing.
type Step interface {
	// ID returns the unique identifier for this step.
	ID() ID

	// Severity classifies how a failure of this step is reported.
	Severity() Severity

	// Check queries the current machine state. It must be safe to call any
	// number of times and must not mutate anything.
	Check(ctx RunContext) (Status, error)

	// Apply establishes the desired state. It is expected, but not
	// guaranteed, to make a subsequent Check return StatusSatisfied.
	Apply(ctx RunContext) error

	// Describe returns a one-line human-readable summary of what Apply
	// would do, used for dry-run output and the run log.
	Describe() string
}
