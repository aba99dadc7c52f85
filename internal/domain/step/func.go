package step

// FuncStep builds a Step from closures. The catalog uses it for one-off
// glue steps; tests use it to script exact check/apply behavior.
type FuncStep struct {
	id          ID
	severity    Severity
	description string
	check       func(ctx RunContext) (Status, error)
	apply       func(ctx RunContext) error
}

// NewFuncStep creates a FuncStep. A nil check defaults to StatusNeedsApply;
// a nil apply is a no-op.
func NewFuncStep(id ID, check func(ctx RunContext) (Status, error), apply func(ctx RunContext) error) *FuncStep {
	return &FuncStep{
		id:       id,
		severity: SeverityRequired,
		check:    check,
		apply:    apply,
	}
}

// WithSeverity returns a copy with the given severity.
func (s *FuncStep) WithSeverity(severity Severity) *FuncStep {
	copied := *s
	copied.severity = severity
	return &copied
}

// WithDescription returns a copy with the given description.
func (s *FuncStep) WithDescription(description string) *FuncStep {
	copied := *s
	copied.description = description
	return &copied
}

// ID returns the step identifier.
func (s *FuncStep) ID() ID {
	return s.id
}

// Severity returns the step severity.
func (s *FuncStep) Severity() Severity {
	return s.severity
}

// Check invokes the check closure.
func (s *FuncStep) Check(ctx RunContext) (Status, error) {
	if s.check == nil {
		return StatusNeedsApply, nil
	}
	return s.check(ctx)
}

// Apply invokes the apply closure.
func (s *FuncStep) Apply(ctx RunContext) error {
	if s.apply == nil {
		return nil
	}
	return s.apply(ctx)
}

// Describe returns the configured description, or the ID as a fallback.
func (s *FuncStep) Describe() string {
	if s.description != "" {
		return s.description
	}
	return s.id.String()
}

var _ Step = (*FuncStep)(nil)
