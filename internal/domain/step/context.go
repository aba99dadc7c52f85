package step

import "context"

// RunContext carries per-run state into Check and Apply: the cancellation
// context and the dry-run flag. It is a value type; derived contexts are
// copies.
type RunContext struct {
	ctx    context.Context
	dryRun bool
}

// NewRunContext creates a RunContext wrapping ctx.
func NewRunContext(ctx context.Context) RunContext {
	return RunContext{ctx: ctx}
}

// Context returns the underlying context.Context.
func (r RunContext) Context() context.Context {
	return r.ctx
}

// DryRun reports whether this run must not mutate the machine.
func (r RunContext) DryRun() bool {
	return r.dryRun
}

// WithDryRun returns a copy with the dry-run flag set.
func (r RunContext) WithDryRun(dryRun bool) RunContext {
	r.dryRun = dryRun
	return r
}
