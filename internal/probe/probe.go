// Package probe answers "is this thing installed?" per package manager.
// Each variant issues the manager's own query through the CommandRunner
// port, so tests substitute a fake runner instead of a real machine.
package probe

import "context"

// Probe reports whether a named package or binary is present on the
// machine. Implementations must be side-effect free.
type Probe interface {
	Installed(ctx context.Context, name string) (bool, error)
}
