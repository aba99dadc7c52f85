// Package catalog declares which steps a machine gets, in run order,
// organized into named groups the CLI can exclude.
package catalog

import (
	"fmt"

	"github.com/rigup/rigup/internal/domain/step"
)

// Group is a named, ordered set of steps.
type Group struct {
	// Name identifies the group for --skip.
	Name string
	// Essential groups survive a --minimal run.
	Essential bool
	// Steps run in declaration order.
	Steps []step.Step
}

// Selection narrows a catalog to the steps one invocation should run.
type Selection struct {
	// Minimal keeps only essential groups.
	Minimal bool
	// Skip lists group names to exclude.
	Skip []string
}

// Skips reports whether the named group is excluded.
func (s Selection) Skips(name string) bool {
	for _, skip := range s.Skip {
		if skip == name {
			return true
		}
	}
	return false
}

// Catalog is the full set of groups for one machine.
type Catalog struct {
	groups []Group
}

// New creates an empty Catalog.
func New() *Catalog {
	return &Catalog{groups: make([]Group, 0)}
}

// AddGroup appends a group. Group names must be unique.
func (c *Catalog) AddGroup(g Group) error {
	for _, existing := range c.groups {
		if existing.Name == g.Name {
			return fmt.Errorf("duplicate catalog group %q", g.Name)
		}
	}
	c.groups = append(c.groups, g)
	return nil
}

// Groups returns the group names in declaration order.
func (c *Catalog) Groups() []string {
	names := make([]string, 0, len(c.groups))
	for _, g := range c.groups {
		names = append(names, g.Name)
	}
	return names
}

// Steps flattens the catalog into the run sequence for the selection,
// preserving group declaration order.
func (c *Catalog) Steps(sel Selection) []step.Step {
	steps := make([]step.Step, 0)
	for _, g := range c.groups {
		if sel.Minimal && !g.Essential {
			continue
		}
		if sel.Skips(g.Name) {
			continue
		}
		steps = append(steps, g.Steps...)
	}
	return steps
}

// Len returns the total number of steps across all groups.
func (c *Catalog) Len() int {
	total := 0
	for _, g := range c.groups {
		total += len(g.Steps)
	}
	return total
}
