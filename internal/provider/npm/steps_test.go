package npm

import (
	"context"
	"testing"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/testutil/mocks"
)

func runContext() step.RunContext {
	return step.NewRunContext(context.Background())
}

func TestGlobalPackageStep_Check(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("npm", []string{"ls", "-g", "--depth=0", "typescript"}, ports.CommandResult{ExitCode: 0})
	runner.AddResult("npm", []string{"ls", "-g", "--depth=0", "prettier"}, ports.CommandResult{ExitCode: 1})

	got, err := NewGlobalPackageStep("typescript", runner).Check(runContext())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got != step.StatusSatisfied {
		t.Errorf("installed: Check() = %v, want %v", got, step.StatusSatisfied)
	}

	got, err = NewGlobalPackageStep("prettier", runner).Check(runContext())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got != step.StatusNeedsApply {
		t.Errorf("missing: Check() = %v, want %v", got, step.StatusNeedsApply)
	}
}

func TestGlobalPackageStep_Apply(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("npm", []string{"install", "-g", "typescript"}, ports.CommandResult{ExitCode: 0})

	if err := NewGlobalPackageStep("typescript", runner).Apply(runContext()); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
}

func TestGlobalPackageStep_ScopedNameID(t *testing.T) {
	s := NewGlobalPackageStep("@biomejs/biome", mocks.NewCommandRunner())
	if s.ID().String() != "npm:global:@biomejs-biome" {
		t.Errorf("ID() = %q, scoped slash must be sanitized", s.ID())
	}
}

func TestGlobalPackageStep_RejectsUnsafeName(t *testing.T) {
	runner := mocks.NewCommandRunner()

	if err := NewGlobalPackageStep("typescript;true", runner).Apply(runContext()); err == nil {
		t.Fatal("Apply() error = nil, want validation error")
	}
	if len(runner.Calls()) != 0 {
		t.Error("invalid name must never reach the command runner")
	}
}
