package script

import (
	"context"
	"strings"
	"testing"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/testutil/mocks"
)

func runContext() step.RunContext {
	return step.NewRunContext(context.Background())
}

func TestInstallerStep_CheckUsesPathLookup(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sh", []string{"-c", `command -v "$1"`, "sh", "starship"}, ports.CommandResult{ExitCode: 0, Stdout: "/usr/local/bin/starship\n"})

	s := NewInstallerStep("starship", "https://starship.rs/install.sh", runner)

	got, err := s.Check(runContext())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got != step.StatusSatisfied {
		t.Errorf("binary on PATH: Check() = %v, want %v", got, step.StatusSatisfied)
	}
}

func TestInstallerStep_CheckNeverInterpolatesBinaryName(t *testing.T) {
	hostile := "x;touch${IFS}/tmp/marker"

	runner := mocks.NewCommandRunner()
	runner.AddResult("sh", []string{"-c", `command -v "$1"`, "sh", hostile}, ports.CommandResult{ExitCode: 127})

	s := NewInstallerStep(hostile, "https://x.example/install.sh", runner)

	got, err := s.Check(runContext())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got != step.StatusNeedsApply {
		t.Errorf("Check() = %v, want %v", got, step.StatusNeedsApply)
	}
	for _, call := range runner.Calls() {
		if strings.Contains(call.Args[1], hostile) {
			t.Errorf("binary name leaked into the shell script: %q", call.Args[1])
		}
	}
}

func TestInstallerStep_ApplyPipesScriptToShell(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sh", []string{"-c", "curl -fsSL https://starship.rs/install.sh | sh"}, ports.CommandResult{ExitCode: 0})

	s := NewInstallerStep("starship", "https://starship.rs/install.sh", runner)
	if err := s.Apply(runContext()); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if s.ID().String() != "script:installer:starship" {
		t.Errorf("ID() = %q, want %q", s.ID(), "script:installer:starship")
	}
}

func TestInstallerStep_ApplyFailure(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sh", []string{"-c", "curl -fsSL https://starship.rs/install.sh | sh"},
		ports.CommandResult{ExitCode: 22, Stderr: "curl: (22) The requested URL returned error: 404\n"})

	s := NewInstallerStep("starship", "https://starship.rs/install.sh", runner)
	if err := s.Apply(runContext()); err == nil {
		t.Fatal("Apply() error = nil, want installer failure")
	}
}

func TestInstallerStep_RejectsInsecureURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "plain http", url: "http://starship.rs/install.sh"},
		{name: "shell metacharacters", url: "https://starship.rs/install.sh;reboot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewCommandRunner()

			err := NewInstallerStep("starship", tt.url, runner).Apply(runContext())
			if err == nil {
				t.Fatal("Apply() error = nil, want validation error")
			}
			if len(runner.Calls()) != 0 {
				t.Error("rejected URL must never reach the shell")
			}
		})
	}
}
