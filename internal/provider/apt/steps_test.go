package apt

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

func TestPackageStep_Check(t *testing.T) {
	tests := []struct {
		name   string
		result ports.CommandResult
		want   step.Status
	}{
		{
			name:   "installed",
			result: ports.CommandResult{ExitCode: 0, Stdout: "installed\n"},
			want:   step.StatusSatisfied,
		},
		{
			name:   "missing",
			result: ports.CommandResult{ExitCode: 1},
			want:   step.StatusNeedsApply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewCommandRunner()
			runner.AddResult("dpkg-query", []string{"-W", "-f=${db:Status-Status}", "ripgrep"}, tt.result)

			got, err := NewPackageStep("ripgrep", runner).Check(runContext())
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Check() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackageStep_Apply(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"apt-get", "install", "-y", "ripgrep"}, ports.CommandResult{ExitCode: 0})

	s := NewPackageStep("ripgrep", runner)
	if err := s.Apply(runContext()); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if runner.CallCount("sudo", "apt-get", "install", "-y", "ripgrep") != 1 {
		t.Error("Apply() must invoke apt-get install exactly once")
	}
}

func TestPackageStep_ApplyFailure(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"apt-get", "install", "-y", "ripgrep"},
		ports.CommandResult{ExitCode: 100, Stderr: "E: Unable to locate package ripgrep\n"})

	err := NewPackageStep("ripgrep", runner).Apply(runContext())
	if err == nil {
		t.Fatal("Apply() error = nil, want install failure")
	}
}

func TestPackageStep_RejectsUnsafeName(t *testing.T) {
	runner := mocks.NewCommandRunner()

	err := NewPackageStep("ripgrep;rm", runner).Apply(runContext())
	if err == nil {
		t.Fatal("Apply() error = nil, want validation error")
	}
	if len(runner.Calls()) != 0 {
		t.Error("invalid name must never reach the command runner")
	}
}

func TestPackageStep_Identity(t *testing.T) {
	s := NewPackageStep("jq", mocks.NewCommandRunner())

	if s.ID().String() != "apt:package:jq" {
		t.Errorf("ID() = %q, want %q", s.ID(), "apt:package:jq")
	}
	if s.Severity() != step.SeverityRequired {
		t.Errorf("Severity() = %v, want required", s.Severity())
	}
	if s.WithSeverity(step.SeverityOptional).Severity() != step.SeverityOptional {
		t.Error("WithSeverity did not apply")
	}
	if s.Severity() != step.SeverityRequired {
		t.Error("WithSeverity mutated the receiver")
	}
}

func TestPPAStep_Check(t *testing.T) {
	policy := `500 https://ppa.launchpadcontent.net/neovim-ppa/unstable/ubuntu noble/main amd64 Packages`

	runner := mocks.NewCommandRunner()
	runner.AddResult("apt-cache", []string{"policy"}, ports.CommandResult{ExitCode: 0, Stdout: policy})

	s := NewPPAStep("ppa:neovim-ppa/unstable", runner)

	got, err := s.Check(runContext())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got != step.StatusSatisfied {
		t.Errorf("registered PPA: Check() = %v, want %v", got, step.StatusSatisfied)
	}

	other := NewPPAStep("ppa:fish-shell/release-3", runner)
	got, err = other.Check(runContext())
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if got != step.StatusNeedsApply {
		t.Errorf("unregistered PPA: Check() = %v, want %v", got, step.StatusNeedsApply)
	}
}

func TestPPAStep_Apply(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sudo", []string{"add-apt-repository", "-y", "ppa:neovim-ppa/unstable"}, ports.CommandResult{ExitCode: 0})

	s := NewPPAStep("ppa:neovim-ppa/unstable", runner)
	if err := s.Apply(runContext()); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if s.ID().String() != "apt:ppa:ppa-neovim-ppa/unstable" {
		t.Errorf("ID() = %q, colon must be sanitized", s.ID())
	}
}

func TestPPAStep_RejectsMalformedSource(t *testing.T) {
	runner := mocks.NewCommandRunner()

	err := NewPPAStep("ppa:missing-name", runner).Apply(runContext())
	if err == nil {
		t.Fatal("Apply() error = nil, want validation error")
	}
	if len(runner.Calls()) != 0 {
		t.Error("invalid source must never reach the command runner")
	}
}
