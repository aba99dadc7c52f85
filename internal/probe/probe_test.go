package probe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/testutil/mocks"
)

func TestDpkgProbe_Installed(t *testing.T) {
	tests := []struct {
		name   string
		result ports.CommandResult
		want   bool
	}{
		{
			name:   "installed",
			result: ports.CommandResult{ExitCode: 0, Stdout: "installed\n"},
			want:   true,
		},
		{
			name:   "config-files only",
			result: ports.CommandResult{ExitCode: 0, Stdout: "config-files\n"},
			want:   false,
		},
		{
			name:   "unknown package",
			result: ports.CommandResult{ExitCode: 1, Stderr: "no packages found matching ripgrep\n"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := mocks.NewCommandRunner()
			runner.AddResult("dpkg-query", []string{"-W", "-f=${db:Status-Status}", "ripgrep"}, tt.result)

			got, err := NewDpkgProbe(runner).Installed(context.Background(), "ripgrep")
			if err != nil {
				t.Fatalf("Installed() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Installed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDpkgProbe_RunnerError(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddError("dpkg-query", []string{"-W", "-f=${db:Status-Status}", "jq"}, errors.New("exec: not found"))

	_, err := NewDpkgProbe(runner).Installed(context.Background(), "jq")
	if err == nil {
		t.Error("Installed() error = nil, want the runner error")
	}
}

func TestBrewProbe_Installed(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("brew", []string{"list", "jq"}, ports.CommandResult{ExitCode: 0})
	runner.AddResult("brew", []string{"list", "fzf"}, ports.CommandResult{ExitCode: 1})

	p := NewBrewProbe(runner)

	got, err := p.Installed(context.Background(), "jq")
	if err != nil || !got {
		t.Errorf("Installed(jq) = (%v, %v), want (true, nil)", got, err)
	}

	got, err = p.Installed(context.Background(), "fzf")
	if err != nil || got {
		t.Errorf("Installed(fzf) = (%v, %v), want (false, nil)", got, err)
	}
}

func TestBrewCaskProbe_UsesCaskFlag(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("brew", []string{"list", "--cask", "visual-studio-code"}, ports.CommandResult{ExitCode: 0})

	got, err := NewBrewCaskProbe(runner).Installed(context.Background(), "visual-studio-code")
	if err != nil {
		t.Fatalf("Installed() error = %v", err)
	}
	if !got {
		t.Error("Installed() = false, want true")
	}
	if runner.CallCount("brew", "list", "--cask", "visual-studio-code") != 1 {
		t.Error("cask probe must pass --cask to brew list")
	}
}

func TestPathProbe_Installed(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("sh", []string{"-c", `command -v "$1"`, "sh", "starship"}, ports.CommandResult{ExitCode: 0, Stdout: "/usr/local/bin/starship\n"})
	runner.AddResult("sh", []string{"-c", `command -v "$1"`, "sh", "nothere"}, ports.CommandResult{ExitCode: 127})

	p := NewPathProbe(runner)

	got, err := p.Installed(context.Background(), "starship")
	if err != nil || !got {
		t.Errorf("Installed(starship) = (%v, %v), want (true, nil)", got, err)
	}

	got, err = p.Installed(context.Background(), "nothere")
	if err != nil || got {
		t.Errorf("Installed(nothere) = (%v, %v), want (false, nil)", got, err)
	}
}

func TestPathProbe_NameStaysOutOfTheScript(t *testing.T) {
	hostile := "x;touch /tmp/marker"

	runner := mocks.NewCommandRunner()
	runner.AddResult("sh", []string{"-c", `command -v "$1"`, "sh", hostile}, ports.CommandResult{ExitCode: 127})

	got, err := NewPathProbe(runner).Installed(context.Background(), hostile)
	if err != nil {
		t.Fatalf("Installed() error = %v", err)
	}
	if got {
		t.Error("Installed() = true, want false")
	}

	// The script argument must be the fixed lookup; the name only ever
	// travels as a positional parameter.
	for _, call := range runner.Calls() {
		if strings.Contains(call.Args[1], hostile) {
			t.Errorf("name leaked into the shell script: %q", call.Args[1])
		}
	}
}

func TestNpmProbe_Installed(t *testing.T) {
	runner := mocks.NewCommandRunner()
	runner.AddResult("npm", []string{"ls", "-g", "--depth=0", "typescript"}, ports.CommandResult{ExitCode: 0})
	runner.AddResult("npm", []string{"ls", "-g", "--depth=0", "prettier"}, ports.CommandResult{ExitCode: 1})

	p := NewNpmProbe(runner)

	got, err := p.Installed(context.Background(), "typescript")
	if err != nil || !got {
		t.Errorf("Installed(typescript) = (%v, %v), want (true, nil)", got, err)
	}

	got, err = p.Installed(context.Background(), "prettier")
	if err != nil || got {
		t.Errorf("Installed(prettier) = (%v, %v), want (false, nil)", got, err)
	}
}
