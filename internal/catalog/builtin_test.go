package catalog

import (
	"testing"

	"github.com/rigup/rigup/internal/testutil/mocks"
)

func TestBuiltinLinux(t *testing.T) {
	c := BuiltinLinux(mocks.NewCommandRunner(), mocks.NewFileSystem())

	want := []string{"core", "editors", "runtimes", "npm-tools", "dotfiles", "git"}
	got := c.Groups()
	if len(got) != len(want) {
		t.Fatalf("Groups() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Groups()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	ids := stepIDs(c.Steps(Selection{}))
	for _, id := range []string{
		"apt:package:git",
		"apt:ppa:ppa-neovim-ppa/stable",
		"script:installer:rustup",
		"runtime:minversion:node",
		"npm:global:typescript",
		"files:block:aliases",
		"git:config:init.defaultBranch",
	} {
		if !contains(ids, id) {
			t.Errorf("Linux catalog missing step %q", id)
		}
	}
}

func TestBuiltinDarwin(t *testing.T) {
	c := BuiltinDarwin(mocks.NewCommandRunner(), mocks.NewFileSystem())

	ids := stepIDs(c.Steps(Selection{}))
	for _, id := range []string{
		"brew:formula:git",
		"brew:cask:visual-studio-code",
		"macos:defaults:com.apple.dock:autohide",
		"files:block:aliases",
		"git:config:init.defaultBranch",
	} {
		if !contains(ids, id) {
			t.Errorf("Darwin catalog missing step %q", id)
		}
	}
	if contains(ids, "apt:package:git") {
		t.Error("Darwin catalog must not contain apt steps")
	}
}

func TestBuiltins_MinimalKeepsCoreAndDotfiles(t *testing.T) {
	for _, tt := range []struct {
		name string
		c    *Catalog
	}{
		{name: "linux", c: BuiltinLinux(mocks.NewCommandRunner(), mocks.NewFileSystem())},
		{name: "darwin", c: BuiltinDarwin(mocks.NewCommandRunner(), mocks.NewFileSystem())},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ids := stepIDs(tt.c.Steps(Selection{Minimal: true}))
			if len(ids) == 0 {
				t.Fatal("minimal selection is empty")
			}
			if contains(ids, "npm:global:typescript") {
				t.Error("minimal selection must drop npm-tools")
			}
			if !contains(ids, "files:block:aliases") {
				t.Error("minimal selection must keep dotfiles")
			}
		})
	}
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
