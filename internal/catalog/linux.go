package catalog

import (
	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/provider/apt"
	"github.com/rigup/rigup/internal/provider/files"
	"github.com/rigup/rigup/internal/provider/gitcfg"
	"github.com/rigup/rigup/internal/provider/npm"
	"github.com/rigup/rigup/internal/provider/runtime"
	"github.com/rigup/rigup/internal/provider/script"
)

// BuiltinLinux returns the Linux workstation catalog.
func BuiltinLinux(runner ports.CommandRunner, fs ports.FileSystem) *Catalog {
	c := New()

	core := Group{Name: "core", Essential: true}
	for _, pkg := range []string{
		"git", "curl", "build-essential", "zsh", "tmux",
		"ripgrep", "fd-find", "jq", "htop", "unzip",
	} {
		core.Steps = append(core.Steps, apt.NewPackageStep(pkg, runner))
	}
	_ = c.AddGroup(core)

	editors := Group{Name: "editors"}
	editors.Steps = append(editors.Steps,
		apt.NewPPAStep("ppa:neovim-ppa/stable", runner),
		apt.NewPackageStep("neovim", runner),
	)
	_ = c.AddGroup(editors)

	runtimes := Group{Name: "runtimes"}
	runtimes.Steps = append(runtimes.Steps,
		script.NewInstallerStep("rustup", "https://sh.rustup.rs", runner),
		script.NewInstallerStep("fnm", "https://fnm.vercel.app/install", runner),
		script.NewInstallerStep("starship", "https://starship.rs/install.sh", runner).
			WithSeverity(step.SeverityOptional),
		runtime.NewMinVersionStep("node", "18.0.0", runner),
	)
	_ = c.AddGroup(runtimes)

	npmTools := Group{Name: "npm-tools"}
	for _, pkg := range []string{"typescript", "prettier", "eslint"} {
		npmTools.Steps = append(npmTools.Steps, npm.NewGlobalPackageStep(pkg, runner))
	}
	_ = c.AddGroup(npmTools)

	_ = c.AddGroup(dotfilesGroup("zsh", "~/.zshrc", fs))
	_ = c.AddGroup(gitGroup(fs))

	return c
}

// dotfilesGroup holds the shell configuration edits shared by both
// machine catalogs.
func dotfilesGroup(shell, rcPath string, fs ports.FileSystem) Group {
	aliases := "alias ll='ls -alF'\n" +
		"alias gs='git status'\n" +
		"alias gd='git diff'\n"

	return Group{
		Name:      "dotfiles",
		Essential: true,
		Steps: []step.Step{
			files.NewManagedBlockStep("aliases", rcPath, aliases, fs),
			files.NewLineInFileStep(
				shell+"-starship", rcPath,
				`eval "$(starship init `+shell+`)"`, fs,
			).WithSeverity(step.SeverityOptional),
		},
	}
}

// gitGroup holds the global git configuration. Skippable via --skip-git.
func gitGroup(fs ports.FileSystem) Group {
	return Group{
		Name: "git",
		Steps: []step.Step{
			gitcfg.NewConfigStep("init.defaultBranch", "main", fs),
			gitcfg.NewConfigStep("pull.rebase", "true", fs),
			gitcfg.NewConfigStep("fetch.prune", "true", fs),
			gitcfg.NewConfigStep("core.editor", "nvim", fs).
				WithSeverity(step.SeverityOptional),
		},
	}
}
