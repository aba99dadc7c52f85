package catalog

import (
	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/provider/brew"
	"github.com/rigup/rigup/internal/provider/macos"
	"github.com/rigup/rigup/internal/provider/npm"
	"github.com/rigup/rigup/internal/provider/runtime"
	"github.com/rigup/rigup/internal/provider/script"
)

// BuiltinDarwin returns the macOS workstation catalog.
func BuiltinDarwin(runner ports.CommandRunner, fs ports.FileSystem) *Catalog {
	c := New()

	core := Group{Name: "core", Essential: true}
	for _, formula := range []string{
		"git", "curl", "zsh", "tmux", "ripgrep", "fd", "jq", "htop",
	} {
		core.Steps = append(core.Steps, brew.NewFormulaStep(formula, runner))
	}
	_ = c.AddGroup(core)

	editors := Group{Name: "editors"}
	editors.Steps = append(editors.Steps,
		brew.NewFormulaStep("neovim", runner),
		brew.NewCaskStep("visual-studio-code", runner).
			WithSeverity(step.SeverityOptional),
	)
	_ = c.AddGroup(editors)

	runtimes := Group{Name: "runtimes"}
	runtimes.Steps = append(runtimes.Steps,
		brew.NewFormulaStep("fnm", runner),
		script.NewInstallerStep("rustup", "https://sh.rustup.rs", runner),
		brew.NewFormulaStep("starship", runner).
			WithSeverity(step.SeverityOptional),
		runtime.NewMinVersionStep("node", "18.0.0", runner),
	)
	_ = c.AddGroup(runtimes)

	npmTools := Group{Name: "npm-tools"}
	for _, pkg := range []string{"typescript", "prettier", "eslint"} {
		npmTools.Steps = append(npmTools.Steps, npm.NewGlobalPackageStep(pkg, runner))
	}
	_ = c.AddGroup(npmTools)

	settings := Group{Name: "settings"}
	settings.Steps = append(settings.Steps,
		macos.NewDefaultsStep("com.apple.finder", "AppleShowAllFiles", "true", macos.TypeBool, runner),
		macos.NewDefaultsStep("com.apple.dock", "autohide", "true", macos.TypeBool, runner),
		macos.NewDefaultsStep("NSGlobalDomain", "KeyRepeat", "2", macos.TypeInt, runner),
	)
	_ = c.AddGroup(settings)

	_ = c.AddGroup(dotfilesGroup("zsh", "~/.zshrc", fs))
	_ = c.AddGroup(gitGroup(fs))

	return c
}
