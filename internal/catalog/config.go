package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rigup/rigup/internal/domain/step"
	"github.com/rigup/rigup/internal/ports"
	"github.com/rigup/rigup/internal/provider/apt"
	"github.com/rigup/rigup/internal/provider/brew"
	"github.com/rigup/rigup/internal/provider/files"
	"github.com/rigup/rigup/internal/provider/gitcfg"
	"github.com/rigup/rigup/internal/provider/macos"
	"github.com/rigup/rigup/internal/provider/npm"
	"github.com/rigup/rigup/internal/provider/script"
	"github.com/rigup/rigup/internal/validation"
)

// fileCatalog is the YAML schema of a user-provided catalog file.
type fileCatalog struct {
	Groups []fileGroup `yaml:"groups"`
}

type fileGroup struct {
	Name       string          `yaml:"name"`
	Essential  bool            `yaml:"essential"`
	Apt        []string        `yaml:"apt"`
	Brew       []string        `yaml:"brew"`
	Casks      []string        `yaml:"casks"`
	Npm        []string        `yaml:"npm"`
	Installers []fileInstaller `yaml:"installers"`
	Lines      []fileLine      `yaml:"lines"`
	Blocks     []fileBlock     `yaml:"blocks"`
	Git        []fileGitKey    `yaml:"git"`
	Defaults   []fileDefault   `yaml:"defaults"`
}

type fileInstaller struct {
	Binary string `yaml:"binary"`
	URL    string `yaml:"url"`
}

type fileLine struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Line string `yaml:"line"`
}

type fileBlock struct {
	Section string `yaml:"section"`
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

type fileGitKey struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type fileDefault struct {
	Domain string `yaml:"domain"`
	Key    string `yaml:"key"`
	Value  string `yaml:"value"`
	Type   string `yaml:"type"`
}

// Load parses a YAML catalog and builds its steps. The file declares the
// same step kinds the built-in catalogs use; unknown fields are rejected.
func Load(data []byte, runner ports.CommandRunner, fs ports.FileSystem) (*Catalog, error) {
	var parsed fileCatalog

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := New()
	for _, g := range parsed.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("catalog group missing name")
		}
		group, err := buildGroup(g, runner, fs)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		if err := c.AddGroup(group); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string, runner ports.CommandRunner, fs ports.FileSystem) (*Catalog, error) {
	data, err := fs.ReadFile(ports.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Load(data, runner, fs)
}

func buildGroup(g fileGroup, runner ports.CommandRunner, fs ports.FileSystem) (Group, error) {
	group := Group{Name: g.Name, Essential: g.Essential}

	for _, pkg := range g.Apt {
		if err := validation.PackageName(pkg); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, apt.NewPackageStep(pkg, runner))
	}
	for _, formula := range g.Brew {
		if err := validation.PackageName(formula); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, brew.NewFormulaStep(formula, runner))
	}
	for _, cask := range g.Casks {
		if err := validation.PackageName(cask); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, brew.NewCaskStep(cask, runner))
	}
	for _, pkg := range g.Npm {
		if err := validation.PackageName(pkg); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, npm.NewGlobalPackageStep(pkg, runner))
	}
	for _, inst := range g.Installers {
		if inst.Binary == "" || inst.URL == "" {
			return Group{}, fmt.Errorf("installer needs binary and url")
		}
		if err := validation.PackageName(inst.Binary); err != nil {
			return Group{}, fmt.Errorf("installer binary: %w", err)
		}
		if err := validation.InstallerURL(inst.URL); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, script.NewInstallerStep(inst.Binary, inst.URL, runner))
	}
	for _, line := range g.Lines {
		if line.Name == "" || line.Path == "" {
			return Group{}, fmt.Errorf("line edit needs name and path")
		}
		if err := checkStepID("files", "line", line.Name); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, files.NewLineInFileStep(line.Name, line.Path, line.Line, fs))
	}
	for _, block := range g.Blocks {
		if block.Section == "" || block.Path == "" {
			return Group{}, fmt.Errorf("block edit needs section and path")
		}
		if err := checkStepID("files", "block", block.Section); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, files.NewManagedBlockStep(block.Section, block.Path, block.Content, fs))
	}
	for _, key := range g.Git {
		if err := checkStepID("git", "config", key.Key); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, gitcfg.NewConfigStep(key.Key, key.Value, fs))
	}
	for _, def := range g.Defaults {
		typ, err := defaultsType(def.Type)
		if err != nil {
			return Group{}, err
		}
		if err := checkStepID("macos", "defaults", def.Domain, def.Key); err != nil {
			return Group{}, err
		}
		group.Steps = append(group.Steps, macos.NewDefaultsStep(def.Domain, def.Key, def.Value, typ, runner))
	}

	return group, nil
}

// checkStepID verifies the parts form a valid step ID before any
// constructor builds one, so malformed catalog input surfaces as a load
// error instead of a panic.
func checkStepID(parts ...string) error {
	_, err := step.NewID(strings.Join(parts, ":"))
	return err
}

func defaultsType(raw string) (macos.DefaultsType, error) {
	switch raw {
	case "bool":
		return macos.TypeBool, nil
	case "int":
		return macos.TypeInt, nil
	case "string", "":
		return macos.TypeString, nil
	}
	return "", fmt.Errorf("unknown defaults type %q", raw)
}
