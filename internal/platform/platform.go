// Package platform detects which machine catalog applies: Linux or macOS,
// with enough environment detail (WSL, container) for log context.
package platform

import (
	"os"
	"runtime"
	"strings"
	"sync"
)

// OS is the operating system family rigup provisions.
type OS string

const (
	// OSLinux is a Linux workstation (native or WSL).
	OSLinux OS = "linux"
	// OSDarwin is a macOS workstation.
	OSDarwin OS = "darwin"
	// OSUnsupported is anything rigup does not provision.
	OSUnsupported OS = "unsupported"
)

// Environment qualifies where a Linux system is running.
type Environment string

const (
	// EnvNative is bare metal or a VM.
	EnvNative Environment = "native"
	// EnvWSL is Windows Subsystem for Linux.
	EnvWSL Environment = "wsl"
	// EnvContainer is a Docker or OCI container.
	EnvContainer Environment = "container"
)

// Platform is the detected machine description.
type Platform struct {
	os          OS
	arch        string
	environment Environment
}

var (
	detected   *Platform
	detectOnce sync.Once
)

// Detect returns the current platform. The result is cached.
func Detect() *Platform {
	detectOnce.Do(func() {
		detected = detect(runtime.GOOS)
	})
	return detected
}

// New builds a Platform with explicit values, for tests and for the
// dispatcher's --os override.
func New(osys OS, arch string, env Environment) *Platform {
	return &Platform{os: osys, arch: arch, environment: env}
}

func detect(goos string) *Platform {
	p := &Platform{arch: runtime.GOARCH, environment: EnvNative}

	switch goos {
	case "darwin":
		p.os = OSDarwin
	case "linux":
		p.os = OSLinux
		p.environment = linuxEnvironment()
	default:
		p.os = OSUnsupported
	}
	return p
}

// linuxEnvironment distinguishes WSL and containers from native Linux.
func linuxEnvironment() Environment {
	if data, err := os.ReadFile("/proc/version"); err == nil {
		version := strings.ToLower(string(data))
		if strings.Contains(version, "microsoft") || strings.Contains(version, "wsl") {
			return EnvWSL
		}
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return EnvContainer
	}
	if data, err := os.ReadFile("/proc/1/cgroup"); err == nil {
		cgroup := string(data)
		if strings.Contains(cgroup, "docker") || strings.Contains(cgroup, "containerd") {
			return EnvContainer
		}
	}

	return EnvNative
}

// OS returns the operating system family.
func (p *Platform) OS() OS {
	return p.os
}

// Arch returns the machine architecture.
func (p *Platform) Arch() string {
	return p.arch
}

// Environment returns the Linux environment qualifier.
func (p *Platform) Environment() Environment {
	return p.environment
}

// IsLinux reports whether this is a Linux workstation.
func (p *Platform) IsLinux() bool {
	return p.os == OSLinux
}

// IsMacOS reports whether this is a macOS workstation.
func (p *Platform) IsMacOS() bool {
	return p.os == OSDarwin
}

// Supported reports whether rigup can provision this machine.
func (p *Platform) Supported() bool {
	return p.os == OSLinux || p.os == OSDarwin
}

// String returns a human-readable description for log context.
func (p *Platform) String() string {
	parts := []string{string(p.os), p.arch}
	if p.environment != EnvNative {
		parts = append(parts, string(p.environment))
	}
	return strings.Join(parts, "/")
}
