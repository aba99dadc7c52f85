// Package validation guards the strings rigup interpolates into package
// manager and shell invocations.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// packageNamePattern covers apt, brew, and npm package names,
	// including scoped npm packages (@scope/name) and tap-qualified brew
	// formulae (tap/name).
	packageNamePattern = regexp.MustCompile(`^[@a-zA-Z0-9][a-zA-Z0-9@/_.+-]*$`)

	// ppaPattern matches ppa:owner/name.
	ppaPattern = regexp.MustCompile(`^ppa:[a-zA-Z0-9-]+/[a-zA-Z0-9.-]+$`)

	// shellMetaChars must never appear in values passed to a shell line.
	shellMetaChars = []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\n", "\r", " "}
)

// PackageName validates a package name for apt, brew, or npm.
func PackageName(name string) error {
	if name == "" {
		return fmt.Errorf("package name must not be empty")
	}
	if len(name) > 214 {
		return fmt.Errorf("package name too long")
	}
	if strings.ContainsRune(name, '\x00') {
		return fmt.Errorf("package name contains null byte")
	}
	for _, char := range shellMetaChars {
		if strings.Contains(name, char) {
			return fmt.Errorf("package name contains invalid character: %q", char)
		}
	}
	if !packageNamePattern.MatchString(name) {
		return fmt.Errorf("invalid package name %q", name)
	}
	return nil
}

// PPA validates an apt PPA reference of the form ppa:owner/name.
func PPA(ppa string) error {
	if !ppaPattern.MatchString(ppa) {
		return fmt.Errorf("invalid PPA %q: expected ppa:owner/name", ppa)
	}
	return nil
}

// InstallerURL validates the download URL of a curl-pipe installer.
// Only https is accepted.
func InstallerURL(url string) error {
	if !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("installer URL %q must use https", url)
	}
	for _, char := range []string{";", "&", "|", "$", "`", "<", ">", "\n", "\r", " ", "'", `"`} {
		if strings.Contains(url, char) {
			return fmt.Errorf("installer URL contains invalid character: %q", char)
		}
	}
	return nil
}
