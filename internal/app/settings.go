package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"github.com/rigup/rigup/internal/ports"
)

// SettingsPath is the optional per-user settings file.
const SettingsPath = "~/.config/rigup/settings.toml"

// Settings are user preferences that apply to every run. Flags override
// them per invocation.
type Settings struct {
	// LogPath overrides the default run log location.
	LogPath string `toml:"log_path"`
	// Color toggles styled output.
	Color bool `toml:"color"`
	// Skip lists catalog groups excluded by default.
	Skip []string `toml:"skip"`
	// Verify enables post-apply verification by default.
	Verify bool `toml:"verify"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{Color: true}
}

// LoadSettings reads the settings file. A missing file yields the
// defaults; a malformed file is an error so typos do not silently
// disable preferences.
func LoadSettings(filesystem ports.FileSystem) (Settings, error) {
	settings := DefaultSettings()

	path := ports.ExpandPath(SettingsPath)
	if !filesystem.Exists(path) {
		return settings, nil
	}

	data, err := filesystem.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings: %w", err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse %s: %w", SettingsPath, err)
	}
	return settings, nil
}
