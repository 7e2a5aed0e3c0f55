package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Preset item lists (TOML-based)
// ---------------------------------------------------------------------------

// preset is a named, ready-made item list a user can feed into the widget
// in one go. Presets are seed data only; the widget never writes back.
type preset struct {
	Name  string   `toml:"name"`
	Items []string `toml:"items"`
}

// presetsFile is the top-level TOML structure.
type presetsFile struct {
	Preset []preset `toml:"preset"`
}

const defaultPresetsTOML = `# Lucky Dip presets
# Add new [[preset]] blocks for lists you pick from often.

[[preset]]
name = "Lunch"
items = ["Pizza", "Ramen", "Burrito", "Falafel", "Bánh mì"]

[[preset]]
name = "Movie night"
items = ["Action", "Comedy", "Documentary", "Horror", "Sci-fi"]

[[preset]]
name = "Coin flip"
items = ["Heads", "Tails"]
`

// presetsDir returns the directory for luckydip data files, using
// XDG_CONFIG_HOME or falling back to ~/.config.
func presetsDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "luckydip"), nil
}

// presetsPath returns the full path to the presets.toml file.
func presetsPath() (string, error) {
	dir, err := presetsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.toml"), nil
}

// ensurePresets writes the default presets file if none exists yet and
// returns its path.
func ensurePresets() (string, error) {
	path, err := presetsPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir presets dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultPresetsTOML), 0o644); err != nil {
		return "", fmt.Errorf("write default presets: %w", err)
	}
	return path, nil
}

func loadPresets() ([]preset, error) {
	path, err := ensurePresets()
	if err != nil {
		return nil, err
	}
	var file presetsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return file.Preset, nil
}

func loadPresetsCmd() tea.Cmd {
	return func() tea.Msg {
		presets, err := loadPresets()
		return presetsLoadedMsg{presets: presets, err: err}
	}
}
