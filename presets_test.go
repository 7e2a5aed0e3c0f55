package main

import (
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultPresetsDecode(t *testing.T) {
	var file presetsFile
	if _, err := toml.Decode(defaultPresetsTOML, &file); err != nil {
		t.Fatalf("decode default presets: %v", err)
	}
	if len(file.Preset) < 3 {
		t.Fatalf("presets = %d, want at least 3", len(file.Preset))
	}
	for _, p := range file.Preset {
		if p.Name == "" || len(p.Items) == 0 {
			t.Fatalf("preset %+v missing name or items", p)
		}
	}
}

func TestEnsurePresetsWritesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := ensurePresets()
	if err != nil {
		t.Fatalf("ensurePresets: %v", err)
	}

	presets, err := loadPresets()
	if err != nil {
		t.Fatalf("loadPresets: %v", err)
	}
	if len(presets) < 3 {
		t.Fatalf("presets from %s = %d, want at least 3", path, len(presets))
	}

	// Second call must not rewrite or fail on the existing file.
	again, err := ensurePresets()
	if err != nil || again != path {
		t.Fatalf("ensurePresets again = %q, %v; want %q, nil", again, err, path)
	}
}

func TestInteractionTableCoversCoreKinds(t *testing.T) {
	table := interactionTable(newKeyMap())
	kinds := map[string]bool{}
	for _, entry := range table {
		kinds[entry.kind] = true
	}
	if !kinds["submit"] || !kinds["pick"] {
		t.Fatalf("interaction table kinds = %v, want submit and pick", kinds)
	}
}
