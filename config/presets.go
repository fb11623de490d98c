package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named set of container options, stored as the string forms
// the configure surface accepts.
type Preset struct {
	Name    string            `yaml:"name"`
	Options map[string]string `yaml:"options"`
}

// PresetFile holds all configured presets.
type PresetFile struct {
	Presets []Preset `yaml:"presets"`
}

// DefaultPreset is always available, even with no presets file on disk.
var DefaultPreset = Preset{
	Name: "default",
	Options: map[string]string{
		"orientation": "vertical",
		"start":       "nw",
		"autoscroll":  "1",
		"center":      "0",
		"spacing":     "2",
		"minpad":      "5",
		"sticky":      "news",
	},
}

// LoadPresets loads the preset file from disk. A missing file yields just
// the built-in default; a present file always has the default ensured.
func LoadPresets() (*PresetFile, error) {
	path, err := GetPresetsFile()
	if err != nil {
		return nil, err
	}
	return LoadPresetsFrom(path)
}

// LoadPresetsFrom reads presets from an explicit path.
func LoadPresetsFrom(path string) (*PresetFile, error) {
	var file PresetFile

	if _, err := os.Stat(path); os.IsNotExist(err) {
		file = PresetFile{}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read presets: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse presets: %w", err)
		}
	}

	hasDefault := false
	for _, p := range file.Presets {
		if p.Name == DefaultPreset.Name {
			hasDefault = true
			break
		}
	}
	if !hasDefault {
		file.Presets = append([]Preset{DefaultPreset}, file.Presets...)
	}
	return &file, nil
}

// SavePresets writes the preset file to disk.
func SavePresets(file *PresetFile) error {
	path, err := GetPresetsFile()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write presets: %w", err)
	}
	return nil
}

// Find returns the named preset.
func (f *PresetFile) Find(name string) (Preset, bool) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Upsert replaces the preset with the same name or appends a new one.
func (f *PresetFile) Upsert(p Preset) {
	for i := range f.Presets {
		if f.Presets[i].Name == p.Name {
			f.Presets[i] = p
			return
		}
	}
	f.Presets = append(f.Presets, p)
}
