package grip

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the part of a view worth keeping between runs: its name, the
// zoom slider position, and the active workspace. Object transforms are
// deliberately not part of it; their persistence belongs to the host's
// session format.
type Settings struct {
	Name      string `yaml:"name"`
	Zoom      int    `yaml:"zoom"`
	Workspace int    `yaml:"workspace"`
}

// Settings captures the view's persistable state.
func (v *View) Settings(name string) Settings {
	return Settings{
		Name:      name,
		Zoom:      v.Size(),
		Workspace: v.Workspace,
	}
}

// ApplySettings restores zoom and workspace from a settings snapshot.
func (v *View) ApplySettings(s Settings) {
	v.Resize(s.Zoom)
	v.Workspace = s.Workspace
}

// LoadSettings reads a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	var s Settings
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes a YAML settings file.
func SaveSettings(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
