package engineconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine prefs file, relative to the
// process working directory.
const EngineConfigPath = "config/engine.yaml"

// EnginePrefs holds engine-only preferences (debug overlays, input
// logging), persisted across runs. The demo's projection and motion
// constants (window size, focal distance, step sizes) are compile-time and
// deliberately not configurable here.
type EnginePrefs struct {
	ShowFPS    bool `yaml:"show_fps"`
	ShowCamera bool `yaml:"show_camera"`
	LogInput   bool `yaml:"log_input"`
}

// Default returns default engine preferences (overlays off, input logging on).
func Default() EnginePrefs {
	return EnginePrefs{
		ShowFPS:    false,
		ShowCamera: false,
		LogInput:   true,
	}
}

// Load reads engine preferences from config/engine.yaml. If the file is
// missing or invalid, returns Default() and does not create a file.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom is Load with an explicit path.
func LoadFrom(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes engine preferences to config/engine.yaml, creating the
// config directory if needed.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo is Save with an explicit path.
func SaveTo(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
