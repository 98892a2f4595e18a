package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EmbeddedSource is the source reported when no config file was found.
const EmbeddedSource = "embedded"

// fileName is the config file looked up in each search directory.
const fileName = "dragon.yaml"

// Load loads and validates the game configuration.
// Search order: customPath -> ~/.dragon/configs/dragon.yaml -> ./configs/dragon.yaml -> embedded default
func Load(customPath string) (DragonConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports the file the configuration came
// from, or EmbeddedSource.
//
// A custom path must exist and parse. Files on the search path that are
// missing or malformed are skipped. Keys absent from a file keep their
// default values.
func LoadWithSource(customPath string) (DragonConfig, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

func load(customPath string) (DragonConfig, string, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		return cfg, customPath, err
	}

	for _, path := range searchPaths() {
		if cfg, err := readFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultDragonConfig()
	if err := yaml.Unmarshal(defaultDragonYAML, &cfg); err != nil {
		return DefaultDragonConfig(), EmbeddedSource, nil // Fallback to hardcoded if embed fails
	}
	return cfg, EmbeddedSource, nil
}

// readFile decodes a config file over the defaults.
func readFile(path string) (DragonConfig, error) {
	cfg := DefaultDragonConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths lists the config files tried when no custom path is given.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".dragon", "configs", fileName))
	}
	return append(paths, filepath.Join("configs", fileName))
}
