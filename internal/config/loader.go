package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/digger.yaml"

// LoadDigger loads the digger configuration.
// Search order: customPath -> ~/.digger/configs/digger.yaml -> ./configs/digger.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or broken.
func LoadDigger(customPath string) (DiggerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DiggerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDigger(data)
		if err != nil {
			return DiggerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("digger.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDigger(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parseDigger(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDigger(), nil
}

// embeddedDigger decodes the embedded YAML, falling back to the hardcoded
// defaults if that fails.
func embeddedDigger() DiggerConfig {
	cfg := DefaultDiggerConfig()
	if err := yaml.Unmarshal(defaultDiggerYAML, &cfg); err != nil {
		return DefaultDiggerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return DefaultDiggerConfig()
	}
	return cfg
}

// parseDigger decodes data over the embedded defaults and validates the result.
func parseDigger(data []byte) (DiggerConfig, error) {
	cfg := embeddedDigger()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DiggerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DiggerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".digger", "configs", filename)
}
