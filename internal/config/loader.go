package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/rainbow.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.rainbow/configs/rainbow.yaml -> ./configs/rainbow.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// The returned source names where the configuration came from.
func Load(customPath string) (cfg RainbowConfig, source string, err error) {
	// Try custom path first
	if customPath != "" {
		cfg, err = loadFile(customPath)
		if err != nil {
			return DefaultRainbowConfig(), "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("rainbow.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(LocalConfigPath); err == nil {
		return cfg, LocalConfigPath, nil
	}

	// Use embedded default YAML
	cfg, err = Parse(defaultRainbowYAML)
	if err != nil {
		return DefaultRainbowConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (RainbowConfig, error) {
	cfg := DefaultRainbowConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse: %w", err)
	}
	if len(cfg.Render.Caption) == 0 {
		cfg.Render.Caption = append([]string(nil), DefaultCaption...)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg RainbowConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// loadFile reads and parses a single config file.
func loadFile(path string) (RainbowConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RainbowConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rainbow", "configs", filename)
}
