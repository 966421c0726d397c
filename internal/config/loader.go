package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const themeFile = "theme.yaml"

// LoadTheme loads the floodit theme.
// Search order: customPath -> ~/.floodit/theme.yaml -> ./configs/theme.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadTheme(customPath string) (ThemeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ThemeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseTheme(data)
		if err != nil {
			return ThemeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(themeFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseTheme(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", themeFile)); err == nil {
		if cfg, err := ParseTheme(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseTheme(defaultThemeYAML)
	if err != nil {
		return DefaultTheme(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseTheme decodes a theme document over the defaults and validates it.
func ParseTheme(data []byte) (ThemeConfig, error) {
	cfg := DefaultTheme()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ThemeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ThemeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floodit", filename)
}
