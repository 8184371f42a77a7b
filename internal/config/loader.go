package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMatcher loads the matcher configuration.
// Search order: customPath -> ~/.matcher/configs/matcher.yaml -> ./configs/matcher.yaml -> embedded default
// Files are decoded over the defaults, so partial files only override what they name.
func LoadMatcher(customPath string) (MatcherConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMatcherConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMatcher(data)
		if err != nil {
			return DefaultMatcherConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("matcher.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMatcher(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/matcher.yaml"); err == nil {
		if cfg, err := parseMatcher(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMatcher(defaultMatcherYAML)
	if err != nil {
		return DefaultMatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseMatcher decodes YAML over the defaults and validates the result.
func parseMatcher(data []byte) (MatcherConfig, error) {
	cfg := DefaultMatcherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".matcher", "configs", filename)
}
