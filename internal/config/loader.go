package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search directories.
const FileName = "kabuto.yaml"

// Load loads the kabuto configuration.
// Search order: customPath -> ~/.kabuto/configs/kabuto.yaml -> ./configs/kabuto.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. An explicit customPath that cannot be read or parsed is an
// error; the implicit locations are skipped silently.
func Load(customPath string) (KabutoConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KabutoConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return KabutoConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Default returns the embedded default configuration, falling back to the
// hardcoded one if the embed cannot be parsed.
func Default() KabutoConfig {
	cfg := DefaultKabutoConfig()
	if err := yaml.Unmarshal(defaultKabutoYAML, &cfg); err != nil {
		return DefaultKabutoConfig()
	}
	return cfg
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (KabutoConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KabutoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return KabutoConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg KabutoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kabuto", "configs", filename)
}
