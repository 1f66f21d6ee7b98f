package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSkyfall loads the Skyfall configuration.
// Search order: customPath -> ~/.skyfall/configs/skyfall.yaml -> ./configs/skyfall.yaml -> embedded default
func LoadSkyfall(customPath string) (SkyfallConfig, error) {
	var cfg SkyfallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("skyfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/skyfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkyfallYAML, &cfg); err != nil {
		return DefaultSkyfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfall", "configs", filename)
}

// ApplySkyfallPreset modifies the config based on a difficulty preset.
func ApplySkyfallPreset(cfg *SkyfallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust spawn pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.DelayMin = 0.6
		cfg.Hazards.DelayMax = 1.4
	case DifficultyHard:
		cfg.Hazards.DelayMin = 0.2
		cfg.Hazards.DelayMax = 0.7
	}
}
