package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRainMaker loads the Rain Maker configuration.
// Search order: customPath -> ~/.rainmaker/configs/rainmaker.yaml -> ./configs/rainmaker.yaml -> embedded default
// Files are layered over the built-in defaults, so a partial file only
// overrides the keys it names.
func LoadRainMaker(customPath string) (RainMakerConfig, error) {
	cfg := DefaultRainMakerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("rainmaker.yaml"), filepath.Join("configs", "rainmaker.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path, cfg); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRainMakerYAML, &cfg); err != nil {
		return DefaultRainMakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable, malformed, or invalid
// files are skipped so the next location in the search order is used.
func tryLoad(path string, base RainMakerConfig) (RainMakerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if err := cfg.Validate(); err != nil {
		return base, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rainmaker", "configs", filename)
}

// ApplyRainMakerPreset modifies the config based on a difficulty preset.
func ApplyRainMakerPreset(cfg *RainMakerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the fuel budget and the win bar
	switch preset {
	case DifficultyEasy:
		cfg.Helicopter.InitialFuel = 35000
		cfg.Scoring.WinWaterLevel = 60
	case DifficultyHard:
		cfg.Helicopter.InitialFuel = 18000
		cfg.Scoring.WinWaterLevel = 90
	}
}
