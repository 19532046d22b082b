package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// A custom path that fails to read, parse, or validate is an error; the
// fallback locations are skipped silently when unusable.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// "normal" keeps the loaded values; "fixed" disables the time-based ramp.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gaps.Base *= 1.25
		cfg.Gaps.Max *= 1.25
		cfg.Ramp.PeriodTicks = cfg.Ramp.PeriodTicks * 3 / 2
		cfg.Buffer.MaxExtra = cfg.Buffer.MaxExtra * 2 / 3
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.3
		cfg.Ramp.PeriodTicks = cfg.Ramp.PeriodTicks * 2 / 3
		cfg.Ramp.SpeedIncrement *= 1.5
		cfg.Ramp.MaxSpeed *= 1.25
	case DifficultyFixed:
		cfg.Ramp.SpeedIncrement = 0
	}
}
