package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "arcade.yaml"

// Load reads the arcade configuration.
// Search order: customPath -> ~/.arcade/config.yaml -> ./configs/arcade.yaml -> embedded default.
// Files only need to name the fields they change; everything else keeps
// its default.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		next := cfg
		if err := yaml.Unmarshal(data, &next); err != nil {
			continue
		}
		return next, next.Validate()
	}

	return cfg, nil
}

func embeddedDefault() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// userConfigPath returns ~/.arcade/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "config.yaml")
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Environment overrides.
const (
	EnvLanguage = "ARCADE_LANG"
	EnvOverlay  = "ARCADE_OVERLAY"
	EnvTickMS   = "ARCADE_TICK_MS"
)

// ApplyEnv overrides settings from ARCADE_* variables.
func ApplyEnv(cfg *Config) error {
	cfg.Language = GetEnv(EnvLanguage, cfg.Language)
	cfg.Overlay = GetEnv(EnvOverlay, cfg.Overlay)
	if v := GetEnv(EnvTickMS, ""); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q is not a number: %w", EnvTickMS, v, err)
		}
		cfg.TickMS = ms
	}
	return cfg.Validate()
}

// ApplyPreset adjusts speeds and counts for a difficulty preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty = preset

	gm := &cfg.GoldMiner.Difficulty
	if preset == DifficultyFixed {
		gm.Enabled = false
	} else {
		gm.Enabled = true
		gm.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Tetris.DropEvery = cfg.Tetris.DropEvery * 3 / 2
		cfg.Snake.MoveEvery = cfg.Snake.MoveEvery * 3 / 2
		cfg.Minesweeper.Mines = scaleMines(cfg.Minesweeper, 0.625)
		cfg.T2048.Spawn4Chance /= 2
	case DifficultyHard:
		cfg.Tetris.DropEvery = max(cfg.Tetris.DropEvery*3/5, 1)
		cfg.Snake.MoveEvery = max(cfg.Snake.MoveEvery*3/5, 1)
		cfg.Minesweeper.Mines = scaleMines(cfg.Minesweeper, 1.5)
		cfg.T2048.Spawn4Chance = min(cfg.T2048.Spawn4Chance*2, 1)
	}
}

func scaleMines(m MinesweeperConfig, factor float64) int {
	n := int(float64(m.Mines) * factor)
	return min(max(n, 1), m.Width*m.Height-1)
}
