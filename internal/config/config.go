// Package config provides YAML-based arcade configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

// Config is the whole arcade configuration.
type Config struct {
	TickMS      int               `yaml:"tick_ms"`
	Language    string            `yaml:"language"` // en, zh or auto
	Overlay     string            `yaml:"overlay"`  // rust, go or cmake
	Difficulty  DifficultyPreset  `yaml:"difficulty"`
	GoldMiner   GoldMinerConfig   `yaml:"goldminer"`
	Tetris      TetrisConfig      `yaml:"tetris"`
	Snake       SnakeConfig       `yaml:"snake"`
	T2048       T2048Config       `yaml:"t2048"`
	Minesweeper MinesweeperConfig `yaml:"minesweeper"`
}

// GoldMinerConfig tunes the hook physics and item generation.
type GoldMinerConfig struct {
	BaseAngularSpeed float64          `yaml:"base_angular_speed"` // radians per second at level 1
	ExtendSpeed      float64          `yaml:"extend_speed"`       // rows per second
	RetractSpeed     float64          `yaml:"retract_speed"`      // rows per second with nothing caught
	Ceiling          float64          `yaml:"ceiling"`            // resting hook row
	SwingMargin      int              `yaml:"swing_margin"`
	BottomMargin     int              `yaml:"bottom_margin"`
	CatchSlack       float64          `yaml:"catch_slack"`
	MaxDeltaMS       int              `yaml:"max_delta_ms"`
	Items            ItemCounts       `yaml:"items"`
	Difficulty       DifficultyConfig `yaml:"difficulty"`
}

// ItemCounts is the number of items at level 1 and how many more appear
// once the level curve is maxed out.
type ItemCounts struct {
	BigGold        int `yaml:"big_gold"`
	BigGoldExtra   int `yaml:"big_gold_extra"`
	SmallGold      int `yaml:"small_gold"`
	SmallGoldExtra int `yaml:"small_gold_extra"`
	Stones         int `yaml:"stones"`
	StonesExtra    int `yaml:"stones_extra"`
}

// TetrisConfig defines the well size and gravity.
type TetrisConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	DropEvery int `yaml:"drop_every"` // ticks per gravity step
}

// SnakeConfig defines the field size and speed.
type SnakeConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	MoveEvery   int     `yaml:"move_every"` // ticks per step
	AppleChance float64 `yaml:"apple_chance"`
	AppleScore  int     `yaml:"apple_score"`
	CandyScore  int     `yaml:"candy_score"`
}

// T2048Config defines the tile board.
type T2048Config struct {
	Size         int     `yaml:"size"`
	Spawn4Chance float64 `yaml:"spawn4_chance"`
}

// MinesweeperConfig defines the minefield.
type MinesweeperConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// DifficultyConfig defines a difficulty curve.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the curve.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score" or "none"
	MaxAt int    `yaml:"max_at"` // value at which the curve is maxed
}

// ScalingConfig defines how much parameters grow at the top of the curve.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`
	WeightMultiplier float64 `yaml:"weight_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the starting point on the curve.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.4
	default:
		return 0.0
	}
}

// TickInterval returns the main loop period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// DisplayLanguage resolves the language setting; "auto" consults lang,
// the LANG environment value.
func (c Config) DisplayLanguage(lang string) i18n.Language {
	if l, ok := i18n.ParseLanguage(c.Language); ok {
		return l
	}
	return i18n.Detect(lang)
}

// OverlayStyle resolves the overlay setting.
func (c Config) OverlayStyle() overlay.Style {
	s, _ := overlay.ParseStyle(c.Overlay)
	return s
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.TickMS > 0, "tick_ms must be positive, got %d", c.TickMS)
	if c.Language != "" && c.Language != "auto" {
		_, ok := i18n.ParseLanguage(c.Language)
		check(ok, "language must be en, zh or auto, got %q", c.Language)
	}
	if c.Overlay != "" {
		_, ok := overlay.ParseStyle(c.Overlay)
		check(ok, "overlay must be rust, go or cmake, got %q", c.Overlay)
	}
	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}

	g := c.GoldMiner
	check(g.BaseAngularSpeed > 0, "goldminer.base_angular_speed must be positive")
	check(g.ExtendSpeed > 0, "goldminer.extend_speed must be positive")
	check(g.RetractSpeed > 0, "goldminer.retract_speed must be positive")
	check(g.MaxDeltaMS > 0, "goldminer.max_delta_ms must be positive")
	check(g.Difficulty.Progression.MaxAt > 1, "goldminer.difficulty.progression.max_at must be above 1")

	check(c.Tetris.Width >= 4 && c.Tetris.Height >= 4, "tetris board must be at least 4x4, got %dx%d", c.Tetris.Width, c.Tetris.Height)
	check(c.Tetris.DropEvery > 0, "tetris.drop_every must be positive")

	check(c.Snake.Width >= 4 && c.Snake.Height >= 4, "snake field must be at least 4x4, got %dx%d", c.Snake.Width, c.Snake.Height)
	check(c.Snake.MoveEvery > 0, "snake.move_every must be positive")
	check(c.Snake.AppleChance >= 0 && c.Snake.AppleChance <= 1, "snake.apple_chance must be within [0, 1]")

	check(c.T2048.Size >= 2, "t2048.size must be at least 2, got %d", c.T2048.Size)
	check(c.T2048.Spawn4Chance >= 0 && c.T2048.Spawn4Chance <= 1, "t2048.spawn4_chance must be within [0, 1]")

	m := c.Minesweeper
	check(m.Width > 0 && m.Height > 0, "minesweeper board must be non-empty")
	check(m.Mines > 0 && m.Mines < m.Width*m.Height, "minesweeper.mines must be between 1 and %d, got %d", m.Width*m.Height-1, m.Mines)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
}
