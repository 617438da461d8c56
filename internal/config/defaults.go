package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded configuration, used when even the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		TickMS:     16,
		Language:   "auto",
		Overlay:    "rust",
		Difficulty: DifficultyNormal,
		GoldMiner: GoldMinerConfig{
			BaseAngularSpeed: 0.5,
			ExtendSpeed:      20,
			RetractSpeed:     15,
			Ceiling:          2,
			SwingMargin:      10,
			BottomMargin:     5,
			CatchSlack:       1,
			MaxDeltaMS:       250,
			Items: ItemCounts{
				BigGold:        2,
				BigGoldExtra:   4,
				SmallGold:      4,
				SmallGoldExtra: 9,
				Stones:         3,
				StonesExtra:    9,
			},
			Difficulty: DifficultyConfig{
				Enabled:      true,
				InitialLevel: 0.0,
				Progression: ProgressionConfig{
					Type:  "level",
					MaxAt: 10,
				},
				Scaling: ScalingConfig{
					SpeedMultiplier:  1.0,
					WeightMultiplier: 0.8,
				},
			},
		},
		Tetris: TetrisConfig{
			Width:     10,
			Height:    20,
			DropEvery: 20,
		},
		Snake: SnakeConfig{
			Width:       20,
			Height:      20,
			MoveEvery:   10,
			AppleChance: 0.7,
			AppleScore:  50,
			CandyScore:  150,
		},
		T2048: T2048Config{
			Size:         4,
			Spawn4Chance: 0.1,
		},
		Minesweeper: MinesweeperConfig{
			Width:  16,
			Height: 16,
			Mines:  40,
		},
	}
}
