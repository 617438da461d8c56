package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/terminal-games/internal/arcade"
	"github.com/vovakirdan/terminal-games/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing one game directly, skipping the menu.

Controls:
  Enter      - Start from the welcome screen
  Arrows/WASD - Move, steer or slide
  Space      - Release hook / hard drop / reveal
  F          - Flag (minesweeper)
  P/Esc      - Pause and resume
  R          - Restart after game over
  Q          - Quit

Difficulty options:
  easy   - Slower pieces and snake, fewer mines
  normal - Configured values
  hard   - Faster pieces and snake, more mines, gold miner starts further up the curve
  fixed  - Gold miner never speeds up

Examples:
  arcade play goldminer
  arcade play tetris --difficulty hard
  arcade play 2048 --seed 42
  arcade play mines --lang zh`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	kind, err := registry.Lookup(args[0])
	if err != nil {
		return err
	}
	return runLocal(func(d *arcade.Dispatcher) {
		d.Play(kind)
	})
}
