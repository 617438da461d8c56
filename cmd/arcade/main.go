// arcade is a collection of terminal games: a gold miner hook game,
// tetris, snake, 2048 and minesweeper.
//
// Usage:
//
//	arcade                   - Start the game picker menu
//	arcade play <game>       - Play one game directly
//	arcade list              - List available games
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--lang <en|zh>       - Display language
//	--overlay <style>    - Pause overlay style: rust, go or cmake
//	--difficulty <name>  - easy, normal, hard or fixed
//	--seed <value>       - RNG seed for reproducible boards
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagLang       string
	flagOverlay    string
	flagDifficulty string
	flagSeed       int64
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Terminal Game Collection",
	Long: `A collection of classic games for the terminal.

Start without a command to pick a game from the menu. Press P or Esc in a
game to pause it and pretend to compile code.

Examples:
  arcade
  arcade --lang zh --overlay go
  arcade play minesweeper --difficulty easy
  arcade serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagLang, "lang", "", "Display language: en, zh or auto")
	pf.StringVar(&flagOverlay, "overlay", "", "Pause overlay style: rust, go or cmake")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
