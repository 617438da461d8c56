// Package t2048 implements the 2048 sliding tile puzzle.
package t2048

import (
	"math/rand"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/engine"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

// ID is the catalog identifier.
const ID = "2048"

// WinTile is the tile value that counts as a win. Play continues after it.
const WinTile = 2048

// Game implements the 2048 game.
type Game struct {
	shell engine.Shell
	cfg   config.T2048Config
	rc    core.RuntimeConfig
	rng   *rand.Rand

	board    Board
	score    int
	moves    int
	gameOver bool
}

// New creates a 2048 game.
func New(cfg config.T2048Config) *Game {
	return &Game{
		shell: engine.NewShell("t2048", cfg.Size*cellW+1+2, cfg.Size*cellH+1+5),
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Reset reinitializes the game in place with two starting tiles.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.ResolveSeed()))
	g.shell.Welcome()
	g.shell.SetViewport(rc.ScreenW, rc.ScreenH)

	g.board = NewBoard(g.cfg.Size)
	g.score = 0
	g.moves = 0
	g.gameOver = false
	g.spawnTile()
	g.spawnTile()
}

// spawnTile places a 2, or sometimes a 4, in a random empty cell.
func (g *Game) spawnTile() bool {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		return false
	}
	c := empty[g.rng.Intn(len(empty))]
	v := 2
	if g.rng.Float64() < g.cfg.Spawn4Chance {
		v = 4
	}
	g.board[c[1]][c[0]] = v
	return true
}

// Move slides the board and reports whether it changed. A changed board
// gets a new tile and is checked for game over.
func (g *Game) Move(dir Direction) bool {
	if g.gameOver {
		return false
	}
	next, gained, changed := Slide(g.board, dir)
	if !changed {
		return false
	}
	g.board = next
	g.score += gained
	g.moves++
	g.spawnTile()
	if !g.board.CanMove() {
		g.gameOver = true
	}
	return true
}

// HandleInput consumes one key.
func (g *Game) HandleInput(k core.Key) {
	switch g.shell.Route(k, g.gameOver) {
	case engine.EventRestart:
		g.Reset(g.rc.Reseeded(g.rng))
		g.shell.Begin()
	case engine.EventPass:
		switch core.ActionOf(k) {
		case core.ActionUp:
			g.Move(DirUp)
		case core.ActionDown:
			g.Move(DirDown)
		case core.ActionLeft:
			g.Move(DirLeft)
		case core.ActionRight:
			g.Move(DirRight)
		}
	}
}

// Tick only drives the pause overlay; the board changes on input alone.
func (g *Game) Tick() {
	g.shell.Tick()
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.shell.Phase(),
		GameOver: g.gameOver,
		Won:      g.board.MaxTile() >= WinTile,
	}
}

// SetLanguage switches the display language.
func (g *Game) SetLanguage(lang i18n.Language) {
	g.shell.SetLanguage(lang)
}

// SetOverlayStyle switches the pause overlay style.
func (g *Game) SetOverlayStyle(style overlay.Style) {
	g.shell.SetOverlayStyle(style)
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// SetBoard replaces the board, used by tests and puzzles.
func (g *Game) SetBoard(b Board) {
	g.board = b.Clone()
	g.gameOver = !g.board.CanMove()
}

var _ engine.Game = (*Game)(nil)
