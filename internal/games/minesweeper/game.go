// Package minesweeper implements the classic mine-clearing puzzle.
package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/engine"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

// ID is the catalog identifier.
const ID = "minesweeper"

// Game implements Minesweeper.
type Game struct {
	shell engine.Shell
	cfg   config.MinesweeperConfig
	rc    core.RuntimeConfig
	rng   *rand.Rand

	field    *Field
	cursor   core.Point
	gameOver bool
	won      bool
}

// New creates a minesweeper game.
func New(cfg config.MinesweeperConfig) *Game {
	return &Game{
		shell: engine.NewShell(ID, cfg.Width*cellW+2+sidePanelW+2, cfg.Height+4),
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Reset lays a fresh minefield and returns to the welcome screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.ResolveSeed()))
	g.shell.Welcome()
	g.shell.SetViewport(rc.ScreenW, rc.ScreenH)

	g.field = NewField(g.cfg.Width, g.cfg.Height, g.cfg.Mines, g.rng)
	g.cursor = core.Point{X: g.cfg.Width / 2, Y: g.cfg.Height / 2}
	g.gameOver = false
	g.won = false
}

// MoveCursor shifts the cursor, clamped to the field.
func (g *Game) MoveCursor(dx, dy int) {
	g.cursor.X = core.Clamp(g.cursor.X+dx, 0, g.field.W-1)
	g.cursor.Y = core.Clamp(g.cursor.Y+dy, 0, g.field.H-1)
}

// Cursor returns the cursor position.
func (g *Game) Cursor() core.Point {
	return g.cursor
}

// Reveal opens the cell under the cursor.
func (g *Game) Reveal() {
	if g.gameOver {
		return
	}
	if _, hit := g.field.Reveal(g.cursor.X, g.cursor.Y); hit {
		g.field.RevealMines()
		g.gameOver = true
		return
	}
	g.checkWin()
}

// ToggleFlag flags or unflags the cell under the cursor.
func (g *Game) ToggleFlag() {
	if g.gameOver {
		return
	}
	if g.field.ToggleFlag(g.cursor.X, g.cursor.Y) {
		g.checkWin()
	}
}

// checkWin ends the game when every safe cell is open or when the flags
// sit exactly on the mines.
func (g *Game) checkWin() {
	f := g.field
	if f.Cleared() || (f.Mines > 0 && f.FlagsMatchMines()) {
		f.RevealMines()
		g.won = true
		g.gameOver = true
	}
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
			g.MoveCursor(0, -1)
		case core.ActionDown:
			g.MoveCursor(0, 1)
		case core.ActionLeft:
			g.MoveCursor(-1, 0)
		case core.ActionRight:
			g.MoveCursor(1, 0)
		case core.ActionPrimary:
			g.Reveal()
		case core.ActionFlag:
			g.ToggleFlag()
		}
	}
}

// Tick only drives the pause overlay.
func (g *Game) Tick() {
	g.shell.Tick()
}

// State returns the externally visible game state. Score counts the
// revealed safe cells.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.field.RevealedSafe(),
		Phase:    g.shell.Phase(),
		GameOver: g.gameOver,
		Won:      g.won,
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

// Field exposes the minefield.
func (g *Game) Field() *Field {
	return g.field
}

// SetField swaps in a prepared minefield, used by tests and puzzles.
func (g *Game) SetField(f *Field) {
	g.field = f
	g.cursor = core.Point{}
	g.gameOver = false
	g.won = false
}

var _ engine.Game = (*Game)(nil)
