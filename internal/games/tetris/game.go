// Package tetris implements the falling-block puzzle.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/engine"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

// ID is the catalog identifier.
const ID = "tetris"

// lineScores is indexed by rows cleared at once.
var lineScores = [5]int{0, 100, 300, 500, 800}

// Game is the falling-block simulation.
type Game struct {
	shell engine.Shell
	cfg   config.TetrisConfig
	rc    core.RuntimeConfig
	rng   *rand.Rand

	// board[y][x] is 0 when empty, otherwise Kind+1 of the locked block.
	board [][]int

	kind  Kind
	next  Kind
	shape Shape
	px    int
	py    int

	score    int
	lines    int
	ticks    int
	gameOver bool
}

// New creates a falling-block game.
func New(cfg config.TetrisConfig) *Game {
	return &Game{
		shell: engine.NewShell(ID, cfg.Width*cellW+sidePanelW+4, cfg.Height+4),
		cfg:   cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Reset reinitializes the game in place and returns to the welcome screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc
	g.rng = rand.New(rand.NewSource(rc.ResolveSeed()))
	g.shell.Welcome()
	g.shell.SetViewport(rc.ScreenW, rc.ScreenH)

	g.board = make([][]int, g.cfg.Height)
	for y := range g.board {
		g.board[y] = make([]int, g.cfg.Width)
	}
	g.score = 0
	g.lines = 0
	g.ticks = 0
	g.gameOver = false
	g.next = g.randomKind()
	g.spawn()
}

func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(int(kindCount)))
}

// spawn brings the queued piece in at the top and queues another. The
// game ends when the spawn position is already blocked.
func (g *Game) spawn() {
	g.kind = g.next
	g.next = g.randomKind()
	g.shape = ShapeOf(g.kind)
	g.px = (g.cfg.Width - 4) / 2
	g.py = 0
	if !g.fits(g.shape, g.px, g.py) {
		g.gameOver = true
	}
}

// fits reports whether shape at (x, y) stays inside the walls and floor
// and overlaps no locked block. Rows above the top are open.
func (g *Game) fits(s Shape, x, y int) bool {
	ok := true
	s.each(func(dx, dy int) {
		bx, by := x+dx, y+dy
		if bx < 0 || bx >= g.cfg.Width || by >= g.cfg.Height {
			ok = false
			return
		}
		if by >= 0 && g.board[by][bx] != 0 {
			ok = false
		}
	})
	return ok
}

// Move shifts the active piece and reports whether it moved. Invalid
// moves leave the piece where it was.
func (g *Game) Move(dx, dy int) bool {
	if !g.fits(g.shape, g.px+dx, g.py+dy) {
		return false
	}
	g.px += dx
	g.py += dy
	return true
}

// Rotate turns the active piece clockwise if the result fits.
func (g *Game) Rotate() bool {
	r := g.shape.Rotated()
	if !g.fits(r, g.px, g.py) {
		return false
	}
	g.shape = r
	return true
}

// HardDrop drops the piece to the floor and locks it.
func (g *Game) HardDrop() {
	for g.Move(0, 1) {
	}
	g.lockPiece()
}

func (g *Game) lockPiece() {
	g.shape.each(func(dx, dy int) {
		bx, by := g.px+dx, g.py+dy
		if by >= 0 && by < g.cfg.Height && bx >= 0 && bx < g.cfg.Width {
			g.board[by][bx] = int(g.kind) + 1
		}
	})
	n := g.clearLines()
	g.lines += n
	g.score += lineScores[n]
	g.spawn()
}

// clearLines removes every full row at once, shifting the rest down, and
// returns how many were removed.
func (g *Game) clearLines() int {
	kept := make([][]int, 0, len(g.board))
	for _, row := range g.board {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	n := len(g.board) - len(kept)
	if n == 0 {
		return 0
	}
	fresh := make([][]int, n, len(g.board))
	for i := range fresh {
		fresh[i] = make([]int, g.cfg.Width)
	}
	g.board = append(fresh, kept...)
	return n
}

func full(row []int) bool {
	for _, c := range row {
		if c == 0 {
			return false
		}
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
		case core.ActionLeft:
			g.Move(-1, 0)
		case core.ActionRight:
			g.Move(1, 0)
		case core.ActionDown:
			g.Move(0, 1)
		case core.ActionUp:
			g.Rotate()
		case core.ActionPrimary:
			g.HardDrop()
		}
	}
}

// Tick applies gravity every DropEvery ticks.
func (g *Game) Tick() {
	if !g.shell.Tick() || g.gameOver {
		return
	}
	g.ticks++
	if g.ticks%g.cfg.DropEvery != 0 {
		return
	}
	if !g.Move(0, 1) {
		g.lockPiece()
	}
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Phase:    g.shell.Phase(),
		GameOver: g.gameOver,
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

var _ engine.Game = (*Game)(nil)
