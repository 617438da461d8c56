// Package snake implements the classic snake game with two kinds of food.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/engine"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

// ID is the catalog identifier.
const ID = "snake"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) delta() core.Point {
	switch d {
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	case DirUp:
		return core.Point{Y: -1}
	default:
		return core.Point{X: 1}
	}
}

// FoodKind distinguishes the two foods.
type FoodKind int

const (
	Apple FoodKind = iota // 2x2 cluster
	Candy                 // single cell
)

// Food is the current food and every cell it covers.
type Food struct {
	Kind  FoodKind
	Cells []core.Point
}

func (f Food) covers(p core.Point) bool {
	for _, c := range f.Cells {
		if c == p {
			return true
		}
	}
	return false
}

// Game implements the Snake game.
type Game struct {
	shell engine.Shell
	cfg   config.SnakeConfig
	rc    core.RuntimeConfig
	rng   *rand.Rand

	body      []core.Point // head at index 0
	direction Direction
	nextDir   Direction // committed on the next motion tick
	food      Food

	score    int
	ticks    int
	gameOver bool
	won      bool
}

// New creates a snake game.
func New(cfg config.SnakeConfig) *Game {
	return &Game{
		shell: engine.NewShell(ID, cfg.Width*cellW+2+sidePanelW+2, cfg.Height+4),
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

	g.body = []core.Point{{X: g.cfg.Width / 2, Y: g.cfg.Height / 2}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.score = 0
	g.ticks = 0
	g.gameOver = false
	g.won = false
	g.spawnFood()
}

// Steer buffers a direction change. Reversing onto the body is ignored.
func (g *Game) Steer(d Direction) {
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
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
			g.Steer(DirUp)
		case core.ActionDown:
			g.Steer(DirDown)
		case core.ActionLeft:
			g.Steer(DirLeft)
		case core.ActionRight:
			g.Steer(DirRight)
		}
	}
}

// Tick moves the snake every MoveEvery ticks.
func (g *Game) Tick() {
	if !g.shell.Tick() || g.gameOver {
		return
	}
	g.ticks++
	if g.ticks%g.cfg.MoveEvery == 0 {
		g.Advance()
	}
}

// Advance performs one motion step.
func (g *Game) Advance() {
	if g.gameOver {
		return
	}
	g.direction = g.nextDir
	head := g.body[0].Add(g.direction.delta())

	if !g.inBounds(head) || g.onBody(head) {
		g.gameOver = true
		return
	}

	if g.food.covers(head) {
		g.score += g.foodScore(g.food.Kind)
		g.body = append([]core.Point{head}, g.body...)
		g.spawnFood()
		return
	}

	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head
}

func (g *Game) foodScore(k FoodKind) int {
	if k == Candy {
		return g.cfg.CandyScore
	}
	return g.cfg.AppleScore
}

func (g *Game) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.cfg.Width && p.Y >= 0 && p.Y < g.cfg.Height
}

func (g *Game) onBody(p core.Point) bool {
	for _, b := range g.body {
		if b == p {
			return true
		}
	}
	return false
}

// spawnFood places a new food where it overlaps neither the body nor the
// walls. An apple falls back to a candy when no 2x2 gap is left; a full
// field wins the game.
func (g *Game) spawnFood() {
	kind := Candy
	if g.rng.Float64() < g.cfg.AppleChance {
		kind = Apple
	}

	if kind == Apple {
		if spots := g.freeSpots(2); len(spots) > 0 {
			p := spots[g.rng.Intn(len(spots))]
			g.food = Food{Kind: Apple, Cells: []core.Point{
				p, {X: p.X + 1, Y: p.Y}, {X: p.X, Y: p.Y + 1}, {X: p.X + 1, Y: p.Y + 1},
			}}
			return
		}
	}

	spots := g.freeSpots(1)
	if len(spots) == 0 {
		g.food = Food{}
		g.won = true
		g.gameOver = true
		return
	}
	g.food = Food{Kind: Candy, Cells: []core.Point{spots[g.rng.Intn(len(spots))]}}
}

// freeSpots lists top-left corners of empty n x n squares.
func (g *Game) freeSpots(n int) []core.Point {
	var out []core.Point
	for y := 0; y+n <= g.cfg.Height; y++ {
		for x := 0; x+n <= g.cfg.Width; x++ {
			if g.squareFree(x, y, n) {
				out = append(out, core.Point{X: x, Y: y})
			}
		}
	}
	return out
}

func (g *Game) squareFree(x, y, n int) bool {
	for dy := 0; dy < n; dy++ {
		for dx := 0; dx < n; dx++ {
			if g.onBody(core.Point{X: x + dx, Y: y + dy}) {
				return false
			}
		}
	}
	return true
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
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

// Snapshot is a copy of the simulation state for tests.
type Snapshot struct {
	Body      []core.Point
	Direction Direction
	NextDir   Direction
	Food      Food
	Score     int
	GameOver  bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Body:      append([]core.Point(nil), g.body...),
		Direction: g.direction,
		NextDir:   g.nextDir,
		Food:      Food{Kind: g.food.Kind, Cells: append([]core.Point(nil), g.food.Cells...)},
		Score:     g.score,
		GameOver:  g.gameOver,
	}
}

var _ engine.Game = (*Game)(nil)
