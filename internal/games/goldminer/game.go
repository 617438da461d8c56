// Package goldminer implements the grappling-hook game: a hook swings
// from the top of the screen, the player drops it, and whatever it hits
// is reeled in for points.
package goldminer

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/engine"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

// ID is the catalog identifier.
const ID = "goldminer"

// Game is the gold miner simulation.
type Game struct {
	shell engine.Shell
	cfg   config.GoldMinerConfig
	curve *config.DifficultyManager
	rng   *rand.Rand
	seed  int64

	now  func() time.Time
	last time.Time
	anim float64 // seconds of hook animation

	fieldW, fieldH int // viewport the current items were laid out for

	hook           Hook
	items          []Item
	caught         *Item
	score          int
	level          int
	itemsCollected int
}

// New creates a gold miner using the wall clock.
func New(cfg config.GoldMinerConfig) *Game {
	return NewWithClock(cfg, time.Now)
}

// NewWithClock creates a gold miner with an injectable clock.
func NewWithClock(cfg config.GoldMinerConfig, now func() time.Time) *Game {
	return &Game{
		shell: engine.NewShell(ID, minFieldW, minFieldH),
		cfg:   cfg,
		curve: config.NewDifficultyManager(cfg.Difficulty),
		now:   now,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Reset reinitializes the game in place and returns to the welcome screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.seed = rc.ResolveSeed()
	g.rng = rand.New(rand.NewSource(g.seed))
	g.shell.Welcome()
	g.shell.SetViewport(rc.ScreenW, rc.ScreenH)

	g.score = 0
	g.level = 1
	g.itemsCollected = 0
	g.caught = nil
	g.anim = 0
	g.layout(rc.ScreenW, rc.ScreenH)
	g.last = g.now()
}

// layout adopts a viewport, centers the hook pivot and lays out a fresh
// item set for the current level.
func (g *Game) layout(w, h int) {
	g.fieldW, g.fieldH = w, h
	g.hook = Hook{X: float64(w) / 2, Y: g.cfg.Ceiling, State: Idle}
	g.regenerate()
}

func (g *Game) regenerate() {
	g.items = generateItems(g.rng, g.fieldW, g.fieldH, g.level, g.cfg.Items, g.curve)
	g.itemsCollected = 0
}

// HandleInput consumes one key.
func (g *Game) HandleInput(k core.Key) {
	switch g.shell.Route(k, false) {
	case engine.EventStarted:
		if w, h := g.shell.Viewport(); w != g.fieldW || h != g.fieldH {
			g.layout(w, h)
		}
		g.last = g.now()
	case engine.EventResumed:
		g.last = g.now()
	case engine.EventPass:
		if core.ActionOf(k) == core.ActionPrimary && g.hook.State == Idle {
			g.hook.State = Extending
		}
	}
}

// Tick advances the hook by the time elapsed since the previous tick.
func (g *Game) Tick() {
	if !g.shell.Tick() {
		return
	}
	now := g.now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	g.Step(dt)
}

// Step advances the simulation by dt seconds. Large gaps are clamped so a
// stalled terminal never teleports the hook.
func (g *Game) Step(dt float64) {
	maxDT := float64(g.cfg.MaxDeltaMS) / 1000
	dt = core.ClampF(dt, 0, maxDT)
	g.anim += dt
	g.adoptViewport()

	if g.hook.State == Idle {
		g.hook.Angle += dt * g.angularSpeed()
		if g.hook.Angle > math.Pi {
			g.hook.Angle = -math.Pi
		}
	}

	sx := g.hookScreenX()

	if g.hook.State == Extending {
		g.hook.Y += dt * g.cfg.ExtendSpeed
		if g.caught == nil {
			g.tryCatch(sx)
		}
		if g.hook.State == Extending && g.hook.Y > float64(g.fieldH-g.cfg.BottomMargin) {
			g.hook.State = Retracting
		}
	}

	if g.hook.State == Retracting {
		speed := g.cfg.RetractSpeed
		if g.caught != nil && g.caught.Weight > 0 {
			speed /= g.caught.Weight
		}
		g.hook.Y -= dt * speed
		if g.hook.Y <= g.cfg.Ceiling {
			g.hook.Y = g.cfg.Ceiling
			g.bank()
			g.hook.State = Idle
		}
	}
}

// adoptViewport follows terminal resizes. The pivot and bottom limit move
// with the screen. Items keep their positions unless the field no longer
// holds them, in which case the level is laid out again once the hook is
// home.
func (g *Game) adoptViewport() {
	if w, h := g.shell.Viewport(); w != g.fieldW || h != g.fieldH {
		g.fieldW, g.fieldH = w, h
		g.hook.X = float64(w) / 2
	}
	if g.hook.State == Idle && g.caught == nil && g.fieldStale() {
		g.regenerate()
	}
}

// fieldStale reports whether the item set is empty or has items outside
// the spawn region of the current field.
func (g *Game) fieldStale() bool {
	if len(g.items) == 0 {
		return true
	}
	minX, maxX, minY, maxY := spawnBounds(g.fieldW, g.fieldH)
	for _, it := range g.items {
		if it.X < minX || it.X > maxX || it.Y < minY || it.Y > maxY {
			return true
		}
	}
	return false
}

// tryCatch detaches the first item under the hook. The item leaves the
// field immediately so it can never be caught twice.
func (g *Game) tryCatch(sx float64) {
	slack := g.cfg.CatchSlack
	for i, it := range g.items {
		if math.Abs(sx-it.X) < it.Size+slack && math.Abs(g.hook.Y-it.Y) < it.Size+slack {
			caught := it
			g.caught = &caught
			g.items = append(g.items[:i:i], g.items[i+1:]...)
			g.hook.State = Retracting
			return
		}
	}
}

// bank scores the caught item once the hook is home and advances the
// level when the field has no gold left.
func (g *Game) bank() {
	if g.caught == nil {
		return
	}
	g.score += g.caught.Value
	g.itemsCollected++
	g.caught = nil

	if !hasGold(g.items) {
		if g.level < g.curve.MaxAt() {
			g.level++
		}
		g.regenerate()
	}
}

func (g *Game) angularSpeed() float64 {
	return g.curve.Speed(g.cfg.BaseAngularSpeed, g.level)
}

func (g *Game) swingRange() float64 {
	return math.Max(float64(g.fieldW)/2-float64(g.cfg.SwingMargin), 0)
}

func (g *Game) hookScreenX() float64 {
	return g.hook.X + math.Sin(g.hook.Angle)*g.swingRange()
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Level: g.level,
		Phase: g.shell.Phase(),
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

// Snapshot is a copy of the simulation state for tests and debugging.
type Snapshot struct {
	Hook           Hook
	HookScreenX    float64
	Items          []Item
	Caught         *Item
	Score          int
	Level          int
	ItemsCollected int
	Phase          core.Phase
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Hook:           g.hook,
		HookScreenX:    g.hookScreenX(),
		Items:          append([]Item(nil), g.items...),
		Score:          g.score,
		Level:          g.level,
		ItemsCollected: g.itemsCollected,
		Phase:          g.shell.Phase(),
	}
	if g.caught != nil {
		c := *g.caught
		s.Caught = &c
	}
	return s
}

var _ engine.Game = (*Game)(nil)
