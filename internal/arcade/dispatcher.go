// Package arcade is the menu shell: it owns one instance of every game,
// routes input, ticks and rendering to whichever is active, and draws the
// game list when none is.
package arcade

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/engine"
	"github.com/vovakirdan/terminal-games/internal/games/goldminer"
	"github.com/vovakirdan/terminal-games/internal/games/minesweeper"
	"github.com/vovakirdan/terminal-games/internal/games/snake"
	"github.com/vovakirdan/terminal-games/internal/games/t2048"
	"github.com/vovakirdan/terminal-games/internal/games/tetris"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
	"github.com/vovakirdan/terminal-games/internal/registry"
)

// ScoreRecorder stores finished runs.
type ScoreRecorder interface {
	SaveScore(sessionID, gameID string, score int, won bool) (int64, error)
}

// Mode is what the menu is currently showing.
type Mode int

const (
	ModeMain     Mode = iota
	ModeLanguage      // waiting for E / Z / Esc
	ModeOverlay       // waiting for R / G / M / Esc
	ModeScores        // session scoreboard
)

// Options configure a Dispatcher.
type Options struct {
	Config    config.Config
	Runtime   core.RuntimeConfig
	Language  i18n.Language
	Overlay   overlay.Style
	Logger    *log.Logger
	Scores    ScoreRecorder
	SessionID string
}

// Dispatcher holds the five games and the menu state.
type Dispatcher struct {
	rc        core.RuntimeConfig
	rng       *rand.Rand // seeds boards after leaving a game
	log       *log.Logger
	scores    ScoreRecorder
	sessionID string

	goldMiner   *goldminer.Game
	tetris      *tetris.Game
	snake       *snake.Game
	t2048       *t2048.Game
	minesweeper *minesweeper.Game

	active   registry.Kind
	inGame   bool
	single   bool
	selected int
	mode     Mode
	quit     bool

	lang  i18n.Language
	style overlay.Style
	text  i18n.Translator

	last     core.GameState
	recorded bool
}

// New builds every game once and resets it for the given viewport.
func New(opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := opts.Config

	d := &Dispatcher{
		rc:          opts.Runtime,
		log:         logger,
		scores:      opts.Scores,
		sessionID:   opts.SessionID,
		goldMiner:   goldminer.New(cfg.GoldMiner),
		tetris:      tetris.New(cfg.Tetris),
		snake:       snake.New(cfg.Snake),
		t2048:       t2048.New(cfg.T2048),
		minesweeper: minesweeper.New(cfg.Minesweeper),
		text:        i18n.New("common", opts.Language),
	}
	d.rng = rand.New(rand.NewSource(d.rc.ResolveSeed()))
	for k := registry.Kind(0); int(k) < registry.Count; k++ {
		d.game(k).Reset(d.rc)
	}
	d.SetLanguage(opts.Language)
	d.SetOverlayStyle(opts.Overlay)
	return d
}

// game matches the tag to its board.
func (d *Dispatcher) game(k registry.Kind) engine.Game {
	switch k {
	case registry.GoldMiner:
		return d.goldMiner
	case registry.Tetris:
		return d.tetris
	case registry.Snake:
		return d.snake
	case registry.T2048:
		return d.t2048
	case registry.Minesweeper:
		return d.minesweeper
	}
	panic("arcade: unknown game kind " + k.String())
}

// Play opens k directly, skipping the menu. Leaving the game quits.
func (d *Dispatcher) Play(k registry.Kind) {
	d.single = true
	d.enter(k)
}

func (d *Dispatcher) enter(k registry.Kind) {
	d.active = k
	d.selected = int(k)
	d.inGame = true
	d.last = d.game(k).State()
	d.recorded = false
	d.log.Info("game selected", "game", k.String())
}

// leave records an unfinished run with points, resets the board and goes
// back to the menu.
func (d *Dispatcher) leave() {
	g := d.game(d.active)
	st := g.State()
	if !d.recorded && st.Score > 0 {
		d.record(st)
	}
	d.log.Info("left game", "game", d.active.String(), "score", st.Score)
	g.Reset(d.rc.Reseeded(d.rng))
	d.inGame = false
	if d.single {
		d.quit = true
	}
}

func (d *Dispatcher) record(st core.GameState) {
	d.recorded = true
	if d.scores == nil {
		return
	}
	if _, err := d.scores.SaveScore(d.sessionID, d.active.String(), st.Score, st.Won); err != nil {
		d.log.Warn("cannot record score", "game", d.active.String(), "err", err)
	}
}

// observe compares the active game's state with the previous one and
// reacts to the edges.
func (d *Dispatcher) observe() {
	st := d.game(d.active).State()
	prev := d.last
	d.last = st

	if st.Phase != prev.Phase {
		d.log.Debug("phase", "game", d.active.String(), "from", prev.Phase, "to", st.Phase)
	}
	if st.Level > prev.Level && !st.GameOver {
		d.log.Info("level up", "game", d.active.String(), "level", st.Level)
	}
	switch {
	case st.GameOver && !prev.GameOver:
		d.log.Info("game over", "game", d.active.String(), "score", st.Score, "won", st.Won)
		d.record(st)
	case !st.GameOver && prev.GameOver:
		// restarted
		d.recorded = false
	}
}

// HandleInput routes one key to the menu or the active game.
func (d *Dispatcher) HandleInput(k core.Key) {
	if d.quit {
		return
	}
	if d.inGame {
		if core.ActionOf(k) == core.ActionQuit {
			d.leave()
			return
		}
		d.game(d.active).HandleInput(k)
		d.observe()
		return
	}

	switch d.mode {
	case ModeLanguage:
		d.pickLanguage(k)
	case ModeOverlay:
		d.pickOverlay(k)
	case ModeScores:
		if k.Code == core.KeyTab || k.Code == core.KeyEsc || k.Is('q') {
			d.mode = ModeMain
		}
	default:
		d.menuInput(k)
	}
}

func (d *Dispatcher) menuInput(k core.Key) {
	if n := k.Digit(); n >= 1 && n <= registry.Count {
		d.enter(registry.Kind(n - 1))
		return
	}
	switch {
	case k.Code == core.KeyEnter:
		d.enter(registry.Kind(d.selected))
	case k.Code == core.KeyUp:
		d.selected = core.Max(d.selected-1, 0)
	case k.Code == core.KeyDown:
		d.selected = core.Min(d.selected+1, registry.Count-1)
	case k.Code == core.KeyTab:
		d.mode = ModeScores
	case k.Is('l'):
		d.mode = ModeLanguage
	case k.Is('c'):
		d.mode = ModeOverlay
	case k.Is('q'):
		d.quit = true
	}
}

func (d *Dispatcher) pickLanguage(k core.Key) {
	switch {
	case k.Is('e'):
		d.SetLanguage(i18n.English)
	case k.Is('c'):
		d.SetLanguage(i18n.Chinese)
	case k.Code != core.KeyEsc:
		return
	}
	d.mode = ModeMain
}

func (d *Dispatcher) pickOverlay(k core.Key) {
	switch {
	case k.Is('r'):
		d.SetOverlayStyle(overlay.StyleRust)
	case k.Is('g'):
		d.SetOverlayStyle(overlay.StyleGo)
	case k.Is('m'):
		d.SetOverlayStyle(overlay.StyleCMake)
	case k.Code != core.KeyEsc:
		return
	}
	d.mode = ModeMain
}

// Tick advances the active game. The menu has nothing to animate.
func (d *Dispatcher) Tick() {
	if !d.inGame {
		return
	}
	d.game(d.active).Tick()
	d.observe()
}

// Render draws the active game or the menu.
func (d *Dispatcher) Render(s *core.Screen) {
	if d.inGame {
		d.game(d.active).Render(s)
		return
	}
	d.renderMenu(s)
}

// Resize records the viewport used by future resets.
func (d *Dispatcher) Resize(w, h int) {
	d.rc.ScreenW, d.rc.ScreenH = w, h
}

// SetLanguage switches the language of the menu and every game.
func (d *Dispatcher) SetLanguage(lang i18n.Language) {
	if lang != d.lang {
		d.log.Info("language changed", "language", lang)
	}
	d.lang = lang
	d.text.SetLanguage(lang)
	for k := registry.Kind(0); int(k) < registry.Count; k++ {
		d.game(k).SetLanguage(lang)
	}
}

// SetOverlayStyle switches the pause overlay of every game.
func (d *Dispatcher) SetOverlayStyle(style overlay.Style) {
	if style != d.style {
		d.log.Info("overlay style changed", "style", style)
	}
	d.style = style
	for k := registry.Kind(0); int(k) < registry.Count; k++ {
		d.game(k).SetOverlayStyle(style)
	}
}

// Language returns the display language.
func (d *Dispatcher) Language() i18n.Language {
	return d.lang
}

// OverlayStyle returns the pause overlay style.
func (d *Dispatcher) OverlayStyle() overlay.Style {
	return d.style
}

// Mode returns what the menu is showing.
func (d *Dispatcher) Mode() Mode {
	return d.mode
}

// InGame reports whether a game is active, and which.
func (d *Dispatcher) InGame() (registry.Kind, bool) {
	return d.active, d.inGame
}

// Selected returns the highlighted menu entry.
func (d *Dispatcher) Selected() registry.Kind {
	return registry.Kind(d.selected)
}

// State returns the active game's state.
func (d *Dispatcher) State() core.GameState {
	return d.game(d.active).State()
}

// Quit reports whether the user asked to leave the arcade.
func (d *Dispatcher) Quit() bool {
	return d.quit
}

// SessionID identifies this dispatcher's rows in the scoreboard.
func (d *Dispatcher) SessionID() string {
	return d.sessionID
}
