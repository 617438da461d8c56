// Package engine holds the skeleton every board shares: the
// Welcome/Playing/Paused phase machine, the pause overlay, localized text
// and the bordered frame with its resize guard.
package engine

import (
	"fmt"

	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

// Game is the contract between a board and the dispatcher.
type Game interface {
	// ID returns the catalog identifier, e.g. "goldminer".
	ID() string
	// Reset reinitializes the game in place and returns it to Welcome.
	Reset(cfg core.RuntimeConfig)
	// HandleInput consumes one key. Unrecognized keys are no-ops.
	HandleInput(k core.Key)
	// Tick is called once per main-loop iteration in every phase.
	Tick()
	// Render draws the current frame. Only the viewport cache changes.
	Render(s *core.Screen)
	SetLanguage(lang i18n.Language)
	SetOverlayStyle(style overlay.Style)
	State() core.GameState
}

// Event is what Shell.Route decided about a key.
type Event int

const (
	EventNone    Event = iota // consumed, nothing to do
	EventPass                 // belongs to the running board
	EventStarted              // Welcome -> Playing
	EventPaused               // Playing -> Paused
	EventResumed              // Paused -> Playing
	EventRestart              // restart requested after game over
)

// Shell is embedded by value in each game.
type Shell struct {
	phase   core.Phase
	overlay *overlay.CompileLog
	text    i18n.Translator

	viewW, viewH int
	minW, minH   int
}

// NewShell creates a shell for a game whose text lives under namespace.
// minW and minH are the smallest viewport the board can be drawn in.
func NewShell(namespace string, minW, minH int) Shell {
	return Shell{
		phase:   core.PhaseWelcome,
		overlay: overlay.New(overlay.StyleRust),
		text:    i18n.New(namespace, i18n.English),
		minW:    minW,
		minH:    minH,
	}
}

// Phase returns the current phase.
func (s *Shell) Phase() core.Phase {
	return s.phase
}

// Welcome puts the shell back on the welcome screen.
func (s *Shell) Welcome() {
	s.phase = core.PhaseWelcome
}

// Begin enters Playing directly, used by restart-after-game-over.
func (s *Shell) Begin() {
	s.phase = core.PhasePlaying
}

// Route runs a key through the phase machine. over reports whether the
// board has ended, in which case only restart is accepted.
func (s *Shell) Route(k core.Key, over bool) Event {
	action := core.ActionOf(k)
	switch s.phase {
	case core.PhaseWelcome:
		if action == core.ActionConfirm {
			s.phase = core.PhasePlaying
			return EventStarted
		}
	case core.PhasePaused:
		if action == core.ActionPause {
			s.phase = core.PhasePlaying
			return EventResumed
		}
	case core.PhasePlaying:
		if over {
			if action == core.ActionRestart {
				return EventRestart
			}
			return EventNone
		}
		if action == core.ActionPause {
			s.phase = core.PhasePaused
			return EventPaused
		}
		return EventPass
	}
	return EventNone
}

// Tick advances the overlay while paused and reports whether the board
// should run its own logic this tick.
func (s *Shell) Tick() bool {
	switch s.phase {
	case core.PhasePlaying:
		return true
	case core.PhasePaused:
		s.overlay.Tick()
	}
	return false
}

// Text returns the game's translator.
func (s *Shell) Text() i18n.Translator {
	return s.text
}

// SetLanguage switches the display language.
func (s *Shell) SetLanguage(lang i18n.Language) {
	s.text.SetLanguage(lang)
}

// SetOverlayStyle switches the pause overlay's style.
func (s *Shell) SetOverlayStyle(style overlay.Style) {
	s.overlay.SetStyle(style)
}

// Viewport returns the size cached by the last Frame call.
func (s *Shell) Viewport() (int, int) {
	return s.viewW, s.viewH
}

// SetViewport primes the viewport cache before the first render.
func (s *Shell) SetViewport(w, h int) {
	s.viewW, s.viewH = w, h
}

// Frame clears the screen, caches the viewport and draws the bordered
// title. It returns the area inside the border, or false after drawing a
// resize notice when the screen is smaller than the board needs.
func (s *Shell) Frame(scr *core.Screen, title string) (core.Rect, bool) {
	s.viewW, s.viewH = scr.Width(), scr.Height()
	scr.Clear()

	if s.viewW < s.minW || s.viewH < s.minH {
		if s.viewH > 0 {
			mid := s.viewH / 2
			scr.DrawTextCentered(scr.Bounds(), mid-1, s.text.Common("resize"), core.ColorYellow)
			need := fmt.Sprintf(s.text.Common("resize_need"), s.minW, s.minH, s.viewW, s.viewH)
			scr.DrawTextCentered(scr.Bounds(), mid, need, core.ColorGray)
		}
		return core.Rect{}, false
	}

	scr.DrawTitledBox(scr.Bounds(), title, core.ColorCyan)
	return scr.Bounds().Inset(1), true
}

// RenderPhase draws the welcome or pause screen into inner and reports
// whether the caller should draw the board instead.
func (s *Shell) RenderPhase(scr *core.Screen, inner core.Rect, welcome []string) bool {
	switch s.phase {
	case core.PhaseWelcome:
		lines := append([]string{}, welcome...)
		lines = append(lines, "", s.text.Common("compiling_hint"), "", s.text.Common("press_enter"))
		top := inner.Y + core.Max((inner.H-len(lines))/2, 0)
		for i, line := range lines {
			fg := core.ColorDefault
			if i == len(lines)-1 {
				fg = core.ColorBrightYellow
			}
			scr.DrawTextCentered(inner, top+i, line, fg)
		}
		return false
	case core.PhasePaused:
		area := inner
		area.H--
		s.overlay.Render(scr, area)
		scr.DrawTextCentered(inner, inner.Bottom()-1, s.text.Common("resume_hint"), core.ColorGray)
		return false
	}
	return true
}

// DrawBanner draws lines in a bordered box centered over area.
func DrawBanner(scr *core.Screen, area core.Rect, lines []string, fg core.Color) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, core.TextWidth(l))
	}
	box := area.Center(w+4, len(lines)+2)
	scr.FillRect(box, core.Cell{Rune: ' '})
	scr.DrawBox(box, fg)
	for i, l := range lines {
		scr.DrawTextCentered(box, box.Y+1+i, l, fg)
	}
}

// GameOverBanner draws the standard end-of-game box.
func (s *Shell) GameOverBanner(scr *core.Screen, area core.Rect, won bool, score int) {
	head, fg := s.text.Common("game_over"), core.ColorBrightRed
	if won {
		head, fg = s.text.Common("you_win"), core.ColorBrightGreen
	}
	DrawBanner(scr, area, []string{
		head,
		fmt.Sprintf("%s %d", s.text.Common("score"), score),
		s.text.Common("restart_hint"),
	}, fg)
}
