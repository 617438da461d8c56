package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/terminal-games/internal/arcade"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/storage"
)

// Model is the Bubble Tea model driving one arcade dispatcher.
type Model struct {
	arcade   *arcade.Dispatcher
	screen   *core.Screen
	store    *storage.Store
	renderer *lipgloss.Renderer
	logger   *log.Logger
	keys     GlobalKeyMap
	interval time.Duration
	board    *Scoreboard
	quitting bool
}

// ModelOptions configure a Model.
type ModelOptions struct {
	Width, Height int
	TickInterval  time.Duration
	Store         *storage.Store
	// Renderer styles the output; nil means the local terminal.
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// NewModel wraps an arcade dispatcher for Bubble Tea.
func NewModel(d *arcade.Dispatcher, opts ModelOptions) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = core.DefaultConfig().TickInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	d.Resize(opts.Width, opts.Height)
	return Model{
		arcade:   d,
		screen:   core.NewScreen(opts.Width, opts.Height),
		store:    opts.Store,
		renderer: opts.Renderer,
		logger:   logger,
		keys:     DefaultGlobalKeyMap(),
		interval: opts.TickInterval,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.arcade.Resize(msg.Width, msg.Height)
		if m.board != nil {
			m.board.Update(msg)
		}
		return m, nil

	case TickMsg:
		m.arcade.Tick()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.board != nil {
		var back bool
		if back, cmd = m.board.Update(msg); !back {
			return m, cmd
		}
	}

	m.arcade.HandleInput(MapKey(msg))
	if m.arcade.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.arcade.Mode() == arcade.ModeScores {
		if m.board == nil {
			m.board = m.openScoreboard()
		}
	} else {
		m.board = nil
	}
	return m, cmd
}

func (m Model) openScoreboard() *Scoreboard {
	sb, err := NewScoreboard(m.renderer, m.store, m.arcade.SessionID(), m.arcade.Language(),
		m.screen.Width(), m.screen.Height())
	if err != nil {
		m.logger.Warn("cannot load scoreboard", "err", err)
	}
	return sb
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots.
func (m Model) saveScreenshot() error {
	m.arcade.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	name := "menu"
	if k, ok := m.arcade.InGame(); ok {
		name = k.String()
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	m.arcade.Render(m.screen)
	return RenderScreen(m.renderer, m.screen)
}

// Run starts a local Bubble Tea program around the dispatcher.
func Run(d *arcade.Dispatcher, opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(d, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
