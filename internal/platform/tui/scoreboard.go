package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/registry"
	"github.com/vovakirdan/terminal-games/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "q"),
			key.WithHelp("tab/esc", "back"),
		),
	}
}

// topRuns is how many runs of the highlighted game are listed.
const topRuns = 5

// Scoreboard shows the best run of each game in the current session and
// the top runs of the highlighted game.
type Scoreboard struct {
	store     *storage.Store
	sessionID string
	rows      []storage.GameBest
	runs      []storage.ScoreEntry
	runsFor   string
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	text      i18n.Translator
	lang      i18n.Language
	r         *lipgloss.Renderer
	width     int
	height    int
}

// NewScoreboard loads the session's results. A nil store shows an empty
// board.
func NewScoreboard(r *lipgloss.Renderer, store *storage.Store, sessionID string, lang i18n.Language, width, height int) (*Scoreboard, error) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sb := &Scoreboard{
		store:     store,
		sessionID: sessionID,
		keys:      DefaultScoreboardKeyMap(),
		help:      help.New(),
		text:      i18n.New("common", lang),
		lang:      lang,
		r:         r,
		width:     width,
		height:    height,
	}
	if store != nil {
		rows, err := store.SessionBests(sessionID)
		if err != nil {
			return sb, fmt.Errorf("scoreboard: %w", err)
		}
		sb.rows = rows
	}
	sb.table = sb.createTable()
	return sb, sb.loadRuns()
}

// loadRuns fetches the top runs of the highlighted game when the
// highlight moved.
func (m *Scoreboard) loadRuns() error {
	if m.store == nil || len(m.rows) == 0 {
		return nil
	}
	i := core.Clamp(m.table.Cursor(), 0, len(m.rows)-1)
	gameID := m.rows[i].GameID
	if gameID == m.runsFor {
		return nil
	}
	runs, err := m.store.TopScores(m.sessionID, gameID, topRuns)
	if err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	m.runs, m.runsFor = runs, gameID
	return nil
}

func (m *Scoreboard) title(gameID string) string {
	if k, err := registry.Lookup(gameID); err == nil {
		return k.Title(m.lang)
	}
	return gameID
}

func (m *Scoreboard) createTable() table.Model {
	nameW := 16
	columns := []table.Column{
		{Title: "Game", Width: nameW},
		{Title: "Plays", Width: 6},
		{Title: "Best", Width: 10},
		{Title: "Wins", Width: 6},
	}

	rows := make([]table.Row, len(m.rows))
	for i, b := range m.rows {
		rows[i] = table.Row{m.title(b.GameID), fmt.Sprint(b.Plays), fmt.Sprint(b.Best), fmt.Sprint(b.Wins)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10-topRuns, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Update scrolls the table. It reports true when the user asked to go
// back to the menu.
func (m *Scoreboard) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return true, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return false, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	if err := m.loadRuns(); err != nil {
		m.runs, m.runsFor = nil, ""
	}
	return false, cmd
}

// View renders the scoreboard.
func (m *Scoreboard) View() string {
	var b strings.Builder

	titleStyle := m.r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Width(m.width).
		Align(lipgloss.Center)
	b.WriteString(titleStyle.Render(m.text.T("scoreboard_title")))
	b.WriteString("\n\n")

	box := m.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.rows) == 0 {
		content = m.r.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render(m.text.T("scoreboard_empty"))
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, m.table.View(), "", m.runsView())
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box.Render(content)))
	b.WriteString("\n\n")

	helpStyle := m.r.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// runsView lists the best runs of the highlighted game.
func (m *Scoreboard) runsView() string {
	var b strings.Builder
	b.WriteString(m.r.NewStyle().Bold(true).Render(fmt.Sprintf(m.text.T("scoreboard_runs"), m.title(m.runsFor))))
	won := m.r.NewStyle().Foreground(lipgloss.Color("42"))
	for i, e := range m.runs {
		fmt.Fprintf(&b, "\n%d. %8d  %s", i+1, e.Score, e.CreatedAt.Local().Format("15:04:05"))
		if e.Won {
			b.WriteString("  " + won.Render(m.text.T("scoreboard_won")))
		}
	}
	return b.String()
}
