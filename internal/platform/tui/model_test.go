package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/terminal-games/internal/arcade"
	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/registry"
	"github.com/vovakirdan/terminal-games/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *arcade.Dispatcher, *storage.Store) {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	d := arcade.New(arcade.Options{
		Config:    config.Default(),
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1},
		Scores:    store,
		SessionID: "model-test",
	})
	m := NewModel(d, ModelOptions{
		Width:        80,
		Height:       24,
		TickInterval: 16 * time.Millisecond,
		Store:        store,
		Renderer:     plainRenderer(),
	})
	return m, d, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelStartsGameFromMenu(t *testing.T) {
	m, d, _ := newTestModel(t)
	m, _ = update(t, m, runes("2"))
	if k, ok := d.InGame(); !ok || k != registry.Tetris {
		t.Fatalf("InGame() = %v, %v; want tetris", k, ok)
	}
	if !strings.Contains(m.View(), "Press ENTER to start!") {
		t.Error("welcome screen not rendered")
	}
}

func TestModelTickSchedulesNext(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q in the menu should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelForceQuitInGame(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, runes("1"))
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
}

func TestModelScoreboard(t *testing.T) {
	m, _, store := newTestModel(t)
	store.SaveScore("model-test", "snake", 350, false)
	store.SaveScore("someone-else", "tetris", 9999, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab should open the scoreboard")
	}
	rows := m.board.rows
	if len(rows) != 1 || rows[0].GameID != "snake" || rows[0].Best != 350 {
		t.Errorf("rows = %+v, want only this session's snake run", rows)
	}
	view := m.View()
	if !strings.Contains(view, "Session Scores") || !strings.Contains(view, "Snake") {
		t.Errorf("scoreboard view missing title or row:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board != nil {
		t.Error("tab should close the scoreboard")
	}
	if !strings.Contains(m.View(), "Available Games:") {
		t.Error("menu not shown after closing the scoreboard")
	}
}

func TestModelScoreboardTopRunsFollowHighlight(t *testing.T) {
	m, _, store := newTestModel(t)
	store.SaveScore("model-test", "minesweeper", 40, true)
	store.SaveScore("model-test", "snake", 120, false)
	store.SaveScore("model-test", "snake", 350, false)
	store.SaveScore("someone-else", "snake", 9999, false)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board.runsFor != "minesweeper" {
		t.Fatalf("runsFor = %q, want minesweeper (first row)", m.board.runsFor)
	}
	if len(m.board.runs) != 1 || !m.board.runs[0].Won {
		t.Errorf("runs = %+v, want one winning minesweeper run", m.board.runs)
	}
	if view := m.View(); !strings.Contains(view, "Best runs: Minesweeper") || !strings.Contains(view, "won") {
		t.Errorf("scoreboard view missing top runs:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.board.runsFor != "snake" {
		t.Fatalf("runsFor after down = %q, want snake", m.board.runsFor)
	}
	var got []int
	for _, e := range m.board.runs {
		got = append(got, e.Score)
	}
	if len(got) != 2 || got[0] != 350 || got[1] != 120 {
		t.Errorf("snake runs = %v, want [350 120]", got)
	}
}

func TestModelEmptyScoreboard(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "No finished games yet") {
		t.Error("empty scoreboard message missing")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view rows = %d, want 30", len(lines))
	}
}
