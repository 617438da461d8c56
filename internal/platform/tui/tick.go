// Package tui provides the Bubble Tea integration for the arcade: the
// terminal loop, key mapping, the session scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick. Keys arriving in between are handled
// as they come, so a tick always fires within interval of the last one.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
