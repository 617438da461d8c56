package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/terminal-games/internal/core"
)

// GlobalKeyMap holds the keys handled before the arcade sees them.
type GlobalKeyMap struct {
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultGlobalKeyMap returns default key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a Bubble Tea key message to an arcade key. Keys the
// arcade has no use for map to KeyNone.
func MapKey(msg tea.KeyMsg) core.Key {
	switch msg.Type {
	case tea.KeyUp:
		return core.Key{Code: core.KeyUp}
	case tea.KeyDown:
		return core.Key{Code: core.KeyDown}
	case tea.KeyLeft:
		return core.Key{Code: core.KeyLeft}
	case tea.KeyRight:
		return core.Key{Code: core.KeyRight}
	case tea.KeyEnter:
		return core.Key{Code: core.KeyEnter}
	case tea.KeySpace:
		return core.Key{Code: core.KeySpace}
	case tea.KeyEsc:
		return core.Key{Code: core.KeyEsc}
	case tea.KeyTab:
		return core.Key{Code: core.KeyTab}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return core.RuneKey(msg.Runes[0])
		}
	}
	return core.Key{}
}
