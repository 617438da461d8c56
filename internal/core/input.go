package core

import "unicode"

// KeyCode identifies a discrete key press.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyEsc
	KeyTab
	KeyRune // a printable character, see Key.Rune
)

// Key is one keyboard event delivered to a game or the menu.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey builds a Key for a printable character. Space maps to KeySpace.
func RuneKey(r rune) Key {
	if r == ' ' {
		return Key{Code: KeySpace}
	}
	return Key{Code: KeyRune, Rune: r}
}

// Is reports whether k is the given character, ignoring case.
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && unicode.ToLower(k.Rune) == unicode.ToLower(r)
}

// Digit returns the value of a digit key, or -1.
func (k Key) Digit() int {
	if k.Code != KeyRune || k.Rune < '0' || k.Rune > '9' {
		return -1
	}
	return int(k.Rune - '0')
}

func (k Key) String() string {
	switch k.Code {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	case KeyEsc:
		return "esc"
	case KeyTab:
		return "tab"
	case KeyRune:
		return string(k.Rune)
	default:
		return "none"
	}
}

// Action is the semantic meaning of a key inside a game, so every board
// agrees on arrows/WASD, pause and restart.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionConfirm        // Enter
	ActionPrimary        // Space
	ActionPause          // P, Esc
	ActionRestart        // R
	ActionFlag           // F
	ActionQuit           // Q
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPrimary:
		return "Primary"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionFlag:
		return "Flag"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ActionOf maps a key to its game action.
func ActionOf(k Key) Action {
	switch k.Code {
	case KeyUp:
		return ActionUp
	case KeyDown:
		return ActionDown
	case KeyLeft:
		return ActionLeft
	case KeyRight:
		return ActionRight
	case KeyEnter:
		return ActionConfirm
	case KeySpace:
		return ActionPrimary
	case KeyEsc:
		return ActionPause
	case KeyRune:
		switch unicode.ToLower(k.Rune) {
		case 'w':
			return ActionUp
		case 's':
			return ActionDown
		case 'a':
			return ActionLeft
		case 'd':
			return ActionRight
		case 'p':
			return ActionPause
		case 'r':
			return ActionRestart
		case 'f':
			return ActionFlag
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}
