// Package overlay renders the decorative build log shown while a game is
// paused, so a glance at the terminal looks like a compile in progress.
package overlay

import (
	"strings"

	"github.com/vovakirdan/terminal-games/internal/core"
)

// Style selects which toolchain the fake log imitates.
type Style int

const (
	StyleRust Style = iota
	StyleGo
	StyleCMake
)

func (s Style) String() string {
	switch s {
	case StyleGo:
		return "go"
	case StyleCMake:
		return "cmake"
	default:
		return "rust"
	}
}

// ParseStyle accepts "rust", "go" or "cmake".
func ParseStyle(s string) (Style, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rust", "cargo":
		return StyleRust, true
	case "go", "golang":
		return StyleGo, true
	case "cmake", "make", "c++":
		return StyleCMake, true
	}
	return StyleRust, false
}

// RotateEvery is the number of ticks between log scroll steps.
const RotateEvery = 5

// CompileLog is a self-ticking scrolling list of build messages.
type CompileLog struct {
	style    Style
	messages []string
	ticks    int
}

// New creates a compile log in the given style.
func New(style Style) *CompileLog {
	l := &CompileLog{}
	l.SetStyle(style)
	return l
}

// Style returns the active style.
func (l *CompileLog) Style() Style {
	return l.style
}

// SetStyle switches the message set and restarts the scroll.
func (l *CompileLog) SetStyle(style Style) {
	l.style = style
	src := messagesFor(style)
	l.messages = make([]string, len(src))
	copy(l.messages, src)
	l.ticks = 0
}

// Tick advances the log; every RotateEvery ticks the head message moves
// to the back.
func (l *CompileLog) Tick() {
	l.ticks++
	if l.ticks%RotateEvery == 0 && len(l.messages) > 0 {
		head := l.messages[0]
		copy(l.messages, l.messages[1:])
		l.messages[len(l.messages)-1] = head
	}
}

// Visible returns the first n messages in display order.
func (l *CompileLog) Visible(n int) []string {
	n = core.Clamp(n, 0, len(l.messages))
	return l.messages[:n]
}

// Render draws the log inside area. The leading verb of each line is green.
func (l *CompileLog) Render(s *core.Screen, area core.Rect) {
	s.FillRect(area, core.Cell{Rune: ' '})
	s.DrawTitledBox(area, headerFor(l.style), core.ColorDefault)
	inner := area.Inset(1)
	for i, msg := range l.Visible(inner.H) {
		y := inner.Y + i
		verb, rest, _ := strings.Cut(msg, " ")
		x := inner.X + 1
		x += s.DrawText(x, y, verb, core.ColorGreen)
		s.DrawText(x, y, " "+rest, core.ColorDefault)
	}
}

func headerFor(style Style) string {
	switch style {
	case StyleGo:
		return "go build"
	case StyleCMake:
		return "cmake --build"
	default:
		return "Compiling"
	}
}

func messagesFor(style Style) []string {
	switch style {
	case StyleGo:
		return goMessages
	case StyleCMake:
		return cmakeMessages
	default:
		return rustMessages
	}
}

var rustMessages = []string{
	"Compiling libc v0.2.169",
	"Compiling proc-macro2 v1.0.93",
	"Compiling unicode-ident v1.0.16",
	"Compiling autocfg v1.4.0",
	"Compiling parking_lot_core v0.8.6",
	"Compiling signal-hook v0.3.17",
	"Compiling lock_api v0.4.12",
	"Compiling signal-hook-registry v1.4.2",
	"Compiling getrandom v0.2.15",
	"Compiling mio v0.7.14",
	"Compiling rand_core v0.6.4",
	"Compiling signal-hook-mio v0.2.4",
	"Compiling parking_lot v0.11.2",
	"Compiling quote v1.0.38",
	"Compiling syn v2.0.98",
	"Compiling crossterm v0.22.1",
	"Compiling tui v0.17.0",
	"Compiling zerocopy-derive v0.7.35",
	"Compiling zerocopy v0.7.35",
	"Compiling ppv-lite86 v0.2.20",
	"Compiling rand_chacha v0.3.1",
	"Compiling rand v0.8.5",
}

var goMessages = []string{
	"Compiling internal/abi",
	"Compiling internal/bytealg",
	"Compiling runtime/internal/atomic",
	"Compiling runtime",
	"Compiling sync/atomic",
	"Compiling sync",
	"Compiling unicode/utf8",
	"Compiling strconv",
	"Compiling reflect",
	"Compiling os",
	"Compiling fmt",
	"Compiling github.com/rivo/uniseg",
	"Compiling github.com/mattn/go-runewidth",
	"Compiling github.com/charmbracelet/x/ansi",
	"Compiling github.com/muesli/termenv",
	"Compiling github.com/charmbracelet/lipgloss",
	"Compiling github.com/charmbracelet/bubbletea",
	"Compiling gopkg.in/yaml.v3",
	"Compiling modernc.org/libc",
	"Compiling modernc.org/sqlite/lib",
	"Linking cmd/arcade",
}

var cmakeMessages = []string{
	"Building CXX object src/CMakeFiles/core.dir/board.cpp.o",
	"Building CXX object src/CMakeFiles/core.dir/piece.cpp.o",
	"Building CXX object src/CMakeFiles/core.dir/screen.cpp.o",
	"Building CXX object src/CMakeFiles/core.dir/input.cpp.o",
	"Linking CXX static library libcore.a",
	"Building CXX object src/CMakeFiles/net.dir/socket.cpp.o",
	"Building CXX object src/CMakeFiles/net.dir/buffer.cpp.o",
	"Linking CXX static library libnet.a",
	"Building CXX object app/CMakeFiles/app.dir/main.cpp.o",
	"Building CXX object app/CMakeFiles/app.dir/config.cpp.o",
	"Building CXX object tests/CMakeFiles/tests.dir/board_test.cpp.o",
	"Building CXX object tests/CMakeFiles/tests.dir/piece_test.cpp.o",
	"Linking CXX executable tests",
	"Linking CXX executable app",
	"Scanning dependencies of target docs",
	"Generating API documentation",
}
