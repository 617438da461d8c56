package arcade

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/registry"
)

const (
	menuMinW = 44
	menuMinH = 20
)

func (d *Dispatcher) renderMenu(s *core.Screen) {
	s.Clear()
	t := d.text
	if s.Width() < menuMinW || s.Height() < menuMinH {
		mid := s.Height() / 2
		s.DrawTextCentered(s.Bounds(), mid-1, t.T("resize"), core.ColorYellow)
		s.DrawTextCentered(s.Bounds(), mid,
			fmt.Sprintf(t.T("resize_need"), menuMinW, menuMinH, s.Width(), s.Height()), core.ColorGray)
		return
	}

	s.DrawTitledBox(s.Bounds(), t.T("menu_title"), core.ColorCyan)
	inner := s.Bounds().Inset(1)
	x := inner.X + 2
	y := inner.Y + 1

	s.DrawText(x, y, t.T("menu_title"), core.ColorYellow)
	y += 2
	s.DrawText(x, y, t.T("available_games"), core.ColorDefault)
	y += 2

	for i, info := range registry.List() {
		fg := core.ColorWhite
		marker := "  "
		if i == d.selected {
			fg = core.ColorGreen
			marker = "> "
		}
		s.DrawText(x, y, fmt.Sprintf("%s%d. %s", marker, i+1, info.Kind.Title(d.lang)), fg)
		y++
	}
	y++

	switch d.mode {
	case ModeLanguage:
		s.DrawText(x, y, t.T("language_prompt"), core.ColorYellow)
	case ModeOverlay:
		s.DrawText(x, y, t.T("overlay_prompt"), core.ColorYellow)
	default:
		s.DrawText(x, y, t.T("controls"), core.ColorDefault)
		y++
		for _, line := range t.Lines("menu_help") {
			s.DrawText(x, y, line, core.ColorGray)
			y++
		}
		y++
		hint := fmt.Sprintf("%s (%s)", t.T("compiling_hint"), d.style)
		s.DrawText(x, y, runewidth.Truncate(hint, inner.Right()-x-1, "…"), core.ColorGray)
	}
}
