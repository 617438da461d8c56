package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/terminal-games/internal/core"
)

const (
	cellW      = 2
	sidePanelW = 16
)

var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// glyph picks the rune and color for a cell.
func glyph(c Cell) (rune, core.Color) {
	switch {
	case c.Revealed && c.Mine:
		return '*', core.ColorBrightRed
	case c.Revealed && c.Adjacent == 0:
		return ' ', core.ColorDefault
	case c.Revealed:
		return rune('0' + c.Adjacent), numberColors[c.Adjacent]
	case c.Flagged:
		return 'F', core.ColorBrightYellow
	}
	return '■', core.ColorGray
}

// Render draws the current frame.
func (g *Game) Render(s *core.Screen) {
	t := g.shell.Text()
	inner, ok := g.shell.Frame(s, t.T("title"))
	if !ok {
		return
	}
	if !g.shell.RenderPhase(s, inner, t.Lines("how_to_play")) {
		return
	}

	box := core.NewRect(inner.X, inner.Y, g.field.W*cellW+2, g.field.H+2)
	s.DrawBox(box, core.ColorGray)
	area := box.Inset(1)

	for y := 0; y < g.field.H; y++ {
		for x := 0; x < g.field.W; x++ {
			c := g.field.At(x, y)
			r, fg := glyph(c)
			// a flag that ended up on a safe cell is shown as wrong
			if g.gameOver && c.Flagged && !c.Mine {
				r, fg = 'X', core.ColorRed
			}
			bg := core.ColorDefault
			if !g.gameOver && x == g.cursor.X && y == g.cursor.Y {
				bg = core.ColorYellow
				fg = core.ColorBlack
			}
			px := area.X + x*cellW
			s.SetCell(px, area.Y+y, core.Cell{Rune: r, Fg: fg, Bg: bg})
			s.SetCell(px+1, area.Y+y, core.Cell{Rune: ' ', Bg: bg})
		}
	}

	px := box.Right() + 2
	s.DrawText(px, inner.Y+1, t.T("mines"), core.ColorDefault)
	s.DrawText(px, inner.Y+2, fmt.Sprint(g.field.Mines-g.field.Flags()), core.ColorBrightYellow)
	s.DrawText(px, inner.Y+4, t.T("flags"), core.ColorDefault)
	s.DrawText(px, inner.Y+5, fmt.Sprint(g.field.Flags()), core.ColorBrightYellow)
	s.DrawText(px, inner.Y+7, t.Common("score"), core.ColorDefault)
	s.DrawText(px, inner.Y+8, fmt.Sprint(g.field.RevealedSafe()), core.ColorBrightYellow)
	for i, h := range strings.Split(t.Common("pause_hint"), "   ") {
		s.DrawText(px, inner.Y+10+i, h, core.ColorGray)
	}

	if g.gameOver {
		g.shell.GameOverBanner(s, box, g.won, g.field.RevealedSafe())
	}
}
