package snake

import (
	"fmt"

	"github.com/vovakirdan/terminal-games/internal/core"
)

const (
	cellW      = 2
	sidePanelW = 14
)

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

	field := core.NewRect(inner.X, inner.Y, g.cfg.Width*cellW+2, g.cfg.Height+2)
	s.DrawBox(field, core.ColorGray)
	area := field.Inset(1)

	for _, c := range g.food.Cells {
		r, fg := '●', core.ColorRed
		if g.food.Kind == Candy {
			r, fg = '★', core.ColorBrightMagenta
		}
		s.SetColored(area.X+c.X*cellW, area.Y+c.Y, r, fg)
	}
	for i, b := range g.body {
		fg := core.ColorGreen
		if i == 0 {
			fg = core.ColorBrightGreen
		}
		x := area.X + b.X*cellW
		s.SetColored(x, area.Y+b.Y, '█', fg)
		s.SetColored(x+1, area.Y+b.Y, '█', fg)
	}

	px := field.Right() + 2
	s.DrawText(px, inner.Y+1, t.Common("score"), core.ColorDefault)
	s.DrawText(px, inner.Y+2, fmt.Sprint(g.score), core.ColorBrightYellow)
	s.DrawText(px, inner.Y+4, t.T("length"), core.ColorDefault)
	s.DrawText(px, inner.Y+5, fmt.Sprint(len(g.body)), core.ColorBrightYellow)

	if g.gameOver {
		g.shell.GameOverBanner(s, field, g.won, g.score)
	}
}
