package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/terminal-games/internal/core"
)

const (
	cellW      = 2 // screen columns per board cell
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

	well := core.NewRect(inner.X, inner.Y, g.cfg.Width*cellW+2, g.cfg.Height+2)
	s.DrawBox(well, core.ColorGray)
	g.drawWell(s, well.Inset(1))
	g.drawPanel(s, core.NewRect(well.Right()+1, inner.Y, inner.Right()-well.Right()-1, inner.H))

	if g.gameOver {
		g.shell.GameOverBanner(s, well, false, g.score)
	}
}

func (g *Game) drawWell(s *core.Screen, area core.Rect) {
	block := func(bx, by int, c core.Color) {
		x := area.X + bx*cellW
		y := area.Y + by
		s.SetColored(x, y, '█', c)
		s.SetColored(x+1, y, '█', c)
	}

	for y, row := range g.board {
		for x, v := range row {
			if v != 0 {
				block(x, y, kindColors[v-1])
			} else {
				s.SetColored(area.X+x*cellW, area.Y+y, '·', core.ColorGray)
			}
		}
	}
	if g.gameOver {
		return
	}
	g.shape.each(func(dx, dy int) {
		if by := g.py + dy; by >= 0 {
			block(g.px+dx, by, kindColors[g.kind])
		}
	})
}

func (g *Game) drawPanel(s *core.Screen, area core.Rect) {
	t := g.shell.Text()
	x := area.X + 1
	s.DrawText(x, area.Y+1, t.Common("score"), core.ColorDefault)
	s.DrawText(x, area.Y+2, fmt.Sprint(g.score), core.ColorBrightYellow)
	s.DrawText(x, area.Y+4, t.T("lines"), core.ColorDefault)
	s.DrawText(x, area.Y+5, fmt.Sprint(g.lines), core.ColorBrightYellow)

	s.DrawText(x, area.Y+7, t.T("next"), core.ColorDefault)
	ShapeOf(g.next).each(func(dx, dy int) {
		px := x + dx*cellW
		py := area.Y + 8 + dy
		s.SetColored(px, py, '█', kindColors[g.next])
		s.SetColored(px+1, py, '█', kindColors[g.next])
	})

	hints := strings.Split(t.Common("pause_hint"), "   ")
	for i, h := range hints {
		s.DrawText(x, area.Bottom()-len(hints)+i, h, core.ColorGray)
	}
}
