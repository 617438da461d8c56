package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/terminal-games/internal/core"
)

const (
	cellW = 7 // columns per cell including the left border
	cellH = 2 // rows per cell including the top border
)

// tileColors maps tile values to foreground and background.
var tileColors = map[int][2]core.Color{
	2:    {core.ColorBlack, core.ColorWhite},
	4:    {core.ColorBlack, core.ColorBrightWhite},
	8:    {core.ColorBlack, core.ColorYellow},
	16:   {core.ColorBlack, core.ColorOrange},
	32:   {core.ColorBlack, core.ColorRed},
	64:   {core.ColorBrightWhite, core.ColorBrightRed},
	128:  {core.ColorBlack, core.ColorBrightYellow},
	256:  {core.ColorBlack, core.ColorGreen},
	512:  {core.ColorBlack, core.ColorBrightGreen},
	1024: {core.ColorBlack, core.ColorCyan},
	2048: {core.ColorBlack, core.ColorBrightCyan},
}

func tileColor(v int) (core.Color, core.Color) {
	if c, ok := tileColors[v]; ok {
		return c[0], c[1]
	}
	return core.ColorBrightWhite, core.ColorMagenta
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

	s.DrawText(inner.X+1, inner.Y, fmt.Sprintf("%s %d", t.Common("score"), g.score), core.ColorBrightYellow)
	best := fmt.Sprintf("%s %d", t.T("best_tile"), g.board.MaxTile())
	s.DrawText(inner.Right()-core.TextWidth(best)-1, inner.Y, best, core.ColorDefault)

	n := g.board.Size()
	grid := core.NewRect(0, 0, n*cellW+1, n*cellH+1)
	grid.X = inner.X + (inner.W-grid.W)/2
	grid.Y = inner.Y + 2
	g.drawGrid(s, grid)

	s.DrawTextCentered(inner, inner.Bottom()-1, t.Common("pause_hint"), core.ColorGray)

	if g.gameOver {
		g.shell.GameOverBanner(s, grid, false, g.score)
	}
}

func (g *Game) drawGrid(s *core.Screen, grid core.Rect) {
	n := g.board.Size()
	for gy := 0; gy <= n; gy++ {
		for gx := 0; gx <= n; gx++ {
			px, py := grid.X+gx*cellW, grid.Y+gy*cellH
			s.SetColored(px, py, junction(gx, gy, n), core.ColorGray)
			if gx < n {
				for i := 1; i < cellW; i++ {
					s.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if gy < n {
				for i := 1; i < cellH; i++ {
					s.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y, row := range g.board {
		for x, v := range row {
			if v == 0 {
				continue
			}
			fg, bg := tileColor(v)
			cx, cy := grid.X+x*cellW+1, grid.Y+y*cellH+1
			s.FillRect(core.NewRect(cx, cy, cellW-1, cellH-1), core.Cell{Rune: ' ', Fg: fg, Bg: bg})
			label := strconv.Itoa(v)
			lx := cx + (cellW-1-len(label))/2
			for i, r := range label {
				s.SetCell(lx+i, cy, core.Cell{Rune: r, Fg: fg, Bg: bg})
			}
		}
	}
}

func junction(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	}
	return '┼'
}
