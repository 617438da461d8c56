package goldminer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/terminal-games/internal/core"
)

// animStep is how long each hook animation frame lasts, in seconds.
const animStep = 0.2

var (
	hookGlyphs = [2]rune{'▼', '▽'}
	ropeGlyphs = [2]rune{'║', '│'}
)

// Render draws the current frame.
func (g *Game) Render(s *core.Screen) {
	t := g.shell.Text()
	inner, ok := g.shell.Frame(s, t.T("title"))
	if !ok {
		return
	}
	if !g.shell.RenderPhase(s, inner, g.welcomeLines()) {
		return
	}
	g.renderField(s, inner)
	g.renderHUD(s, inner)
}

func (g *Game) welcomeLines() []string {
	t := g.shell.Text()
	lines := []string{t.T("welcome_to") + " " + t.T("title") + "!", ""}
	lines = append(lines, t.Lines("how_to_play")...)
	return append(lines, "", t.T("controls"))
}

// renderField projects items, the caught item, the rope and the hook onto
// the cells inside area. World coordinates are screen cells.
func (g *Game) renderField(s *core.Screen, area core.Rect) {
	sx := g.hookScreenX()
	hookCol := int(math.Floor(sx))
	hookRow := int(math.Floor(g.hook.Y))
	frame := int(g.anim/animStep) % 2

	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			fx, fy := float64(x), float64(y)
			for _, it := range g.items {
				if it.covers(fx, fy, it.X, it.Y) {
					r, c := it.glyph()
					s.SetColored(x, y, r, c)
				}
			}
			if g.caught != nil && g.caught.covers(fx, fy, sx, g.hook.Y+g.caught.Size) {
				r, c := g.caught.glyph()
				s.SetColored(x, y, r, c)
			}
		}
	}

	for y := int(g.cfg.Ceiling); y < hookRow; y++ {
		if area.Contains(hookCol, y) {
			s.SetColored(hookCol, y, ropeGlyphs[frame], core.ColorRed)
		}
	}
	if area.Contains(hookCol, hookRow) {
		s.SetColored(hookCol, hookRow, hookGlyphs[frame], core.ColorRed)
	}
}

func (g *Game) renderHUD(s *core.Screen, area core.Rect) {
	t := g.shell.Text()
	hud := fmt.Sprintf("%s %d  %s %d  %s %d",
		t.Common("level"), g.level,
		t.Common("score"), g.score,
		t.T("collected"), g.itemsCollected)
	s.DrawText(area.X+1, area.Y, hud, core.ColorBrightWhite)
	hint := t.Common("pause_hint")
	s.DrawText(area.Right()-core.TextWidth(hint)-1, area.Y, hint, core.ColorGray)
}
