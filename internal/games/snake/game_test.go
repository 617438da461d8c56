package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
)

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

func newPlaying(t *testing.T) *Game {
	t.Helper()
	g := New(config.Default().Snake)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	g.HandleInput(core.Key{Code: core.KeyEnter})
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.State().Phase)
	}
	return g
}

func TestResetState(t *testing.T) {
	g := New(config.Default().Snake)
	g.Reset(core.RuntimeConfig{Seed: 1})
	snap := g.Snapshot()

	if len(snap.Body) != 1 || snap.Body[0] != pt(10, 10) {
		t.Errorf("Body = %v, want [(10,10)]", snap.Body)
	}
	if snap.Direction != DirRight {
		t.Errorf("Direction = %v, want right", snap.Direction)
	}
	if len(snap.Food.Cells) == 0 {
		t.Error("Reset should spawn food")
	}
	if g.State().Phase != core.PhaseWelcome {
		t.Error("Reset should return to welcome")
	}
}

func TestEatGrowsWithoutTailPop(t *testing.T) {
	g := newPlaying(t)
	g.food = Food{Kind: Candy, Cells: []core.Point{pt(11, 10)}}

	g.Advance()

	snap := g.Snapshot()
	if snap.Body[0] != pt(11, 10) {
		t.Errorf("head = %v, want (11,10)", snap.Body[0])
	}
	if len(snap.Body) != 2 || snap.Body[1] != pt(10, 10) {
		t.Errorf("Body = %v, want grown to [(11,10) (10,10)]", snap.Body)
	}
	if snap.Score != 150 {
		t.Errorf("Score = %d, want 150", snap.Score)
	}
	if snap.Food.covers(pt(11, 10)) {
		t.Error("eaten food was not replaced")
	}
}

func TestAppleAnyCellCountsAndScores(t *testing.T) {
	g := newPlaying(t)
	g.food = Food{Kind: Apple, Cells: []core.Point{pt(11, 9), pt(12, 9), pt(11, 10), pt(12, 10)}}
	g.Advance()
	if g.score != 50 {
		t.Errorf("score = %d, want 50", g.score)
	}
	if len(g.body) != 2 {
		t.Errorf("len(body) = %d, want 2", len(g.body))
	}
}

func TestMoveWithoutFoodKeepsLength(t *testing.T) {
	g := newPlaying(t)
	g.body = []core.Point{pt(5, 5), pt(4, 5), pt(3, 5)}
	g.food = Food{Kind: Candy, Cells: []core.Point{pt(0, 0)}}
	g.Advance()
	want := []core.Point{pt(6, 5), pt(5, 5), pt(4, 5)}
	for i, p := range want {
		if g.body[i] != p {
			t.Fatalf("body = %v, want %v", g.body, want)
		}
	}
	if len(g.body) != 3 {
		t.Errorf("len(body) = %d, want 3", len(g.body))
	}
}

func TestOppositeDirectionIgnored(t *testing.T) {
	tests := []struct {
		current Direction
		request Direction
	}{
		{DirRight, DirLeft},
		{DirLeft, DirRight},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}
	for _, tt := range tests {
		g := newPlaying(t)
		g.direction, g.nextDir = tt.current, tt.current
		g.Steer(tt.request)
		if g.nextDir != tt.current {
			t.Errorf("Steer(%v) while heading %v changed nextDir to %v", tt.request, tt.current, g.nextDir)
		}
	}
}

func TestDirectionBufferedUntilMotion(t *testing.T) {
	g := newPlaying(t)
	g.HandleInput(core.Key{Code: core.KeyUp})
	if g.direction != DirRight || g.nextDir != DirUp {
		t.Fatalf("direction, nextDir = %v, %v; want right, up", g.direction, g.nextDir)
	}
	// Down is only the opposite of the buffered direction, not the current one.
	g.HandleInput(core.RuneKey('s'))
	if g.nextDir != DirDown {
		t.Errorf("nextDir = %v, want down", g.nextDir)
	}
	g.food = Food{Kind: Candy, Cells: []core.Point{pt(0, 0)}}
	g.Advance()
	if g.direction != DirDown || g.body[0] != pt(10, 11) {
		t.Errorf("after motion: direction %v head %v", g.direction, g.body[0])
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newPlaying(t)
	g.body = []core.Point{pt(19, 3)}
	g.food = Food{Kind: Candy, Cells: []core.Point{pt(0, 0)}}
	g.Advance()
	if !g.State().GameOver {
		t.Error("leaving the field should end the game")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newPlaying(t)
	// Head at (5,5) moving down into its own body.
	g.body = []core.Point{pt(5, 5), pt(6, 5), pt(6, 6), pt(5, 6), pt(4, 6)}
	g.direction, g.nextDir = DirDown, DirDown
	g.food = Food{Kind: Candy, Cells: []core.Point{pt(0, 0)}}
	g.Advance()
	if !g.State().GameOver {
		t.Error("running into the body should end the game")
	}
}

func TestHeadNeverOverlapsBody(t *testing.T) {
	g := newPlaying(t)
	steer := []core.Key{
		{Code: core.KeyUp}, {Code: core.KeyLeft}, {Code: core.KeyDown}, {Code: core.KeyRight},
	}
	for i := 0; i < 2000 && !g.gameOver; i++ {
		if i%37 == 0 {
			g.HandleInput(steer[(i/37)%len(steer)])
		}
		g.Tick()
		if g.gameOver {
			break
		}
		for _, b := range g.body[1:] {
			if b == g.body[0] {
				t.Fatalf("tick %d: head %v overlaps body", i, g.body[0])
			}
		}
	}
}

func TestMotionEveryMoveInterval(t *testing.T) {
	g := newPlaying(t)
	g.food = Food{Kind: Candy, Cells: []core.Point{pt(0, 0)}}
	for i := 0; i < 9; i++ {
		g.Tick()
	}
	if g.body[0] != pt(10, 10) {
		t.Fatalf("head moved before 10 ticks: %v", g.body[0])
	}
	g.Tick()
	if g.body[0] != pt(11, 10) {
		t.Errorf("head after 10 ticks = %v, want (11,10)", g.body[0])
	}
}

func TestFoodNeverOnBody(t *testing.T) {
	g := newPlaying(t)
	g.body = nil
	for x := 0; x < 20; x++ {
		for y := 0; y < 19; y++ {
			g.body = append(g.body, pt(x, y))
		}
	}
	for i := 0; i < 50; i++ {
		g.spawnFood()
		if g.food.Kind != Candy {
			t.Fatalf("apple spawned without a 2x2 gap: %+v", g.food)
		}
		if g.onBody(g.food.Cells[0]) {
			t.Fatalf("food on body at %v", g.food.Cells[0])
		}
	}
}

func TestFullFieldWins(t *testing.T) {
	g := newPlaying(t)
	g.body = nil
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			g.body = append(g.body, pt(x, y))
		}
	}
	g.spawnFood()
	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("State = %+v, want won game", st)
	}
}

func TestRestartSkipsWelcome(t *testing.T) {
	g := newPlaying(t)
	g.score = 200
	g.gameOver = true
	g.HandleInput(core.Key{Code: core.KeyUp})
	if g.nextDir != DirRight {
		t.Error("steering after game over should be ignored")
	}
	g.HandleInput(core.RuneKey('r'))
	st := g.State()
	if st.GameOver || st.Score != 0 || st.Phase != core.PhasePlaying {
		t.Errorf("after restart = %+v", st)
	}
}

func TestRender(t *testing.T) {
	g := newPlaying(t)
	g.food = Food{Kind: Candy, Cells: []core.Point{pt(0, 0)}}
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// field interior starts at (2,2); head at (10,10) -> column 22
	if c := scr.GetCell(2+10*cellW, 2+10); c.Rune != '█' || c.Fg != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", c)
	}
	if c := scr.GetCell(2, 2).Rune; c != '★' {
		t.Errorf("candy cell = %q, want ★", c)
	}
	if !strings.Contains(scr.String(), "Length:") {
		t.Error("side panel missing")
	}

	g.gameOver = true
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestRestartDrawsNewSeed(t *testing.T) {
	a, b := newPlaying(t), newPlaying(t)
	for _, g := range []*Game{a, b} {
		g.gameOver = true
		g.HandleInput(core.RuneKey('r'))
	}
	if a.rc.Seed == 3 {
		t.Errorf("seed after restart = %d, want a new one", a.rc.Seed)
	}
	if a.rc.Seed != b.rc.Seed {
		t.Errorf("restart seeds = %d, %d; want equal for the same starting seed", a.rc.Seed, b.rc.Seed)
	}
}
