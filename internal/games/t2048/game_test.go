package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
)

func newPlaying(t *testing.T) *Game {
	t.Helper()
	g := New(config.Default().T2048)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 11})
	g.HandleInput(core.Key{Code: core.KeyEnter})
	if g.State().Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.State().Phase)
	}
	return g
}

func board(rows ...[]int) Board {
	return Board(rows)
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	g := New(config.Default().T2048)
	g.Reset(core.RuntimeConfig{Seed: 5})
	b := g.Board()
	if b.Size() != 4 {
		t.Fatalf("Size = %d, want 4", b.Size())
	}
	if got := len(b.EmptyCells()); got != 14 {
		t.Errorf("empty cells = %d, want 14", got)
	}
	for _, row := range b {
		for _, v := range row {
			if v != 0 && v != 2 && v != 4 {
				t.Errorf("unexpected starting tile %d", v)
			}
		}
	}
}

func TestSlide(t *testing.T) {
	tests := []struct {
		name    string
		in      Board
		dir     Direction
		want    Board
		score   int
		changed bool
	}{
		{
			name:    "pair merges left",
			in:      board([]int{2, 2, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			dir:     DirLeft,
			want:    board([]int{4, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			score:   4,
			changed: true,
		},
		{
			name:    "no chain merge",
			in:      board([]int{2, 2, 4, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			dir:     DirLeft,
			want:    board([]int{4, 4, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			score:   4,
			changed: true,
		},
		{
			name:    "two pairs right",
			in:      board([]int{2, 2, 2, 2}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			dir:     DirRight,
			want:    board([]int{0, 0, 4, 4}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			score:   8,
			changed: true,
		},
		{
			name:    "merge nearest the edge first",
			in:      board([]int{0, 2, 2, 2}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			dir:     DirRight,
			want:    board([]int{0, 0, 2, 4}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			score:   4,
			changed: true,
		},
		{
			name:    "column up",
			in:      board([]int{2, 0, 0, 0}, []int{0, 0, 0, 0}, []int{2, 0, 0, 0}, []int{4, 0, 0, 0}),
			dir:     DirUp,
			want:    board([]int{4, 0, 0, 0}, []int{4, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			score:   4,
			changed: true,
		},
		{
			name:    "column down",
			in:      board([]int{0, 8, 0, 0}, []int{0, 8, 0, 0}, []int{0, 8, 0, 0}, []int{0, 0, 0, 0}),
			dir:     DirDown,
			want:    board([]int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 8, 0, 0}, []int{0, 16, 0, 0}),
			score:   16,
			changed: true,
		},
		{
			name:    "blocked",
			in:      board([]int{2, 4, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			dir:     DirLeft,
			want:    board([]int{2, 4, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}),
			score:   0,
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, score, changed := Slide(tt.in, tt.dir)
			if !got.Equal(tt.want) {
				t.Errorf("board = %v, want %v", got, tt.want)
			}
			if score != tt.score {
				t.Errorf("score = %d, want %d", score, tt.score)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestSlideDoesNotMutateInput(t *testing.T) {
	in := board([]int{2, 2, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0})
	Slide(in, DirLeft)
	if in[0][0] != 2 || in[0][1] != 2 {
		t.Errorf("input modified: %v", in)
	}
}

func tileSum(b Board) int {
	s := 0
	for _, row := range b {
		for _, v := range row {
			s += v
		}
	}
	return s
}

func TestSingleMergeSum(t *testing.T) {
	in := board([]int{4, 4, 4, 0}, []int{2, 8, 16, 32}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0})
	out, score, _ := Slide(in, DirLeft)
	if tileSum(out) != tileSum(in) {
		t.Errorf("tile sum = %d, want %d", tileSum(out), tileSum(in))
	}
	if score != 8 {
		t.Errorf("score = %d, want 8 for one 4+4 merge", score)
	}
}

func TestMoveScoresAndSpawns(t *testing.T) {
	g := newPlaying(t)
	g.SetBoard(board([]int{2, 2, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}))

	g.HandleInput(core.Key{Code: core.KeyLeft})

	b := g.Board()
	if b[0][0] != 4 {
		t.Errorf("b[0][0] = %d, want 4", b[0][0])
	}
	if g.State().Score != 4 {
		t.Errorf("Score = %d, want 4", g.State().Score)
	}
	if got := len(b.EmptyCells()); got != 14 {
		t.Errorf("empty cells = %d, want 14 after merge plus spawn", got)
	}
}

func TestNoSpawnWithoutChange(t *testing.T) {
	g := newPlaying(t)
	start := board([]int{2, 4, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0})
	g.SetBoard(start)
	if g.Move(DirLeft) {
		t.Error("Move(Left) reported a change on a packed row")
	}
	if !g.Board().Equal(start) {
		t.Errorf("board changed: %v", g.Board())
	}
}

func TestGameOver(t *testing.T) {
	full := board(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	)
	if full.CanMove() {
		t.Fatal("CanMove = true for a locked board")
	}

	g := newPlaying(t)
	g.SetBoard(full)
	if !g.State().GameOver {
		t.Error("locked board should be game over")
	}

	mergeable := full.Clone()
	mergeable[3][3] = 4
	if !mergeable.CanMove() {
		t.Error("CanMove = false with an adjacent pair")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newPlaying(t)
	g.SetBoard(board(
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
		[]int{2, 4, 2, 4},
		[]int{4, 2, 4, 2},
	))
	g.HandleInput(core.Key{Code: core.KeyLeft})
	g.HandleInput(core.RuneKey('r'))
	st := g.State()
	if st.GameOver || st.Score != 0 || st.Phase != core.PhasePlaying {
		t.Errorf("after restart = %+v", st)
	}
	if got := len(g.Board().EmptyCells()); got != 14 {
		t.Errorf("empty cells = %d, want 14", got)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newPlaying(t)
	g.SetBoard(board([]int{2, 2, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}))
	g.HandleInput(core.RuneKey('p'))
	g.HandleInput(core.Key{Code: core.KeyLeft})
	if g.Board()[0][0] != 2 {
		t.Error("move applied while paused")
	}
	g.HandleInput(core.RuneKey('p'))
	if g.State().Phase != core.PhasePlaying {
		t.Error("pause key should resume")
	}
}

func TestWinTile(t *testing.T) {
	g := newPlaying(t)
	g.SetBoard(board([]int{1024, 1024, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}))
	g.Move(DirLeft)
	st := g.State()
	if !st.Won || st.GameOver {
		t.Errorf("State = %+v, want won and still playing", st)
	}
}

func TestRender(t *testing.T) {
	g := newPlaying(t)
	g.SetBoard(board([]int{2048, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, []int{0, 0, 0, 8}))
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"2048", "Score: 0", "Best tile: 2048", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "resize") {
		t.Error("small viewport should ask for a resize")
	}
}

func TestRestartDrawsNewSeed(t *testing.T) {
	a, b := newPlaying(t), newPlaying(t)
	for _, g := range []*Game{a, b} {
		g.gameOver = true
		g.HandleInput(core.RuneKey('r'))
	}
	if a.rc.Seed == 11 {
		t.Errorf("seed after restart = %d, want a new one", a.rc.Seed)
	}
	if a.rc.Seed != b.rc.Seed {
		t.Errorf("restart seeds = %d, %d; want equal for the same starting seed", a.rc.Seed, b.rc.Seed)
	}
}
