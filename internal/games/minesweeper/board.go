package minesweeper

import "math/rand"

// Cell is one square of the minefield.
type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int
}

// Field is a minefield indexed [y][x].
type Field struct {
	W, H  int
	Mines int
	cells [][]Cell
}

// NewField places mines uniformly at random and counts neighbours.
func NewField(w, h, mines int, rng *rand.Rand) *Field {
	f := &Field{W: w, H: h, Mines: min(mines, w*h)}
	f.cells = make([][]Cell, h)
	for y := range f.cells {
		f.cells[y] = make([]Cell, w)
	}
	for _, i := range rng.Perm(w * h)[:f.Mines] {
		f.cells[i/w][i%w].Mine = true
	}
	f.count()
	return f
}

// FieldFromMask builds a field from a mine mask, used by tests and puzzles.
func FieldFromMask(mask [][]bool) *Field {
	h := len(mask)
	w := 0
	if h > 0 {
		w = len(mask[0])
	}
	f := &Field{W: w, H: h}
	f.cells = make([][]Cell, h)
	for y := range mask {
		f.cells[y] = make([]Cell, w)
		for x, m := range mask[y] {
			f.cells[y][x].Mine = m
			if m {
				f.Mines++
			}
		}
	}
	f.count()
	return f
}

func (f *Field) count() {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			n := 0
			f.neighbours(x, y, func(nx, ny int) {
				if f.cells[ny][nx].Mine {
					n++
				}
			})
			f.cells[y][x].Adjacent = n
		}
	}
}

func (f *Field) neighbours(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if (dx != 0 || dy != 0) && f.In(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

// In reports whether (x, y) lies on the field.
func (f *Field) In(x, y int) bool {
	return x >= 0 && x < f.W && y >= 0 && y < f.H
}

// At returns a copy of the cell at (x, y).
func (f *Field) At(x, y int) Cell {
	return f.cells[y][x]
}

// Reveal uncovers (x, y). A zero cell opens its whole zero-count region
// and the numbered cells bordering it. Flagged cells are never opened.
// It returns the number of newly revealed cells and whether a mine was hit.
func (f *Field) Reveal(x, y int) (int, bool) {
	if !f.In(x, y) {
		return 0, false
	}
	c := &f.cells[y][x]
	if c.Revealed || c.Flagged {
		return 0, false
	}
	if c.Mine {
		c.Revealed = true
		return 1, true
	}

	opened := 0
	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := &f.cells[p[1]][p[0]]
		if c.Revealed || c.Flagged || c.Mine {
			continue
		}
		c.Revealed = true
		opened++
		if c.Adjacent != 0 {
			continue
		}
		f.neighbours(p[0], p[1], func(nx, ny int) {
			if n := f.cells[ny][nx]; !n.Revealed && !n.Flagged {
				stack = append(stack, [2]int{nx, ny})
			}
		})
	}
	return opened, false
}

// ToggleFlag flips the flag on a hidden cell and reports whether it did.
func (f *Field) ToggleFlag(x, y int) bool {
	if !f.In(x, y) || f.cells[y][x].Revealed {
		return false
	}
	f.cells[y][x].Flagged = !f.cells[y][x].Flagged
	return true
}

// RevealMines uncovers every mine.
func (f *Field) RevealMines() {
	for y := range f.cells {
		for x := range f.cells[y] {
			if f.cells[y][x].Mine {
				f.cells[y][x].Revealed = true
			}
		}
	}
}

// Flags returns the number of flagged cells.
func (f *Field) Flags() int {
	n := 0
	for _, row := range f.cells {
		for _, c := range row {
			if c.Flagged {
				n++
			}
		}
	}
	return n
}

// RevealedSafe returns the number of revealed non-mine cells.
func (f *Field) RevealedSafe() int {
	n := 0
	for _, row := range f.cells {
		for _, c := range row {
			if c.Revealed && !c.Mine {
				n++
			}
		}
	}
	return n
}

// Cleared reports whether every safe cell is revealed.
func (f *Field) Cleared() bool {
	return f.RevealedSafe() == f.W*f.H-f.Mines
}

// FlagsMatchMines reports whether the flagged set is exactly the mine set.
func (f *Field) FlagsMatchMines() bool {
	for _, row := range f.cells {
		for _, c := range row {
			if c.Flagged != c.Mine {
				return false
			}
		}
	}
	return true
}
