package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Board is a square grid of tile values, 0 for empty, indexed [y][x].
type Board [][]int

// NewBoard returns an empty n x n board.
func NewBoard(n int) Board {
	b := make(Board, n)
	for y := range b {
		b[y] = make([]int, n)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both boards hold the same tiles.
func (b Board) Equal(o Board) bool {
	if len(b) != len(o) {
		return false
	}
	for y := range b {
		for x := range b[y] {
			if b[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// line returns the coordinates of line i ordered from the edge the tiles
// move toward.
func (b Board) line(dir Direction, i int) [][2]int {
	n := len(b)
	out := make([][2]int, n)
	for k := 0; k < n; k++ {
		switch dir {
		case DirLeft:
			out[k] = [2]int{k, i}
		case DirRight:
			out[k] = [2]int{n - 1 - k, i}
		case DirUp:
			out[k] = [2]int{i, k}
		case DirDown:
			out[k] = [2]int{i, n - 1 - k}
		}
	}
	return out
}

// collapse compacts values toward index 0, merging each equal pair once.
func collapse(vals []int) ([]int, int) {
	out := make([]int, len(vals))
	w, score := 0, 0
	merged := false
	for _, v := range vals {
		if v == 0 {
			continue
		}
		if w > 0 && !merged && out[w-1] == v {
			out[w-1] *= 2
			score += out[w-1]
			merged = true
			continue
		}
		out[w] = v
		w++
		merged = false
	}
	return out, score
}

// Slide moves every tile toward dir. It returns the new board, the points
// gained from merges and whether anything moved.
func Slide(b Board, dir Direction) (Board, int, bool) {
	out := b.Clone()
	total := 0
	for i := 0; i < len(b); i++ {
		cells := b.line(dir, i)
		vals := make([]int, len(cells))
		for k, c := range cells {
			vals[k] = b[c[1]][c[0]]
		}
		res, score := collapse(vals)
		total += score
		for k, c := range cells {
			out[c[1]][c[0]] = res[k]
		}
	}
	return out, total, !out.Equal(b)
}

// EmptyCells returns the coordinates of every empty cell.
func (b Board) EmptyCells() [][2]int {
	var cells [][2]int
	for y, row := range b {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// CanMove reports whether any move would change the board.
func (b Board) CanMove() bool {
	n := len(b)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := b[y][x]
			if v == 0 {
				return true
			}
			if x+1 < n && b[y][x+1] == v {
				return true
			}
			if y+1 < n && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value.
func (b Board) MaxTile() int {
	m := 0
	for _, row := range b {
		for _, v := range row {
			m = max(m, v)
		}
	}
	return m
}

