package tetris

import "github.com/vovakirdan/terminal-games/internal/core"

// Shape is a piece in its 4x4 bounding box, indexed [row][col].
type Shape [4][4]bool

// Kind is one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
	kindCount
)

var shapes = [kindCount]Shape{
	KindI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindO: {
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	KindT: {
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	KindJ: {
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	KindL: {
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	KindS: {
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	KindZ: {
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
}

var kindColors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
}

// ShapeOf returns the spawn orientation of a kind.
func ShapeOf(k Kind) Shape {
	return shapes[k]
}

// Rotated returns the shape turned 90° clockwise inside its box.
func (s Shape) Rotated() Shape {
	var out Shape
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			out[x][3-y] = s[y][x]
		}
	}
	return out
}

// each calls fn with the board offset of every filled cell.
func (s Shape) each(fn func(dx, dy int)) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s[y][x] {
				fn(x, y)
			}
		}
	}
}
