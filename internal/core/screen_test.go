package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, want 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, want 24", s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("new screen has %q at (%d, %d), want space", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	c := s.GetCell(5, 5)
	if c.Rune != 'X' || c.Fg != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, want X in red", c)
	}

	// Out of bounds writes are dropped.
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(100, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(s.Bounds(), Cell{Rune: '#', Fg: ColorGreen, Bg: ColorBlue})
	s.Clear()
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() after Clear = %q", got)
	}
	if c := s.GetCell(1, 1); c.Fg != ColorDefault || c.Bg != ColorDefault {
		t.Errorf("Clear kept colors: %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 1)
	n := s.DrawText(2, 0, "abc", ColorYellow)
	if n != 3 {
		t.Errorf("DrawText returned %d, want 3", n)
	}
	if got := s.Row(0); got != "  abc     " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(3, 0).Fg != ColorYellow {
		t.Error("DrawText did not apply color")
	}

	// Clipped at the right edge.
	s.DrawText(8, 0, "xyz", ColorDefault)
	if got := s.Row(0); got != "  abc   xy" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenDrawWideText(t *testing.T) {
	s := NewScreen(6, 1)
	n := s.DrawText(0, 0, "关卡", ColorDefault)
	if n != 4 {
		t.Errorf("DrawText wide returned %d, want 4", n)
	}
	if !IsWideTail(s.GetCell(1, 0)) {
		t.Error("second column of a wide rune should be a tail cell")
	}
	if got := s.Row(0); got != "关卡  " {
		t.Errorf("Row(0) = %q, want %q", got, "关卡  ")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(s.Bounds(), 0, "hi", ColorDefault)
	if got := s.Row(0); got != "    hi    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTitledBox(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTitledBox(s.Bounds(), "T", ColorDefault)

	lines := strings.Split(s.String(), "\n")
	if lines[0] != "┌─ T ──────┐" {
		t.Errorf("top = %q", lines[0])
	}
	if lines[1] != "│          │" {
		t.Errorf("middle = %q", lines[1])
	}
	if lines[2] != "└──────────┘" {
		t.Errorf("bottom = %q", lines[2])
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(1, 1, Cell{Rune: 'x'})
	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("size after Resize = %dx%d, want 3x2", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Resize should clear the buffer")
	}
	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("negative resize should clamp to zero")
	}
}
