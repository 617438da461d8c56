package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/terminal-games/internal/i18n"
)

func TestListOrder(t *testing.T) {
	want := []string{"goldminer", "tetris", "snake", "2048", "minesweeper"}
	got := List()
	if len(got) != len(want) {
		t.Fatalf("len(List()) = %d, want %d", len(got), len(want))
	}
	for i, info := range got {
		if info.ID != want[i] {
			t.Errorf("List()[%d].ID = %q, want %q", i, info.ID, want[i])
		}
		if info.Kind != Kind(i) {
			t.Errorf("List()[%d].Kind = %v, want %v", i, info.Kind, Kind(i))
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id   string
		want Kind
	}{
		{"goldminer", GoldMiner},
		{"Tetris", Tetris},
		{" snake ", Snake},
		{"2048", T2048},
		{"t2048", T2048},
		{"mines", Minesweeper},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.id)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestLookupUnknownSuggests(t *testing.T) {
	_, err := Lookup("tetirs")
	if err == nil {
		t.Fatal("Lookup(tetirs) should fail")
	}
	if !strings.Contains(err.Error(), "tetris") {
		t.Errorf("error %q should suggest tetris", err)
	}

	_, err = Lookup("pinball")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("Lookup(pinball) error = %v, want no suggestion", err)
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"snak", "snake"},
		{"minesweper", "minesweeper"},
		{"gold", "goldminer"},
		{"204", "2048"},
	}
	for _, tt := range tests {
		got := Suggest(tt.in)
		if len(got) == 0 || got[0] != tt.want {
			t.Errorf("Suggest(%q) = %v, want %q first", tt.in, got, tt.want)
		}
	}
	if got := Suggest(""); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}

func TestTitle(t *testing.T) {
	if got := Tetris.Title(i18n.English); got != "Tetris" {
		t.Errorf("Title = %q, want Tetris", got)
	}
	if got := T2048.Title(i18n.English); got != "2048" {
		t.Errorf("Title = %q, want 2048", got)
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("String = %q", got)
	}
}
