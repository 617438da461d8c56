package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	if got, want := embeddedDefault(), Default(); !reflect.DeepEqual(got, want) {
		t.Errorf("embedded YAML = %+v\nwant %+v", got, want)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arcade.yaml")
	data := "snake:\n  move_every: 4\nminesweeper:\n  mines: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) = %v", path, err)
	}
	if cfg.Snake.MoveEvery != 4 {
		t.Errorf("Snake.MoveEvery = %d, want 4", cfg.Snake.MoveEvery)
	}
	if cfg.Snake.Width != 20 {
		t.Errorf("Snake.Width = %d, want default 20", cfg.Snake.Width)
	}
	if cfg.Minesweeper.Mines != 10 {
		t.Errorf("Minesweeper.Mines = %d, want 10", cfg.Minesweeper.Mines)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("tick_ms: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load(bad yaml) = %v, want parse error", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.TickMS = 0
	cfg.Minesweeper.Mines = cfg.Minesweeper.Width * cfg.Minesweeper.Height
	cfg.Language = "klingon"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}
	for _, want := range []string{"tick_ms", "minesweeper.mines", "language"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLanguage, "zh")
	t.Setenv(EnvOverlay, "cmake")
	t.Setenv(EnvTickMS, "33")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv = %v", err)
	}
	if cfg.DisplayLanguage("") != i18n.Chinese {
		t.Errorf("DisplayLanguage = %v, want zh", cfg.DisplayLanguage(""))
	}
	if cfg.OverlayStyle() != overlay.StyleCMake {
		t.Errorf("OverlayStyle = %v, want cmake", cfg.OverlayStyle())
	}
	if cfg.TickMS != 33 {
		t.Errorf("TickMS = %d, want 33", cfg.TickMS)
	}

	t.Setenv(EnvTickMS, "fast")
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("ApplyEnv with non-numeric tick should fail")
	}
}

func TestDisplayLanguageAuto(t *testing.T) {
	cfg := Default()
	if got := cfg.DisplayLanguage("zh_CN.UTF-8"); got != i18n.Chinese {
		t.Errorf("auto with zh LANG = %v, want zh", got)
	}
	if got := cfg.DisplayLanguage("en_US.UTF-8"); got != i18n.English {
		t.Errorf("auto with en LANG = %v, want en", got)
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Snake.MoveEvery <= base.Snake.MoveEvery {
		t.Errorf("easy snake MoveEvery = %d, want slower than %d", easy.Snake.MoveEvery, base.Snake.MoveEvery)
	}
	if easy.Minesweeper.Mines >= base.Minesweeper.Mines {
		t.Errorf("easy mines = %d, want fewer than %d", easy.Minesweeper.Mines, base.Minesweeper.Mines)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Tetris.DropEvery >= base.Tetris.DropEvery {
		t.Errorf("hard drop = %d, want faster than %d", hard.Tetris.DropEvery, base.Tetris.DropEvery)
	}
	if hard.GoldMiner.Difficulty.InitialLevel <= 0 {
		t.Error("hard should start the gold miner curve above zero")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard.Validate() = %v", err)
	}

	fixed := Default()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.GoldMiner.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %v, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
