package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/terminal-games/internal/arcade"
	"github.com/vovakirdan/terminal-games/internal/config"
	"github.com/vovakirdan/terminal-games/internal/core"
	"github.com/vovakirdan/terminal-games/internal/i18n"
	"github.com/vovakirdan/terminal-games/internal/overlay"
	"github.com/vovakirdan/terminal-games/internal/platform/tui"
	"github.com/vovakirdan/terminal-games/internal/storage"
)

// settings is the resolved configuration shared by every command.
type settings struct {
	cfg   config.Config
	lang  i18n.Language
	style overlay.Style
}

// loadSettings applies config file, environment and flags in that order.
func loadSettings() (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return settings{}, err
	}

	preset := cfg.Difficulty
	if flagDifficulty != "" {
		preset = config.DifficultyPreset(flagDifficulty)
	}
	p, err := config.ParsePreset(string(preset))
	if err != nil {
		return settings{}, err
	}
	config.ApplyPreset(&cfg, p)

	if flagLang != "" {
		cfg.Language = flagLang
	}
	if flagOverlay != "" {
		cfg.Overlay = flagOverlay
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	return settings{
		cfg:   cfg,
		lang:  cfg.DisplayLanguage(os.Getenv("LANG")),
		style: cfg.OverlayStyle(),
	}, nil
}

// openLogger writes to --log-file when given. The terminal belongs to the
// game, so logs are discarded otherwise.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// runLocal builds a dispatcher for this terminal and runs it. play, when
// set, opens that game directly.
func runLocal(play func(*arcade.Dispatcher)) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard disabled", "err", err)
	}
	var scores arcade.ScoreRecorder
	if store != nil {
		defer store.Close()
		scores = store
	}

	width, height := terminalSize()
	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		Seed:         flagSeed,
		TickInterval: s.cfg.TickInterval(),
	}
	d := arcade.New(arcade.Options{
		Config:    s.cfg,
		Runtime:   rc,
		Language:  s.lang,
		Overlay:   s.style,
		Logger:    logger,
		Scores:    scores,
		SessionID: storage.NewSessionID(),
	})
	if play != nil {
		play(d)
	}

	logger.Info("arcade started", "lang", s.lang, "overlay", s.style, "difficulty", s.cfg.Difficulty)
	return tui.Run(d, tui.ModelOptions{
		Width:        width,
		Height:       height,
		TickInterval: rc.TickInterval,
		Store:        store,
		Logger:       logger,
	})
}
