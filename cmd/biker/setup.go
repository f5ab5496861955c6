package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-biker/internal/config"
	"github.com/vovakirdan/tui-biker/internal/core"
	"github.com/vovakirdan/tui-biker/internal/games/biker"
	"github.com/vovakirdan/tui-biker/internal/scores"
)

// env bundles what every command needs after flag parsing.
type env struct {
	cfg     config.BikerConfig
	logger  *log.Logger
	logFile *os.File
}

// setup loads the configuration, applies flag overrides and validates the
// result. An invalid configuration is fatal.
func setup(stderrLogs bool) (*env, error) {
	logger, logFile, err := newLogger(stderrLogs)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadBiker(flagConfig)
	if err != nil {
		closeFile(logFile)
		return nil, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			closeFile(logFile)
			return nil, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagScores != "" {
		cfg.Scores.Path = flagScores
	}
	if flagBackend != "" {
		cfg.Scores.Backend = config.BackendKind(flagBackend)
	}
	if flagName != "" {
		cfg.Session.PlayerName = flagName
	}

	if err := biker.Check(cfg); err != nil {
		closeFile(logFile)
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	biker.SetConfig(cfg)

	logger.Debug("configuration loaded", "config", flagConfig, "difficulty", flagDifficulty, "backend", cfg.Scores.Backend)
	return &env{cfg: cfg, logger: logger, logFile: logFile}, nil
}

// newLogger builds the process logger. While the TUI owns the terminal logs
// only go to --log-file.
func newLogger(stderrLogs bool) (*log.Logger, *os.File, error) {
	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, file = f, f
	} else if stderrLogs {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "biker",
	})
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		closeFile(file)
		return nil, nil, fmt.Errorf("invalid log level %q", flagLogLevel)
	}
	logger.SetLevel(level)
	return logger, file, nil
}

func (e *env) openStore() *scores.Store {
	return scores.Open(e.cfg.Scores, e.logger)
}

func (e *env) close() {
	closeFile(e.logFile)
}

func closeFile(f *os.File) {
	if f != nil {
		f.Close()
	}
}

// runtimeConfig sizes the ride to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
