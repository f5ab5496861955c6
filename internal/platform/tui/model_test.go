package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-biker/internal/config"
	"github.com/vovakirdan/tui-biker/internal/core"
	"github.com/vovakirdan/tui-biker/internal/games/biker"
	"github.com/vovakirdan/tui-biker/internal/scores"
)

func shortRide(t *testing.T) {
	t.Helper()
	cfg := config.DefaultBikerConfig()
	cfg.Session.DurationSec = 1
	biker.SetConfig(cfg)
	t.Cleanup(func() { biker.SetConfig(config.DefaultBikerConfig()) })
}

func openTestStore(t *testing.T) *scores.Store {
	t.Helper()
	cfg := config.DefaultBikerConfig().Scores
	cfg.Path = filepath.Join(t.TempDir(), "highscore.json")
	s := scores.Open(cfg, nil)
	t.Cleanup(func() { s.Close() })
	return s
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSavesScoreOnceAtGameOver(t *testing.T) {
	shortRide(t)
	store := openTestStore(t)
	game := biker.New(biker.ModeAuto)

	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 4}, Options{Store: store, PlayerName: "Ana"})
	m.Init()

	for i := 0; i < 60; i++ {
		m = tick(t, m)
	}
	if !m.gameState.GameOver {
		t.Fatal("ride should be over after one second")
	}
	for i := 0; i < 30; i++ {
		m = tick(t, m)
	}

	history := store.Ledger().History
	if len(history) != 1 {
		t.Fatalf("stored %d entries, expected 1", len(history))
	}
	e := history[0]
	if e.Name != "Ana" || e.Score <= 0 || e.DurationSec != 1 || e.AvgPowerW == nil {
		t.Errorf("stored entry = %+v", e)
	}
	if game.Headline() != "All-time #1!" {
		t.Errorf("Headline() = %q, expected all-time rank", game.Headline())
	}
	if !strings.Contains(m.View(), "RIDE OVER") {
		t.Error("game over screen not rendered")
	}
}

func TestModelRestartRecordsNextRide(t *testing.T) {
	shortRide(t)
	store := openTestStore(t)

	m := NewModel(biker.New(biker.ModeAuto), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 4}, Options{Store: store})
	m.Init()
	for i := 0; i < 60; i++ {
		m = tick(t, m)
	}

	m = pressKey(t, m, runeKey('r'))
	m = tick(t, m)
	if m.gameState.GameOver || m.scoreSaved {
		t.Fatal("restart should begin a fresh ride")
	}
	for i := 0; i < 61; i++ {
		m = tick(t, m)
	}

	if n := len(store.Ledger().History); n != 2 {
		t.Errorf("stored %d entries, expected 2", n)
	}
	if store.Ledger().History[0].Name != scores.DefaultName {
		t.Errorf("Name = %q, expected default", store.Ledger().History[0].Name)
	}
}

func TestModelQuitSavesEndlessRide(t *testing.T) {
	cfg := config.DefaultBikerConfig()
	cfg.Session.DurationSec = 0
	biker.SetConfig(cfg)
	t.Cleanup(func() { biker.SetConfig(config.DefaultBikerConfig()) })
	store := openTestStore(t)

	m := NewModel(biker.New(biker.ModeAuto), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 4}, Options{Store: store})
	m.Init()
	for i := 0; i < 120; i++ {
		m = tick(t, m)
	}
	m = pressKey(t, m, runeKey('q'))

	if !m.quitting {
		t.Error("q should quit")
	}
	if n := len(store.Ledger().History); n != 1 {
		t.Errorf("stored %d entries, expected 1", n)
	}
	if m.View() != "" {
		t.Error("quitting model renders nothing")
	}
}

func TestModelPedalInput(t *testing.T) {
	m := NewModel(biker.New(biker.ModePedal), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2}, Options{})
	m.Init()

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)

	if m.gameState.Speed < 10 {
		t.Errorf("Speed = %v after two pushes, expected >= 10", m.gameState.Speed)
	}
	if m.inputFrame.Count(core.ActionPedal) != 0 {
		t.Error("input frame should be cleared after the tick")
	}
}

func TestModelResizeKeepsRide(t *testing.T) {
	m := NewModel(biker.New(biker.ModeAuto), core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2}, Options{})
	m.Init()
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
	m = tick(t, m)
	if m.gameState.Ticks != 11 {
		t.Errorf("Ticks = %d, expected 11", m.gameState.Ticks)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ride", core.ColorHUD)
	s.DrawText(5, 1, "on", core.ColorAlert)

	out := RenderScreen(s)
	if !strings.Contains(out, "ride") || !strings.Contains(out, "on") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestTableRows(t *testing.T) {
	power := 212.4
	rows := TableRows([]scores.Entry{
		{Name: "Ana", Score: 12.345, DurationSec: 125, AvgPowerW: &power, Date: "2025-03-14"},
		{Name: "Bo", Score: 3},
	})

	if len(rows) != 2 {
		t.Fatalf("TableRows() returned %d rows", len(rows))
	}
	expected := []string{"#1", "Ana", "12.3", "2:05", "212", "2025-03-14"}
	for i, v := range expected {
		if rows[0][i] != v {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], v)
		}
	}
	if rows[1][4] != "-" {
		t.Errorf("missing power should render as -, got %q", rows[1][4])
	}
}
