package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-biker/internal/core"
	"github.com/vovakirdan/tui-biker/internal/registry"
	"github.com/vovakirdan/tui-biker/internal/scores"
)

// Options are the platform services handed to a ride.
type Options struct {
	Store      *scores.Store // May be nil; scores are then not recorded
	Logger     *log.Logger
	PlayerName string
}

// Model is the Bubble Tea model for running a ride.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *scores.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the score has been stored for the current ride
}

// NewModel creates a new Bubble Tea model for the given ride.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		player:     opts.PlayerName,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the ride.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("ride started", "mode", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if quit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); quit {
		m.quitting = true
		m.finishRide()
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The world viewport is fixed,
// so the ride keeps going and is only drawn at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Info("ride restarted", "mode", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.finishRide()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRide stores the score once per ride. Storage problems are logged
// and never interrupt the game.
func (m *Model) finishRide() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	summary := m.game.Summary()
	if summary.EnergyKJ <= 0 || m.store == nil {
		return
	}

	entry := scores.Entry{
		Name:        m.player,
		Score:       summary.EnergyKJ,
		EnergyKJ:    summary.EnergyKJ,
		DurationSec: summary.DurationSec,
	}
	if summary.DurationSec > 0 {
		power, speed := summary.AvgPowerW, summary.AvgSpeed
		entry.AvgPowerW = &power
		entry.AvgSpeed = &speed
	}

	ranks, err := m.store.Add(entry)
	if err != nil {
		m.logger.Warn("score not saved", "err", err)
	}
	m.game.SetRanks(ranks)
	m.logger.Info("ride finished",
		"energy_kj", fmt.Sprintf("%.1f", summary.EnergyKJ),
		"duration_sec", summary.DurationSec,
		"collected", len(summary.Collected),
		"daily_rank", ranks.Daily,
		"alltime_rank", ranks.AllTime,
	)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".biker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not written", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given ride.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
