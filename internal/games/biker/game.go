// Package biker implements the endless cycling ride.
// The rider crosses procedurally generated hills, turning motion into
// energy and picking up collectibles once energy milestones are reached.
package biker

import (
	"fmt"
	"math"
	"sync"

	"github.com/vovakirdan/tui-biker/internal/collectibles"
	"github.com/vovakirdan/tui-biker/internal/config"
	"github.com/vovakirdan/tui-biker/internal/core"
	"github.com/vovakirdan/tui-biker/internal/registry"
	"github.com/vovakirdan/tui-biker/internal/rider"
	"github.com/vovakirdan/tui-biker/internal/scores"
	"github.com/vovakirdan/tui-biker/internal/terrain"
)

// Mode selects how the rider is driven.
type Mode int

const (
	ModePedal Mode = iota // Player pedals, speed decays without input
	ModeAuto              // Rider keeps moving on its own
)

// Game implements one ride.
type Game struct {
	mode       Mode
	runtime    core.RuntimeConfig
	cfg        config.BikerConfig
	terrain    *terrain.Generator
	rider      *rider.Rider
	items      *collectibles.Manager
	difficulty *config.DifficultyManager
	tickCount  int
	gameOver   bool
	paused     bool
	headline   string // Best rank reached, set after the score is stored
	err        error  // Construction failure, shown instead of the ride
}

var (
	activeMu  sync.RWMutex
	activeCfg *config.BikerConfig
)

// SetConfig sets the configuration used by every following Reset.
// Without it the built-in defaults are used.
func SetConfig(cfg config.BikerConfig) {
	activeMu.Lock()
	defer activeMu.Unlock()
	activeCfg = &cfg
}

func currentConfig() config.BikerConfig {
	activeMu.RLock()
	defer activeMu.RUnlock()
	if activeCfg == nil {
		return config.DefaultBikerConfig()
	}
	return *activeCfg
}

// Check builds every component of both modes from cfg and reports the first
// construction error.
func Check(cfg config.BikerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := terrain.NewGenerator(cfg.Terrain, cfg.Viewport.Width, 60, 1); err != nil {
		return err
	}
	for _, m := range []config.ModeConfig{cfg.Pedal, cfg.Auto} {
		if _, err := rider.New(m.Rider, m.Energy); err != nil {
			return err
		}
	}
	return nil
}

// New creates a ride in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeAuto {
		return "biker_auto"
	}
	return "biker"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeAuto {
		return "Endless Biker (auto)"
	}
	return "Endless Biker"
}

func (g *Game) modeConfig() config.ModeConfig {
	if g.mode == ModeAuto {
		return g.cfg.Auto
	}
	return g.cfg.Pedal
}

// Reset initializes or restarts the ride.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.cfg = currentConfig()
	g.tickCount = 0
	g.gameOver = false
	g.paused = false
	g.headline = ""
	g.err = nil
	g.terrain, g.rider, g.items = nil, nil, nil

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	gen, err := terrain.NewGenerator(g.cfg.Terrain, g.cfg.Viewport.Width, runtime.TickRate, runtime.Seed)
	if err != nil {
		g.fail(err)
		return
	}
	g.terrain = gen

	mode := g.modeConfig()
	r, err := rider.New(mode.Rider, mode.Energy)
	if err != nil {
		g.fail(err)
		return
	}
	g.rider = r
	g.rider.Reset(g.terrain)

	catalog := collectibles.CatalogFromConfig(g.cfg.Collectibles.Items)
	g.items = collectibles.NewManager(catalog, g.cfg.Collectibles, runtime.TickRate)
	g.applyDifficulty()
}

func (g *Game) fail(err error) {
	g.err = err
	g.gameOver = true
}

// Err returns the error that prevented the ride from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the ride by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Each key press is one push on the pedals
	for i := 0; i < in.Count(core.ActionPedal); i++ {
		g.rider.Cycle()
	}

	g.rider.Animate(g.tickCount)
	g.rider.Update(g.terrain)

	camera := g.rider.CameraX()
	g.terrain.Update(camera)
	g.applyDifficulty()

	energy := g.rider.Energy()
	g.items.MaybeSpawn(energy, camera, g.cfg.Viewport.Width, g.terrain)
	g.items.Update(camera, g.rider.ScreenX(), g.rider.AnchorY())

	if limit := g.durationTicks(); limit > 0 && g.tickCount >= limit {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applyDifficulty() {
	level := g.difficulty.Level(g.rider.Energy(), g.tickCount)
	g.terrain.SetIntensity(g.difficulty.HeightFactor(level), g.difficulty.IntervalFactor(level))
}

// durationTicks returns the session length in ticks, 0 for an endless ride.
func (g *Game) durationTicks() int {
	return g.cfg.Session.DurationSec * g.runtime.TickRate
}

// Remaining returns the ticks left in the session, or -1 for an endless ride.
func (g *Game) Remaining() int {
	limit := g.durationTicks()
	if limit <= 0 {
		return -1
	}
	return core.Max(0, limit-g.tickCount)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Ticks:    g.tickCount,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.rider != nil {
		st.Energy = g.rider.Energy()
		st.Speed = g.rider.Speed()
	}
	return st
}

// Summary returns the ride statistics so far.
func (g *Game) Summary() core.SessionSummary {
	if g.rider == nil {
		return core.SessionSummary{}
	}
	seconds := float64(g.tickCount) / float64(g.runtime.TickRate)
	s := core.SessionSummary{
		EnergyKJ:    g.rider.Energy(),
		DurationSec: int(math.Round(seconds)),
		Distance:    g.rider.Distance(),
		Collected:   g.items.Collected(),
	}
	if seconds > 0 {
		s.AvgSpeed = s.Distance / seconds
		s.AvgPowerW = s.EnergyKJ * 1000 / seconds
	}
	return s
}

// SetRanks picks the headline shown on the game over screen.
func (g *Game) SetRanks(r scores.Ranks) {
	g.headline = r.Headline()
}

// Headline returns the rank message, or "" if the score did not place.
func (g *Game) Headline() string {
	return g.headline
}

// Terrain exposes the generator, mainly for tests.
func (g *Game) Terrain() *terrain.Generator {
	return g.terrain
}

// Rider exposes the rider, mainly for tests.
func (g *Game) Rider() *rider.Rider {
	return g.rider
}

// Items exposes the collectible manager.
func (g *Game) Items() *collectibles.Manager {
	return g.items
}

// formatClock renders ticks as m:ss.
func formatClock(ticks, tickRate int) string {
	sec := ticks / tickRate
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// Register both ride modes with the registry
func init() {
	registry.Register("biker", func() registry.Game {
		return New(ModePedal)
	})
	registry.Register("biker_auto", func() registry.Game {
		return New(ModeAuto)
	})
}
