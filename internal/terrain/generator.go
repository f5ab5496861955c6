// Package terrain generates the endless ground: a baseline curve plus hills
// that spawn ahead of the camera on a random timer and are dropped once they
// scroll out behind it.
package terrain

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-biker/internal/config"
)

// ErrInvalidTickRate is returned when the generator cannot convert seconds to ticks.
var ErrInvalidTickRate = errors.New("terrain: tick rate must be positive")

// Generator produces ground height as a function of world x.
type Generator struct {
	baseline  Baseline
	hills     []Hill // Spawn order, not sorted by position
	cfg       config.HillConfig
	rng       *rand.Rand
	viewportW float64
	tickRate  int
	countdown int // Ticks until the next hill spawns

	heightFactor   float64 // Difficulty scaling for future hills
	intervalFactor float64
}

// NewGenerator creates a terrain generator seeded for reproducible hills.
func NewGenerator(cfg config.TerrainConfig, viewportW float64, tickRate int, seed int64) (*Generator, error) {
	if tickRate <= 0 {
		return nil, ErrInvalidTickRate
	}
	h := cfg.Hills
	if h.SpawnMinSec <= 0 || h.SpawnMinSec > h.SpawnMaxSec {
		return nil, config.ErrHillTiming
	}
	if h.WidthMin <= 0 || h.WidthMin > h.WidthMax ||
		h.HeightMin < 0 || h.HeightMin > h.HeightMax ||
		h.AheadMin < 0 || h.AheadMin > h.AheadMax {
		return nil, config.ErrHillRange
	}

	g := &Generator{
		baseline:       NewBaseline(cfg.Baseline, seed),
		hills:          make([]Hill, 0, 8),
		cfg:            h,
		viewportW:      viewportW,
		tickRate:       tickRate,
		heightFactor:   1,
		intervalFactor: 1,
	}
	g.Reset(seed)
	return g, nil
}

// Height returns the ground height at world x. It has no side effects and
// can be sampled at any x in any order.
func (g *Generator) Height(x float64) float64 {
	y := g.baseline.Height(x)
	for _, h := range g.hills {
		y += h.Contribution(x)
	}
	return y
}

// Slope returns the rise over run between two sample points.
func (g *Generator) Slope(x0, x1 float64) float64 {
	if x1 == x0 {
		return 0
	}
	return (g.Height(x1) - g.Height(x0)) / (x1 - x0)
}

// Bounds returns the range Height can take for the current hill set.
func (g *Generator) Bounds() (lo, hi float64) {
	lo, hi = g.baseline.Bounds()
	for _, h := range g.hills {
		if h.Height >= 0 {
			hi += h.Height
		} else {
			lo += h.Height
		}
	}
	return lo, hi
}

// Update advances the hill lifecycle by one tick.
func (g *Generator) Update(cameraX float64) {
	g.countdown--
	if g.countdown <= 0 {
		g.spawnHill(cameraX)
		g.countdown = g.drawCountdown()
	}
	g.Cleanup(cameraX)
}

// spawnHill places one randomized hill ahead of the visible window.
func (g *Generator) spawnHill(cameraX float64) {
	w := randRange(g.rng, g.cfg.WidthMin, g.cfg.WidthMax)
	h := randRange(g.rng, g.cfg.HeightMin, g.cfg.HeightMax)
	ahead := randRange(g.rng, g.cfg.AheadMin, g.cfg.AheadMax)

	g.hills = append(g.hills, Hill{
		CenterX: cameraX + g.viewportW + float64(ahead),
		Width:   float64(w),
		Height:  float64(h) * g.heightFactor,
	})
}

// Cleanup drops hills whose trailing edge is more than the margin behind the camera.
func (g *Generator) Cleanup(cameraX float64) {
	leftCut := cameraX - g.cfg.CleanupMargin
	kept := g.hills[:0]
	for _, h := range g.hills {
		if h.TrailingEdge() >= leftCut {
			kept = append(kept, h)
		}
	}
	// Zero the tail so dropped hills do not linger in the backing array
	for i := len(kept); i < len(g.hills); i++ {
		g.hills[i] = Hill{}
	}
	g.hills = kept
}

// Reset clears all hills, reseeds the RNG and redraws the countdown.
func (g *Generator) Reset(seed int64) {
	g.hills = g.hills[:0]
	g.rng = rand.New(rand.NewSource(seed))
	g.countdown = g.drawCountdown()
}

// SetIntensity applies difficulty scaling to hills spawned from now on.
// heightFactor multiplies hill height, intervalFactor the spawn interval.
func (g *Generator) SetIntensity(heightFactor, intervalFactor float64) {
	if heightFactor > 0 {
		g.heightFactor = heightFactor
	}
	if intervalFactor > 0 {
		g.intervalFactor = intervalFactor
	}
}

// drawCountdown draws the next spawn interval uniformly from [min, max] seconds.
func (g *Generator) drawCountdown() int {
	sec := g.cfg.SpawnMinSec + g.rng.Float64()*(g.cfg.SpawnMaxSec-g.cfg.SpawnMinSec)
	ticks := int(sec * float64(g.tickRate) * g.intervalFactor)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// MaxInterval returns the longest possible spawn interval in ticks.
func (g *Generator) MaxInterval() int {
	return int(math.Ceil(g.cfg.SpawnMaxSec * float64(g.tickRate)))
}

// Hills returns a copy of the active hills in spawn order.
func (g *Generator) Hills() []Hill {
	out := make([]Hill, len(g.hills))
	copy(out, g.hills)
	return out
}

// Countdown returns the ticks left until the next hill spawns.
func (g *Generator) Countdown() int {
	return g.countdown
}

// randRange returns an integer uniformly drawn from [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
