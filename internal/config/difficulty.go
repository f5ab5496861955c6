package config

import "math"

// DifficultyManager calculates terrain roughness based on energy or elapsed time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on energy/ticks.
func (d *DifficultyManager) Level(energy float64, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "energy":
		progress = energy / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// HeightFactor returns the multiplier applied to newly spawned hill heights.
func (d *DifficultyManager) HeightFactor(level float64) float64 {
	return 1.0 + clampF(level, 0, 1)*d.cfg.Scaling.HeightMultiplier
}

// IntervalFactor returns the multiplier applied to the hill spawn interval.
// Never below 0.1 so hills cannot spawn every tick.
func (d *DifficultyManager) IntervalFactor(level float64) float64 {
	return math.Max(0.1, 1.0-clampF(level, 0, 1)*d.cfg.Scaling.IntervalReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
