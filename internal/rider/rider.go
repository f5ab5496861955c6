// Package rider integrates the cyclist's speed and tilt against the terrain
// and converts the motion into energy, the game's score.
package rider

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-biker/internal/config"
	"github.com/vovakirdan/tui-biker/internal/core"
)

// Construction errors. A rider built from these parameters would divide by
// zero or drift outside its speed bounds, so they are never masked.
var (
	ErrInvalidWheelBase = errors.New("rider: wheel_base must be positive")
	ErrInvalidSpeeds    = errors.New("rider: min_speed must be >= 0 and <= max_speed")
	ErrInvalidFriction  = errors.New("rider: friction must be in (0, 1]")
	ErrInvalidFrames    = errors.New("rider: animation needs at least one frame")
	ErrUnknownPolicy    = errors.New("rider: unknown energy policy")
	ErrNegativeRates    = errors.New("rider: energy rates and mult_min must not be negative")
)

// HeightSampler is the terrain as seen by the rider.
type HeightSampler interface {
	Height(x float64) float64
}

// Rider is the simulated cyclist.
type Rider struct {
	cfg    config.RiderConfig
	energy energyFunc

	cameraX  float64 // World offset of the screen's left edge, never decreases
	anchorY  float64 // Midpoint of the two wheel contacts
	tilt     float64 // Radians, positive = nose up
	speed    float64
	frame    int
	total    float64 // Accumulated energy, kJ
	distance float64
}

// New validates the configuration and builds a rider at camera 0.
func New(cfg config.RiderConfig, energy config.EnergyConfig) (*Rider, error) {
	if cfg.WheelBase <= 0 || math.IsNaN(cfg.WheelBase) {
		return nil, ErrInvalidWheelBase
	}
	if cfg.MinSpeed < 0 || cfg.MinSpeed > cfg.MaxSpeed {
		return nil, ErrInvalidSpeeds
	}
	if cfg.Friction <= 0 || cfg.Friction > 1 {
		return nil, ErrInvalidFriction
	}
	if cfg.Animation.Frames < 1 {
		return nil, ErrInvalidFrames
	}
	if energy.PerPixelRate < 0 || energy.FlatRate < 0 || energy.UphillRate < 0 ||
		energy.DownhillMultiplier < 0 || energy.MultMin < 0 || energy.MultMin > energy.MultMax {
		return nil, ErrNegativeRates
	}
	fn, err := newEnergyFunc(energy)
	if err != nil {
		return nil, err
	}

	r := &Rider{cfg: cfg, energy: fn}
	r.speed = core.ClampF(cfg.StartSpeed, cfg.MinSpeed, cfg.MaxSpeed)
	return r, nil
}

// Reset puts the rider back at the start and settles it on the terrain.
func (r *Rider) Reset(terrain HeightSampler) {
	r.cameraX = 0
	r.speed = core.ClampF(r.cfg.StartSpeed, r.cfg.MinSpeed, r.cfg.MaxSpeed)
	r.frame = 0
	r.total = 0
	r.distance = 0
	r.tilt = 0
	if terrain != nil {
		hL, hR := r.sample(terrain)
		r.anchorY = (hL + hR) / 2
		r.tilt = math.Atan2(hR-hL, r.cfg.WheelBase)
	}
}

// Cycle is one push on the pedals.
func (r *Rider) Cycle() {
	r.speed = math.Min(r.speed+r.cfg.PedalBoost, r.cfg.MaxSpeed)
}

// sample returns the terrain height under the rear and front wheel.
func (r *Rider) sample(terrain HeightSampler) (hL, hR float64) {
	half := r.cfg.WheelBase / 2
	x := r.cameraX + r.cfg.ScreenX
	return terrain.Height(x - half), terrain.Height(x + half)
}

// Update advances speed, tilt, position and energy by one tick.
func (r *Rider) Update(terrain HeightSampler) Step {
	hL, hR := r.sample(terrain)
	dh := hR - hL

	r.tilt = math.Atan2(dh, r.cfg.WheelBase)
	slope := dh / r.cfg.WheelBase

	speed := r.speed
	speed += -slope * r.cfg.SlopeFactor
	speed *= r.cfg.Friction
	speed -= r.cfg.Deceleration
	if math.IsNaN(speed) {
		speed = r.cfg.MinSpeed
	}
	r.speed = core.ClampF(speed, r.cfg.MinSpeed, r.cfg.MaxSpeed)

	prevAnchor := r.anchorY
	r.anchorY = (hL + hR) / 2

	// Camera follows the rider; the next tick samples the new position
	dx := r.speed
	r.cameraX += dx
	r.distance += dx

	m := Step{
		Speed:  r.speed,
		Slope:  slope,
		DeltaX: dx,
		DeltaH: r.anchorY - prevAnchor,
	}
	if gain := r.energy(m); gain > 0 && !math.IsInf(gain, 0) {
		m.Energy = gain
		r.total += gain
	}
	return m
}

// Animate advances the pedalling frame. Call exactly once per tick.
func (r *Rider) Animate(tick int) {
	a := r.cfg.Animation
	if !a.SpeedBased {
		interval := core.Max(1, a.FixedInterval)
		if tick%interval == 0 {
			r.frame = (r.frame + 1) % a.Frames
		}
		return
	}

	if r.speed <= 0 {
		return
	}
	// A crawling rider would need an interval beyond int range
	raw := a.SpeedDivisor / r.speed
	if raw > math.MaxInt32 {
		return
	}
	interval := core.Max(core.Max(1, a.FloorInterval), int(raw))
	if tick%interval == 0 {
		r.frame = (r.frame + 1) % a.Frames
	}
}

// CameraX returns the world x of the screen's left edge.
func (r *Rider) CameraX() float64 { return r.cameraX }

// ScreenX returns the rider's fixed x on screen.
func (r *Rider) ScreenX() float64 { return r.cfg.ScreenX }

// WorldX returns the rider's world x.
func (r *Rider) WorldX() float64 { return r.cameraX + r.cfg.ScreenX }

// AnchorY returns the height of the wheel-contact midpoint.
func (r *Rider) AnchorY() float64 { return r.anchorY }

// Tilt returns the bike angle in radians.
func (r *Rider) Tilt() float64 { return r.tilt }

// Speed returns the current speed in world units per tick.
func (r *Rider) Speed() float64 { return r.speed }

// Frame returns the current animation frame index.
func (r *Rider) Frame() int { return r.frame }

// Energy returns the accumulated energy in kJ.
func (r *Rider) Energy() float64 { return r.total }

// Distance returns the world distance travelled.
func (r *Rider) Distance() float64 { return r.distance }

// Automatic reports whether the rider ignores pedal input.
func (r *Rider) Automatic() bool { return r.cfg.PedalBoost == 0 }
