package rider

import (
	"math"

	"github.com/vovakirdan/tui-biker/internal/config"
	"github.com/vovakirdan/tui-biker/internal/core"
)

// energyFunc returns the non-negative energy gained in one tick.
type energyFunc func(m Step) float64

// Step is what the rider did during one tick.
type Step struct {
	Speed  float64 // Speed after the update
	Slope  float64 // Rise over wheel base, positive = uphill
	DeltaX float64 // World distance travelled this tick
	DeltaH float64 // Change of the anchor height this tick
	Energy float64 // Energy gained this tick, kJ
}

func newEnergyFunc(cfg config.EnergyConfig) (energyFunc, error) {
	switch cfg.Policy {
	case config.PolicySlopeMultiplier:
		return slopeMultiplier(cfg), nil
	case config.PolicyDisplacement:
		return displacement(cfg), nil
	default:
		return nil, ErrUnknownPolicy
	}
}

// slopeMultiplier rewards speed, scaled up on climbs and down on descents.
func slopeMultiplier(cfg config.EnergyConfig) energyFunc {
	return func(m Step) float64 {
		var mult float64
		if m.Slope >= 0 {
			mult = 1 + cfg.UphillBonus*m.Slope
		} else {
			mult = 1 - cfg.DownhillPenalty*math.Abs(m.Slope)
		}
		mult = core.ClampF(mult, cfg.MultMin, cfg.MultMax)
		return math.Max(0, m.Speed*cfg.PerPixelRate*mult)
	}
}

// displacement rewards forward distance plus height gained.
func displacement(cfg config.EnergyConfig) energyFunc {
	return func(m Step) float64 {
		flat := math.Max(0, m.DeltaX) * cfg.FlatRate
		if m.DeltaH < 0 {
			flat *= cfg.DownhillMultiplier
		}
		return flat + math.Max(0, m.DeltaH)*cfg.UphillRate
	}
}
