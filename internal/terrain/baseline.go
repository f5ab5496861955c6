package terrain

import (
	"math"

	"github.com/vovakirdan/tui-biker/internal/config"
)

// Baseline is the fixed-per-session ground curve under the hills.
type Baseline interface {
	Height(x float64) float64
	// Bounds returns the lowest and highest value Height can produce.
	Bounds() (lo, hi float64)
}

// SineBaseline is offset + sin(x*frequency)*amplitude.
type SineBaseline struct {
	Offset    float64
	Amplitude float64
	Frequency float64
}

// Height returns the baseline height at world x.
func (b SineBaseline) Height(x float64) float64 {
	return b.Offset + math.Sin(x*b.Frequency)*b.Amplitude
}

// Bounds returns offset ± |amplitude|.
func (b SineBaseline) Bounds() (float64, float64) {
	a := math.Abs(b.Amplitude)
	return b.Offset - a, b.Offset + a
}

// NoiseBaseline is multi-octave 1D gradient noise around Offset.
// Gradients are derived from a hash of (seed, lattice coordinate), so the same
// coordinate always yields the same gradient and the curve is reproducible.
type NoiseBaseline struct {
	Offset     float64
	Amplitude  float64
	Wavelength float64
	Octaves    int
	Seed       int64
}

// Height returns the baseline height at world x.
func (b NoiseBaseline) Height(x float64) float64 {
	octaves := b.Octaves
	if octaves < 1 {
		octaves = 1
	}
	wavelength := b.Wavelength
	if wavelength <= 0 {
		wavelength = 1
	}

	freq := 1.0 / wavelength
	amp := 1.0
	total := 0.0
	weight := 0.0
	for i := 0; i < octaves; i++ {
		total += gradientNoise(b.Seed+int64(i)*7919, x*freq) * amp
		weight += amp
		amp *= 0.5
		freq *= 2
	}
	return b.Offset + b.Amplitude*total/weight
}

// Bounds returns offset ± |amplitude|. Each octave lies in [-1, 1], and so
// does their weighted average.
func (b NoiseBaseline) Bounds() (float64, float64) {
	a := math.Abs(b.Amplitude)
	return b.Offset - a, b.Offset + a
}

// gradientNoise evaluates 1D Perlin-style noise in [-1, 1].
func gradientNoise(seed int64, x float64) float64 {
	x0 := math.Floor(x)
	t := x - x0
	i0 := int64(x0)

	g0 := lattice(seed, i0)
	g1 := lattice(seed, i0+1)

	v0 := g0 * t
	v1 := g1 * (t - 1)
	return 2 * (v0 + (v1-v0)*fade(t))
}

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3; first and second
// derivatives vanish at lattice points, so the curve has no slope kinks.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lattice returns a gradient in [-1, 1] for an integer coordinate.
func lattice(seed, i int64) float64 {
	h := uint64(seed)*0x9E3779B97F4A7C15 ^ uint64(i)*0xC2B2AE3D27D4EB4F
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return float64(h&0xFFFFFF)/float64(0xFFFFFF)*2 - 1
}

// NewBaseline builds the baseline selected by configuration. A zero noise
// seed falls back to the session seed.
func NewBaseline(cfg config.BaselineConfig, sessionSeed int64) Baseline {
	if cfg.Kind == config.BaselineNoise {
		seed := cfg.Seed
		if seed == 0 {
			seed = sessionSeed
		}
		return NoiseBaseline{
			Offset:     cfg.Offset,
			Amplitude:  cfg.Amplitude,
			Wavelength: cfg.Wavelength,
			Octaves:    cfg.Octaves,
			Seed:       seed,
		}
	}
	return SineBaseline{
		Offset:    cfg.Offset,
		Amplitude: cfg.Amplitude,
		Frequency: cfg.Frequency,
	}
}
