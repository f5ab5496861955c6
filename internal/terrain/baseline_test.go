package terrain

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-biker/internal/config"
)

func TestSineBaseline(t *testing.T) {
	b := SineBaseline{Offset: 360, Amplitude: 50, Frequency: 0.01}

	if got := b.Height(0); got != 360 {
		t.Errorf("Height(0) = %f, expected 360", got)
	}
	if got := b.Height(math.Pi / 2 / 0.01); math.Abs(got-410) > 1e-9 {
		t.Errorf("Height(peak) = %f, expected 410", got)
	}
	lo, hi := b.Bounds()
	if lo != 310 || hi != 410 {
		t.Errorf("Bounds() = (%f, %f), expected (310, 410)", lo, hi)
	}
}

func TestNoiseBaselineDeterministic(t *testing.T) {
	a := NoiseBaseline{Offset: 360, Amplitude: 60, Wavelength: 300, Octaves: 4, Seed: 99}
	b := NoiseBaseline{Offset: 360, Amplitude: 60, Wavelength: 300, Octaves: 4, Seed: 99}
	c := NoiseBaseline{Offset: 360, Amplitude: 60, Wavelength: 300, Octaves: 4, Seed: 100}

	differs := false
	for x := 0.0; x < 3000; x += 37 {
		if a.Height(x) != b.Height(x) {
			t.Fatalf("same seed gave different heights at %v", x)
		}
		if a.Height(x) != c.Height(x) {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds should give different curves")
	}
}

func TestNoiseBaselineBoundedAndContinuous(t *testing.T) {
	b := NoiseBaseline{Offset: 0, Amplitude: 100, Wavelength: 200, Octaves: 5, Seed: 7}
	lo, hi := b.Bounds()

	prev := b.Height(-500)
	for x := -500.0; x < 5000; x += 0.25 {
		y := b.Height(x)
		if y < lo || y > hi {
			t.Fatalf("Height(%v) = %f outside [%f, %f]", x, y, lo, hi)
		}
		if math.Abs(y-prev) > 5 {
			t.Fatalf("discontinuity at %v: %f -> %f", x, prev, y)
		}
		prev = y
	}
}

func TestNoiseBaselineZeroAtLattice(t *testing.T) {
	// Gradient noise passes through zero at every lattice point
	for i := int64(-5); i < 5; i++ {
		if v := gradientNoise(3, float64(i)); v != 0 {
			t.Errorf("gradientNoise(%d) = %f, expected 0", i, v)
		}
	}
}

func TestNewBaselineSelectsKind(t *testing.T) {
	cfg := config.DefaultBikerConfig().Terrain.Baseline
	if _, ok := NewBaseline(cfg, 1).(SineBaseline); !ok {
		t.Error("default kind should build a SineBaseline")
	}

	cfg.Kind = config.BaselineNoise
	nb, ok := NewBaseline(cfg, 77).(NoiseBaseline)
	if !ok {
		t.Fatal("noise kind should build a NoiseBaseline")
	}
	if nb.Seed != 77 {
		t.Errorf("zero config seed should fall back to session seed, got %d", nb.Seed)
	}
}
