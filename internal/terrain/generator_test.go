package terrain

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-biker/internal/config"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := NewGenerator(config.DefaultBikerConfig().Terrain, 480, 60, seed)
	if err != nil {
		t.Fatalf("NewGenerator() failed: %v", err)
	}
	return g
}

func TestHillContribution(t *testing.T) {
	h := Hill{CenterX: 100, Width: 200, Height: 50}

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"peak at center", 100, 50},
		{"left edge", 0, 0},
		{"right edge", 200, 0},
		{"outside", 250, 0},
		{"half way", 150, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.Contribution(tc.x); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Contribution(%v) = %f, expected %f", tc.x, got, tc.expected)
			}
		})
	}
}

func TestHillSmoothEdges(t *testing.T) {
	h := Hill{CenterX: 0, Width: 300, Height: 80}
	const eps = 1e-3

	// Slope just inside each edge should be ~0
	for _, edge := range []float64{h.LeadingEdge() + eps, h.TrailingEdge() - eps} {
		slope := (h.Contribution(edge+eps) - h.Contribution(edge-eps)) / (2 * eps)
		if math.Abs(slope) > 1e-4 {
			t.Errorf("slope near edge %v = %g, expected ~0", edge, slope)
		}
	}
}

func TestHeightIsPure(t *testing.T) {
	g := newTestGenerator(t, 7)
	g.hills = append(g.hills, Hill{CenterX: 500, Width: 300, Height: 60})

	xs := []float64{900, 10, 500, 499.5, 10, 900}
	first := make([]float64, len(xs))
	for i, x := range xs {
		first[i] = g.Height(x)
	}
	for i, x := range xs {
		if got := g.Height(x); got != first[i] {
			t.Errorf("Height(%v) changed between calls: %f vs %f", x, first[i], got)
		}
	}
	if g.Height(10) != g.Height(10) {
		t.Error("Height should be deterministic")
	}
}

func TestHeightStacksOverlappingHills(t *testing.T) {
	g := newTestGenerator(t, 1)
	g.hills = append(g.hills,
		Hill{CenterX: 1000, Width: 400, Height: 30},
		Hill{CenterX: 1000, Width: 200, Height: 20},
	)

	base := g.baseline.Height(1000)
	if got := g.Height(1000); math.Abs(got-(base+50)) > 1e-9 {
		t.Errorf("Height(1000) = %f, expected baseline+50 = %f", got, base+50)
	}
}

func TestHeightWithinBounds(t *testing.T) {
	g := newTestGenerator(t, 3)
	g.hills = append(g.hills,
		Hill{CenterX: 300, Width: 500, Height: 80},
		Hill{CenterX: 450, Width: 220, Height: 40},
	)

	lo, hi := g.Bounds()
	for x := -200.0; x < 2000; x += 0.5 {
		y := g.Height(x)
		if y < lo-1e-9 || y > hi+1e-9 {
			t.Fatalf("Height(%v) = %f outside [%f, %f]", x, y, lo, hi)
		}
	}
}

func TestHeightContinuous(t *testing.T) {
	g := newTestGenerator(t, 5)
	g.hills = append(g.hills, Hill{CenterX: 700, Width: 260, Height: 80})

	// Steepest possible step: baseline 0.5/unit plus hill pi*h/w
	const step = 0.01
	maxJump := step * (50*0.01 + math.Pi*80/260 + 1e-6)
	prev := g.Height(0)
	for x := step; x < 1500; x += step {
		y := g.Height(x)
		if math.Abs(y-prev) > maxJump {
			t.Fatalf("jump of %g at x=%v exceeds %g", math.Abs(y-prev), x, maxJump)
		}
		prev = y
	}
}

func TestUpdateEventuallySpawns(t *testing.T) {
	g := newTestGenerator(t, 42)

	limit := g.MaxInterval() + 1
	for i := 0; i < limit; i++ {
		g.Update(0)
	}

	if len(g.Hills()) < 1 {
		t.Fatalf("expected at least one hill after %d updates, got none", limit)
	}
}

func TestSpawnPlacementAndRanges(t *testing.T) {
	g := newTestGenerator(t, 9)
	cfg := config.DefaultBikerConfig().Terrain.Hills

	camera := 1234.0
	for i := 0; i < 20; i++ {
		g.spawnHill(camera)
	}

	for _, h := range g.Hills() {
		ahead := h.CenterX - (camera + 480)
		if ahead < float64(cfg.AheadMin) || ahead > float64(cfg.AheadMax) {
			t.Errorf("hill lead %v outside [%d, %d]", ahead, cfg.AheadMin, cfg.AheadMax)
		}
		if h.Width < float64(cfg.WidthMin) || h.Width > float64(cfg.WidthMax) {
			t.Errorf("hill width %v outside range", h.Width)
		}
		if h.Height < float64(cfg.HeightMin) || h.Height > float64(cfg.HeightMax) {
			t.Errorf("hill height %v outside range", h.Height)
		}
	}
}

func TestCountdownRedrawnInRange(t *testing.T) {
	g := newTestGenerator(t, 11)
	minTicks := int(5 * 60)
	maxTicks := int(20 * 60)

	for i := 0; i < 100; i++ {
		c := g.drawCountdown()
		if c < minTicks || c > maxTicks {
			t.Fatalf("countdown %d outside [%d, %d]", c, minTicks, maxTicks)
		}
	}
}

func TestCleanupRemovesHillsBehindCamera(t *testing.T) {
	g := newTestGenerator(t, 1)
	g.hills = append(g.hills,
		Hill{CenterX: 100, Width: 100, Height: 10},  // trailing edge 150
		Hill{CenterX: 900, Width: 200, Height: 10},  // trailing edge 1000
		Hill{CenterX: 1200, Width: 300, Height: 10}, // trailing edge 1350
	)

	// cut = 1150 - 100 = 1050
	g.Cleanup(1150)

	hills := g.Hills()
	if len(hills) != 1 {
		t.Fatalf("expected 1 hill after cleanup, got %d", len(hills))
	}
	if hills[0].CenterX != 1200 {
		t.Errorf("wrong hill survived: %+v", hills[0])
	}
}

func TestCleanupKeepsHillWithinMargin(t *testing.T) {
	g := newTestGenerator(t, 1)
	g.hills = append(g.hills, Hill{CenterX: 100, Width: 100, Height: 10}) // trailing edge 150

	g.Cleanup(240) // cut at 140, edge still ahead of it
	if len(g.Hills()) != 1 {
		t.Error("hill inside the margin should be kept")
	}
}

func TestResetClearsHills(t *testing.T) {
	g := newTestGenerator(t, 2)
	g.hills = append(g.hills, Hill{CenterX: 10, Width: 300, Height: 40})

	g.Reset(2)
	if len(g.Hills()) != 0 {
		t.Error("Reset should clear hills")
	}
	if g.Countdown() < 300 {
		t.Errorf("Reset should redraw the countdown, got %d", g.Countdown())
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	g1 := newTestGenerator(t, 1234)
	g2 := newTestGenerator(t, 1234)

	for i := 0; i < 5000; i++ {
		cam := float64(i) * 3
		g1.Update(cam)
		g2.Update(cam)
	}

	h1, h2 := g1.Hills(), g2.Hills()
	if len(h1) != len(h2) {
		t.Fatalf("hill counts differ: %d vs %d", len(h1), len(h2))
	}
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Errorf("hill %d differs: %+v vs %+v", i, h1[i], h2[i])
		}
	}
}

func TestSetIntensity(t *testing.T) {
	g := newTestGenerator(t, 8)
	g.SetIntensity(2, 0.5)
	g.spawnHill(0)

	h := g.Hills()[0]
	if h.Height < 40 || h.Height > 160 {
		t.Errorf("scaled hill height %v outside [40, 160]", h.Height)
	}
	for i := 0; i < 50; i++ {
		if c := g.drawCountdown(); c > 600 {
			t.Fatalf("scaled countdown %d exceeds 600", c)
		}
	}
}

func TestNewGeneratorRejectsBadTuning(t *testing.T) {
	cfg := config.DefaultBikerConfig().Terrain

	if _, err := NewGenerator(cfg, 480, 0, 1); err == nil {
		t.Error("zero tick rate should be rejected")
	}

	bad := cfg
	bad.Hills.SpawnMinSec = 30
	if _, err := NewGenerator(bad, 480, 60, 1); err == nil {
		t.Error("inverted spawn range should be rejected")
	}
}
