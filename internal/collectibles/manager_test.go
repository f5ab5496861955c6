package collectibles

import (
	"testing"

	"github.com/vovakirdan/tui-biker/internal/config"
)

type flatGround float64

func (f flatGround) Height(float64) float64 { return float64(f) }

func newTestManager() *Manager {
	cfg := config.DefaultBikerConfig().Collectibles
	return NewManager(CatalogFromConfig(cfg.Items), cfg, 60)
}

func TestCatalogLookup(t *testing.T) {
	c := CatalogFromConfig(config.DefaultBikerConfig().Collectibles.Items)

	if it, ok := c.Lookup("headset"); !ok || it.Energy != 400 {
		t.Errorf("Lookup(headset) = %+v, %v, expected threshold 400", it, ok)
	}
	if _, ok := c.Lookup("bicycle"); ok {
		t.Error("Lookup(bicycle) should miss")
	}
	if got := c.MessageFor("bicycle"); got != FallbackMessage {
		t.Errorf("MessageFor(bicycle) = %q, expected %q", got, FallbackMessage)
	}
}

func TestMaybeSpawnThreshold(t *testing.T) {
	m := newTestManager()
	ground := flatGround(300)

	m.MaybeSpawn(399, 0, 480, ground)
	if len(m.Active()) != 0 {
		t.Fatalf("Active() = %d items below threshold, expected 0", len(m.Active()))
	}

	m.MaybeSpawn(400, 1000, 480, ground)
	active := m.Active()
	if len(active) != 1 || active[0].Name != "headset" {
		t.Fatalf("Active() = %+v, expected one headset", active)
	}
	if active[0].X != 1000+480+160 {
		t.Errorf("spawn X = %v, expected %v", active[0].X, 1000+480+160)
	}
	if active[0].Y != 302 {
		t.Errorf("spawn Y = %v, expected 302", active[0].Y)
	}
	if !m.Spawned("headset") || m.Spawned("telefon") {
		t.Error("only headset should be marked spawned")
	}
}

func TestMaybeSpawnSeveralAtOnce(t *testing.T) {
	m := newTestManager()
	m.MaybeSpawn(1000, 0, 480, flatGround(0))

	active := m.Active()
	if len(active) != 2 {
		t.Fatalf("Active() = %d items, expected 2", len(active))
	}
	if active[0].Name != "headset" || active[1].Name != "telefon" {
		t.Errorf("spawn order = %s, %s, expected catalog order", active[0].Name, active[1].Name)
	}
}

func TestNoDuplicateSpawn(t *testing.T) {
	m := newTestManager()
	ground := flatGround(0)

	for i := 0; i < 10; i++ {
		m.MaybeSpawn(450, float64(i*10), 480, ground)
	}
	if len(m.Active()) != 1 {
		t.Errorf("Active() = %d items, expected 1", len(m.Active()))
	}

	// Once discarded it never comes back
	m.Update(1e6, 140, 0)
	if len(m.Active()) != 0 {
		t.Fatalf("item should be discarded far behind the camera")
	}
	m.MaybeSpawn(450, 1e6, 480, ground)
	if len(m.Active()) != 0 {
		t.Errorf("discarded item respawned")
	}
}

func TestPickupSetsMessage(t *testing.T) {
	m := newTestManager()
	m.MaybeSpawn(400, 0, 480, flatGround(300))
	x := m.Active()[0].X

	// Rider at screen x 140; bring the item within 24 units
	camera := x - 140 - 20
	picked := m.Update(camera, 140, 300)

	if len(picked) != 1 || picked[0] != "headset" {
		t.Fatalf("Update() picked %v, expected [headset]", picked)
	}
	if len(m.Active()) != 0 {
		t.Errorf("picked item still active")
	}
	expectedMsg := config.DefaultBikerConfig().Collectibles.Items[0].Message
	if m.Message() != expectedMsg {
		t.Errorf("Message() = %q, expected %q", m.Message(), expectedMsg)
	}
	// 5s at 60fps, minus the tick it was set on
	if m.MessageTimer() != 299 {
		t.Errorf("MessageTimer() = %d, expected 299", m.MessageTimer())
	}
	if got := m.Collected(); len(got) != 1 || got[0] != "headset" {
		t.Errorf("Collected() = %v, expected [headset]", got)
	}
}

func TestPickupToleranceBox(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		picked bool
	}{
		{"dead on", 0, 0, true},
		{"edge of x", 24, 0, true},
		{"edge of y", 0, -28, true},
		{"too far ahead", 25, 0, false},
		{"too high", 0, 29, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestManager()
			m.MaybeSpawn(400, 0, 480, flatGround(100))
			inst := m.Active()[0]

			camera := inst.X - 140 - tc.dx
			picked := m.Update(camera, 140, inst.Y-tc.dy)
			if (len(picked) == 1) != tc.picked {
				t.Errorf("picked = %v, expected %v", picked, tc.picked)
			}
		})
	}
}

func TestDiscardBehindCamera(t *testing.T) {
	m := newTestManager()
	m.MaybeSpawn(400, 0, 480, flatGround(0))
	x := m.Active()[0].X

	// Rider far above so no pickup; item at screen x -200 is kept
	m.Update(x+200, 140, 1000)
	if len(m.Active()) != 1 {
		t.Fatalf("item at -200 should be kept")
	}
	m.Update(x+201, 140, 1000)
	if len(m.Active()) != 0 {
		t.Errorf("item at -201 should be discarded")
	}
	if m.Message() != "" || len(m.Collected()) != 0 {
		t.Errorf("discard must be silent, got message %q", m.Message())
	}
}

func TestMessageOverwriteAndClear(t *testing.T) {
	m := newTestManager()
	items := config.DefaultBikerConfig().Collectibles.Items

	m.MaybeSpawn(400, 0, 480, flatGround(0))
	x := m.Active()[0].X
	m.Update(x-140, 140, 0)
	if m.Message() != items[0].Message {
		t.Fatalf("Message() = %q, expected headset message", m.Message())
	}

	for i := 0; i < 100; i++ {
		m.Update(0, 140, 1000)
	}

	// Second pickup overwrites and restarts the timer
	m.MaybeSpawn(600, 0, 480, flatGround(0))
	x = m.Active()[0].X
	m.Update(x-140, 140, 0)
	if m.Message() != items[1].Message {
		t.Errorf("Message() = %q, expected telefon message", m.Message())
	}
	if m.MessageTimer() != 299 {
		t.Errorf("MessageTimer() = %d, expected 299", m.MessageTimer())
	}

	for i := 0; i < 298; i++ {
		m.Update(0, 140, 1000)
	}
	if m.Message() == "" {
		t.Fatal("message cleared one tick early")
	}
	m.Update(0, 140, 1000)
	if m.Message() != "" || m.MessageTimer() != 0 {
		t.Errorf("Message() = %q timer %d, expected cleared", m.Message(), m.MessageTimer())
	}
}

func TestUnknownItemUsesFallback(t *testing.T) {
	cfg := config.DefaultBikerConfig().Collectibles
	m := NewManager(Catalog{{Name: "mystery", Energy: 0}}, cfg, 60)
	m.MaybeSpawn(0, 0, 480, flatGround(0))
	x := m.Active()[0].X
	m.Update(x-140, 140, 0)

	if m.Message() != FallbackMessage {
		t.Errorf("Message() = %q, expected %q", m.Message(), FallbackMessage)
	}
}

func TestReset(t *testing.T) {
	m := newTestManager()
	m.MaybeSpawn(1000, 0, 480, flatGround(0))
	m.Reset()

	if len(m.Active()) != 0 || m.Spawned("headset") || m.Message() != "" {
		t.Error("Reset() should clear active, spawned and message")
	}
	m.MaybeSpawn(1000, 0, 480, flatGround(0))
	if len(m.Active()) != 2 {
		t.Errorf("items should spawn again after Reset, got %d", len(m.Active()))
	}
}
