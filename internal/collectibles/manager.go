package collectibles

import (
	"math"

	"github.com/vovakirdan/tui-biker/internal/config"
	"github.com/vovakirdan/tui-biker/internal/core"
)

// HeightSampler is the terrain as seen by the spawner.
type HeightSampler interface {
	Height(x float64) float64
}

// Instance is a live collectible in world coordinates.
type Instance struct {
	Name string
	X    float64
	Y    float64
}

// Manager handles spawning, pickup and removal of collectibles.
type Manager struct {
	catalog   Catalog
	cfg       config.CollectiblesConfig
	tickRate  int
	active    []Instance
	spawned   map[string]bool
	collected []string
	message   string
	timer     int // Ticks left before the message clears
}

// NewManager creates a manager for one session.
func NewManager(catalog Catalog, cfg config.CollectiblesConfig, tickRate int) *Manager {
	m := &Manager{
		catalog:  catalog,
		cfg:      cfg,
		tickRate: tickRate,
		active:   make([]Instance, 0, len(catalog)),
	}
	m.Reset()
	return m
}

// Reset forgets everything spawned or collected.
func (m *Manager) Reset() {
	m.active = m.active[:0]
	m.spawned = make(map[string]bool, len(m.catalog))
	m.collected = nil
	m.message = ""
	m.timer = 0
}

// MaybeSpawn places every item whose threshold has been reached and which has
// not appeared yet this session just beyond the right edge of the view.
func (m *Manager) MaybeSpawn(energy, cameraX, viewportW float64, terrain HeightSampler) {
	for _, it := range m.catalog {
		if m.spawned[it.Name] || energy < it.Energy || m.isActive(it.Name) {
			continue
		}
		x := cameraX + viewportW + m.cfg.LeadDistance
		m.active = append(m.active, Instance{
			Name: it.Name,
			X:    x,
			Y:    terrain.Height(x) + m.cfg.YOffset,
		})
		m.spawned[it.Name] = true
	}
}

func (m *Manager) isActive(name string) bool {
	for _, inst := range m.active {
		if inst.Name == name {
			return true
		}
	}
	return false
}

// Update checks pickups against the rider at (riderX, riderY), where riderX
// is the rider's screen x and riderY its world height, then ages the message.
// It returns the names picked up this tick.
func (m *Manager) Update(cameraX, riderX, riderY float64) []string {
	var picked []string

	kept := m.active[:0]
	for _, inst := range m.active {
		sx := inst.X - cameraX
		if core.WithinBox(sx-riderX, inst.Y-riderY, m.cfg.PickupXTol, m.cfg.PickupYTol) {
			picked = append(picked, inst.Name)
			m.collected = append(m.collected, inst.Name)
			m.message = m.catalog.MessageFor(inst.Name)
			m.timer = int(math.Round(m.cfg.MessageSec * float64(m.tickRate)))
			continue
		}
		if sx < -m.cfg.DiscardMargin {
			continue
		}
		kept = append(kept, inst)
	}
	m.active = kept

	if m.timer > 0 {
		m.timer--
		if m.timer == 0 {
			m.message = ""
		}
	}
	return picked
}

// Active returns the live collectibles.
func (m *Manager) Active() []Instance {
	return m.active
}

// Message returns the pickup message currently shown, or "".
func (m *Manager) Message() string {
	return m.message
}

// MessageTimer returns the ticks left before the message clears.
func (m *Manager) MessageTimer() int {
	return m.timer
}

// Spawned reports whether name has already appeared this session.
func (m *Manager) Spawned(name string) bool {
	return m.spawned[name]
}

// Collected returns the picked-up names in pickup order.
func (m *Manager) Collected() []string {
	out := make([]string, len(m.collected))
	copy(out, m.collected)
	return out
}

// Catalog returns the catalog the manager spawns from.
func (m *Manager) Catalog() Catalog {
	return m.catalog
}
