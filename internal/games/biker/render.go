package biker

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-biker/internal/core"
)

// Visual characters for rendering
const (
	GrassChar  = '▀'
	GroundChar = '█'
	WheelChar  = 'O'
	HeadChar   = '☻'
)

// pedalFrames are the crank positions cycled by the rider animation.
var pedalFrames = []rune{'/', '|', '\\', '-'}

// view maps world coordinates onto the character grid. Row 0 is the HUD;
// world height 0 is the bottom row.
type view struct {
	cols, rows  int
	camera      float64
	unitsPerCol float64
	unitsPerRow float64
}

func (g *Game) newView(dst *core.Screen) view {
	v := view{
		cols:   dst.Width(),
		rows:   dst.Height(),
		camera: g.rider.CameraX(),
	}
	v.unitsPerCol = g.cfg.Viewport.Width / float64(core.Max(1, v.cols))
	v.unitsPerRow = g.cfg.Viewport.Height / float64(core.Max(1, v.rows-1))
	return v
}

// col returns the column of a screen-local x in world units.
func (v view) col(localX float64) int {
	return int(math.Floor(localX / v.unitsPerCol))
}

// row returns the grid row of a world height.
func (v view) row(y float64) int {
	return v.rows - 1 - int(math.Round(y/v.unitsPerRow))
}

// Render draws the current ride to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		g.drawCenteredMessage(dst, "CANNOT START", g.err.Error())
		return
	}

	v := g.newView(dst)
	g.drawTerrain(dst, v)
	g.drawItems(dst, v)
	g.drawRider(dst, v)
	g.drawHUD(dst)

	if msg := g.items.Message(); msg != "" {
		dst.DrawTextCentered(2, msg, core.ColorMessage)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawTerrain(dst *core.Screen, v view) {
	hills := g.terrain.Hills()
	for sx := 0; sx < v.cols; sx++ {
		wx := v.camera + (float64(sx)+0.5)*v.unitsPerCol
		top := core.Max(1, v.row(g.terrain.Height(wx)))

		grass := core.ColorGrass
		for _, h := range hills {
			if h.Contribution(wx) > 1 {
				grass = core.ColorHill
				break
			}
		}

		dst.SetColored(sx, top, GrassChar, grass)
		dst.DrawVLine(sx, top+1, v.rows-top-1, GroundChar, core.ColorGround)
	}
}

func (g *Game) drawItems(dst *core.Screen, v view) {
	catalog := g.items.Catalog()
	for _, it := range g.items.Active() {
		sx := v.col(it.X - v.camera)
		glyph := []rune(catalog.GlyphFor(it.Name))[0]
		dst.SetColored(sx, v.row(it.Y)-1, glyph, core.ColorItem)
	}
}

func (g *Game) drawRider(dst *core.Screen, v view) {
	half := g.modeConfig().Rider.WheelBase / 2
	screenX := g.rider.ScreenX()
	wx := g.rider.WorldX()

	leftCol := v.col(screenX - half)
	rightCol := v.col(screenX + half)
	leftRow := v.row(g.terrain.Height(wx-half)) - 1
	rightRow := v.row(g.terrain.Height(wx+half)) - 1
	dst.SetColored(leftCol, leftRow, WheelChar, core.ColorRider)
	dst.SetColored(rightCol, rightRow, WheelChar, core.ColorRider)

	// Frame between the wheels, one row above the axles
	bar := '─'
	switch tilt := g.rider.Tilt(); {
	case tilt > 0.15:
		bar = '╱'
	case tilt < -0.15:
		bar = '╲'
	}
	for c := leftCol + 1; c < rightCol; c++ {
		t := float64(c-leftCol) / float64(core.Max(1, rightCol-leftCol))
		r := int(math.Round(core.Lerp(float64(leftRow), float64(rightRow), t))) - 1
		dst.SetColored(c, r, bar, core.ColorRider)
	}

	mid := v.col(screenX)
	anchorRow := v.row(g.rider.AnchorY()) - 1
	dst.SetColored(mid, anchorRow, pedalFrames[g.rider.Frame()%len(pedalFrames)], core.ColorRider)
	dst.SetColored(mid, anchorRow-2, '│', core.ColorRider)
	dst.SetColored(mid, anchorRow-3, HeadChar, core.ColorRider)
}

func (g *Game) drawHUD(dst *core.Screen) {
	clock := "∞"
	if rem := g.Remaining(); rem >= 0 {
		clock = formatClock(rem, g.runtime.TickRate)
	}
	hud := fmt.Sprintf(" Energy: %.1f kJ  Speed: %.1f  Time: %s ", g.rider.Energy(), g.rider.Speed(), clock)
	dst.DrawText(1, 0, hud, core.ColorHUD)

	if g.mode == ModePedal {
		dst.DrawText(dst.Width()-18, 0, " SPACE to pedal ", core.ColorDim)
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	s := g.Summary()
	lines := []string{
		fmt.Sprintf("Energy %.1f kJ in %d s", s.EnergyKJ, s.DurationSec),
		fmt.Sprintf("Avg power %.0f W", s.AvgPowerW),
	}
	if g.headline != "" {
		lines = append(lines, g.headline)
	}
	lines = append(lines, "R restart  |  Q quit")
	g.drawBox(dst, "RIDE OVER", lines)
}

// drawCenteredMessage draws a centered box with a title and subtitle.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	g.drawBox(dst, title, []string{subtitle})
}

func (g *Game) drawBox(dst *core.Screen, title string, lines []string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorHUD)

	dst.DrawTextCentered(boxY+1, title, core.ColorAlert)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorDefault)
	}
}
