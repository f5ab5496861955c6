package core

// Color is a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the biker renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorGround
	ColorGrass
	ColorHill
	ColorRider
	ColorItem
	ColorMessage
	ColorHUD
	ColorDim
	ColorAlert
)
