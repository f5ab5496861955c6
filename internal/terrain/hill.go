package terrain

import "math"

// Hill is a transient raised-cosine bump added on top of the baseline.
type Hill struct {
	CenterX float64
	Width   float64
	Height  float64
}

// Contribution returns the hill's height at world x. The profile has zero
// value and zero slope at both edges and peaks at Height over CenterX.
func (h Hill) Contribution(x float64) float64 {
	half := h.Width / 2
	if half <= 0 {
		return 0
	}
	s := (x - h.CenterX) / half
	if math.Abs(s) >= 1 {
		return 0
	}
	return h.Height * 0.5 * (1 + math.Cos(math.Pi*s))
}

// TrailingEdge returns the world x where the hill ends.
func (h Hill) TrailingEdge() float64 {
	return h.CenterX + h.Width/2
}

// LeadingEdge returns the world x where the hill starts.
func (h Hill) LeadingEdge() float64 {
	return h.CenterX - h.Width/2
}
