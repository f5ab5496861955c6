// Package collectibles places one-shot items ahead of the rider once energy
// milestones are reached and reports pickups.
package collectibles

import "github.com/vovakirdan/tui-biker/internal/config"

// FallbackMessage is shown for a picked-up item the catalog does not know.
const FallbackMessage = "Collected item."

// Item is a catalog entry.
type Item struct {
	Name    string
	Energy  float64 // Spawn threshold in kJ
	Message string
	Glyph   string
}

// Catalog is the ordered list of collectibles. Order decides spawn order when
// several thresholds are crossed in the same tick.
type Catalog []Item

// CatalogFromConfig builds a catalog from configuration.
func CatalogFromConfig(specs []config.ItemSpec) Catalog {
	c := make(Catalog, 0, len(specs))
	for _, s := range specs {
		c = append(c, Item{Name: s.Name, Energy: s.Energy, Message: s.Message, Glyph: s.Glyph})
	}
	return c
}

// Lookup finds an item by name.
func (c Catalog) Lookup(name string) (Item, bool) {
	for _, it := range c {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// MessageFor returns the pickup message for name, or FallbackMessage.
func (c Catalog) MessageFor(name string) string {
	if it, ok := c.Lookup(name); ok && it.Message != "" {
		return it.Message
	}
	return FallbackMessage
}

// GlyphFor returns the display glyph for name.
func (c Catalog) GlyphFor(name string) string {
	if it, ok := c.Lookup(name); ok && it.Glyph != "" {
		return it.Glyph
	}
	return "*"
}
