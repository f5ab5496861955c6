package scores

import (
	"fmt"
	"strings"
	"time"
)

// Window identifies a ranking bucket.
type Window int

const (
	Daily Window = iota
	Monthly
	Yearly
	AllTime
)

// Windows lists every window, narrowest first.
var Windows = []Window{Daily, Monthly, Yearly, AllTime}

// String returns the window name.
func (w Window) String() string {
	switch w {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	case AllTime:
		return "alltime"
	default:
		return "unknown"
	}
}

// Title returns a display label.
func (w Window) Title() string {
	switch w {
	case Daily:
		return "Today"
	case Monthly:
		return "This Month"
	case Yearly:
		return "This Year"
	default:
		return "All Time"
	}
}

// Key returns the bucket key of now for this window.
func (w Window) Key(now time.Time) string {
	switch w {
	case Daily:
		return now.Format(DateLayout)
	case Monthly:
		return now.Format("2006-01")
	case Yearly:
		return now.Format("2006")
	default:
		return ""
	}
}

// ParseWindow parses a window name.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day", "today":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	case "alltime", "all-time", "all":
		return AllTime, nil
	}
	return Daily, fmt.Errorf("scores: unknown window %q", s)
}

// Ranks are the 1-based positions of a new entry, 0 when it did not place.
type Ranks struct {
	Daily   int
	Monthly int
	Yearly  int
	AllTime int
}

// Get returns the rank for a window.
func (r Ranks) Get(w Window) int {
	switch w {
	case Daily:
		return r.Daily
	case Monthly:
		return r.Monthly
	case Yearly:
		return r.Yearly
	default:
		return r.AllTime
	}
}

// Best picks the single headline rank: all-time over yearly over monthly
// over daily.
func (r Ranks) Best() (Window, int, bool) {
	for _, w := range []Window{AllTime, Yearly, Monthly, Daily} {
		if rank := r.Get(w); rank > 0 {
			return w, rank, true
		}
	}
	return Daily, 0, false
}

// Headline formats the best rank for the game-over screen, or "".
func (r Ranks) Headline() string {
	w, rank, ok := r.Best()
	if !ok {
		return ""
	}
	switch w {
	case AllTime:
		return fmt.Sprintf("All-time #%d!", rank)
	case Yearly:
		return fmt.Sprintf("#%d of the year!", rank)
	case Monthly:
		return fmt.Sprintf("#%d of the month!", rank)
	default:
		return fmt.Sprintf("#%d today", rank)
	}
}
