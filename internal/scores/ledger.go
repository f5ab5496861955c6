// Package scores keeps the ranked high-score ledger: a full history plus
// capped daily, monthly, yearly and all-time buckets, each sorted ascending
// by score so the best entry is always last.
package scores

import (
	"time"

	"github.com/vovakirdan/tui-biker/internal/config"
)

// DefaultName is used for entries saved without a player name.
const DefaultName = "Unknown"

// DateLayout is the format of Entry.Date.
const DateLayout = "2006-01-02"

// Entry is one finished session.
type Entry struct {
	Name        string   `json:"name" db:"name"`
	Score       float64  `json:"score" db:"score"`
	Date        string   `json:"date" db:"date"`
	EnergyKJ    float64  `json:"energy_kj" db:"energy_kj"`
	DurationSec int      `json:"duration_sec" db:"duration_sec"`
	AvgPowerW   *float64 `json:"avg_power_w" db:"avg_power_w"`
	AvgSpeed    *float64 `json:"avg_speed" db:"avg_speed"`
}

// Caps bounds the bucket sizes.
type Caps struct {
	Daily   int
	Monthly int
	Yearly  int
	AllTime int
}

// DefaultCaps returns the standard bucket sizes.
func DefaultCaps() Caps {
	return Caps{Daily: 30, Monthly: 5, Yearly: 5, AllTime: 5}
}

// CapsFromConfig reads caps from configuration, keeping defaults for unset ones.
func CapsFromConfig(cfg config.ScoresConfig) Caps {
	c := DefaultCaps()
	if cfg.DailyCap > 0 {
		c.Daily = cfg.DailyCap
	}
	if cfg.MonthlyCap > 0 {
		c.Monthly = cfg.MonthlyCap
	}
	if cfg.YearlyCap > 0 {
		c.Yearly = cfg.YearlyCap
	}
	if cfg.AllTimeCap > 0 {
		c.AllTime = cfg.AllTimeCap
	}
	return c
}

// Ledger is the complete score document.
type Ledger struct {
	History []Entry            `json:"history"`
	Daily   map[string][]Entry `json:"daily"`
	Monthly map[string][]Entry `json:"monthly"`
	Yearly  map[string][]Entry `json:"yearly"`
	AllTime []Entry            `json:"alltime"`

	caps Caps
}

// NewLedger creates an empty ledger with the default caps.
func NewLedger() *Ledger {
	return NewLedgerWithCaps(DefaultCaps())
}

// NewLedgerWithCaps creates an empty ledger with the given caps.
func NewLedgerWithCaps(caps Caps) *Ledger {
	return &Ledger{
		History: []Entry{},
		Daily:   map[string][]Entry{},
		Monthly: map[string][]Entry{},
		Yearly:  map[string][]Entry{},
		AllTime: []Entry{},
		caps:    caps,
	}
}

// Caps returns the bucket sizes in use.
func (l *Ledger) Caps() Caps {
	return l.caps
}

// Normalize fills the defaults of an incoming entry.
func Normalize(e Entry, today string) Entry {
	if e.Name == "" {
		e.Name = DefaultName
	}
	if e.Date == "" {
		e.Date = today
	}
	if e.Score < 0 {
		e.Score = 0
	}
	if e.EnergyKJ < 0 {
		e.EnergyKJ = 0
	}
	if e.DurationSec < 0 {
		e.DurationSec = 0
	}
	return e
}

// bucketKeys returns the day, month and year keys of a date.
func bucketKeys(date string) (day, month, year string) {
	return date, prefix(date, 7), prefix(date, 4)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// insertCapped appends e, bubbles it left past every strictly greater score
// and evicts from the front down to limit. The returned index is -1 if e
// itself was evicted.
func insertCapped(bucket []Entry, e Entry, limit int) ([]Entry, int) {
	bucket = append(bucket, e)
	i := len(bucket) - 1
	for i > 0 && bucket[i].Score < bucket[i-1].Score {
		bucket[i], bucket[i-1] = bucket[i-1], bucket[i]
		i--
	}
	if extra := len(bucket) - limit; extra > 0 {
		bucket = append(bucket[:0:0], bucket[extra:]...)
		i -= extra
		if i < 0 {
			i = -1
		}
	}
	return bucket, i
}

func rankOf(idx int, bucket []Entry) int {
	if idx < 0 {
		return 0
	}
	return len(bucket) - idx
}

// Add records e in the history and every bucket and returns its ranks.
func (l *Ledger) Add(e Entry, today string) Ranks {
	e = Normalize(e, today)
	l.History = append(l.History, e)

	day, month, year := bucketKeys(e.Date)
	var r Ranks
	var idx int

	l.Daily[day], idx = insertCapped(l.Daily[day], e, l.caps.Daily)
	r.Daily = rankOf(idx, l.Daily[day])

	l.Monthly[month], idx = insertCapped(l.Monthly[month], e, l.caps.Monthly)
	r.Monthly = rankOf(idx, l.Monthly[month])

	l.Yearly[year], idx = insertCapped(l.Yearly[year], e, l.caps.Yearly)
	r.Yearly = rankOf(idx, l.Yearly[year])

	l.AllTime, idx = insertCapped(l.AllTime, e, l.caps.AllTime)
	r.AllTime = rankOf(idx, l.AllTime)

	return r
}

// Replay adds entries in order, discarding their ranks.
func (l *Ledger) Replay(entries []Entry, today string) {
	for _, e := range entries {
		l.Add(e, today)
	}
}

// Bucket returns the bucket of a window. key is ignored for AllTime.
func (l *Ledger) Bucket(w Window, key string) []Entry {
	switch w {
	case Daily:
		return l.Daily[key]
	case Monthly:
		return l.Monthly[key]
	case Yearly:
		return l.Yearly[key]
	default:
		return l.AllTime
	}
}

// Top returns up to n entries of a bucket, best first when highestFirst.
// n <= 0 returns the whole bucket.
func (l *Ledger) Top(w Window, key string, n int, highestFirst bool) []Entry {
	bucket := l.Bucket(w, key)
	if n <= 0 || n > len(bucket) {
		n = len(bucket)
	}
	tail := bucket[len(bucket)-n:]
	out := make([]Entry, n)
	if !highestFirst {
		copy(out, tail)
		return out
	}
	for i := range tail {
		out[i] = tail[len(tail)-1-i]
	}
	return out
}

// TopToday returns today's best n entries, best first.
func (l *Ledger) TopToday(now time.Time, n int) []Entry {
	return l.Top(Daily, Daily.Key(now), n, true)
}

// TopMonth returns this month's best n entries, best first.
func (l *Ledger) TopMonth(now time.Time, n int) []Entry {
	return l.Top(Monthly, Monthly.Key(now), n, true)
}

// TopYear returns this year's best n entries, best first.
func (l *Ledger) TopYear(now time.Time, n int) []Entry {
	return l.Top(Yearly, Yearly.Key(now), n, true)
}

// TopAllTime returns the best n entries ever, best first.
func (l *Ledger) TopAllTime(n int) []Entry {
	return l.Top(AllTime, "", n, true)
}

// BestToday returns today's best score, or 0.
func (l *Ledger) BestToday(now time.Time) float64 {
	if top := l.TopToday(now, 1); len(top) > 0 {
		return top[0].Score
	}
	return 0
}

// BestAllTime returns the best score ever, or 0.
func (l *Ledger) BestAllTime() float64 {
	if top := l.TopAllTime(1); len(top) > 0 {
		return top[0].Score
	}
	return 0
}

// Clone returns a deep copy.
func (l *Ledger) Clone() *Ledger {
	c := NewLedgerWithCaps(l.caps)
	c.History = append(c.History, l.History...)
	c.AllTime = append(c.AllTime, l.AllTime...)
	c.Daily = cloneBuckets(l.Daily)
	c.Monthly = cloneBuckets(l.Monthly)
	c.Yearly = cloneBuckets(l.Yearly)
	return c
}

func cloneBuckets(src map[string][]Entry) map[string][]Entry {
	dst := make(map[string][]Entry, len(src))
	for k, v := range src {
		dst[k] = append([]Entry(nil), v...)
	}
	return dst
}
