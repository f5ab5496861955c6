package scores

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownFormat is returned for JSON that matches no known ledger shape.
var ErrUnknownFormat = errors.New("scores: unrecognized ledger format")

// rawEntry accepts entries from every ledger version. Missing fields stay nil
// so defaults can be told apart from stored zeros.
type rawEntry struct {
	Name        *string  `json:"name"`
	Score       *float64 `json:"score"`
	Date        *string  `json:"date"`
	EnergyKJ    *float64 `json:"energy_kj"`
	DurationSec *float64 `json:"duration_sec"`
	AvgPowerW   *float64 `json:"avg_power_w"`
	AvgSpeed    *float64 `json:"avg_speed"`
}

func (r rawEntry) entry(today string) Entry {
	e := Entry{Name: DefaultName, Date: today, AvgPowerW: r.AvgPowerW, AvgSpeed: r.AvgSpeed}
	if r.Name != nil {
		e.Name = *r.Name
	}
	if r.Score != nil {
		e.Score = *r.Score
	}
	if r.Date != nil {
		e.Date = *r.Date
	}
	// Old ledgers scored energy directly
	e.EnergyKJ = e.Score
	if r.EnergyKJ != nil {
		e.EnergyKJ = *r.EnergyKJ
	}
	if r.DurationSec != nil {
		e.DurationSec = int(*r.DurationSec)
	}
	return e
}

// DecodeHistory extracts the entry history from any ledger shape:
// {"high_score": X}, a flat list of entries, or the structured document.
// Only the history of a structured document is read; its buckets are
// derived data and are rebuilt by replay.
func DecodeHistory(data []byte, today string) ([]Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("scores: empty document: %w", ErrUnknownFormat)
	}

	switch data[0] {
	case '[':
		var raws []rawEntry
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("scores: decode entry list: %w", err)
		}
		return convert(raws, today), nil

	case '{':
		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("scores: decode document: %w", err)
		}
		if raw, ok := doc["high_score"]; ok {
			best, err := decodeHighScore(raw)
			if err != nil {
				return nil, fmt.Errorf("scores: decode high_score: %w", err)
			}
			return []Entry{{Name: DefaultName, Score: best, Date: today, EnergyKJ: best}}, nil
		}
		var raws []rawEntry
		if raw, ok := doc["history"]; ok && !bytes.Equal(raw, []byte("null")) {
			if err := json.Unmarshal(raw, &raws); err != nil {
				return nil, fmt.Errorf("scores: decode history: %w", err)
			}
		}
		return convert(raws, today), nil
	}

	return nil, ErrUnknownFormat
}

// decodeHighScore accepts the single-score layout as a number or a numeric
// string, as older writers stored both.
func decodeHighScore(raw json.RawMessage) (float64, error) {
	var best float64
	if err := json.Unmarshal(raw, &best); err == nil {
		return best, nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(text), 64)
}

func convert(raws []rawEntry, today string) []Entry {
	out := make([]Entry, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.entry(today))
	}
	return out
}

// Decode parses any ledger shape and rebuilds every bucket from history.
func Decode(data []byte, today string, caps Caps) (*Ledger, error) {
	history, err := DecodeHistory(data, today)
	if err != nil {
		return nil, err
	}
	l := NewLedgerWithCaps(caps)
	l.Replay(history, today)
	return l, nil
}

// Encode renders the ledger as indented JSON.
func Encode(l *Ledger) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("scores: encode ledger: %w", err)
	}
	return append(data, '\n'), nil
}
