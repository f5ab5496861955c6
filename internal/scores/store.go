package scores

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-biker/internal/config"
)

// Store is the ledger plus its backend. Persistence is best effort: a store
// whose backend cannot be opened or read still ranks scores in memory.
type Store struct {
	backend Backend
	ledger  *Ledger
	persist bool
	path    string
	now     func() time.Time
	logger  *log.Logger
}

// Open loads the ledger described by cfg. It never fails; problems are
// logged and leave an empty ledger.
func Open(cfg config.ScoresConfig, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		ledger:  NewLedgerWithCaps(CapsFromConfig(cfg)),
		persist: cfg.Persist,
		now:     time.Now,
		logger:  logger,
	}

	backend, path, err := openBackend(cfg)
	s.path = path
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("no score ledger yet, persistence is off", "path", path)
		return s
	}
	if err != nil {
		logger.Warn("score storage unavailable, scores will not be saved", "path", path, "err", err)
		s.persist = false
		return s
	}
	s.backend = backend

	history, err := backend.Load()
	if err != nil {
		logger.Warn("cannot read score ledger, starting empty", "path", path, "err", err)
		return s
	}
	s.ledger.Replay(history, s.today())
	logger.Debug("score ledger loaded", "path", path, "entries", len(history))
	return s
}

func openBackend(cfg config.ScoresConfig) (Backend, string, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		path := cfg.Path
		if path == "" {
			path = DefaultPath(DefaultDBName)
		}
		open := OpenSQLite
		if !cfg.Persist {
			open = OpenSQLiteReadOnly
		}
		b, err := open(path)
		if err != nil {
			return nil, path, err
		}
		return b, b.Path(), nil
	case config.BackendJSON, "":
		path := cfg.Path
		if path == "" {
			path = DefaultPath(DefaultFileName)
		}
		b, err := NewFileBackend(path)
		if err != nil {
			return nil, path, err
		}
		return b, b.Path(), nil
	default:
		return nil, cfg.Path, fmt.Errorf("scores: unknown backend %q", cfg.Backend)
	}
}

// SetClock replaces the wall clock used for dates and bucket keys.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Store) today() string {
	return s.now().Format(DateLayout)
}

// Add ranks e and persists the ledger when enabled. The ranks are valid even
// when the returned save error is not nil.
func (s *Store) Add(e Entry) (Ranks, error) {
	ranks := s.ledger.Add(e, s.today())
	return ranks, s.save()
}

func (s *Store) save() error {
	if !s.persist || s.backend == nil {
		return nil
	}
	if err := s.backend.Save(s.ledger); err != nil {
		return fmt.Errorf("scores: save %s: %w", s.path, err)
	}
	return nil
}

// ImportLegacy merges a JSON ledger of any shape into the store and returns
// the number of entries added.
func (s *Store) ImportLegacy(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("scores: read %s: %w", path, err)
	}
	history, err := DecodeHistory(data, s.today())
	if err != nil {
		return 0, err
	}
	s.ledger.Replay(history, s.today())
	return len(history), s.save()
}

// Top returns the best n entries of the current bucket of w.
func (s *Store) Top(w Window, n int) []Entry {
	return s.ledger.Top(w, w.Key(s.now()), n, true)
}

// BestToday returns today's best score.
func (s *Store) BestToday() float64 {
	return s.ledger.BestToday(s.now())
}

// BestAllTime returns the best score ever.
func (s *Store) BestAllTime() float64 {
	return s.ledger.BestAllTime()
}

// Ledger returns a snapshot of the ledger.
func (s *Store) Ledger() *Ledger {
	return s.ledger.Clone()
}

// Path returns where the ledger is stored.
func (s *Store) Path() string {
	return s.path
}

// Persistent reports whether Add writes to the backend.
func (s *Store) Persistent() bool {
	return s.persist && s.backend != nil
}

// Close releases the backend.
func (s *Store) Close() error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close()
}
