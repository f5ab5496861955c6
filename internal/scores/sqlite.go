package scores

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultDBName is the SQLite ledger written next to the executable.
const DefaultDBName = "highscore.db"

// SQLiteBackend keeps the history as an append-only table. Buckets are never
// stored; they are rebuilt from history on load.
type SQLiteBackend struct {
	db        *sqlx.DB
	path      string
	persisted int // History rows already in the table
}

// OpenSQLite creates or opens a SQLite ledger at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteBackend, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	b, err := connect(dbPath, "?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, err
	}
	if err := b.migrate(); err != nil {
		b.db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}
	return b, nil
}

// OpenSQLiteReadOnly opens an existing ledger for reading. Nothing is
// created on disk; a missing file is reported as an os.ErrNotExist error.
func OpenSQLiteReadOnly(dbPath string) (*SQLiteBackend, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("scores: %w", err)
	}
	return connect(dbPath, "?_pragma=busy_timeout(5000)&_pragma=query_only(1)")
}

func connect(dbPath, params string) (*SQLiteBackend, error) {
	db, err := sqlx.Open("sqlite", dbPath+params)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}
	return &SQLiteBackend{db: db, path: dbPath}, nil
}

func (b *SQLiteBackend) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score REAL NOT NULL,
			date TEXT NOT NULL,
			energy_kj REAL NOT NULL,
			duration_sec INTEGER NOT NULL DEFAULT 0,
			avg_power_w REAL,
			avg_speed REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_history_date ON history(date);
	`
	_, err := b.db.Exec(schema)
	return err
}

// Path returns the database location.
func (b *SQLiteBackend) Path() string {
	return b.path
}

// Load returns every stored entry in insertion order.
func (b *SQLiteBackend) Load() ([]Entry, error) {
	var entries []Entry
	err := b.db.Select(&entries,
		`SELECT name, score, date, energy_kj, duration_sec, avg_power_w, avg_speed
		 FROM history
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query history: %w", err)
	}
	b.persisted = len(entries)
	return entries, nil
}

// Save inserts the history entries added since the last Load or Save.
func (b *SQLiteBackend) Save(l *Ledger) error {
	if b.persisted >= len(l.History) {
		return nil
	}

	tx, err := b.db.Beginx()
	if err != nil {
		return fmt.Errorf("scores: begin: %w", err)
	}
	for _, e := range l.History[b.persisted:] {
		_, err := tx.NamedExec(
			`INSERT INTO history (name, score, date, energy_kj, duration_sec, avg_power_w, avg_speed)
			 VALUES (:name, :score, :date, :energy_kj, :duration_sec, :avg_power_w, :avg_speed)`,
			e,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("scores: cannot save entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("scores: commit: %w", err)
	}

	b.persisted = len(l.History)
	return nil
}

// Count returns the number of stored entries.
func (b *SQLiteBackend) Count() (int, error) {
	var n int
	if err := b.db.Get(&n, "SELECT COUNT(*) FROM history"); err != nil {
		return 0, fmt.Errorf("scores: cannot count history: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
