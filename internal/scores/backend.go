package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Backend persists the ledger history.
type Backend interface {
	// Load returns the stored history in insertion order. A missing store
	// is not an error and yields no entries.
	Load() ([]Entry, error)
	// Save persists the ledger.
	Save(l *Ledger) error
	Close() error
}

// DefaultFileName is the JSON ledger written next to the executable.
const DefaultFileName = "highscore.json"

// DefaultPath returns name in the directory of the running executable, or
// in the working directory if that cannot be determined.
func DefaultPath(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("scores: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// FileBackend stores the ledger as one JSON document.
type FileBackend struct {
	path string
	now  func() time.Time
}

// NewFileBackend creates a JSON backend at path.
func NewFileBackend(path string) (*FileBackend, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &FileBackend{path: p, now: time.Now}, nil
}

// Path returns the document location.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the document in any of its historical shapes.
func (b *FileBackend) Load() ([]Entry, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: read %s: %w", b.path, err)
	}
	return DecodeHistory(data, b.now().Format(DateLayout))
}

// Save writes the document through a temp file and rename so a crash never
// leaves a truncated ledger behind.
func (b *FileBackend) Save(l *Ledger) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("scores: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("scores: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("scores: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("scores: replace %s: %w", b.path, err)
	}
	return nil
}

// Close is a no-op for files.
func (b *FileBackend) Close() error {
	return nil
}
