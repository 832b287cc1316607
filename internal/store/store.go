package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	sqliteFileName = "content.sqlite"
	backupSuffix   = ".bak"
)

// ErrNotFound is returned when an item id is not in the store.
var ErrNotFound = errors.New("not found")

// Store is the on-disk content store rooted at Dir.
type Store struct {
	Dir string
}

// DefaultDir is <config dir>/content.
func DefaultDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "content"), nil
}

// ConfigDir is ~/.sharapu unless SHARAPU_CONFIG_DIR is set (keeps tests away from $HOME).
func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("SHARAPU_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sharapu"), nil
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

// Path is the SQLite file backing the store.
func (s Store) Path() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

// Exists reports whether the store file has been created.
func (s Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// ModTime is the store file's modification time (zero if missing).
// The TUI polls it to pick up writes from other processes.
func (s Store) ModTime() time.Time {
	var latest time.Time
	for _, p := range []string{s.Path(), s.Path() + "-wal"} {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		if st.ModTime().After(latest) {
			latest = st.ModTime()
		}
	}
	return latest
}

// Backup copies the store file to <file>.bak. Missing store is not an error.
func (s Store) Backup() (string, error) {
	if !s.Exists() {
		return "", nil
	}
	dest := s.Path() + backupSuffix
	if err := CopyFile(s.Path(), dest); err != nil {
		return "", err
	}
	return dest, nil
}
