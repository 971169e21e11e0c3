package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Prefs is the local per-user preference store: a single sqlite table of
// opaque string values under string keys.
type Prefs struct {
	db *sql.DB
}

// Open opens the preference store at path, creating it if needed. An empty
// path uses the default location under the user's data directory.
func Open(path string) (*Prefs, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening preference store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing preference store: %w", err)
	}

	return &Prefs{db: db}, nil
}

// DefaultPath returns the store location, following XDG conventions.
func DefaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	appDir := filepath.Join(dataDir, "todopanel")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, "todopanel.db"), nil
}

// Get retrieves the value stored under key; a missing key yields "".
func (p *Prefs) Get(key string) (string, error) {
	var value string
	err := p.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// Set stores value under key, replacing any previous value.
func (p *Prefs) Set(key, value string) error {
	_, err := p.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Close closes the underlying database.
func (p *Prefs) Close() error {
	return p.db.Close()
}
