// Package store is the persistent store adapter: a SQLite-backed key/value
// table holding the application's two JSON documents. The database is the
// single source of truth; callers re-read before every operation.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lmoretti/cogito/internal/core/models"
)

// Store wraps the SQLite connection.
type Store struct {
	conn *sql.DB
}

// Open opens or creates the database and initializes the schema.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode for concurrent reads
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1) // SQLite only supports one writer
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	s := &Store{conn: conn}
	if err := s.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) initSchema() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Load returns the raw document stored under key, or nil when the key has
// never been written. Absence is not an error.
func (s *Store) Load(key string) ([]byte, error) {
	var body string
	err := s.conn.QueryRow("SELECT body FROM documents WHERE key = ?", key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return []byte(body), nil
}

// Save overwrites the document stored under key.
func (s *Store) Save(key string, body []byte) error {
	_, err := s.conn.Exec(`
		INSERT INTO documents (key, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP
	`, key, string(body))
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// LoadProfile reads the onboarding document. A missing document yields the
// zero profile.
func (s *Store) LoadProfile() (models.Profile, error) {
	var profile models.Profile
	body, err := s.Load(models.ProfileKey)
	if err != nil {
		return profile, err
	}
	if body == nil {
		return profile, nil
	}
	if err := json.Unmarshal(body, &profile); err != nil {
		return profile, fmt.Errorf("corrupt onboarding document: %w", err)
	}
	return profile, nil
}

// SaveProfile writes the onboarding document.
func (s *Store) SaveProfile(profile models.Profile) error {
	body, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.Save(models.ProfileKey, body)
}

// LoadLog reads the logger document. A missing document yields an empty log.
func (s *Store) LoadLog() ([]models.DayEntry, error) {
	body, err := s.Load(models.LogKey)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return []models.DayEntry{}, nil
	}
	var log []models.DayEntry
	if err := json.Unmarshal(body, &log); err != nil {
		return nil, fmt.Errorf("corrupt logger document: %w", err)
	}
	return log, nil
}

// SaveLog writes the logger document.
func (s *Store) SaveLog(log []models.DayEntry) error {
	body, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode log: %w", err)
	}
	return s.Save(models.LogKey, body)
}
