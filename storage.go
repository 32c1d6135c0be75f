package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Fixed snapshot keys. Values stored under them are UTF-8 JSON text.
const (
	keyWorkItems = "wdezzo_projects"
	keySkills    = "wdezzo_skills"
	keyDraft     = "brutal_feedback_draft"
	keyTheme     = "theme"
)

// Storage is the durable key/value capability shared by the override store,
// the feedback draft and the theme preference. Injected so tests can swap in
// an in-memory fake.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Put(key, value string) error
	Delete(key string) error
}

var db *sql.DB

// sqliteTime renders a timestamp in the canonical text format SQLite's
// DATE()/datetime() functions parse.
func sqliteTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// sqliteStorage keeps snapshots in a single key/value table with
// last-writer-wins semantics. No locking, no transactions across keys.
type sqliteStorage struct {
	db *sql.DB
}

func openStorage(path string) (*sqliteStorage, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}

	createSnapshots := `
	CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := conn.Exec(createSnapshots); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}

	db = conn
	log.Printf("Storage ready at %s", path)
	return &sqliteStorage{db: conn}, nil
}

func (s *sqliteStorage) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read snapshot %s: %w", key, err)
	}
	return value, true, nil
}

func (s *sqliteStorage) Put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, sqliteTime(time.Now()))
	if err != nil {
		return fmt.Errorf("write snapshot %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStorage) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM snapshots WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", key, err)
	}
	return nil
}
