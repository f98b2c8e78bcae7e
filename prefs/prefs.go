// Package prefs persists small user preferences in a local SQLite file.
// The planner itself never reads it; the CLI and TUI use it to remember
// the account size between runs.
package prefs

import (
	"database/sql"
	"errors"
	"math"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// KeyAccountSize is the settings key holding the account size as a
// textual decimal.
const KeyAccountSize = "account_size"

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Get returns the stored value for key; ok is false when the key is unset.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	err = s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO settings (key, value)
		VALUES (?, ?)`,
		key, value,
	)
	return err
}

// AccountSize returns the persisted account size, or fallback when the
// preference is unset or does not parse as a finite positive decimal.
func (s *Store) AccountSize(fallback float64) float64 {
	raw, ok, err := s.Get(KeyAccountSize)
	if err != nil || !ok {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}

func (s *Store) SetAccountSize(v float64) error {
	return s.Set(KeyAccountSize, strconv.FormatFloat(v, 'f', -1, 64))
}

func (s *Store) Close() error {
	return s.db.Close()
}
