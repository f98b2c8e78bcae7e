package prefs

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.db")

	s, err := Open(path)
	assert.NoError(t, err)

	return s, path
}

func TestStoreSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestStore(t)
	assert.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='settings'`).Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "settings", name)
}

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	t.Cleanup(func() { _ = s.Close() })

	_, ok, err := s.Get("missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Set("theme", "dark"))

	v, ok, err := s.Get("theme")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// Set on an existing key replaces the value.
	assert.NoError(t, s.Set("theme", "light"))

	v, ok, err = s.Get("theme")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestStoreAccountSizePersists(t *testing.T) {
	t.Parallel()

	s, path := newTestStore(t)

	assert.NoError(t, s.SetAccountSize(12500.50))
	assert.NoError(t, s.Close())

	// Stored as a textual decimal, readable by a fresh handle.
	db, err := sql.Open("sqlite3", path)
	assert.NoError(t, err)
	var raw string
	err = db.QueryRow(`SELECT value FROM settings WHERE key = ?`, KeyAccountSize).Scan(&raw)
	assert.NoError(t, err)
	assert.NoError(t, db.Close())
	assert.Equal(t, "12500.5", raw)

	s2, err := Open(path)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s2.Close() })

	assert.InDelta(t, 12500.50, s2.AccountSize(0), 1e-9)
}

func TestStoreAccountSizeFallback(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	t.Cleanup(func() { _ = s.Close() })

	assert.InDelta(t, 10000, s.AccountSize(10000), 1e-9)

	// Unparsable values fall back rather than erroring.
	assert.NoError(t, s.Set(KeyAccountSize, "not a number"))
	assert.InDelta(t, 10000, s.AccountSize(10000), 1e-9)

	// Nonpositive stored sizes are treated as unset.
	assert.NoError(t, s.Set(KeyAccountSize, "-500"))
	assert.InDelta(t, 10000, s.AccountSize(10000), 1e-9)

	// ParseFloat accepts these spellings; they still must not win.
	for _, raw := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		assert.NoError(t, s.Set(KeyAccountSize, raw))
		assert.InDelta(t, 10000, s.AccountSize(10000), 1e-9, raw)
	}
}

func TestOpenBadPath(t *testing.T) {
	t.Parallel()

	// A directory is not a usable database file; Open must report that
	// instead of handing back a store.
	s, err := Open(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, s)
}
