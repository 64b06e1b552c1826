package preferences

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

var _ Slot = (*SQLiteSlot)(nil)

const (
	createSlotTable = `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	selectSlotValue = `SELECT value FROM kv WHERE key = ?`
	upsertSlotValue = `INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`
)

// SQLiteSlot keeps key-value pairs in a single SQLite table.
type SQLiteSlot struct {
	db *sql.DB
}

// NewSQLiteSlot opens (or creates) the database at dbPath and ensures the table exists.
func NewSQLiteSlot(dbPath string) (*SQLiteSlot, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// One connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createSlotTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteSlot{db: db}, nil
}

// Get retrieves the value stored under key.
func (s *SQLiteSlot) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(selectSlotValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set upserts value under key.
func (s *SQLiteSlot) Set(key, value string) error {
	_, err := s.db.Exec(upsertSlotValue, key, value)
	return err
}

// Close closes the underlying database connection.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
