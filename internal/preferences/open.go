package preferences

import (
	"fmt"
	"path/filepath"
	"strings"
)

const sqliteFileName = "preferences.db"

// Open builds the slot for backend ("memory", "file" or "sqlite") rooted at path.
// The returned close function is never nil.
func Open(backend, path string) (Slot, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "memory":
		return NewMemorySlot(), noop, nil
	case "", "file":
		return NewFileSlot(path), noop, nil
	case "sqlite":
		dbPath := path
		if !strings.HasSuffix(dbPath, ".db") {
			dbPath = filepath.Join(path, sqliteFileName)
		}
		slot, err := NewSQLiteSlot(dbPath)
		if err != nil {
			return nil, noop, err
		}
		return slot, slot.Close, nil
	default:
		return nil, noop, fmt.Errorf("preferences: unknown backend %q", backend)
	}
}
