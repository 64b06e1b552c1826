// Package preferences persists the single city/team preference record in a key-value slot.
package preferences

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/city-team-dashboard/internal/domain"
	"github.com/preston-bernstein/city-team-dashboard/internal/logging"
)

// StorageKey is the slot key holding the serialized preference.
const StorageKey = "cityTeamPreferences"

// Slot is a synchronous key-value persistence slot.
type Slot interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Store reads and writes the preference record.
type Store struct {
	slot   Slot
	logger *slog.Logger
}

// NewStore constructs a Store over the given slot.
func NewStore(slot Slot, logger *slog.Logger) *Store {
	return &Store{slot: slot, logger: logger}
}

// Load returns the stored preference. Absent, unreadable or malformed data yields an empty preference.
func (s *Store) Load() domain.Preference {
	raw, ok, err := s.slot.Get(StorageKey)
	if err != nil {
		logging.Warn(s.logger, "preference slot read failed", "error", err)
		return domain.Preference{}
	}
	if !ok || raw == "" {
		return domain.Preference{}
	}

	var pref domain.Preference
	if err := json.Unmarshal([]byte(raw), &pref); err != nil {
		logging.Warn(s.logger, "stored preference is malformed, ignoring", "error", err)
		return domain.Preference{}
	}
	return pref
}

// Save serializes pref and overwrites whatever the slot held.
func (s *Store) Save(pref domain.Preference) error {
	data, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("preferences: encode: %w", err)
	}
	if err := s.slot.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("preferences: write: %w", err)
	}
	return nil
}
