package preferences

import "sync"

// MemorySlot keeps values in a thread-safe map; contents vanish with the process.
type MemorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySlot constructs an empty MemorySlot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{
		values: make(map[string]string),
	}
}

// Get retrieves a value by key.
func (s *MemorySlot) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key, replacing any prior value.
func (s *MemorySlot) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
