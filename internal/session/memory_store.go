package session

import (
	"sync"

	"stylist/internal/catalog"
)

// MemoryStore простое in-memory хранилище фильтра, потокобезопасное.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs catalog.Preferences
	set   bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(prefs catalog.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = prefs
	s.set = true
	return nil
}

func (s *MemoryStore) Get() (catalog.Preferences, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs, s.set
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = catalog.Preferences{}
	s.set = false
	return nil
}
