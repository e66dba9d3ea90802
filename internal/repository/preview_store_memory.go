package repository

import (
	"context"
	"sync"
	"time"

	"clubnavi/portal/internal/model"
)

type memoryPreviewStore struct {
	mu      sync.RWMutex
	entries map[string]model.PreviewEntry
}

func NewMemoryPreviewStore() PreviewStore {
	return &memoryPreviewStore{
		entries: make(map[string]model.PreviewEntry),
	}
}

func (s *memoryPreviewStore) Set(_ context.Context, entry *model.PreviewEntry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Amortized cleanup instead of a background sweep: load is low and
	// writes are rare, so pruning here keeps the map bounded.
	now := time.Now()
	for id, e := range s.entries {
		if now.After(e.ExpiresAt) {
			delete(s.entries, id)
		}
	}

	stored := *entry
	stored.ExpiresAt = now.Add(ttl)
	s.entries[entry.ID] = stored
	entry.ExpiresAt = stored.ExpiresAt
	return nil
}

func (s *memoryPreviewStore) Get(_ context.Context, id string) (*model.PreviewEntry, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.ExpiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return nil, nil
	}
	return &entry, nil
}

func (s *memoryPreviewStore) Consume(_ context.Context, id string) (*model.PreviewEntry, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if ok {
		delete(s.entries, id)
	}
	s.mu.Unlock()

	if !ok || time.Now().After(entry.ExpiresAt) {
		return nil, nil
	}
	return &entry, nil
}
