// Package imagestore keeps preview images in process memory.
package imagestore

import (
	"context"
	"sync"
	"time"

	"github.com/SergeyKozhin/user-management-backend/internal/model"
)

type entry struct {
	image     *model.Image
	expiresAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (s *MemoryStore) Put(_ context.Context, ref string, img *model.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteExpired()
	s.entries[ref] = entry{image: img, expiresAt: s.now().Add(s.ttl)}

	return nil
}

func (s *MemoryStore) Get(_ context.Context, ref string) (*model.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[ref]
	if !ok || !s.now().Before(e.expiresAt) {
		delete(s.entries, ref)
		return nil, model.ErrNoRecord
	}

	return e.image, nil
}

// Sweep drops expired entries and reports how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteExpired()
}

func (s *MemoryStore) deleteExpired() int {
	now := s.now()
	removed := 0
	for ref, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, ref)
			removed++
		}
	}
	return removed
}
