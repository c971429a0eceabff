// Package store persists login lockout records.
package store

import (
	"context"
	"sync"
	"time"

	"charity/internal/ratelimit/models"
	"charity/pkg/requestcontext"
)

type memoryEntry struct {
	record    models.Lockout
	expiresAt time.Time
}

// InMemoryStore keeps lockouts in process. Entries expire lazily on read.
type InMemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryEntry
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]memoryEntry)}
}

func (s *InMemoryStore) Get(ctx context.Context, key string) (*models.Lockout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	if !requestcontext.Now(ctx).Before(e.expiresAt) {
		delete(s.records, key)
		return nil, nil
	}
	rec := e.record
	return &rec, nil
}

func (s *InMemoryStore) Save(ctx context.Context, rec *models.Lockout, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Key] = memoryEntry{record: *rec, expiresAt: requestcontext.Now(ctx).Add(ttl)}
	return nil
}

func (s *InMemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
