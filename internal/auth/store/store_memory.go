package store

import (
	"context"
	"sync"

	"charity/internal/auth/models"
	"charity/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	users  map[int64]*models.User
	nextID int64
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{users: make(map[int64]*models.User)}
}

func (s *InMemoryStore) usernameUsed(username string, except int64) bool {
	for _, u := range s.users {
		if u.ID != except && u.Username == username {
			return true
		}
	}
	return false
}

func (s *InMemoryStore) Create(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usernameUsed(u.Username, 0) {
		return sentinel.ErrConflict
	}
	s.nextID++
	u.ID = s.nextID
	u.UpdatedAt = u.CreatedAt
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *InMemoryStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) UsernameTaken(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usernameUsed(username, 0), nil
}

func (s *InMemoryStore) Update(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[u.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if s.usernameUsed(u.Username, u.ID) {
		return sentinel.ErrConflict
	}
	existing.Username = u.Username
	existing.PasswordHash = u.PasswordHash
	existing.IsActive = u.IsActive
	existing.UpdatedAt = u.UpdatedAt
	return nil
}
