package charity

import (
	"context"
	"sort"
	"sync"

	"charity/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu         sync.RWMutex
	charities  map[int64]*Charity
	workfields map[int64]*Workfield
	nextID     int64
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		charities:  make(map[int64]*Charity),
		workfields: make(map[int64]*Workfield),
	}
}

func (s *InMemoryStore) Create(_ context.Context, c *Charity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.charities {
		if existing.UserID == c.UserID {
			return sentinel.ErrConflict
		}
	}
	s.nextID++
	c.ID = s.nextID
	c.UpdatedAt = c.CreatedAt
	cp := *c
	s.charities[c.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id int64) (*Charity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.charities[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryStore) FindByUserID(_ context.Context, userID int64) (*Charity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.charities {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, c *Charity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charities[c.ID]; !ok {
		return sentinel.ErrNotFound
	}
	cp := *c
	s.charities[c.ID] = &cp
	return nil
}

func (s *InMemoryStore) ListWorkfields(_ context.Context, charityID int64) ([]Workfield, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Workfield
	for _, w := range s.workfields {
		if w.CharityID == charityID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) CreateWorkfield(_ context.Context, w *Workfield) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.charities[w.CharityID]; !ok {
		return sentinel.ErrNotFound
	}
	s.nextID++
	w.ID = s.nextID
	cp := *w
	s.workfields[w.ID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteWorkfield(_ context.Context, charityID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workfields[id]
	if !ok || w.CharityID != charityID {
		return sentinel.ErrNotFound
	}
	delete(s.workfields, id)
	return nil
}
