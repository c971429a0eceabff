package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"charity/internal/announcement/models"
	"charity/pkg/platform/sentinel"
)

// InMemoryStore keeps announcements in maps. Request announcements keep the
// BeneficiaryID they were created with since there is no request table to join.
type InMemoryStore struct {
	mu            sync.RWMutex
	forRequest    map[int64]*models.ForRequest
	toBeneficiary map[int64]*models.ToBeneficiary
	nextID        int64
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		forRequest:    make(map[int64]*models.ForRequest),
		toBeneficiary: make(map[int64]*models.ToBeneficiary),
	}
}

func newestFirst[T any](items []T, created func(*T) time.Time, id func(*T) int64) []T {
	sort.Slice(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		if !created(a).Equal(created(b)) {
			return created(a).After(created(b))
		}
		return id(a) > id(b)
	})
	return items
}

func (s *InMemoryStore) filterForRequest(keep func(*models.ForRequest) bool) []models.ForRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ForRequest
	for _, a := range s.forRequest {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return newestFirst(out,
		func(a *models.ForRequest) time.Time { return a.CreatedAt },
		func(a *models.ForRequest) int64 { return a.ID })
}

func (s *InMemoryStore) filterToBeneficiary(keep func(*models.ToBeneficiary) bool) []models.ToBeneficiary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ToBeneficiary
	for _, a := range s.toBeneficiary {
		if keep(a) {
			out = append(out, *a)
		}
	}
	return newestFirst(out,
		func(a *models.ToBeneficiary) time.Time { return a.CreatedAt },
		func(a *models.ToBeneficiary) int64 { return a.ID })
}

func (s *InMemoryStore) CreateForRequest(_ context.Context, a *models.ForRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	cp := *a
	s.forRequest[a.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindForRequest(_ context.Context, id int64) (*models.ForRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.forRequest[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *InMemoryStore) UpdateForRequest(_ context.Context, a *models.ForRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.forRequest[a.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	existing.Title = a.Title
	existing.Description = a.Description
	existing.Seen = a.Seen
	return nil
}

func (s *InMemoryStore) DeleteForRequest(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forRequest[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.forRequest, id)
	return nil
}

func (s *InMemoryStore) ListForRequest(_ context.Context, requestID int64) ([]models.ForRequest, error) {
	return s.filterForRequest(func(a *models.ForRequest) bool { return a.RequestID == requestID }), nil
}

func (s *InMemoryStore) ListUnseenForRequests(_ context.Context, beneficiaryID int64, since time.Time) ([]models.ForRequest, error) {
	return s.filterForRequest(func(a *models.ForRequest) bool {
		return a.BeneficiaryID == beneficiaryID && !a.Seen && !a.CreatedAt.Before(since)
	}), nil
}

func (s *InMemoryStore) CreateToBeneficiary(_ context.Context, a *models.ToBeneficiary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	cp := *a
	s.toBeneficiary[a.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindToBeneficiary(_ context.Context, id int64) (*models.ToBeneficiary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.toBeneficiary[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *InMemoryStore) MarkToBeneficiarySeen(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.toBeneficiary[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	a.Seen = true
	return nil
}

func (s *InMemoryStore) ListToBeneficiary(_ context.Context, beneficiaryID int64) ([]models.ToBeneficiary, error) {
	return s.filterToBeneficiary(func(a *models.ToBeneficiary) bool { return a.BeneficiaryID == beneficiaryID }), nil
}

func (s *InMemoryStore) ListUnseenToBeneficiary(_ context.Context, beneficiaryID int64, since time.Time) ([]models.ToBeneficiary, error) {
	return s.filterToBeneficiary(func(a *models.ToBeneficiary) bool {
		return a.BeneficiaryID == beneficiaryID && !a.Seen && !a.CreatedAt.Before(since)
	}), nil
}
