package location

import (
	"context"
	"sort"
	"sync"

	"charity/pkg/platform/sentinel"
)

// InMemoryStore keeps provinces and cities in maps. Used in dev mode and tests.
type InMemoryStore struct {
	mu        sync.RWMutex
	provinces map[int64]Province
	cities    map[int64]City
	nextID    int64
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		provinces: make(map[int64]Province),
		cities:    make(map[int64]City),
	}
}

func (s *InMemoryStore) ListProvinces(_ context.Context) ([]Province, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Province, 0, len(s.provinces))
	for _, p := range s.provinces {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) ListCities(_ context.Context, provinceID int64) ([]City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]City, 0)
	for _, c := range s.cities {
		if provinceID == 0 || c.ProvinceID == provinceID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) FindProvince(_ context.Context, id int64) (*Province, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.provinces[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

func (s *InMemoryStore) FindCity(_ context.Context, id int64) (*City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cities[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryStore) EnsureProvince(_ context.Context, name string) (*Province, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.provinces {
		if p.Name == name {
			return &p, false, nil
		}
	}
	s.nextID++
	p := Province{ID: s.nextID, Name: name}
	s.provinces[p.ID] = p
	return &p, true, nil
}

func (s *InMemoryStore) EnsureCity(_ context.Context, provinceID int64, name string) (*City, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.provinces[provinceID]; !ok {
		return nil, false, sentinel.ErrNotFound
	}
	for _, c := range s.cities {
		if c.ProvinceID == provinceID && c.Name == name {
			return &c, false, nil
		}
	}
	s.nextID++
	c := City{ID: s.nextID, ProvinceID: provinceID, Name: name}
	s.cities[c.ID] = c
	return &c, true, nil
}
