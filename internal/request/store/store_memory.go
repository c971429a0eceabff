package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"charity/internal/request/models"
	"charity/pkg/platform/sentinel"
)

// InMemoryStore mirrors the request tables, including the uniqueness of
// duration extensions and cascading deletes. Layer1 is seeded like the schema.
type InMemoryStore struct {
	mu         sync.RWMutex
	layer1     map[int64]*models.Layer1
	layer2     map[int64]*models.Layer2
	requests   map[int64]*models.Request
	onetime    map[int64]*models.Onetime   // by request
	recurring  map[int64]*models.Recurring // by request
	histories  map[int64]*models.History
	children   map[int64]*models.Child
	nextID     int64
	nextLayer1 int64
}

func NewInMemory() *InMemoryStore {
	s := &InMemoryStore{
		layer1:    make(map[int64]*models.Layer1),
		layer2:    make(map[int64]*models.Layer2),
		requests:  make(map[int64]*models.Request),
		onetime:   make(map[int64]*models.Onetime),
		recurring: make(map[int64]*models.Recurring),
		histories: make(map[int64]*models.History),
		children:  make(map[int64]*models.Child),
	}
	for _, name := range []string{"good", "cash", "service"} {
		s.nextLayer1++
		s.layer1[s.nextLayer1] = &models.Layer1{ID: s.nextLayer1, Name: name}
	}
	return s
}

func (s *InMemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func sortedByID[T any](m map[int64]*T, keep func(*T) bool, id func(*T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		if keep(v) {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return id(&out[i]) < id(&out[j]) })
	return out
}

// --- taxonomy ---

func (s *InMemoryStore) ListLayer1(_ context.Context) ([]models.Layer1, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.layer1, func(*models.Layer1) bool { return true }, func(l *models.Layer1) int64 { return l.ID }), nil
}

func (s *InMemoryStore) FindLayer1(_ context.Context, id int64) (*models.Layer1, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.layer1[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *InMemoryStore) ListLayer2(_ context.Context, layer1ID int64) ([]models.Layer2, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.layer2,
		func(l *models.Layer2) bool { return layer1ID == 0 || l.Layer1ID == layer1ID },
		func(l *models.Layer2) int64 { return l.ID }), nil
}

func (s *InMemoryStore) FindLayer2(_ context.Context, id int64) (*models.Layer2, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.layer2[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *InMemoryStore) CreateLayer2(_ context.Context, l *models.Layer2) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.layer1[l.Layer1ID]; !ok {
		return sentinel.ErrNotFound
	}
	for _, other := range s.layer2 {
		if other.Name == l.Name {
			return sentinel.ErrConflict
		}
	}
	l.ID = s.id()
	cp := *l
	s.layer2[l.ID] = &cp
	return nil
}

// --- requests ---

func (s *InMemoryStore) Create(_ context.Context, r *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.layer1[r.Layer1ID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.layer2[r.Layer2ID]; !ok {
		return sentinel.ErrNotFound
	}
	r.ID = s.id()
	r.UpdatedAt = r.CreatedAt
	r.SetEffectiveDate()
	cp := *r
	s.requests[r.ID] = &cp
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, id int64) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *InMemoryStore) Update(_ context.Context, r *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.requests[r.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	r.BeneficiaryID = existing.BeneficiaryID
	r.IsCreatedByCharity = existing.IsCreatedByCharity
	r.CreatedAt = existing.CreatedAt
	r.SetEffectiveDate()
	cp := *r
	s.requests[r.ID] = &cp
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.requests, id)
	delete(s.onetime, id)
	delete(s.recurring, id)
	for hid, h := range s.histories {
		if h.RequestID == id {
			delete(s.histories, hid)
		}
	}
	for cid, c := range s.children {
		if c.RequestID == id {
			delete(s.children, cid)
		}
	}
	return nil
}

func (s *InMemoryStore) matches(r *models.Request, f models.ListFilter) bool {
	if f.BeneficiaryID != 0 && r.BeneficiaryID != f.BeneficiaryID {
		return false
	}
	if f.CharityID != 0 && r.CharityID != f.CharityID {
		return false
	}
	if f.Stages != nil && !slices.Contains(f.Stages, r.Stage) {
		return false
	}
	if f.Durations != nil && !slices.Contains(f.Durations, r.Duration) {
		return false
	}
	if f.IDs != nil && !slices.Contains(f.IDs, r.ID) {
		return false
	}
	return true
}

func (s *InMemoryStore) List(_ context.Context, f models.ListFilter) ([]models.Request, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Request
	for _, r := range s.requests {
		if s.matches(r, f) {
			matched = append(matched, *r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch f.Ordering {
		case models.OrderEffectiveAsc:
			if !a.EffectiveDate.Equal(b.EffectiveDate.Time) {
				return a.EffectiveDate.Time.Before(b.EffectiveDate.Time)
			}
			return a.ID < b.ID
		case models.OrderEffectiveDesc:
			if !a.EffectiveDate.Equal(b.EffectiveDate.Time) {
				return a.EffectiveDate.Time.After(b.EffectiveDate.Time)
			}
		}
		return a.ID > b.ID
	})

	total := len(matched)
	start := min(max(f.Offset, 0), total)
	end := total
	if f.Limit > 0 && f.Limit < total-start {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}

func (s *InMemoryStore) ListAll(_ context.Context) ([]models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.requests, func(*models.Request) bool { return true }, func(r *models.Request) int64 { return r.ID }), nil
}

// --- duration extensions ---

func (s *InMemoryStore) FindOnetime(_ context.Context, requestID int64) (*models.Onetime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.onetime[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *InMemoryStore) CreateOnetime(_ context.Context, o *models.Onetime) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[o.RequestID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.onetime[o.RequestID]; ok {
		return sentinel.ErrConflict
	}
	o.ID = s.id()
	cp := *o
	s.onetime[o.RequestID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateOnetime(_ context.Context, o *models.Onetime) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.onetime[o.RequestID]
	if !ok {
		return sentinel.ErrNotFound
	}
	existing.Deadline = o.Deadline
	return nil
}

func (s *InMemoryStore) DeleteOnetime(_ context.Context, requestID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.onetime[requestID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.onetime, requestID)
	return nil
}

func (s *InMemoryStore) FindRecurring(_ context.Context, requestID int64) (*models.Recurring, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recurring[requestID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *InMemoryStore) CreateRecurring(_ context.Context, r *models.Recurring) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[r.RequestID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.recurring[r.RequestID]; ok {
		return sentinel.ErrConflict
	}
	r.ID = s.id()
	cp := *r
	s.recurring[r.RequestID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateRecurring(_ context.Context, r *models.Recurring) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.recurring[r.RequestID]
	if !ok {
		return sentinel.ErrNotFound
	}
	existing.Limit = r.Limit
	return nil
}

func (s *InMemoryStore) DeleteRecurring(_ context.Context, requestID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recurring[requestID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.recurring, requestID)
	return nil
}

// --- histories ---

func (s *InMemoryStore) ListHistories(_ context.Context, requestID int64) ([]models.History, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.histories,
		func(h *models.History) bool { return h.RequestID == requestID },
		func(h *models.History) int64 { return h.ID }), nil
}

func (s *InMemoryStore) FindHistory(_ context.Context, id int64) (*models.History, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.histories[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (s *InMemoryStore) CreateHistory(_ context.Context, h *models.History) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[h.RequestID]; !ok {
		return sentinel.ErrNotFound
	}
	h.ID = s.id()
	cp := *h
	s.histories[h.ID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateHistory(_ context.Context, h *models.History) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.histories[h.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	cp := *h
	cp.RequestID = existing.RequestID
	cp.CreatedAt = existing.CreatedAt
	s.histories[h.ID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteHistory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.histories[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.histories, id)
	return nil
}

// --- children ---

func (s *InMemoryStore) ListChildren(_ context.Context, requestID int64) ([]models.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.children,
		func(c *models.Child) bool { return c.RequestID == requestID },
		func(c *models.Child) int64 { return c.ID }), nil
}

func (s *InMemoryStore) FindChild(_ context.Context, id int64) (*models.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.children[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *InMemoryStore) CreateChild(_ context.Context, c *models.Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[c.RequestID]; !ok {
		return sentinel.ErrNotFound
	}
	c.ID = s.id()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	s.children[c.ID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateChild(_ context.Context, c *models.Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.children[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	cp := *c
	cp.RequestID = existing.RequestID
	cp.IsCreatedByCharity = existing.IsCreatedByCharity
	cp.CreatedAt = existing.CreatedAt
	s.children[c.ID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteChild(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.children[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.children, id)
	return nil
}
