package store

import (
	"context"
	"sort"
	"sync"

	"charity/internal/beneficiary/models"
	"charity/pkg/platform/sentinel"
)

// InMemoryStore mirrors the uniqueness rules of the beneficiary tables.
type InMemoryStore struct {
	mu             sync.RWMutex
	registrations  map[int64]*models.Registration
	information    map[int64]*models.Information // by beneficiary
	addresses      map[int64]*models.Address     // by beneficiary
	additionalInfo map[int64]*models.AdditionalInfo
	nextID         int64
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		registrations:  make(map[int64]*models.Registration),
		information:    make(map[int64]*models.Information),
		addresses:      make(map[int64]*models.Address),
		additionalInfo: make(map[int64]*models.AdditionalInfo),
	}
}

func (s *InMemoryStore) id() int64 {
	s.nextID++
	return s.nextID
}

func sameValue(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}

func (s *InMemoryStore) clashes(r *models.Registration) bool {
	for _, other := range s.registrations {
		if other.ID == r.ID {
			continue
		}
		if other.UserID == r.UserID ||
			other.IdentificationNumber == r.IdentificationNumber ||
			other.BeneficiaryID == r.BeneficiaryID ||
			sameValue(other.PhoneNumber, r.PhoneNumber) ||
			sameValue(other.Email, r.Email) {
			return true
		}
	}
	return false
}

func (s *InMemoryStore) CreateRegistration(_ context.Context, r *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clashes(r) {
		return sentinel.ErrConflict
	}
	r.ID = s.id()
	r.UpdatedAt = r.CreatedAt
	cp := *r
	s.registrations[r.ID] = &cp
	return nil
}

func (s *InMemoryStore) FindRegistration(_ context.Context, id int64) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.registrations[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *InMemoryStore) FindRegistrationByUser(_ context.Context, userID int64) (*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.registrations {
		if r.UserID == userID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) UpdateRegistration(_ context.Context, r *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.registrations[r.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	if s.clashes(r) {
		return sentinel.ErrConflict
	}
	existing.PhoneNumber = r.PhoneNumber
	existing.Email = r.Email
	existing.UpdatedAt = r.UpdatedAt
	return nil
}

func (s *InMemoryStore) IdentityTaken(_ context.Context, identificationNumber, code string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var idTaken, codeTaken bool
	for _, r := range s.registrations {
		idTaken = idTaken || r.IdentificationNumber == identificationNumber
		codeTaken = codeTaken || r.BeneficiaryID == code
	}
	return idTaken, codeTaken, nil
}

func (s *InMemoryStore) ContactTaken(_ context.Context, excludeID int64, phone, email *string) (bool, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var phoneTaken, emailTaken bool
	for _, r := range s.registrations {
		if r.ID == excludeID {
			continue
		}
		phoneTaken = phoneTaken || sameValue(r.PhoneNumber, phone)
		emailTaken = emailTaken || sameValue(r.Email, email)
	}
	return phoneTaken, emailTaken, nil
}

func (s *InMemoryStore) sortedRegistrations() []*models.Registration {
	out := make([]*models.Registration, 0, len(s.registrations))
	for _, r := range s.registrations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *InMemoryStore) ListSummaries(_ context.Context, f models.ListFilter) ([]models.Summary, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var allowed map[int64]bool
	if f.IDs != nil {
		allowed = make(map[int64]bool, len(f.IDs))
		for _, id := range f.IDs {
			allowed[id] = true
		}
	}

	var matched []models.Summary
	for _, r := range s.sortedRegistrations() {
		if allowed != nil && !allowed[r.ID] {
			continue
		}
		sm := models.Summary{
			ID:                   r.ID,
			IdentificationNumber: r.IdentificationNumber,
			BeneficiaryID:        r.BeneficiaryID,
			PhoneNumber:          r.PhoneNumber,
			Email:                r.Email,
			CreatedAt:            r.CreatedAt,
		}
		if info, ok := s.information[r.ID]; ok {
			sm.FirstName = info.FirstName
			sm.LastName = info.LastName
		}
		matched = append(matched, sm)
	}

	total := len(matched)
	start := min(max(f.Offset, 0), total)
	end := total
	if f.Limit > 0 && f.Limit < total-start {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}

func (s *InMemoryStore) ListRegistrations(_ context.Context) ([]models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Registration
	for _, r := range s.sortedRegistrations() {
		out = append(out, *r)
	}
	return out, nil
}

func (s *InMemoryStore) FindInformation(_ context.Context, beneficiaryID int64) (*models.Information, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.information[beneficiaryID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *info
	return &cp, nil
}

func (s *InMemoryStore) CreateInformation(_ context.Context, info *models.Information) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registrations[info.BeneficiaryID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.information[info.BeneficiaryID]; ok {
		return sentinel.ErrConflict
	}
	info.ID = s.id()
	info.UpdatedAt = info.CreatedAt
	cp := *info
	s.information[info.BeneficiaryID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateInformation(_ context.Context, info *models.Information) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.information[info.BeneficiaryID]
	if !ok {
		return sentinel.ErrNotFound
	}
	cp := *info
	cp.ID = existing.ID
	cp.CreatedAt = existing.CreatedAt
	s.information[info.BeneficiaryID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteInformation(_ context.Context, beneficiaryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.information[beneficiaryID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.information, beneficiaryID)
	return nil
}

func (s *InMemoryStore) FindAddress(_ context.Context, beneficiaryID int64) (*models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.addresses[beneficiaryID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *InMemoryStore) CreateAddress(_ context.Context, a *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registrations[a.BeneficiaryID]; !ok {
		return sentinel.ErrNotFound
	}
	if _, ok := s.addresses[a.BeneficiaryID]; ok {
		return sentinel.ErrConflict
	}
	a.ID = s.id()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	s.addresses[a.BeneficiaryID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateAddress(_ context.Context, a *models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.addresses[a.BeneficiaryID]
	if !ok {
		return sentinel.ErrNotFound
	}
	cp := *a
	cp.ID = existing.ID
	cp.CreatedAt = existing.CreatedAt
	s.addresses[a.BeneficiaryID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteAddress(_ context.Context, beneficiaryID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.addresses[beneficiaryID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.addresses, beneficiaryID)
	return nil
}

func (s *InMemoryStore) ListAdditionalInfo(_ context.Context, beneficiaryID int64, includeCharity bool) ([]models.AdditionalInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.AdditionalInfo
	for _, a := range s.additionalInfo {
		if a.BeneficiaryID != beneficiaryID || (a.IsCreatedByCharity && !includeCharity) {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) FindAdditionalInfo(_ context.Context, id int64) (*models.AdditionalInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.additionalInfo[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *InMemoryStore) CreateAdditionalInfo(_ context.Context, a *models.AdditionalInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registrations[a.BeneficiaryID]; !ok {
		return sentinel.ErrNotFound
	}
	a.ID = s.id()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	s.additionalInfo[a.ID] = &cp
	return nil
}

func (s *InMemoryStore) UpdateAdditionalInfo(_ context.Context, a *models.AdditionalInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.additionalInfo[a.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	cp := *a
	cp.CreatedAt = existing.CreatedAt
	s.additionalInfo[a.ID] = &cp
	return nil
}

func (s *InMemoryStore) DeleteAdditionalInfo(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.additionalInfo[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.additionalInfo, id)
	return nil
}
