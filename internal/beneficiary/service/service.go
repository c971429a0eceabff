// Package service implements beneficiary registration and profile management.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"charity/internal/beneficiary/models"
	"charity/internal/cache"
	"charity/internal/location"
	"charity/internal/search"
	"charity/pkg/calendar"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/pagination"
	"charity/pkg/platform/sentinel"
	txcontext "charity/pkg/platform/tx"
	"charity/pkg/requestcontext"
)

type Store interface {
	CreateRegistration(ctx context.Context, r *models.Registration) error
	FindRegistration(ctx context.Context, id int64) (*models.Registration, error)
	FindRegistrationByUser(ctx context.Context, userID int64) (*models.Registration, error)
	UpdateRegistration(ctx context.Context, r *models.Registration) error
	IdentityTaken(ctx context.Context, identificationNumber, code string) (bool, bool, error)
	ContactTaken(ctx context.Context, excludeID int64, phone, email *string) (bool, bool, error)
	ListSummaries(ctx context.Context, f models.ListFilter) ([]models.Summary, int, error)
	ListRegistrations(ctx context.Context) ([]models.Registration, error)

	FindInformation(ctx context.Context, beneficiaryID int64) (*models.Information, error)
	CreateInformation(ctx context.Context, info *models.Information) error
	UpdateInformation(ctx context.Context, info *models.Information) error
	DeleteInformation(ctx context.Context, beneficiaryID int64) error

	FindAddress(ctx context.Context, beneficiaryID int64) (*models.Address, error)
	CreateAddress(ctx context.Context, a *models.Address) error
	UpdateAddress(ctx context.Context, a *models.Address) error
	DeleteAddress(ctx context.Context, beneficiaryID int64) error

	ListAdditionalInfo(ctx context.Context, beneficiaryID int64, includeCharity bool) ([]models.AdditionalInfo, error)
	FindAdditionalInfo(ctx context.Context, id int64) (*models.AdditionalInfo, error)
	CreateAdditionalInfo(ctx context.Context, a *models.AdditionalInfo) error
	UpdateAdditionalInfo(ctx context.Context, a *models.AdditionalInfo) error
	DeleteAdditionalInfo(ctx context.Context, id int64) error
}

// Locations resolves province and city references on addresses.
type Locations interface {
	Resolve(ctx context.Context, provinceID, cityID int64) (*location.Province, *location.City, error)
	Names(ctx context.Context, provinceID, cityID int64) (string, string)
}

// IDFilter narrows list queries by a free-text search.
type IDFilter interface {
	IDs(ctx context.Context, index, query string) ([]int64, bool)
}

type Service struct {
	store     Store
	locations Locations
	cache     *cache.Manager
	search    IDFilter
	tx        txcontext.Runner
	logger    *slog.Logger
}

type Option func(*Service)

func WithCache(c *cache.Manager) Option {
	return func(s *Service) { s.cache = c }
}

func WithSearch(f IDFilter) Option {
	return func(s *Service) { s.search = f }
}

func WithTxRunner(r txcontext.Runner) Option {
	return func(s *Service) { s.tx = r }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(store Store, locations Locations, opts ...Option) *Service {
	s := &Service{
		store:     store,
		locations: locations,
		tx:        txcontext.NoopRunner{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- registration ---

// Register creates the beneficiary record for a new account and returns its id.
func (s *Service) Register(ctx context.Context, userID int64, identificationNumber, code string) (int64, error) {
	if err := s.CheckAvailable(ctx, identificationNumber, code); err != nil {
		return 0, err
	}

	reg := &models.Registration{
		UserID:               userID,
		IdentificationNumber: identificationNumber,
		BeneficiaryID:        code,
		CreatedAt:            requestcontext.Now(ctx),
	}
	if err := s.store.CreateRegistration(ctx, reg); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return 0, dErrors.New(dErrors.CodeValidation, "This beneficiary already exists")
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create beneficiary")
	}
	s.cache.BeneficiaryChanged(ctx, reg.ID)
	s.logger.InfoContext(ctx, "beneficiary registered", "beneficiary_id", reg.ID)
	return reg.ID, nil
}

// CheckAvailable fails when the identification number or the beneficiary id is already registered.
func (s *Service) CheckAvailable(ctx context.Context, identificationNumber, code string) error {
	idTaken, codeTaken, err := s.store.IdentityTaken(ctx, identificationNumber, code)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check beneficiary identity")
	}
	if idTaken {
		return dErrors.New(dErrors.CodeValidation, "This beneficiary already exists")
	}
	if codeTaken {
		return dErrors.New(dErrors.CodeValidation, "this beneficiary id already exists")
	}
	return nil
}

// IDForUser returns the beneficiary id owned by an account.
func (s *Service) IDForUser(ctx context.Context, userID int64) (int64, error) {
	reg, err := s.store.FindRegistrationByUser(ctx, userID)
	if err != nil {
		return 0, notFoundOr(err, "beneficiary not found")
	}
	return reg.ID, nil
}

func (s *Service) Registration(ctx context.Context, id int64) (*models.Registration, error) {
	reg, err := s.store.FindRegistration(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "beneficiary not found")
	}
	return reg, nil
}

// UpdateRegistration sets contact details. Phone and email stay unique across beneficiaries.
func (s *Service) UpdateRegistration(ctx context.Context, id int64, req *models.UpdateRegistrationRequest) (*models.Registration, error) {
	reg, err := s.Registration(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.Apply(reg); err != nil {
		return nil, err
	}
	phoneTaken, emailTaken, err := s.store.ContactTaken(ctx, reg.ID, reg.PhoneNumber, reg.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check contact details")
	}
	if phoneTaken {
		return nil, dErrors.New(dErrors.CodeValidation, "This phone number is already registered")
	}
	if emailTaken {
		return nil, dErrors.New(dErrors.CodeValidation, "This email is already registered")
	}
	reg.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.UpdateRegistration(ctx, reg); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeValidation, "phone number or email already in use")
		}
		return nil, notFoundOr(err, "beneficiary not found")
	}
	s.cache.BeneficiaryChanged(ctx, id)
	return reg, nil
}

// --- reads ---

// Profile is the beneficiary's own view; charity-created additional info is hidden.
func (s *Service) Profile(ctx context.Context, id int64) (*models.Profile, error) {
	reg, err := s.Registration(ctx, id)
	if err != nil {
		return nil, err
	}
	p := &models.Profile{Registration: *reg}
	if p.Information, err = s.optionalInformation(ctx, id); err != nil {
		return nil, err
	}
	if p.Address, err = s.optionalAddress(ctx, id); err != nil {
		return nil, err
	}
	infos, err := s.store.ListAdditionalInfo(ctx, id, false)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list additional info")
	}
	p.AdditionalInfo = nonNil(infos)
	return p, nil
}

// Detail is the charity-side view of a beneficiary. It is cached until the beneficiary changes.
func (s *Service) Detail(ctx context.Context, id int64) (*models.Detail, error) {
	tag := cache.TagBeneficiaryDetail(id)
	return cache.Fetch(ctx, s.cache, tag, []string{tag}, func(ctx context.Context) (*models.Detail, error) {
		return s.loadDetail(ctx, id)
	})
}

func (s *Service) loadDetail(ctx context.Context, id int64) (*models.Detail, error) {
	reg, err := s.Registration(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &models.Detail{Registration: *reg, AdditionalInfoList: []string{}}
	if d.Information, err = s.optionalInformation(ctx, id); err != nil {
		return nil, err
	}
	addr, err := s.optionalAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	if addr != nil {
		d.Address = s.describeAddress(ctx, addr)
	}
	infos, err := s.store.ListAdditionalInfo(ctx, id, true)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list additional info")
	}
	for _, info := range infos {
		d.AdditionalInfoList = append(d.AdditionalInfoList, info.Title)
	}
	return d, nil
}

func (s *Service) describeAddress(ctx context.Context, a *models.Address) *models.AddressDetail {
	var provinceID, cityID int64
	if a.ProvinceID != nil {
		provinceID = *a.ProvinceID
	}
	if a.CityID != nil {
		cityID = *a.CityID
	}
	province, city := s.locations.Names(ctx, provinceID, cityID)
	return &models.AddressDetail{Address: *a, ProvinceName: province, CityName: city}
}

// List pages the charity-side beneficiary list, narrowed by search when given.
func (s *Service) List(ctx context.Context, query string, p pagination.Params) (pagination.Page[models.Summary], error) {
	p = p.Normalize()
	query = strings.TrimSpace(query)
	key := cache.PaginatedKey("beneficiary:list", p.Page, map[string]string{
		"search":    query,
		"page_size": strconv.Itoa(p.PageSize),
	})
	return cache.Fetch(ctx, s.cache, key, []string{cache.TagBeneficiaryList}, func(ctx context.Context) (pagination.Page[models.Summary], error) {
		filter := models.ListFilter{Offset: p.Offset(), Limit: p.Limit()}
		if query != "" && s.search != nil {
			if ids, ok := s.search.IDs(ctx, search.IndexBeneficiaries, query); ok {
				filter.IDs = nonNil(ids)
			}
		}
		rows, count, err := s.store.ListSummaries(ctx, filter)
		if err != nil {
			return pagination.Page[models.Summary]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list beneficiaries")
		}
		return pagination.NewPage(p, count, rows), nil
	})
}

// --- information ---

func (s *Service) Information(ctx context.Context, beneficiaryID int64) (*models.Information, error) {
	info, err := s.store.FindInformation(ctx, beneficiaryID)
	if err != nil {
		return nil, notFoundOr(err, "beneficiary information not found")
	}
	return info, nil
}

func (s *Service) CreateInformation(ctx context.Context, beneficiaryID int64, req *models.InformationRequest) (*models.Information, error) {
	if _, err := s.Registration(ctx, beneficiaryID); err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	if err := req.CheckBirthDate(calendar.NewDate(now)); err != nil {
		return nil, err
	}
	info := &models.Information{BeneficiaryID: beneficiaryID, CreatedAt: now}
	req.ApplyTo(info)
	if err := s.store.CreateInformation(ctx, info); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeValidation, "Beneficiary information already exists")
		}
		return nil, notFoundOr(err, "beneficiary not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return info, nil
}

func (s *Service) UpdateInformation(ctx context.Context, beneficiaryID int64, req *models.InformationRequest) (*models.Information, error) {
	info, err := s.Information(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	if err := req.CheckBirthDate(calendar.NewDate(now)); err != nil {
		return nil, err
	}
	req.ApplyTo(info)
	info.UpdatedAt = now
	if err := s.store.UpdateInformation(ctx, info); err != nil {
		return nil, notFoundOr(err, "beneficiary information not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return info, nil
}

// SaveInformation creates the information record or updates the existing one.
func (s *Service) SaveInformation(ctx context.Context, beneficiaryID int64, req *models.InformationRequest) (*models.Information, error) {
	var out *models.Information
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.store.FindInformation(ctx, beneficiaryID)
		switch {
		case err == nil:
			out, err = s.UpdateInformation(ctx, beneficiaryID, req)
		case errors.Is(err, sentinel.ErrNotFound):
			out, err = s.CreateInformation(ctx, beneficiaryID, req)
		default:
			err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to load beneficiary information")
		}
		return err
	})
	return out, err
}

func (s *Service) DeleteInformation(ctx context.Context, beneficiaryID int64) error {
	if err := s.store.DeleteInformation(ctx, beneficiaryID); err != nil {
		return notFoundOr(err, "beneficiary information not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return nil
}

// --- address ---

func (s *Service) Address(ctx context.Context, beneficiaryID int64) (*models.Address, error) {
	a, err := s.store.FindAddress(ctx, beneficiaryID)
	if err != nil {
		return nil, notFoundOr(err, "beneficiary address not found")
	}
	return a, nil
}

func (s *Service) resolveAddress(ctx context.Context, req *models.AddressRequest) error {
	if req.ProvinceID == nil || req.CityID == nil {
		return nil
	}
	_, _, err := s.locations.Resolve(ctx, *req.ProvinceID, *req.CityID)
	return err
}

func (s *Service) CreateAddress(ctx context.Context, beneficiaryID int64, req *models.AddressRequest) (*models.Address, error) {
	if _, err := s.Registration(ctx, beneficiaryID); err != nil {
		return nil, err
	}
	if err := s.resolveAddress(ctx, req); err != nil {
		return nil, err
	}
	a := &models.Address{BeneficiaryID: beneficiaryID, CreatedAt: requestcontext.Now(ctx)}
	req.ApplyTo(a)
	if err := s.store.CreateAddress(ctx, a); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeValidation, "Beneficiary address already exists")
		}
		return nil, notFoundOr(err, "beneficiary not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return a, nil
}

func (s *Service) UpdateAddress(ctx context.Context, beneficiaryID int64, req *models.AddressRequest) (*models.Address, error) {
	a, err := s.Address(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}
	if err := s.resolveAddress(ctx, req); err != nil {
		return nil, err
	}
	req.ApplyTo(a)
	a.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.UpdateAddress(ctx, a); err != nil {
		return nil, notFoundOr(err, "beneficiary address not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return a, nil
}

// SaveAddress creates the address or updates the existing one.
func (s *Service) SaveAddress(ctx context.Context, beneficiaryID int64, req *models.AddressRequest) (*models.Address, error) {
	var out *models.Address
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.store.FindAddress(ctx, beneficiaryID)
		switch {
		case err == nil:
			out, err = s.UpdateAddress(ctx, beneficiaryID, req)
		case errors.Is(err, sentinel.ErrNotFound):
			out, err = s.CreateAddress(ctx, beneficiaryID, req)
		default:
			err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to load beneficiary address")
		}
		return err
	})
	return out, err
}

func (s *Service) DeleteAddress(ctx context.Context, beneficiaryID int64) error {
	if err := s.store.DeleteAddress(ctx, beneficiaryID); err != nil {
		return notFoundOr(err, "beneficiary address not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return nil
}

// --- additional info ---

// AdditionalInfo lists entries. byCharity selects the charity view, which includes charity-created entries.
func (s *Service) AdditionalInfo(ctx context.Context, beneficiaryID int64, byCharity bool) ([]models.AdditionalInfo, error) {
	if _, err := s.Registration(ctx, beneficiaryID); err != nil {
		return nil, err
	}
	out, err := s.store.ListAdditionalInfo(ctx, beneficiaryID, byCharity)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list additional info")
	}
	return nonNil(out), nil
}

// AdditionalInfoEntry loads one entry, which must belong to beneficiaryID.
func (s *Service) AdditionalInfoEntry(ctx context.Context, beneficiaryID, id int64) (*models.AdditionalInfo, error) {
	a, err := s.store.FindAdditionalInfo(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "additional info not found")
	}
	if a.BeneficiaryID != beneficiaryID {
		return nil, dErrors.New(dErrors.CodeNotFound, "additional info not found")
	}
	return a, nil
}

func (s *Service) CreateAdditionalInfo(ctx context.Context, beneficiaryID int64, req *models.AdditionalInfoRequest, byCharity bool) (*models.AdditionalInfo, error) {
	if _, err := s.Registration(ctx, beneficiaryID); err != nil {
		return nil, err
	}
	a := &models.AdditionalInfo{
		BeneficiaryID:      beneficiaryID,
		Title:              req.Title,
		Description:        req.Description,
		Document:           req.Document,
		IsCreatedByCharity: byCharity,
		CreatedAt:          requestcontext.Now(ctx),
	}
	if err := s.store.CreateAdditionalInfo(ctx, a); err != nil {
		return nil, notFoundOr(err, "beneficiary not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return a, nil
}

// UpdateAdditionalInfo edits an entry. A beneficiary may not touch charity-created entries.
func (s *Service) UpdateAdditionalInfo(ctx context.Context, beneficiaryID, id int64, req *models.AdditionalInfoRequest, byCharity bool) (*models.AdditionalInfo, error) {
	a, err := s.editableAdditionalInfo(ctx, beneficiaryID, id, byCharity)
	if err != nil {
		return nil, err
	}
	a.Title = req.Title
	a.Description = req.Description
	a.Document = req.Document
	a.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.UpdateAdditionalInfo(ctx, a); err != nil {
		return nil, notFoundOr(err, "additional info not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return a, nil
}

func (s *Service) DeleteAdditionalInfo(ctx context.Context, beneficiaryID, id int64, byCharity bool) error {
	if _, err := s.editableAdditionalInfo(ctx, beneficiaryID, id, byCharity); err != nil {
		return err
	}
	if err := s.store.DeleteAdditionalInfo(ctx, id); err != nil {
		return notFoundOr(err, "additional info not found")
	}
	s.cache.BeneficiaryChanged(ctx, beneficiaryID)
	return nil
}

func (s *Service) editableAdditionalInfo(ctx context.Context, beneficiaryID, id int64, byCharity bool) (*models.AdditionalInfo, error) {
	a, err := s.AdditionalInfoEntry(ctx, beneficiaryID, id)
	if err != nil {
		return nil, err
	}
	if a.IsCreatedByCharity && !byCharity {
		return nil, dErrors.New(dErrors.CodeForbidden, "You do not have permission to modify information added by a charity.")
	}
	return a, nil
}

// --- search documents ---

// BeneficiaryDocuments builds the "beneficiaries" search index content.
func (s *Service) BeneficiaryDocuments(ctx context.Context) ([]search.BeneficiaryDocument, error) {
	regs, err := s.store.ListRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]search.BeneficiaryDocument, 0, len(regs))
	for _, reg := range regs {
		doc := search.BeneficiaryDocument{
			ID:                   reg.ID,
			IdentificationNumber: reg.IdentificationNumber,
			BeneficiaryID:        reg.BeneficiaryID,
			PhoneNumber:          deref(reg.PhoneNumber),
			Email:                deref(reg.Email),
			Tags:                 []string{},
		}
		info, err := s.optionalInformation(ctx, reg.ID)
		if err != nil {
			return nil, err
		}
		if info != nil {
			doc.FirstName = info.FirstName
			doc.LastName = info.LastName
			doc.FullName = info.FullName()
		}
		addr, err := s.optionalAddress(ctx, reg.ID)
		if err != nil {
			return nil, err
		}
		if addr != nil {
			d := s.describeAddress(ctx, addr)
			doc.Province = d.ProvinceName
			doc.City = d.CityName
		}
		infos, err := s.store.ListAdditionalInfo(ctx, reg.ID, true)
		if err != nil {
			return nil, err
		}
		for _, a := range infos {
			doc.Tags = append(doc.Tags, a.Title)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// --- helpers ---

func (s *Service) optionalInformation(ctx context.Context, id int64) (*models.Information, error) {
	info, err := s.store.FindInformation(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load beneficiary information")
	}
	return info, nil
}

func (s *Service) optionalAddress(ctx context.Context, id int64) (*models.Address, error) {
	a, err := s.store.FindAddress(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load beneficiary address")
	}
	return a, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "beneficiary store error")
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
