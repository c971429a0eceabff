// Package service implements the request pipeline: creation, edits, stage
// changes, duration extensions, histories and child requests.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	amodels "charity/internal/announcement/models"
	bmodels "charity/internal/beneficiary/models"
	"charity/internal/cache"
	"charity/internal/platform/metrics"
	"charity/internal/request/models"
	"charity/internal/search"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/pagination"
	"charity/pkg/platform/sentinel"
	txcontext "charity/pkg/platform/tx"
	"charity/pkg/requestcontext"
)

type Store interface {
	ListLayer1(ctx context.Context) ([]models.Layer1, error)
	FindLayer1(ctx context.Context, id int64) (*models.Layer1, error)
	ListLayer2(ctx context.Context, layer1ID int64) ([]models.Layer2, error)
	FindLayer2(ctx context.Context, id int64) (*models.Layer2, error)
	CreateLayer2(ctx context.Context, l *models.Layer2) error

	Create(ctx context.Context, r *models.Request) error
	Find(ctx context.Context, id int64) (*models.Request, error)
	Update(ctx context.Context, r *models.Request) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f models.ListFilter) ([]models.Request, int, error)
	ListAll(ctx context.Context) ([]models.Request, error)

	FindOnetime(ctx context.Context, requestID int64) (*models.Onetime, error)
	CreateOnetime(ctx context.Context, o *models.Onetime) error
	UpdateOnetime(ctx context.Context, o *models.Onetime) error
	DeleteOnetime(ctx context.Context, requestID int64) error

	FindRecurring(ctx context.Context, requestID int64) (*models.Recurring, error)
	CreateRecurring(ctx context.Context, r *models.Recurring) error
	UpdateRecurring(ctx context.Context, r *models.Recurring) error
	DeleteRecurring(ctx context.Context, requestID int64) error

	ListHistories(ctx context.Context, requestID int64) ([]models.History, error)
	FindHistory(ctx context.Context, id int64) (*models.History, error)
	CreateHistory(ctx context.Context, h *models.History) error
	UpdateHistory(ctx context.Context, h *models.History) error
	DeleteHistory(ctx context.Context, id int64) error

	ListChildren(ctx context.Context, requestID int64) ([]models.Child, error)
	FindChild(ctx context.Context, id int64) (*models.Child, error)
	CreateChild(ctx context.Context, c *models.Child) error
	UpdateChild(ctx context.Context, c *models.Child) error
	DeleteChild(ctx context.Context, id int64) error
}

// Beneficiaries gives access to the beneficiary a request is raised for.
type Beneficiaries interface {
	Registration(ctx context.Context, id int64) (*bmodels.Registration, error)
	Detail(ctx context.Context, id int64) (*bmodels.Detail, error)
}

type Charities interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// IDFilter narrows list queries by a free-text search.
type IDFilter interface {
	IDs(ctx context.Context, index, query string) ([]int64, bool)
}

// Enqueuer hands announcement jobs to the queue. It never blocks on the
// outcome and never fails the caller.
type Enqueuer interface {
	Enqueue(ctx context.Context, job amodels.Job)
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(context.Context, amodels.Job) {}

type Service struct {
	store         Store
	beneficiaries Beneficiaries
	charities     Charities
	cache         *cache.Manager
	search        IDFilter
	announcer     Enqueuer
	tx            txcontext.Runner
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

type Option func(*Service)

func WithCache(c *cache.Manager) Option {
	return func(s *Service) { s.cache = c }
}

func WithSearch(f IDFilter) Option {
	return func(s *Service) { s.search = f }
}

func WithAnnouncer(e Enqueuer) Option {
	return func(s *Service) { s.announcer = e }
}

func WithTxRunner(r txcontext.Runner) Option {
	return func(s *Service) { s.tx = r }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(store Store, beneficiaries Beneficiaries, charities Charities, opts ...Option) *Service {
	s := &Service{
		store:         store,
		beneficiaries: beneficiaries,
		charities:     charities,
		announcer:     noopEnqueuer{},
		tx:            txcontext.NoopRunner{},
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	errNotOwnRequest = dErrors.New(dErrors.CodeForbidden, "You can only update or delete a request you created")
	errNotSubmitted  = dErrors.New(dErrors.CodeForbidden, "You can only update or delete a request in the 'submitted' stage.")
	errNotOwnInfo    = dErrors.New(dErrors.CodeForbidden, "You can only update a request you created.")
	errCharityOnly   = dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action.")
)

// --- taxonomy ---

func (s *Service) Layer1s(ctx context.Context) ([]models.Layer1, error) {
	out, err := s.store.ListLayer1(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list request types")
	}
	return nonNil(out), nil
}

// Layer2s lists second-level types, optionally restricted to one first-level type.
func (s *Service) Layer2s(ctx context.Context, layer1ID int64) ([]models.Layer2, error) {
	out, err := s.store.ListLayer2(ctx, layer1ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list request types")
	}
	return nonNil(out), nil
}

func (s *Service) CreateLayer2(ctx context.Context, req *models.Layer2Request) (*models.Layer2, error) {
	l := &models.Layer2{Name: req.Name, Layer1ID: req.Layer1ID}
	if err := s.store.CreateLayer2(ctx, l); err != nil {
		switch {
		case errors.Is(err, sentinel.ErrConflict):
			return nil, dErrors.New(dErrors.CodeValidation, "name: request type layer2 with this name already exists.")
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, invalidPK("layer1", req.Layer1ID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create request type")
	}
	return l, nil
}

// checkTypes verifies both layers exist and that layer2 sits under layer1.
func (s *Service) checkTypes(ctx context.Context, layer1ID, layer2ID int64) error {
	if _, err := s.store.FindLayer1(ctx, layer1ID); err != nil {
		return lookupErr(err, "layer1", layer1ID)
	}
	l2, err := s.store.FindLayer2(ctx, layer2ID)
	if err != nil {
		return lookupErr(err, "layer2", layer2ID)
	}
	if l2.Layer1ID != layer1ID {
		return dErrors.New(dErrors.CodeValidation,
			"The selected request type Layer 2 is not associated with the selected request type Layer 1.")
	}
	return nil
}

func (s *Service) checkCharity(ctx context.Context, charityID int64) error {
	if charityID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "charity: This field is required.")
	}
	ok, err := s.charities.Exists(ctx, charityID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check charity")
	}
	if !ok {
		return invalidPK("charity", charityID)
	}
	return nil
}

// --- requests ---

// Create raises a request for a beneficiary in the submitted stage. A
// charity caller always becomes the request's charity.
func (s *Service) Create(ctx context.Context, actor models.Actor, beneficiaryID int64, req *models.CreateRequest) (*models.Request, error) {
	if actor.ByCharity && actor.CharityID != 0 {
		req.CharityID = actor.CharityID
	}
	r := req.ToRequest()
	r.BeneficiaryID = beneficiaryID
	r.Stage = models.StageSubmitted
	r.IsCreatedByCharity = actor.ByCharity
	r.CreatedAt = requestcontext.Now(ctx)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.beneficiaries.Registration(ctx, beneficiaryID); err != nil {
			return err
		}
		if err := s.checkCharity(ctx, r.CharityID); err != nil {
			return err
		}
		if err := s.checkTypes(ctx, r.Layer1ID, r.Layer2ID); err != nil {
			return err
		}
		if err := s.store.Create(ctx, r); err != nil {
			return notFoundOr(err, "beneficiary not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RequestCreated(actor.ByCharity)
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindRequestCreated, r, "")
	s.logger.InfoContext(ctx, "request created",
		"request_id", r.ID,
		"beneficiary_id", r.BeneficiaryID,
		"charity_id", r.CharityID,
		"by_charity", actor.ByCharity,
	)
	return r, nil
}

// load fetches a request visible to actor. Requests outside the actor's
// scope are reported as missing.
func (s *Service) load(ctx context.Context, actor models.Actor, id int64) (*models.Request, error) {
	r, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	if !actor.Owns(r) {
		return nil, dErrors.New(dErrors.CodeNotFound, "request not found")
	}
	return r, nil
}

// editable loads a request the actor may change. Beneficiaries may only
// change their own submissions while still in the submitted stage.
func (s *Service) editable(ctx context.Context, actor models.Actor, id int64) (*models.Request, error) {
	r, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if actor.ByCharity {
		return r, nil
	}
	if r.IsCreatedByCharity {
		return nil, errNotOwnRequest
	}
	if r.Stage != models.StageSubmitted {
		return nil, errNotSubmitted
	}
	return r, nil
}

// Get returns the request with its sub-records. The detail is cached until
// the request changes.
func (s *Service) Get(ctx context.Context, actor models.Actor, id int64) (*models.Detail, error) {
	tag := cache.TagRequestDetail(id)
	d, err := cache.Fetch(ctx, s.cache, tag, []string{tag}, func(ctx context.Context) (*models.Detail, error) {
		return s.loadDetail(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if !actor.Owns(&d.Request) {
		return nil, dErrors.New(dErrors.CodeNotFound, "request not found")
	}
	return d, nil
}

func (s *Service) loadDetail(ctx context.Context, id int64) (*models.Detail, error) {
	r, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	d := &models.Detail{Request: *r}
	if l1, err := s.store.FindLayer1(ctx, r.Layer1ID); err == nil {
		d.Layer1Name = l1.Name
	}
	if l2, err := s.store.FindLayer2(ctx, r.Layer2ID); err == nil {
		d.Layer2Name = l2.Name
	}
	if d.Onetime, err = optional(s.store.FindOnetime(ctx, id)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load onetime info")
	}
	if d.Recurring, err = optional(s.store.FindRecurring(ctx, id)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load recurring info")
	}
	histories, err := s.store.ListHistories(ctx, id)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list histories")
	}
	d.Histories = nonNil(histories)
	children, err := s.store.ListChildren(ctx, id)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list child requests")
	}
	d.Children = nonNil(children)
	return d, nil
}

// Update edits a request. Charities cannot hand a request to another charity.
func (s *Service) Update(ctx context.Context, actor models.Actor, id int64, req *models.UpdateRequest) (*models.Request, error) {
	r, err := s.editable(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	before := *r
	req.ApplyTo(r)
	if actor.ByCharity && actor.CharityID != 0 {
		r.CharityID = actor.CharityID
	}
	if r.CharityID != before.CharityID {
		if err := s.checkCharity(ctx, r.CharityID); err != nil {
			return nil, err
		}
	}
	if r.Layer1ID != before.Layer1ID || r.Layer2ID != before.Layer2ID {
		if err := s.checkTypes(ctx, r.Layer1ID, r.Layer2ID); err != nil {
			return nil, err
		}
	}
	if r.Duration != before.Duration {
		if err := s.checkNoExtension(ctx, before); err != nil {
			return nil, err
		}
	}
	r.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.Update(ctx, r); err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindRequestUpdated, r, "")
	return r, nil
}

// checkNoExtension refuses a duration change while details of the old kind exist.
func (s *Service) checkNoExtension(ctx context.Context, r models.Request) error {
	var err error
	switch r.Duration {
	case models.DurationOneTime:
		_, err = s.store.FindOnetime(ctx, r.ID)
	case models.DurationRecurring:
		_, err = s.store.FindRecurring(ctx, r.ID)
	default:
		return nil
	}
	switch {
	case err == nil:
		return dErrors.New(dErrors.CodeValidation, "duration: Remove the "+r.Duration+" details before changing the duration.")
	case errors.Is(err, sentinel.ErrNotFound):
		return nil
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load duration details")
}

func (s *Service) Delete(ctx context.Context, actor models.Actor, id int64) error {
	r, err := s.editable(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return notFoundOr(err, "request not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindRequestDeleted, r, "")
	s.logger.InfoContext(ctx, "request deleted", "request_id", r.ID, "beneficiary_id", r.BeneficiaryID)
	return nil
}

// ChangeStage moves a request to another stage. Any known stage may follow
// any other; an unchanged stage is a no-op.
func (s *Service) ChangeStage(ctx context.Context, actor models.Actor, id int64, stage string) (*models.Request, error) {
	if !actor.ByCharity {
		return nil, errCharityOnly
	}
	r, err := s.load(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if r.Stage == stage {
		return r, nil
	}
	r.Stage = stage
	r.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.Update(ctx, r); err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	s.metrics.StageChanged(stage)
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindStageChanged, r, stage)
	return r, nil
}

// --- lists ---

// ListForBeneficiary lists the actor's beneficiary's requests by stage group.
// A charity actor only sees the ones addressed to it.
func (s *Service) ListForBeneficiary(ctx context.Context, actor models.Actor, q models.ListQuery, p pagination.Params) (pagination.Page[models.Request], error) {
	if err := q.Normalize(); err != nil {
		return pagination.Page[models.Request]{}, err
	}
	p = p.Normalize()
	beneficiaryID := actor.BeneficiaryID
	stages, _ := models.StagesIn(q.Group)
	key := cache.PaginatedKey(cache.TagBeneficiaryRequests(beneficiaryID), p.Page, map[string]string{
		"charity":   strconv.FormatInt(actor.CharityID, 10),
		"group":     q.Group,
		"ordering":  q.Ordering,
		"page_size": strconv.Itoa(p.PageSize),
	})
	f := models.ListFilter{BeneficiaryID: beneficiaryID, CharityID: actor.CharityID, Stages: stages, Ordering: q.Ordering}
	return s.list(ctx, key, cache.TagBeneficiaryRequests(beneficiaryID), f, p)
}

// List is the charity-side request list, narrowed by search when given.
func (s *Service) List(ctx context.Context, actor models.Actor, q models.ListQuery, p pagination.Params) (pagination.Page[models.Request], error) {
	if err := q.Normalize(); err != nil {
		return pagination.Page[models.Request]{}, err
	}
	p = p.Normalize()
	stages, _ := models.StagesIn(q.Group)
	key := cache.PaginatedKey("request:list", p.Page, map[string]string{
		"charity":   strconv.FormatInt(actor.CharityID, 10),
		"search":    q.Search,
		"group":     q.Group,
		"ordering":  q.Ordering,
		"page_size": strconv.Itoa(p.PageSize),
	})
	f := models.ListFilter{CharityID: actor.CharityID, Stages: stages, Ordering: q.Ordering}
	if q.Search != "" && s.search != nil {
		if ids, ok := s.search.IDs(ctx, search.IndexRequests, q.Search); ok {
			f.IDs = nonNil(ids)
		}
	}
	return s.list(ctx, key, cache.TagRequestList, f, p)
}

// ListNew lists requests still awaiting a decision.
func (s *Service) ListNew(ctx context.Context, actor models.Actor, p pagination.Params) (pagination.Page[models.Request], error) {
	stages, _ := models.StagesIn(models.GroupInitial)
	return s.listView(ctx, "new", actor, models.ListFilter{Stages: stages}, p)
}

// ListOldOnetime lists accepted one-time requests.
func (s *Service) ListOldOnetime(ctx context.Context, actor models.Actor, p pagination.Params) (pagination.Page[models.Request], error) {
	stages, _ := models.StagesIn(models.GroupInProgress)
	return s.listView(ctx, "old:onetime", actor, models.ListFilter{
		Stages:    stages,
		Durations: []string{models.DurationOneTime},
	}, p)
}

// ListOldOngoing lists accepted recurring and permanent requests.
func (s *Service) ListOldOngoing(ctx context.Context, actor models.Actor, p pagination.Params) (pagination.Page[models.Request], error) {
	stages, _ := models.StagesIn(models.GroupInProgress)
	return s.listView(ctx, "old:ongoing", actor, models.ListFilter{
		Stages:    stages,
		Durations: []string{models.DurationRecurring, models.DurationPermanent},
	}, p)
}

func (s *Service) listView(ctx context.Context, view string, actor models.Actor, f models.ListFilter, p pagination.Params) (pagination.Page[models.Request], error) {
	p = p.Normalize()
	f.CharityID = actor.CharityID
	key := cache.PaginatedKey("request:list:"+view, p.Page, map[string]string{
		"charity":   strconv.FormatInt(actor.CharityID, 10),
		"page_size": strconv.Itoa(p.PageSize),
	})
	return s.list(ctx, key, cache.TagRequestList, f, p)
}

func (s *Service) list(ctx context.Context, key, tag string, f models.ListFilter, p pagination.Params) (pagination.Page[models.Request], error) {
	return cache.Fetch(ctx, s.cache, key, []string{tag}, func(ctx context.Context) (pagination.Page[models.Request], error) {
		f.Offset, f.Limit = p.Offset(), p.Limit()
		rows, count, err := s.store.List(ctx, f)
		if err != nil {
			return pagination.Page[models.Request]{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list requests")
		}
		return pagination.NewPage(p, count, rows), nil
	})
}

// --- one-time and recurring details ---

func (s *Service) CreateOnetime(ctx context.Context, actor models.Actor, requestID int64, req *models.OnetimeRequest) (*models.Onetime, error) {
	r, err := s.load(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	if r.Duration != models.DurationOneTime {
		return nil, dErrors.New(dErrors.CodeValidation, "this request is not onetime")
	}
	o := &models.Onetime{
		RequestID:          requestID,
		Deadline:           req.Deadline,
		IsCreatedByCharity: actor.ByCharity,
		CreatedAt:          requestcontext.Now(ctx),
	}
	if err := s.store.CreateOnetime(ctx, o); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeValidation, "This request already has a onetime duration.")
		}
		return nil, notFoundOr(err, "request not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	return o, nil
}

// editableOnetime loads the one-time details the actor may change.
func (s *Service) editableOnetime(ctx context.Context, actor models.Actor, requestID int64) (*models.Request, *models.Onetime, error) {
	r, err := s.editable(ctx, actor, requestID)
	if err != nil {
		return nil, nil, err
	}
	o, err := s.store.FindOnetime(ctx, requestID)
	if err != nil {
		return nil, nil, notFoundOr(err, "onetime info not found")
	}
	if !actor.ByCharity && o.IsCreatedByCharity {
		return nil, nil, errNotOwnInfo
	}
	return r, o, nil
}

func (s *Service) UpdateOnetime(ctx context.Context, actor models.Actor, requestID int64, req *models.OnetimeRequest) (*models.Onetime, error) {
	r, o, err := s.editableOnetime(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	o.Deadline = req.Deadline
	if err := s.store.UpdateOnetime(ctx, o); err != nil {
		return nil, notFoundOr(err, "onetime info not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindOnetimeUpdated, r, "")
	return o, nil
}

func (s *Service) DeleteOnetime(ctx context.Context, actor models.Actor, requestID int64) error {
	r, _, err := s.editableOnetime(ctx, actor, requestID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteOnetime(ctx, requestID); err != nil {
		return notFoundOr(err, "onetime info not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindOnetimeDeleted, r, "")
	return nil
}

func (s *Service) CreateRecurring(ctx context.Context, actor models.Actor, requestID int64, req *models.RecurringRequest) (*models.Recurring, error) {
	r, err := s.load(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	if r.Duration != models.DurationRecurring {
		return nil, dErrors.New(dErrors.CodeValidation, "this request is not recurring")
	}
	rec := &models.Recurring{
		RequestID:          requestID,
		Limit:              req.Limit,
		IsCreatedByCharity: actor.ByCharity,
		CreatedAt:          requestcontext.Now(ctx),
	}
	if err := s.store.CreateRecurring(ctx, rec); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeValidation, "This request already has a recurring duration.")
		}
		return nil, notFoundOr(err, "request not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	return rec, nil
}

func (s *Service) editableRecurring(ctx context.Context, actor models.Actor, requestID int64) (*models.Request, *models.Recurring, error) {
	r, err := s.editable(ctx, actor, requestID)
	if err != nil {
		return nil, nil, err
	}
	rec, err := s.store.FindRecurring(ctx, requestID)
	if err != nil {
		return nil, nil, notFoundOr(err, "recurring info not found")
	}
	if !actor.ByCharity && rec.IsCreatedByCharity {
		return nil, nil, errNotOwnInfo
	}
	return r, rec, nil
}

func (s *Service) UpdateRecurring(ctx context.Context, actor models.Actor, requestID int64, req *models.RecurringRequest) (*models.Recurring, error) {
	r, rec, err := s.editableRecurring(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	rec.Limit = req.Limit
	if err := s.store.UpdateRecurring(ctx, rec); err != nil {
		return nil, notFoundOr(err, "recurring info not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindRecurringUpdated, r, "")
	return rec, nil
}

func (s *Service) DeleteRecurring(ctx context.Context, actor models.Actor, requestID int64) error {
	r, _, err := s.editableRecurring(ctx, actor, requestID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteRecurring(ctx, requestID); err != nil {
		return notFoundOr(err, "recurring info not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindRecurringDeleted, r, "")
	return nil
}

// --- histories ---

func (s *Service) Histories(ctx context.Context, actor models.Actor, requestID int64) ([]models.History, error) {
	if _, err := s.load(ctx, actor, requestID); err != nil {
		return nil, err
	}
	out, err := s.store.ListHistories(ctx, requestID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list histories")
	}
	return nonNil(out), nil
}

// History loads one history record, which must belong to requestID.
func (s *Service) History(ctx context.Context, actor models.Actor, requestID, id int64) (*models.History, error) {
	if _, err := s.load(ctx, actor, requestID); err != nil {
		return nil, err
	}
	h, err := s.store.FindHistory(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "history not found")
	}
	if h.RequestID != requestID {
		return nil, dErrors.New(dErrors.CodeNotFound, "history not found")
	}
	return h, nil
}

// CreateHistory records progress on a request. Charity side only.
func (s *Service) CreateHistory(ctx context.Context, actor models.Actor, requestID int64, req *models.HistoryRequest) (*models.History, error) {
	if !actor.ByCharity {
		return nil, errCharityOnly
	}
	r, err := s.load(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	h := &models.History{RequestID: requestID, CreatedAt: requestcontext.Now(ctx)}
	req.ApplyTo(h)
	if err := s.store.CreateHistory(ctx, h); err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindHistoryCreated, r, "")
	return h, nil
}

func (s *Service) UpdateHistory(ctx context.Context, actor models.Actor, requestID, id int64, req *models.HistoryRequest) (*models.History, error) {
	if !actor.ByCharity {
		return nil, errCharityOnly
	}
	h, err := s.History(ctx, actor, requestID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(h)
	if err := s.store.UpdateHistory(ctx, h); err != nil {
		return nil, notFoundOr(err, "history not found")
	}
	s.requestChanged(ctx, requestID, amodels.KindHistoryUpdated)
	return h, nil
}

func (s *Service) DeleteHistory(ctx context.Context, actor models.Actor, requestID, id int64) error {
	if !actor.ByCharity {
		return errCharityOnly
	}
	if _, err := s.History(ctx, actor, requestID, id); err != nil {
		return err
	}
	if err := s.store.DeleteHistory(ctx, id); err != nil {
		return notFoundOr(err, "history not found")
	}
	s.requestChanged(ctx, requestID, amodels.KindHistoryDeleted)
	return nil
}

// --- child requests ---

func (s *Service) Children(ctx context.Context, actor models.Actor, requestID int64) ([]models.Child, error) {
	if _, err := s.load(ctx, actor, requestID); err != nil {
		return nil, err
	}
	out, err := s.store.ListChildren(ctx, requestID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list child requests")
	}
	return nonNil(out), nil
}

// Child loads one child request, which must belong to requestID.
func (s *Service) Child(ctx context.Context, actor models.Actor, requestID, id int64) (*models.Child, error) {
	if _, err := s.load(ctx, actor, requestID); err != nil {
		return nil, err
	}
	c, err := s.store.FindChild(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "child request not found")
	}
	if c.RequestID != requestID {
		return nil, dErrors.New(dErrors.CodeNotFound, "child request not found")
	}
	return c, nil
}

func (s *Service) CreateChild(ctx context.Context, actor models.Actor, requestID int64, req *models.ChildRequest) (*models.Child, error) {
	r, err := s.load(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	c := &models.Child{
		RequestID:          requestID,
		Stage:              models.StageSubmitted,
		IsCreatedByCharity: actor.ByCharity,
		CreatedAt:          requestcontext.Now(ctx),
	}
	req.ApplyTo(c)
	if err := s.store.CreateChild(ctx, c); err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindChildCreated, r, "")
	return c, nil
}

// editableChild applies the same rule to child requests that editable
// applies to requests, using the child's own stage and creator.
func (s *Service) editableChild(ctx context.Context, actor models.Actor, requestID, id int64) (*models.Child, error) {
	c, err := s.Child(ctx, actor, requestID, id)
	if err != nil {
		return nil, err
	}
	if actor.ByCharity {
		return c, nil
	}
	if c.IsCreatedByCharity {
		return nil, errNotOwnRequest
	}
	if c.Stage != models.StageSubmitted {
		return nil, errNotSubmitted
	}
	return c, nil
}

func (s *Service) UpdateChild(ctx context.Context, actor models.Actor, requestID, id int64, req *models.ChildRequest) (*models.Child, error) {
	c, err := s.editableChild(ctx, actor, requestID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(c)
	c.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.UpdateChild(ctx, c); err != nil {
		return nil, notFoundOr(err, "child request not found")
	}
	s.requestChanged(ctx, requestID, amodels.KindChildUpdated)
	return c, nil
}

func (s *Service) DeleteChild(ctx context.Context, actor models.Actor, requestID, id int64) error {
	if _, err := s.editableChild(ctx, actor, requestID, id); err != nil {
		return err
	}
	if err := s.store.DeleteChild(ctx, id); err != nil {
		return notFoundOr(err, "child request not found")
	}
	s.requestChanged(ctx, requestID, amodels.KindChildDeleted)
	return nil
}

func (s *Service) ChangeChildStage(ctx context.Context, actor models.Actor, requestID, id int64, stage string) (*models.Child, error) {
	if !actor.ByCharity {
		return nil, errCharityOnly
	}
	c, err := s.Child(ctx, actor, requestID, id)
	if err != nil {
		return nil, err
	}
	if c.Stage == stage {
		return c, nil
	}
	c.Stage = stage
	c.UpdatedAt = requestcontext.Now(ctx)
	if err := s.store.UpdateChild(ctx, c); err != nil {
		return nil, notFoundOr(err, "child request not found")
	}
	r, err := s.store.Find(ctx, requestID)
	if err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, amodels.KindChildStageChanged, r, stage)
	return c, nil
}

// --- search documents ---

// RequestDocuments builds the "requests" search index content.
func (s *Service) RequestDocuments(ctx context.Context) ([]search.RequestDocument, error) {
	requests, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	layer1Names, layer2Names, err := s.layerNames(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]search.RequestDocument, 0, len(requests))
	for _, r := range requests {
		doc := search.RequestDocument{
			ID:          r.ID,
			Layer1:      layer1Names[r.Layer1ID],
			Layer2:      layer2Names[r.Layer2ID],
			Title:       r.Title,
			Description: r.Description,
		}
		b, err := s.beneficiaries.Detail(ctx, r.BeneficiaryID)
		if err != nil {
			return nil, err
		}
		doc.BeneficiaryID = b.BeneficiaryID
		doc.IdentificationNumber = b.IdentificationNumber
		doc.PhoneNumber = deref(b.PhoneNumber)
		doc.Email = deref(b.Email)
		doc.FullName = b.Information.FullName()
		if b.Address != nil {
			doc.ProvinceName = b.Address.ProvinceName
			doc.CityName = b.Address.CityName
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *Service) layerNames(ctx context.Context) (map[int64]string, map[int64]string, error) {
	l1, err := s.store.ListLayer1(ctx)
	if err != nil {
		return nil, nil, err
	}
	l2, err := s.store.ListLayer2(ctx, 0)
	if err != nil {
		return nil, nil, err
	}
	names1 := make(map[int64]string, len(l1))
	for _, l := range l1 {
		names1[l.ID] = l.Name
	}
	names2 := make(map[int64]string, len(l2))
	for _, l := range l2 {
		names2[l.ID] = l.Name
	}
	return names1, names2, nil
}

// --- helpers ---

func (s *Service) announce(ctx context.Context, kind amodels.Kind, r *models.Request, stage string) {
	s.announcer.Enqueue(ctx, amodels.Job{
		Kind:          kind,
		RequestID:     r.ID,
		BeneficiaryID: r.BeneficiaryID,
		CharityID:     r.CharityID,
		Stage:         stage,
	})
}

// requestChanged invalidates and announces a change to a request's sub-record.
func (s *Service) requestChanged(ctx context.Context, requestID int64, kind amodels.Kind) {
	r, err := s.store.Find(ctx, requestID)
	if err != nil {
		s.logger.WarnContext(ctx, "request vanished after sub-record change", "request_id", requestID, "error", err)
		return
	}
	s.cache.RequestChanged(ctx, r.ID, r.BeneficiaryID)
	s.announce(ctx, kind, r, "")
}

func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	return v, err
}

func lookupErr(err error, field string, id int64) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return invalidPK(field, id)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+field)
}

func invalidPK(field string, id int64) error {
	return dErrors.New(dErrors.CodeValidation, field+`: Invalid pk "`+strconv.FormatInt(id, 10)+`" - object does not exist.`)
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, msg)
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "request store error")
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
