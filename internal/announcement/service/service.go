// Package service records announcements from queued jobs and serves them to
// beneficiaries and charities.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"charity/internal/announcement/models"
	"charity/internal/cache"
	rmodels "charity/internal/request/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/sentinel"
	"charity/pkg/requestcontext"
)

type Store interface {
	CreateForRequest(ctx context.Context, a *models.ForRequest) error
	FindForRequest(ctx context.Context, id int64) (*models.ForRequest, error)
	UpdateForRequest(ctx context.Context, a *models.ForRequest) error
	DeleteForRequest(ctx context.Context, id int64) error
	ListForRequest(ctx context.Context, requestID int64) ([]models.ForRequest, error)
	ListUnseenForRequests(ctx context.Context, beneficiaryID int64, since time.Time) ([]models.ForRequest, error)

	CreateToBeneficiary(ctx context.Context, a *models.ToBeneficiary) error
	FindToBeneficiary(ctx context.Context, id int64) (*models.ToBeneficiary, error)
	MarkToBeneficiarySeen(ctx context.Context, id int64) error
	ListToBeneficiary(ctx context.Context, beneficiaryID int64) ([]models.ToBeneficiary, error)
	ListUnseenToBeneficiary(ctx context.Context, beneficiaryID int64, since time.Time) ([]models.ToBeneficiary, error)
}

// Requests resolves a request the caller is allowed to see.
type Requests interface {
	Get(ctx context.Context, actor rmodels.Actor, id int64) (*rmodels.Detail, error)
}

type Service struct {
	store    Store
	requests Requests
	cache    *cache.Manager
	logger   *slog.Logger
}

type Option func(*Service)

func WithCache(c *cache.Manager) Option {
	return func(s *Service) { s.cache = c }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(store Store, requests Requests, opts ...Option) *Service {
	s := &Service{
		store:    store,
		requests: requests,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var errNotYours = dErrors.New(dErrors.CodeForbidden, "You do not have permission to perform this action.")

// Record turns a job into its announcement. Request deletions go to the
// beneficiary, everything else is attached to the request.
func (s *Service) Record(ctx context.Context, job models.Job) error {
	title, desc, err := job.Text()
	if err != nil {
		return err
	}
	var charityID *int64
	if job.CharityID != 0 {
		charityID = &job.CharityID
	}
	now := requestcontext.Now(ctx)

	if job.ToBeneficiary() {
		err = s.store.CreateToBeneficiary(ctx, &models.ToBeneficiary{
			BeneficiaryID: job.BeneficiaryID,
			CharityID:     charityID,
			Title:         title,
			Description:   desc,
			CreatedAt:     now,
		})
	} else {
		err = s.store.CreateForRequest(ctx, &models.ForRequest{
			RequestID:     job.RequestID,
			BeneficiaryID: job.BeneficiaryID,
			CharityID:     charityID,
			Title:         title,
			Description:   desc,
			CreatedAt:     now,
		})
	}
	if err != nil {
		return err
	}
	s.cache.AnnouncementsChanged(ctx, job.BeneficiaryID)
	return nil
}

func (s *Service) since(ctx context.Context) time.Time {
	return requestcontext.Now(ctx).Add(-models.RecentWindow)
}

// --- beneficiary side ---

// Unseen lists the beneficiary's unseen announcements from the recent window.
func (s *Service) Unseen(ctx context.Context, beneficiaryID int64) ([]models.ToBeneficiary, error) {
	key := cache.Key(cache.TagBeneficiaryAnnouncements(beneficiaryID), "direct")
	return cache.Fetch(ctx, s.cache, key, []string{cache.TagBeneficiaryAnnouncements(beneficiaryID)},
		func(ctx context.Context) ([]models.ToBeneficiary, error) {
			out, err := s.store.ListUnseenToBeneficiary(ctx, beneficiaryID, s.since(ctx))
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list announcements")
			}
			return nonNil(out), nil
		})
}

// Open returns one of the viewer's beneficiary's announcements. It is marked
// seen only when the beneficiary itself reads it.
func (s *Service) Open(ctx context.Context, viewer rmodels.Actor, id int64) (*models.ToBeneficiary, error) {
	a, err := s.store.FindToBeneficiary(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "announcement not found")
	}
	if a.BeneficiaryID != viewer.BeneficiaryID {
		return nil, errNotYours
	}
	if !a.Seen && !viewer.ByCharity {
		if err := s.store.MarkToBeneficiarySeen(ctx, id); err != nil {
			return nil, notFoundOr(err, "announcement not found")
		}
		a.Seen = true
		s.cache.AnnouncementsChanged(ctx, a.BeneficiaryID)
	}
	return a, nil
}

// UnseenOnRequests lists unseen announcements on the beneficiary's requests
// from the recent window.
func (s *Service) UnseenOnRequests(ctx context.Context, beneficiaryID int64) ([]models.ForRequest, error) {
	key := cache.Key(cache.TagBeneficiaryAnnouncements(beneficiaryID), "requests")
	return cache.Fetch(ctx, s.cache, key, []string{cache.TagBeneficiaryAnnouncements(beneficiaryID)},
		func(ctx context.Context) ([]models.ForRequest, error) {
			out, err := s.store.ListUnseenForRequests(ctx, beneficiaryID, s.since(ctx))
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list request announcements")
			}
			return nonNil(out), nil
		})
}

// OpenOnRequest returns an announcement on one of the viewer's beneficiary's
// requests. Charity-side viewers must also see the request; only the
// beneficiary marks it seen.
func (s *Service) OpenOnRequest(ctx context.Context, viewer rmodels.Actor, id int64) (*models.ForRequest, error) {
	a, err := s.store.FindForRequest(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "announcement not found")
	}
	if a.BeneficiaryID != viewer.BeneficiaryID {
		return nil, errNotYours
	}
	if viewer.ByCharity {
		if _, err := s.requests.Get(ctx, viewer, a.RequestID); err != nil {
			return nil, err
		}
		return a, nil
	}
	if !a.Seen {
		a.Seen = true
		if err := s.store.UpdateForRequest(ctx, a); err != nil {
			return nil, notFoundOr(err, "announcement not found")
		}
		s.cache.AnnouncementsChanged(ctx, a.BeneficiaryID)
	}
	return a, nil
}

// --- charity side ---

func (s *Service) ListForRequest(ctx context.Context, actor rmodels.Actor, requestID int64) ([]models.ForRequest, error) {
	if _, err := s.requests.Get(ctx, actor, requestID); err != nil {
		return nil, err
	}
	out, err := s.store.ListForRequest(ctx, requestID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list request announcements")
	}
	return nonNil(out), nil
}

// CreateForRequest writes an announcement on a request by hand.
func (s *Service) CreateForRequest(ctx context.Context, actor rmodels.Actor, requestID int64, req *models.AnnouncementRequest) (*models.ForRequest, error) {
	r, err := s.requests.Get(ctx, actor, requestID)
	if err != nil {
		return nil, err
	}
	a := &models.ForRequest{
		RequestID:     requestID,
		BeneficiaryID: r.BeneficiaryID,
		CharityID:     charityOf(actor),
		Title:         req.Title,
		Description:   req.Description,
		CreatedAt:     requestcontext.Now(ctx),
	}
	if err := s.store.CreateForRequest(ctx, a); err != nil {
		return nil, notFoundOr(err, "request not found")
	}
	s.cache.AnnouncementsChanged(ctx, r.BeneficiaryID)
	return a, nil
}

// GetForRequest loads a request announcement whose request the actor can see.
func (s *Service) GetForRequest(ctx context.Context, actor rmodels.Actor, id int64) (*models.ForRequest, error) {
	a, err := s.store.FindForRequest(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "announcement not found")
	}
	if _, err := s.requests.Get(ctx, actor, a.RequestID); err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "announcement not found")
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) UpdateForRequest(ctx context.Context, actor rmodels.Actor, id int64, req *models.AnnouncementRequest) (*models.ForRequest, error) {
	a, err := s.GetForRequest(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	a.Title = req.Title
	a.Description = req.Description
	if err := s.store.UpdateForRequest(ctx, a); err != nil {
		return nil, notFoundOr(err, "announcement not found")
	}
	s.cache.AnnouncementsChanged(ctx, a.BeneficiaryID)
	return a, nil
}

func (s *Service) DeleteForRequest(ctx context.Context, actor rmodels.Actor, id int64) error {
	a, err := s.GetForRequest(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteForRequest(ctx, id); err != nil {
		return notFoundOr(err, "announcement not found")
	}
	s.cache.AnnouncementsChanged(ctx, a.BeneficiaryID)
	return nil
}

// ListToBeneficiary lists every announcement sent to a beneficiary, seen or not.
func (s *Service) ListToBeneficiary(ctx context.Context, beneficiaryID int64) ([]models.ToBeneficiary, error) {
	out, err := s.store.ListToBeneficiary(ctx, beneficiaryID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list announcements")
	}
	return nonNil(out), nil
}

func (s *Service) CreateToBeneficiary(ctx context.Context, actor rmodels.Actor, beneficiaryID int64, req *models.AnnouncementRequest) (*models.ToBeneficiary, error) {
	a := &models.ToBeneficiary{
		BeneficiaryID: beneficiaryID,
		CharityID:     charityOf(actor),
		Title:         req.Title,
		Description:   req.Description,
		CreatedAt:     requestcontext.Now(ctx),
	}
	if err := s.store.CreateToBeneficiary(ctx, a); err != nil {
		return nil, notFoundOr(err, "beneficiary not found")
	}
	s.cache.AnnouncementsChanged(ctx, beneficiaryID)
	s.logger.InfoContext(ctx, "announcement sent",
		"beneficiary_id", beneficiaryID,
		"charity_id", actor.CharityID,
	)
	return a, nil
}

// charityOf is nil for staff.
func charityOf(actor rmodels.Actor) *int64 {
	if actor.CharityID == 0 {
		return nil
	}
	id := actor.CharityID
	return &id
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "announcement store error")
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
