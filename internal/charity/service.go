package charity

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	dErrors "charity/pkg/domain-errors"
	"charity/pkg/platform/sentinel"
	"charity/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, c *Charity) error
	FindByID(ctx context.Context, id int64) (*Charity, error)
	FindByUserID(ctx context.Context, userID int64) (*Charity, error)
	Update(ctx context.Context, c *Charity) error
	ListWorkfields(ctx context.Context, charityID int64) ([]Workfield, error)
	CreateWorkfield(ctx context.Context, w *Workfield) error
	DeleteWorkfield(ctx context.Context, charityID, id int64) error
}

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// CreateForUser creates the charity row backing a freshly registered account.
func (s *Service) CreateForUser(ctx context.Context, userID int64, name string) (*Charity, error) {
	c := &Charity{
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		CreatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.Create(ctx, c); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "charity already exists for this user")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create charity")
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Charity, error) {
	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, wrapCharityErr(err)
	}
	return c, nil
}

// ForUser returns the charity owned by the given account.
func (s *Service) ForUser(ctx context.Context, userID int64) (*Charity, error) {
	c, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, wrapCharityErr(err)
	}
	return c, nil
}

// Exists reports whether a charity with id exists.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := s.store.FindByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return false, nil
	}
	return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load charity")
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, req *UpdateProfileRequest) (*Charity, error) {
	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, wrapCharityErr(err)
	}
	req.apply(c, requestcontext.Now(ctx))
	if err := s.store.Update(ctx, c); err != nil {
		return nil, wrapCharityErr(err)
	}
	return c, nil
}

func (s *Service) Workfields(ctx context.Context, charityID int64) ([]Workfield, error) {
	out, err := s.store.ListWorkfields(ctx, charityID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list workfields")
	}
	if out == nil {
		out = []Workfield{}
	}
	return out, nil
}

func (s *Service) AddWorkfield(ctx context.Context, charityID int64, req *CreateWorkfieldRequest) (*Workfield, error) {
	w := &Workfield{
		CharityID:   charityID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   requestcontext.Now(ctx),
	}
	if err := s.store.CreateWorkfield(ctx, w); err != nil {
		return nil, wrapCharityErr(err)
	}
	return w, nil
}

func (s *Service) RemoveWorkfield(ctx context.Context, charityID, id int64) error {
	if err := s.store.DeleteWorkfield(ctx, charityID, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "workfield not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete workfield")
	}
	return nil
}

func wrapCharityErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "charity not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "charity store error")
}
