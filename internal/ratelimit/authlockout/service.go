// Package authlockout throttles repeated failed logins per account.
package authlockout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"charity/internal/platform/metrics"
	"charity/internal/ratelimit/models"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/requestcontext"
)

type Store interface {
	Get(ctx context.Context, key string) (*models.Lockout, error)
	Save(ctx context.Context, rec *models.Lockout, ttl time.Duration) error
	Clear(ctx context.Context, key string) error
}

// Config bounds failed attempts: Attempts failures within Window lock the
// key for LockFor.
type Config struct {
	Attempts int
	Window   time.Duration
	LockFor  time.Duration
}

func DefaultConfig() Config {
	return Config{Attempts: 5, Window: 15 * time.Minute, LockFor: 15 * time.Minute}
}

type Service struct {
	store   Store
	cfg     Config
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type Option func(*Service)

func WithConfig(cfg Config) Option {
	return func(s *Service) {
		if cfg.Attempts > 0 {
			s.cfg = cfg
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		cfg:    DefaultConfig(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check returns a rate_limited error while the key is locked.
func (s *Service) Check(ctx context.Context, scope, identifier string) error {
	rec, err := s.store.Get(ctx, models.Key(scope, identifier))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load lockout")
	}
	now := requestcontext.Now(ctx)
	if rec == nil || !rec.LockedAt(now) {
		return nil
	}
	retry := int(rec.LockedUntil.Sub(now).Round(time.Second).Seconds())
	return dErrors.New(dErrors.CodeRateLimited,
		fmt.Sprintf("Too many failed login attempts. Try again in %d seconds.", max(retry, 1)))
}

// RecordFailure counts a failed login and locks the key once the window's
// budget is spent.
func (s *Service) RecordFailure(ctx context.Context, scope, identifier string) error {
	key := models.Key(scope, identifier)
	rec, err := s.store.Get(ctx, key)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load lockout")
	}
	now := requestcontext.Now(ctx)
	if rec == nil || now.Sub(rec.LastFailureAt) > s.cfg.Window {
		rec = &models.Lockout{Key: key}
	}
	rec.FailureCount++
	rec.LastFailureAt = now

	ttl := s.cfg.Window
	if rec.FailureCount >= s.cfg.Attempts {
		until := now.Add(s.cfg.LockFor)
		rec.LockedUntil = &until
		rec.FailureCount = 0
		ttl = max(ttl, s.cfg.LockFor)
		s.metrics.LoginLocked(scope)
		s.logger.WarnContext(ctx, "login locked", "scope", scope, "locked_until", until)
	}
	if err := s.store.Save(ctx, rec, ttl); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save lockout")
	}
	return nil
}

// Clear forgets failures after a successful login.
func (s *Service) Clear(ctx context.Context, scope, identifier string) error {
	if err := s.store.Clear(ctx, models.Key(scope, identifier)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear lockout")
	}
	return nil
}
