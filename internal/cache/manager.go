// Package cache implements cache-aside reads with tag-based invalidation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"charity/internal/platform/metrics"
)

var tracer = otel.Tracer("charity/internal/cache")

// Manager wraps a Backend with a default TTL, JSON encoding and logging.
// Backend failures never fail a read; they are logged and treated as a miss.
type Manager struct {
	backend Backend
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

func WithMetrics(metrics *metrics.Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

func New(backend Backend, ttl time.Duration, opts ...Option) *Manager {
	m := &Manager{backend: backend, ttl: ttl, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fetch returns the cached value under key, or calls load and caches its result under tags.
func Fetch[T any](ctx context.Context, m *Manager, key string, tags []string, load func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, "cache.Fetch", trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	var zero T
	if m == nil {
		return load(ctx)
	}

	raw, err := m.backend.Get(ctx, key)
	switch {
	case err == nil:
		var cached T
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			m.metrics.CacheHit()
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
		m.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
	case errors.Is(err, ErrMiss):
		m.metrics.CacheMiss()
	default:
		m.metrics.CacheError()
		m.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		m.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return value, nil
	}
	if err := m.backend.Set(ctx, key, encoded, m.ttl, tags); err != nil {
		m.metrics.CacheError()
		m.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// Invalidate drops every entry registered under the given tags.
func (m *Manager) Invalidate(ctx context.Context, tags ...string) {
	if m == nil || len(tags) == 0 {
		return
	}
	if err := m.backend.InvalidateTags(ctx, tags...); err != nil {
		m.metrics.CacheError()
		m.logger.WarnContext(ctx, "cache invalidation failed", "tags", tags, "error", err)
	}
}

// BeneficiaryChanged drops the beneficiary's detail entry and all beneficiary lists.
func (m *Manager) BeneficiaryChanged(ctx context.Context, beneficiaryID int64) {
	m.Invalidate(ctx, TagBeneficiaryDetail(beneficiaryID), TagBeneficiaryList)
}

// RequestChanged drops the request's detail entry and every list that may contain it.
func (m *Manager) RequestChanged(ctx context.Context, requestID, beneficiaryID int64) {
	m.Invalidate(ctx,
		TagRequestDetail(requestID),
		TagRequestList,
		TagBeneficiaryRequests(beneficiaryID),
		TagBeneficiaryDetail(beneficiaryID),
	)
}

// AnnouncementsChanged drops the beneficiary's announcement lists.
func (m *Manager) AnnouncementsChanged(ctx context.Context, beneficiaryID int64) {
	m.Invalidate(ctx, TagBeneficiaryAnnouncements(beneficiaryID))
}
