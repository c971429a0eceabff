package search

import (
	"context"
	"log/slog"

	"charity/internal/platform/metrics"
	"charity/pkg/platform/circuit"
)

// Searcher resolves a free-text query to primary keys.
type Searcher interface {
	SearchIDs(ctx context.Context, index, query string) ([]int64, error)
}

// Filter turns an optional search term into an id restriction. Any failure
// degrades to "no restriction". Repeated failures open a breaker so a dead
// search backend is not hit on every listing.
type Filter struct {
	searcher Searcher
	breaker  *circuit.Breaker
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type FilterOption func(*Filter)

func WithBreaker(b *circuit.Breaker) FilterOption {
	return func(f *Filter) { f.breaker = b }
}

// NewFilter accepts a nil searcher, in which case every lookup falls back.
func NewFilter(searcher Searcher, logger *slog.Logger, m *metrics.Metrics, opts ...FilterOption) *Filter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	f := &Filter{searcher: searcher, logger: logger, metrics: m}
	for _, opt := range opts {
		opt(f)
	}
	if f.breaker == nil {
		f.breaker = circuit.New("search")
	}
	return f
}

// IDs returns the matching ids and true, or nil and false when the caller
// should run the unfiltered query.
func (f *Filter) IDs(ctx context.Context, index, query string) ([]int64, bool) {
	if f == nil || f.searcher == nil {
		f.fallback(ctx, index, nil)
		return nil, false
	}
	if !f.breaker.Allow() {
		f.fallback(ctx, index, nil)
		return nil, false
	}
	ids, err := f.searcher.SearchIDs(ctx, index, query)
	if err != nil {
		if _, change := f.breaker.RecordFailure(); change.Opened {
			f.logger.WarnContext(ctx, "search circuit opened", "breaker", f.breaker.Name())
		}
		f.fallback(ctx, index, err)
		return nil, false
	}
	if _, change := f.breaker.RecordSuccess(); change.Closed {
		f.logger.InfoContext(ctx, "search circuit closed", "breaker", f.breaker.Name())
	}
	return ids, true
}

func (f *Filter) fallback(ctx context.Context, index string, err error) {
	if f == nil {
		return
	}
	f.metrics.SearchFallback(index)
	if err != nil {
		f.logger.WarnContext(ctx, "search unavailable, using unfiltered query", "index", index, "error", err)
	}
}
