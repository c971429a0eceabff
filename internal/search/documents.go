package search

import (
	"context"
	"fmt"
	"log/slog"
)

const syncBatchSize = 500

type BeneficiaryDocument struct {
	ID                   int64    `json:"id"`
	FullName             string   `json:"full_name"`
	FirstName            string   `json:"first_name"`
	LastName             string   `json:"last_name"`
	IdentificationNumber string   `json:"identification_number"`
	BeneficiaryID        string   `json:"beneficiary_id"`
	PhoneNumber          string   `json:"phone_number"`
	Email                string   `json:"email"`
	Province             string   `json:"province"`
	City                 string   `json:"city"`
	Tags                 []string `json:"tags"`
}

type RequestDocument struct {
	ID                   int64  `json:"id"`
	Layer1               string `json:"layer1"`
	Layer2               string `json:"layer2"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	FullName             string `json:"full_name"`
	BeneficiaryID        string `json:"beneficiary_id"`
	IdentificationNumber string `json:"identification_number"`
	PhoneNumber          string `json:"phone_number"`
	Email                string `json:"email"`
	ProvinceName         string `json:"province_name"`
	CityName             string `json:"city_name"`
}

// Indexer replaces the content of an index.
type Indexer interface {
	Replace(ctx context.Context, index string, docs []any, batchSize int) error
}

type BeneficiarySource interface {
	BeneficiaryDocuments(ctx context.Context) ([]BeneficiaryDocument, error)
}

type RequestSource interface {
	RequestDocuments(ctx context.Context) ([]RequestDocument, error)
}

// Syncer rebuilds indexes from their sources.
type Syncer struct {
	indexer       Indexer
	beneficiaries BeneficiarySource
	requests      RequestSource
	logger        *slog.Logger
}

func NewSyncer(indexer Indexer, beneficiaries BeneficiarySource, requests RequestSource, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Syncer{indexer: indexer, beneficiaries: beneficiaries, requests: requests, logger: logger}
}

// Sync rebuilds "beneficiaries", "requests" or both ("all").
func (s *Syncer) Sync(ctx context.Context, which string) error {
	switch which {
	case IndexBeneficiaries:
		return s.syncBeneficiaries(ctx)
	case IndexRequests:
		return s.syncRequests(ctx)
	case "all":
		if err := s.syncBeneficiaries(ctx); err != nil {
			return err
		}
		return s.syncRequests(ctx)
	default:
		return fmt.Errorf("unknown index %q", which)
	}
}

func (s *Syncer) syncBeneficiaries(ctx context.Context) error {
	docs, err := s.beneficiaries.BeneficiaryDocuments(ctx)
	if err != nil {
		return fmt.Errorf("load beneficiaries: %w", err)
	}
	if err := s.indexer.Replace(ctx, IndexBeneficiaries, toAny(docs), syncBatchSize); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "search index synced", "index", IndexBeneficiaries, "documents", len(docs))
	return nil
}

func (s *Syncer) syncRequests(ctx context.Context) error {
	docs, err := s.requests.RequestDocuments(ctx)
	if err != nil {
		return fmt.Errorf("load requests: %w", err)
	}
	if err := s.indexer.Replace(ctx, IndexRequests, toAny(docs), syncBatchSize); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "search index synced", "index", IndexRequests, "documents", len(docs))
	return nil
}

func toAny[T any](in []T) []any {
	out := make([]any, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
