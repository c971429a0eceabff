// Package search delegates free-text queries to a Meilisearch instance and
// keeps its indexes in sync with the database.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"charity/internal/platform/config"
)

const (
	IndexBeneficiaries = "beneficiaries"
	IndexRequests      = "requests"

	maxHits = 1000
)

var tracer = otel.Tracer("charity/internal/search")

// Client wraps the Meilisearch SDK.
type Client struct {
	ms *meilisearch.Client
}

// NewClient returns nil when no search URL is configured.
func NewClient(cfg config.SearchConfig) *Client {
	if cfg.URL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{ms: meilisearch.NewClient(meilisearch.ClientConfig{
		Host:    cfg.URL,
		APIKey:  cfg.APIKey,
		Timeout: timeout,
	})}
}

// SearchIDs returns the primary keys of up to 1000 hits for query.
func (c *Client) SearchIDs(ctx context.Context, index, query string) ([]int64, error) {
	ctx, span := tracer.Start(ctx, "search.SearchIDs")
	defer span.End()
	span.SetAttributes(attribute.String("search.index", index))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := c.ms.Index(index).Search(query, &meilisearch.SearchRequest{
		Limit:                maxHits,
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return nil, fmt.Errorf("search %s: %w", index, err)
	}
	ids := make([]int64, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		doc, ok := hit.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := toID(doc["id"]); ok {
			ids = append(ids, id)
		}
	}
	span.SetAttributes(attribute.Int("search.hits", len(ids)))
	return ids, nil
}

func toID(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}

// Replace clears index and uploads docs in batches, waiting for each task.
func (c *Client) Replace(ctx context.Context, index string, docs []any, batchSize int) error {
	ctx, span := tracer.Start(ctx, "search.Replace")
	defer span.End()
	span.SetAttributes(attribute.String("search.index", index), attribute.Int("search.documents", len(docs)))

	idx := c.ms.Index(index)
	task, err := idx.DeleteAllDocuments()
	if err != nil {
		return fmt.Errorf("clear %s: %w", index, err)
	}
	if err := c.wait(task.TaskUID); err != nil {
		return fmt.Errorf("clear %s: %w", index, err)
	}
	for start := 0; start < len(docs); start += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+batchSize, len(docs))
		task, err := idx.AddDocuments(docs[start:end], "id")
		if err != nil {
			return fmt.Errorf("add documents to %s: %w", index, err)
		}
		if err := c.wait(task.TaskUID); err != nil {
			return fmt.Errorf("add documents to %s: %w", index, err)
		}
	}
	return nil
}

func (c *Client) wait(taskUID int64) error {
	task, err := c.ms.WaitForTask(taskUID)
	if err != nil {
		return err
	}
	if task.Status == meilisearch.TaskStatusFailed {
		return fmt.Errorf("task %d failed: %s", taskUID, task.Error.Message)
	}
	return nil
}

// Health reports whether the search server answers.
func (c *Client) Health(_ context.Context) error {
	if !c.ms.IsHealthy() {
		return fmt.Errorf("search server is unhealthy")
	}
	return nil
}
