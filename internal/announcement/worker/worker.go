// Package worker consumes announcement jobs from Kafka and records them.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"charity/internal/announcement/models"
	"charity/internal/announcement/queue"
	"charity/internal/platform/kafka/consumer"
	"charity/internal/platform/metrics"
)

// Kinds lists every job kind the worker records.
var Kinds = []models.Kind{
	models.KindRequestCreated, models.KindRequestUpdated, models.KindRequestDeleted,
	models.KindHistoryCreated, models.KindHistoryUpdated, models.KindHistoryDeleted,
	models.KindChildCreated, models.KindChildUpdated, models.KindChildDeleted,
	models.KindOnetimeUpdated, models.KindOnetimeDeleted,
	models.KindRecurringUpdated, models.KindRecurringDeleted,
	models.KindStageChanged, models.KindChildStageChanged,
}

type Worker struct {
	recorder queue.Recorder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func New(recorder queue.Recorder, m *metrics.Metrics, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{recorder: recorder, metrics: m, logger: logger}
}

// Handle decodes one job and records it. Errors are returned for logging;
// the consumer commits the record either way.
func (w *Worker) Handle(ctx context.Context, msg *consumer.Message) error {
	var job models.Job
	if err := json.Unmarshal(msg.Value, &job); err != nil {
		w.metrics.JobProcessed("malformed", false)
		return fmt.Errorf("decode announcement job at offset %d: %w", msg.Offset, err)
	}
	err := w.recorder.Record(ctx, job)
	w.metrics.JobProcessed(string(job.Kind), err == nil)
	if err != nil {
		return fmt.Errorf("record %s for request %d: %w", job.Kind, job.RequestID, err)
	}
	w.logger.DebugContext(ctx, "announcement recorded", "kind", job.Kind, "request_id", job.RequestID)
	return nil
}

// Router dispatches on the kind header. Records of unknown kinds are
// skipped and committed.
func (w *Worker) Router() *consumer.Router {
	r := consumer.NewRouter(queue.KindHeader, w.logger, nil)
	for _, kind := range Kinds {
		r.Register(string(kind), w)
	}
	return r
}
