// Package queue hands announcement jobs off the request path, either to Kafka
// or to an in-process goroutine.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"charity/internal/announcement/models"
	"charity/internal/platform/kafka/producer"
	"charity/internal/platform/metrics"
)

// KindHeader carries the job kind so consumers can route without decoding.
const KindHeader = "kind"

const publishTimeout = 5 * time.Second

// Publisher writes one record to Kafka.
type Publisher interface {
	Publish(ctx context.Context, msg producer.Message) error
}

// Recorder turns a job into an announcement.
type Recorder interface {
	Record(ctx context.Context, job models.Job) error
}

// Kafka publishes jobs as JSON keyed by request id, so jobs for one request
// stay ordered within a partition.
type Kafka struct {
	publisher Publisher
	topic     string
	metrics   *metrics.Metrics
	logger    *slog.Logger
	wg        sync.WaitGroup
}

func NewKafka(publisher Publisher, topic string, m *metrics.Metrics, logger *slog.Logger) *Kafka {
	if logger == nil {
		logger = slog.Default()
	}
	return &Kafka{publisher: publisher, topic: topic, metrics: m, logger: logger}
}

// Enqueue publishes in the background. The caller's cancellation does not
// abort the publish.
func (q *Kafka) Enqueue(ctx context.Context, job models.Job) {
	value, err := json.Marshal(job)
	if err != nil {
		q.logger.ErrorContext(ctx, "failed to encode announcement job", "kind", job.Kind, "error", err)
		return
	}
	msg := producer.Message{
		Topic:   q.topic,
		Key:     []byte(strconv.FormatInt(job.RequestID, 10)),
		Value:   value,
		Headers: map[string]string{KindHeader: string(job.Kind)},
	}
	q.metrics.JobEnqueued(string(job.Kind))

	ctx = context.WithoutCancel(ctx)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		if err := q.publisher.Publish(ctx, msg); err != nil {
			q.logger.ErrorContext(ctx, "failed to enqueue announcement",
				"kind", job.Kind,
				"request_id", job.RequestID,
				"error", err,
			)
		}
	}()
}

// Wait blocks until every started publish has finished.
func (q *Kafka) Wait() {
	q.wg.Wait()
}

// Inline records jobs in a goroutine of this process. Used when no brokers
// are configured.
type Inline struct {
	recorder Recorder
	metrics  *metrics.Metrics
	logger   *slog.Logger
	wg       sync.WaitGroup
}

func NewInline(recorder Recorder, m *metrics.Metrics, logger *slog.Logger) *Inline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inline{recorder: recorder, metrics: m, logger: logger}
}

func (q *Inline) Enqueue(ctx context.Context, job models.Job) {
	q.metrics.JobEnqueued(string(job.Kind))
	ctx = context.WithoutCancel(ctx)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		err := q.recorder.Record(ctx, job)
		q.metrics.JobProcessed(string(job.Kind), err == nil)
		if err != nil {
			q.logger.ErrorContext(ctx, "failed to record announcement",
				"kind", job.Kind,
				"request_id", job.RequestID,
				"error", err,
			)
		}
	}()
}

// Wait blocks until every started job has been recorded.
func (q *Inline) Wait() {
	q.wg.Wait()
}
