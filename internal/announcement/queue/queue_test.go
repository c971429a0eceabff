package queue_test

//go:generate mockgen -source=queue.go -destination=mocks/queue_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"charity/internal/announcement/models"
	"charity/internal/announcement/queue"
	"charity/internal/announcement/queue/mocks"
	"charity/internal/platform/kafka/producer"
	"charity/internal/platform/metrics"
)

func TestKafkaPublishesKeyedByRequest(t *testing.T) {
	publisher := mocks.NewMockPublisher(gomock.NewController(t))
	var got producer.Message
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg producer.Message) error {
		got = msg
		return nil
	})

	q := queue.NewKafka(publisher, "charity.announcements", nil, slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())
	q.Enqueue(ctx, models.Job{Kind: models.KindRequestCreated, RequestID: 12, BeneficiaryID: 3})
	cancel()
	q.Wait()

	assert.Equal(t, "charity.announcements", got.Topic)
	assert.Equal(t, "12", string(got.Key))
	assert.Equal(t, "request_created", got.Headers[queue.KindHeader])
	var job models.Job
	require.NoError(t, json.Unmarshal(got.Value, &job))
	assert.Equal(t, int64(3), job.BeneficiaryID)
}

func TestKafkaPublishFailureIsSwallowed(t *testing.T) {
	publisher := mocks.NewMockPublisher(gomock.NewController(t))
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	q := queue.NewKafka(publisher, "t", nil, slog.New(slog.DiscardHandler))
	q.Enqueue(context.Background(), models.Job{Kind: models.KindRequestUpdated, RequestID: 1})
	q.Wait()
}

func TestInlineRecordsAndCounts(t *testing.T) {
	recorder := mocks.NewMockRecorder(gomock.NewController(t))
	recorder.EXPECT().Record(gomock.Any(), models.Job{Kind: models.KindHistoryCreated, RequestID: 5}).Return(nil)
	recorder.EXPECT().Record(gomock.Any(), models.Job{Kind: models.KindHistoryDeleted, RequestID: 5}).Return(errors.New("fk"))

	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	q := queue.NewInline(recorder, m, slog.New(slog.DiscardHandler))
	q.Enqueue(context.Background(), models.Job{Kind: models.KindHistoryCreated, RequestID: 5})
	q.Enqueue(context.Background(), models.Job{Kind: models.KindHistoryDeleted, RequestID: 5})
	q.Wait()

	assert.Equal(t, 1.0, promtest.ToFloat64(m.JobsEnqueued.WithLabelValues("history_created")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.JobsProcessed.WithLabelValues("history_created", "ok")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.JobsProcessed.WithLabelValues("history_deleted", "failed")))
}
