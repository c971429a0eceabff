//go:build integration

package kafka_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"charity/internal/platform/kafka/consumer"
	"charity/internal/platform/kafka/producer"
	"charity/pkg/testutil/containers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduceConsumeRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	kafka := containers.GetManager().GetKafka(t)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	p, err := producer.New(kafka.Brokers, nil)
	require.NoError(t, err)
	defer p.Close()

	topic := "announcement-jobs-it"
	require.NoError(t, p.EnsureTopic(ctx, topic, 1, 1))
	require.NoError(t, p.EnsureTopic(ctx, topic, 1, 1), "second call must be idempotent")

	require.NoError(t, p.Publish(ctx, producer.Message{
		Topic:   topic,
		Key:     []byte("42"),
		Value:   []byte(`{"request_id":42}`),
		Headers: map[string]string{"kind": "request_created"},
	}))

	var (
		mu       sync.Mutex
		received *consumer.Message
	)
	done := make(chan struct{})
	handler := consumer.HandlerFunc(func(_ context.Context, msg *consumer.Message) error {
		mu.Lock()
		defer mu.Unlock()
		if received == nil {
			received = msg
			close(done)
		}
		return nil
	})
	c, err := consumer.New(consumer.Config{Brokers: kafka.Brokers, GroupID: "it-group", Topics: []string{topic}}, handler, nil)
	require.NoError(t, err)

	runCtx, stop := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(runCtx) }()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("timed out waiting for message")
	}
	stop()
	require.NoError(t, <-errCh)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "42", string(received.Key))
	assert.Equal(t, "request_created", received.Headers["kind"])
	assert.JSONEq(t, `{"request_id":42}`, string(received.Value))
}
