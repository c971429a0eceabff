package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/ratelimit/models"
	"charity/pkg/requestcontext"
)

func TestInMemoryStoreExpires(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), start)
	s := NewInMemory()

	require.NoError(t, s.Save(ctx, &models.Lockout{Key: "k", FailureCount: 1}, time.Minute))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.FailureCount)

	got.FailureCount = 9
	again, _ := s.Get(ctx, "k")
	assert.Equal(t, 1, again.FailureCount, "returned records are copies")

	expired, err := s.Get(requestcontext.WithTime(context.Background(), start.Add(time.Minute)), "k")
	require.NoError(t, err)
	assert.Nil(t, expired)
}
