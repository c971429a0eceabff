//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/ratelimit/models"
	"charity/pkg/testutil/containers"
)

func TestRedisStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	rc := containers.GetManager().GetRedis(t)
	ctx := context.Background()
	s := NewRedis(rc.Client)

	got, err := s.Get(ctx, "charity:nobody")
	require.NoError(t, err)
	assert.Nil(t, got)

	until := time.Now().Add(time.Minute).UTC().Truncate(time.Second)
	rec := &models.Lockout{Key: "charity:mehr", FailureCount: 2, LastFailureAt: until.Add(-time.Minute), LockedUntil: &until}
	require.NoError(t, s.Save(ctx, rec, time.Minute))

	got, err = s.Get(ctx, "charity:mehr")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.FailureCount)
	assert.True(t, until.Equal(*got.LockedUntil))

	ttl, err := rc.Client.TTL(ctx, keyPrefix+"charity:mehr").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Clear(ctx, "charity:mehr"))
	got, err = s.Get(ctx, "charity:mehr")
	require.NoError(t, err)
	assert.Nil(t, got)
}
