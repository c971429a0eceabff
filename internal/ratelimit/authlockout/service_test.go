package authlockout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/platform/metrics"
	"charity/internal/ratelimit/authlockout"
	"charity/internal/ratelimit/models"
	"charity/internal/ratelimit/store"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/requestcontext"
)

func TestLockout(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	at := func(d time.Duration) context.Context {
		return requestcontext.WithTime(context.Background(), start.Add(d))
	}
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	svc := authlockout.New(store.NewInMemory(),
		authlockout.WithConfig(authlockout.Config{Attempts: 3, Window: 10 * time.Minute, LockFor: 5 * time.Minute}),
		authlockout.WithMetrics(m),
	)

	for i := range 2 {
		require.NoError(t, svc.RecordFailure(at(time.Duration(i)*time.Minute), "charity", "Mehr"))
	}
	require.NoError(t, svc.Check(at(2*time.Minute), "charity", "mehr"))

	require.NoError(t, svc.RecordFailure(at(2*time.Minute), "charity", "mehr"))
	err := svc.Check(at(3*time.Minute), "charity", "MEHR")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeRateLimited))
	assert.Contains(t, err.Error(), "240 seconds")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginLockouts.WithLabelValues("charity")))

	t.Run("other scope is unaffected", func(t *testing.T) {
		assert.NoError(t, svc.Check(at(3*time.Minute), "staff", "mehr"))
	})

	t.Run("lock expires", func(t *testing.T) {
		assert.NoError(t, svc.Check(at(8*time.Minute), "charity", "mehr"))
	})
}

func TestFailuresOutsideWindowStartOver(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := authlockout.New(store.NewInMemory(),
		authlockout.WithConfig(authlockout.Config{Attempts: 2, Window: time.Minute, LockFor: time.Hour}))

	ctx := requestcontext.WithTime(context.Background(), start)
	require.NoError(t, svc.RecordFailure(ctx, "staff", "admin"))

	later := requestcontext.WithTime(context.Background(), start.Add(50*time.Second))
	require.NoError(t, svc.Clear(later, "staff", "admin"))
	require.NoError(t, svc.RecordFailure(later, "staff", "admin"))
	assert.NoError(t, svc.Check(later, "staff", "admin"))

	muchLater := requestcontext.WithTime(context.Background(), start.Add(5*time.Minute))
	require.NoError(t, svc.RecordFailure(muchLater, "staff", "admin"))
	assert.NoError(t, svc.Check(muchLater, "staff", "admin"))
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (*models.Lockout, error) {
	return nil, errors.New("redis down")
}
func (brokenStore) Save(context.Context, *models.Lockout, time.Duration) error { return nil }
func (brokenStore) Clear(context.Context, string) error                        { return nil }

func TestStoreErrorsAreInternal(t *testing.T) {
	svc := authlockout.New(brokenStore{})
	err := svc.Check(context.Background(), "charity", "x")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
