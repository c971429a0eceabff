//go:build integration

package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/request/models"
	"charity/pkg/platform/sentinel"
	"charity/pkg/testutil/containers"
)

type fixture struct {
	beneficiaryID int64
	charityID     int64
	layer1ID      int64
	layer2ID      int64
}

func seed(t *testing.T, ctx context.Context, db *sql.DB) fixture {
	t.Helper()
	var f fixture
	var userID, charityUserID int64
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ('0012345678', 'x', 'beneficiary') RETURNING id`).Scan(&userID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO beneficiaries (user_id, identification_number, beneficiary_id) VALUES ($1, '0012345678', 'B-1') RETURNING id`,
		userID).Scan(&f.beneficiaryID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ('helpers', 'x', 'charity') RETURNING id`).Scan(&charityUserID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO charities (user_id, name) VALUES ($1, 'helpers') RETURNING id`, charityUserID).Scan(&f.charityID))
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT id FROM request_type_layer1 WHERE name = 'cash'`).Scan(&f.layer1ID))
	return f
}

func TestPostgresStoreRequests(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pg := containers.GetManager().GetPostgres(t)
	ctx := context.Background()
	require.NoError(t, pg.TruncateTables(ctx, "users", "request_type_layer2"))
	f := seed(t, ctx, pg.DB)
	store := NewPostgres(pg.DB)

	layer2 := &models.Layer2{Name: "rent", Layer1ID: f.layer1ID}
	require.NoError(t, store.CreateLayer2(ctx, layer2))
	assert.ErrorIs(t, store.CreateLayer2(ctx, &models.Layer2{Name: "rent", Layer1ID: f.layer1ID}), sentinel.ErrConflict)

	layers, err := store.ListLayer2(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, layers, 1)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	newRequest := func(title, stage, duration string) *models.Request {
		r := &models.Request{
			BeneficiaryID: f.beneficiaryID, CharityID: f.charityID,
			Layer1ID: f.layer1ID, Layer2ID: layer2.ID,
			Title: title, Duration: duration, Stage: stage, CreatedAt: now,
		}
		require.NoError(t, store.Create(ctx, r))
		return r
	}
	first := newRequest("first", models.StageSubmitted, models.DurationOneTime)
	second := newRequest("second", models.StageCompleted, models.DurationRecurring)

	t.Run("filters and default order", func(t *testing.T) {
		all, count, err := store.List(ctx, models.ListFilter{BeneficiaryID: f.beneficiaryID, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, second.ID, all[0].ID)

		done, count, err := store.List(ctx, models.ListFilter{Stages: []string{models.StageCompleted}, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, "second", done[0].Title)

		none, count, err := store.List(ctx, models.ListFilter{IDs: []int64{}, Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Empty(t, none)
	})

	t.Run("one onetime extension per request", func(t *testing.T) {
		require.NoError(t, store.CreateOnetime(ctx, &models.Onetime{RequestID: first.ID, CreatedAt: now}))
		assert.ErrorIs(t, store.CreateOnetime(ctx, &models.Onetime{RequestID: first.ID, CreatedAt: now}), sentinel.ErrConflict)
	})

	t.Run("unknown parent", func(t *testing.T) {
		err := store.CreateHistory(ctx, &models.History{RequestID: second.ID + 100, Title: "x", CreatedAt: now})
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("sub-records cascade with the request", func(t *testing.T) {
		h := &models.History{RequestID: first.ID, Title: "visited", CreatedAt: now}
		require.NoError(t, store.CreateHistory(ctx, h))
		c := &models.Child{RequestID: first.ID, Stage: models.StageSubmitted, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, store.CreateChild(ctx, c))

		require.NoError(t, store.Delete(ctx, first.ID))
		_, err := store.FindHistory(ctx, h.ID)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		_, err = store.FindChild(ctx, c.ID)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		_, err = store.FindOnetime(ctx, first.ID)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.ErrorIs(t, store.Delete(ctx, first.ID), sentinel.ErrNotFound)
	})
}
