//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/internal/announcement/models"
	"charity/pkg/platform/sentinel"
	"charity/pkg/testutil/containers"
)

func TestPostgresStoreAnnouncements(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pg := containers.GetManager().GetPostgres(t)
	ctx := context.Background()
	require.NoError(t, pg.TruncateTables(ctx, "users", "request_type_layer2"))

	var userID, beneficiaryID, charityUserID, charityID, layer1ID, layer2ID, requestID int64
	db := pg.DB
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ('0098765432', 'x', 'beneficiary') RETURNING id`).Scan(&userID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO beneficiaries (user_id, identification_number, beneficiary_id) VALUES ($1, '0098765432', 'B-9') RETURNING id`,
		userID).Scan(&beneficiaryID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES ('givers', 'x', 'charity') RETURNING id`).Scan(&charityUserID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO charities (user_id, name) VALUES ($1, 'givers') RETURNING id`, charityUserID).Scan(&charityID))
	require.NoError(t, db.QueryRowContext(ctx, `SELECT id FROM request_type_layer1 WHERE name = 'good'`).Scan(&layer1ID))
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO request_type_layer2 (name, layer1_id) VALUES ('blankets', $1) RETURNING id`, layer1ID).Scan(&layer2ID))
	require.NoError(t, db.QueryRowContext(ctx, `
		INSERT INTO beneficiary_requests (beneficiary_id, charity_id, layer1_id, layer2_id, title, duration)
		VALUES ($1, $2, $3, $4, 'winter', 'one_time') RETURNING id`,
		beneficiaryID, charityID, layer1ID, layer2ID).Scan(&requestID))

	store := NewPostgres(db)
	now := time.Now().UTC().Truncate(time.Second)

	t.Run("request announcements carry the owner", func(t *testing.T) {
		old := &models.ForRequest{RequestID: requestID, Title: "Created", CreatedAt: now.Add(-40 * 24 * time.Hour)}
		recent := &models.ForRequest{RequestID: requestID, CharityID: &charityID, Title: "Update", CreatedAt: now}
		require.NoError(t, store.CreateForRequest(ctx, old))
		require.NoError(t, store.CreateForRequest(ctx, recent))

		found, err := store.FindForRequest(ctx, recent.ID)
		require.NoError(t, err)
		assert.Equal(t, beneficiaryID, found.BeneficiaryID)
		require.NotNil(t, found.CharityID)
		assert.Equal(t, charityID, *found.CharityID)

		unseen, err := store.ListUnseenForRequests(ctx, beneficiaryID, now.Add(-models.RecentWindow))
		require.NoError(t, err)
		require.Len(t, unseen, 1)
		assert.Equal(t, recent.ID, unseen[0].ID)

		found.Seen = true
		require.NoError(t, store.UpdateForRequest(ctx, found))
		unseen, err = store.ListUnseenForRequests(ctx, beneficiaryID, now.Add(-models.RecentWindow))
		require.NoError(t, err)
		assert.Empty(t, unseen)

		all, err := store.ListForRequest(ctx, requestID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, recent.ID, all[0].ID)
	})

	t.Run("unknown request", func(t *testing.T) {
		err := store.CreateForRequest(ctx, &models.ForRequest{RequestID: requestID + 50, Title: "x", CreatedAt: now})
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("beneficiary announcements", func(t *testing.T) {
		a := &models.ToBeneficiary{BeneficiaryID: beneficiaryID, Title: "delete", CreatedAt: now}
		require.NoError(t, store.CreateToBeneficiary(ctx, a))

		unseen, err := store.ListUnseenToBeneficiary(ctx, beneficiaryID, now.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, unseen, 1)
		assert.Nil(t, unseen[0].CharityID)

		require.NoError(t, store.MarkToBeneficiarySeen(ctx, a.ID))
		seen, err := store.FindToBeneficiary(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, seen.Seen)
		assert.ErrorIs(t, store.MarkToBeneficiarySeen(ctx, a.ID+99), sentinel.ErrNotFound)
	})

	t.Run("deleting the request drops its announcements", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `DELETE FROM beneficiary_requests WHERE id = $1`, requestID)
		require.NoError(t, err)
		all, err := store.ListForRequest(ctx, requestID)
		require.NoError(t, err)
		assert.Empty(t, all)

		direct, err := store.ListToBeneficiary(ctx, beneficiaryID)
		require.NoError(t, err)
		assert.Len(t, direct, 1)
	})
}
