//go:build integration

package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/pkg/platform/sentinel"
	"charity/pkg/testutil/containers"
)

func TestPostgresStoreEnsure(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pg := containers.GetManager().GetPostgres(t)
	ctx := context.Background()
	require.NoError(t, pg.TruncateTables(ctx, "cities", "provinces"))
	store := NewPostgres(pg.DB)

	p, created, err := store.EnsureProvince(ctx, "اصفهان")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := store.EnsureProvince(ctx, "اصفهان")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p.ID, again.ID)

	c, created, err := store.EnsureCity(ctx, p.ID, "کاشان")
	require.NoError(t, err)
	assert.True(t, created)

	found, err := store.FindCity(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ProvinceID)

	_, err = store.FindProvince(ctx, p.ID+1000)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
