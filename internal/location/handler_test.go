package location

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/pkg/testutil"
)

func TestLookupHandlers(t *testing.T) {
	store := NewInMemory()
	svc := NewService(store, nil)
	loadSample(t, svc)
	fars, _, err := store.EnsureProvince(context.Background(), "فارس")
	require.NoError(t, err)

	r := chi.NewRouter()
	NewHandler(svc, slog.New(slog.DiscardHandler)).Register(r)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/lookups/provinces/"))
	testutil.AssertStatusOK(t, rr)
	provinces := testutil.UnmarshalResponse[[]Province](t, rr)
	assert.Len(t, *provinces, 2)

	rr = testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/lookups/cities/?province="+itoa(fars.ID)))
	testutil.AssertStatusOK(t, rr)
	cities := testutil.UnmarshalResponse[[]City](t, rr)
	require.Len(t, *cities, 1)
	assert.Equal(t, "شیراز", (*cities)[0].Name)

	rr = testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/lookups/cities/?province=abc"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
