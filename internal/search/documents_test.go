package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"charity/internal/search"
	"charity/internal/search/mocks"
)

func TestSyncerSync(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	indexer := mocks.NewMockIndexer(ctrl)
	beneficiaries := mocks.NewMockBeneficiarySource(ctrl)
	requests := mocks.NewMockRequestSource(ctrl)
	syncer := search.NewSyncer(indexer, beneficiaries, requests, nil)

	t.Run("all rebuilds both indexes in order", func(t *testing.T) {
		benDocs := []search.BeneficiaryDocument{{ID: 1, FullName: "علی رضایی"}}
		reqDocs := []search.RequestDocument{{ID: 5, Title: "rent"}, {ID: 6, Title: "food"}}
		gomock.InOrder(
			beneficiaries.EXPECT().BeneficiaryDocuments(gomock.Any()).Return(benDocs, nil),
			indexer.EXPECT().Replace(gomock.Any(), search.IndexBeneficiaries, gomock.Len(1), 500).Return(nil),
			requests.EXPECT().RequestDocuments(gomock.Any()).Return(reqDocs, nil),
			indexer.EXPECT().Replace(gomock.Any(), search.IndexRequests, gomock.Len(2), 500).Return(nil),
		)
		require.NoError(t, syncer.Sync(ctx, "all"))
	})

	t.Run("source error stops the sync", func(t *testing.T) {
		beneficiaries.EXPECT().BeneficiaryDocuments(gomock.Any()).Return(nil, errors.New("db down"))
		err := syncer.Sync(ctx, search.IndexBeneficiaries)
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("unknown index", func(t *testing.T) {
		assert.Error(t, syncer.Sync(ctx, "donors"))
	})
}
