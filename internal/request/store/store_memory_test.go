package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"charity/internal/request/models"
	"charity/pkg/calendar"
	"charity/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store  *InMemoryStore
	ctx    context.Context
	layer2 models.Layer2
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.layer2 = models.Layer2{Name: "rent", Layer1ID: 2}
	s.Require().NoError(s.store.CreateLayer2(s.ctx, &s.layer2))
}

func (s *InMemoryStoreSuite) newRequest(beneficiaryID int64, stage string, created time.Time) *models.Request {
	r := &models.Request{
		BeneficiaryID: beneficiaryID,
		CharityID:     1,
		Layer1ID:      2,
		Layer2ID:      s.layer2.ID,
		Duration:      models.DurationOneTime,
		Stage:         stage,
		CreatedAt:     created,
	}
	s.Require().NoError(s.store.Create(s.ctx, r))
	return r
}

func (s *InMemoryStoreSuite) TestLayer1IsSeeded() {
	got, err := s.store.ListLayer1(s.ctx)
	s.Require().NoError(err)
	s.Len(got, 3)
	s.Equal("good", got[0].Name)
}

func (s *InMemoryStoreSuite) TestLayer2NameIsUnique() {
	err := s.store.CreateLayer2(s.ctx, &models.Layer2{Name: "rent", Layer1ID: 1})
	s.ErrorIs(err, sentinel.ErrConflict)

	err = s.store.CreateLayer2(s.ctx, &models.Layer2{Name: "fuel", Layer1ID: 99})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestListFiltersAndOrdersByEffectiveDate() {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 9, 0, 0, 0, time.UTC) }
	older := s.newRequest(7, models.StageSubmitted, day(3))
	newer := s.newRequest(7, models.StagePendingReview, day(1))
	explicit := calendar.NewDate(day(10))
	newer.Date = &explicit
	s.Require().NoError(s.store.Update(s.ctx, newer))
	s.newRequest(8, models.StageSubmitted, day(2))

	got, count, err := s.store.List(s.ctx, models.ListFilter{
		BeneficiaryID: 7,
		Stages:        []string{models.StageSubmitted, models.StagePendingReview},
		Ordering:      models.OrderEffectiveDesc,
		Limit:         10,
	})
	s.Require().NoError(err)
	s.Equal(2, count)
	s.Equal([]int64{newer.ID, older.ID}, []int64{got[0].ID, got[1].ID})

	got, count, err = s.store.List(s.ctx, models.ListFilter{IDs: []int64{}, Limit: 10})
	s.Require().NoError(err)
	s.Zero(count)
	s.Empty(got)
}

func (s *InMemoryStoreSuite) TestListOutOfRangeWindow() {
	now := time.Now()
	s.newRequest(1, models.StageSubmitted, now)
	s.newRequest(1, models.StageSubmitted, now)

	got, total, err := s.store.List(s.ctx, models.ListFilter{Offset: -10, Limit: 1})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(got, 1)

	got, total, err = s.store.List(s.ctx, models.ListFilter{Offset: 1, Limit: int(^uint(0) >> 1)})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Len(got, 1, "a huge limit does not overflow the window")
}

func (s *InMemoryStoreSuite) TestDeleteCascades() {
	r := s.newRequest(7, models.StageSubmitted, time.Now())
	s.Require().NoError(s.store.CreateOnetime(s.ctx, &models.Onetime{RequestID: r.ID}))
	h := &models.History{RequestID: r.ID, Title: "visit"}
	s.Require().NoError(s.store.CreateHistory(s.ctx, h))
	c := &models.Child{RequestID: r.ID, Description: "more", Stage: models.StageSubmitted}
	s.Require().NoError(s.store.CreateChild(s.ctx, c))

	s.Require().NoError(s.store.Delete(s.ctx, r.ID))

	_, err := s.store.FindOnetime(s.ctx, r.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.FindHistory(s.ctx, h.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.FindChild(s.ctx, c.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func TestOnetimeIsUniquePerRequest(t *testing.T) {
	ctx := context.Background()
	st := NewInMemory()
	l2 := &models.Layer2{Name: "rent", Layer1ID: 1}
	require.NoError(t, st.CreateLayer2(ctx, l2))
	r := &models.Request{BeneficiaryID: 1, CharityID: 1, Layer1ID: 1, Layer2ID: l2.ID, Duration: models.DurationOneTime}
	require.NoError(t, st.Create(ctx, r))

	require.NoError(t, st.CreateOnetime(ctx, &models.Onetime{RequestID: r.ID}))
	assert.ErrorIs(t, st.CreateOnetime(ctx, &models.Onetime{RequestID: r.ID}), sentinel.ErrConflict)
	assert.ErrorIs(t, st.CreateRecurring(ctx, &models.Recurring{RequestID: 999, Limit: 2}), sentinel.ErrNotFound)
}
